package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/chanrotate/pkg/invitepage"
	"github.com/sw33tLie/chanrotate/pkg/whttp"
)

// inviteCmd shows what a t.me invite link currently resolves to. Useful to
// check that the link from the last run works and the previous one is dead.
var inviteCmd = &cobra.Command{
	Use:     "invite <link>...",
	Short:   "Inspect the public preview page of invite links",
	Example: `  chanrotate invite https://t.me/+AbCdEf https://t.me/+OldLink`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proxy, _ := cmd.Flags().GetString("proxy")
		client, err := whttp.NewClient(proxy, 2)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		out := cmd.OutOrStdout()
		for _, link := range args {
			page, err := invitepage.Fetch(ctx, link, client)
			if err != nil {
				return err
			}
			status := "active"
			if !page.Valid {
				status = "revoked or expired"
			}
			fmt.Fprintf(out, "%s [%s]\n", page.URL, status)
			fmt.Fprintf(out, "  title:       %s\n", page.Title)
			if page.Extra != "" {
				fmt.Fprintf(out, "  members:     %s\n", page.Extra)
			}
			if page.Description != "" {
				fmt.Fprintf(out, "  description: %s\n", page.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inviteCmd)
}
