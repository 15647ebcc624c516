package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/chanrotate/pkg/rotation"
)

// titleCmd previews a rotation offline: no config, no network, no prompt.
var titleCmd = &cobra.Command{
	Use:     "title <current title>",
	Short:   "Print the title a channel would be renamed to",
	Example: `  chanrotate title "Monthly Report Octubre '23" --date 2024-03-15`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		today := time.Now()
		if d, _ := cmd.Flags().GetString("date"); d != "" {
			parsed, err := time.Parse("2006-01-02", d)
			if err != nil {
				return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", d)
			}
			today = parsed
		}

		override, _ := cmd.Flags().GetString("override")
		next, err := rotation.Next(strings.Join(args, " "), today, override)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(titleCmd)
	titleCmd.Flags().String("date", "", "Date to rotate to, as YYYY-MM-DD (default: today)")
	titleCmd.Flags().String("override", "", "Operator override; printed verbatim when set")
}
