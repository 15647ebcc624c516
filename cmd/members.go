package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/chanrotate/pkg/membership"
	"github.com/sw33tLie/chanrotate/pkg/platforms/telegram"
	"github.com/sw33tLie/chanrotate/pkg/reconcile"
)

// membersCmd lists who a run would remove. It never mutates anything,
// whatever the configured mode.
var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List members of the configured channels and whether they would be removed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}

		proxy, _ := cmd.Flags().GetString("proxy")
		bot, err := telegram.NewBot(cfg.BotToken, cfg.APIURL, proxy)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return telegram.RunSession(ctx, cfg.Session, func(ctx context.Context, roster *telegram.Roster) error {
			for _, id := range cfg.Channels {
				if err := listChannelMembers(ctx, os.Stdout, id, roster, bot, bot); err != nil {
					return fmt.Errorf("channel %d: %w", id, err)
				}
			}
			return nil
		})
	},
}

func listChannelMembers(ctx context.Context, out io.Writer, channelID int64, roster reconcile.RosterSource, dir reconcile.ChannelDirectory, members reconcile.MembershipControl) error {
	title, err := dir.GetChannelTitle(ctx, channelID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n--> %s (%d)\n", title, channelID)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER ID\tHANDLE\tSTATUS\tREMOVE")

	total, remove := 0, 0
	for m, err := range roster.ListMembers(ctx, channelID) {
		if err != nil {
			return err
		}
		level, err := members.GetMemberStatus(ctx, channelID, m.UserID)
		if err != nil {
			return err
		}
		m.Level = level

		total++
		verdict := "no"
		if membership.ShouldRemove(m) {
			remove++
			verdict = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.UserID, m.Handle(), m.Level, verdict)
	}
	w.Flush()

	fmt.Fprintf(out, "%d members, %d would be removed\n", total, remove)
	return nil
}

func init() {
	rootCmd.AddCommand(membersCmd)
}
