package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/chanrotate/internal/utils"
	"github.com/sw33tLie/chanrotate/pkg/mode"
	"github.com/sw33tLie/chanrotate/pkg/platforms/telegram"
	"github.com/sw33tLie/chanrotate/pkg/prompt"
	"github.com/sw33tLie/chanrotate/pkg/reconcile"
)

// runCmd implements: chanrotate run
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run maintenance on every configured channel",
	Long: `Run maintenance on every configured channel, in the configured order:
remove members who are not owners or administrators, rotate the title to the
current month and year, and export a new invite link.

Without mode: live in the config every action is only printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}

		lockPath, _ := cmd.Flags().GetString("lock")
		lock, err := utils.NewRunLock(lockPath)
		if err != nil {
			return err
		}
		if err := lock.Lock(); err != nil {
			return err
		}
		defer lock.Unlock()

		operator := prompt.NewTerminal(os.Stdin, os.Stdout)
		printer := reconcile.NewPrinter(os.Stdout)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		printer.Banner(cfg.Mode)
		if err := mode.Gate(ctx, cfg.Mode, operator); err != nil {
			return err
		}

		proxy, _ := cmd.Flags().GetString("proxy")
		bot, err := telegram.NewBot(cfg.BotToken, cfg.APIURL, proxy)
		if err != nil {
			return err
		}
		botName, err := bot.Username(ctx)
		if err != nil {
			return err
		}
		utils.Log.Debugf("Authenticated to the Bot API as @%s", botName)

		return telegram.RunSession(ctx, cfg.Session, func(ctx context.Context, roster *telegram.Roster) error {
			rec := reconcile.New(cfg.Mode, reconcile.Collaborators{
				Roster:    roster,
				Directory: bot,
				Members:   bot,
				Invites:   bot,
			}, operator, printer)

			reports, err := reconcile.Run(ctx, rec, cfg.Channels)
			for _, rep := range reports {
				utils.Log.Infof("Channel %d done: %d removed, title %q, invite %s", rep.ChannelID, rep.Removed, rep.NewTitle, rep.InviteLink)
			}
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("lock", "", "Path to the run lock file (default: ~/.config/chanrotate/run.lock)")
}
