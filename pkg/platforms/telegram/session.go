package telegram

import (
	"context"
	"fmt"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/sw33tLie/chanrotate/internal/utils"
)

// SessionConfig holds the MTProto credentials used for roster listing.
type SessionConfig struct {
	AppID       int
	AppHash     string
	BotToken    string
	SessionFile string
}

// RunSession connects to MTProto, signs in as the bot if the stored session is
// not authorized yet, and runs fn with a Roster. The connection stays open for
// the whole call, so every channel of a run shares it.
func RunSession(ctx context.Context, cfg SessionConfig, fn func(ctx context.Context, roster *Roster) error) error {
	client := telegram.NewClient(cfg.AppID, cfg.AppHash, telegram.Options{
		SessionStorage: &session.FileStorage{Path: cfg.SessionFile},
	})

	return client.Run(ctx, func(ctx context.Context) error {
		status, err := client.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("mtproto auth status: %w", err)
		}
		if !status.Authorized {
			utils.Log.Debug("MTProto session not authorized, signing in as bot")
			if _, err := client.Auth().Bot(ctx, cfg.BotToken); err != nil {
				return fmt.Errorf("mtproto bot sign-in: %w", err)
			}
		}
		return fn(ctx, NewRoster(client.API()))
	})
}
