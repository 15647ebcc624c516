package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/sw33tLie/chanrotate/internal/utils"
	"github.com/sw33tLie/chanrotate/pkg/mode"
	"github.com/sw33tLie/chanrotate/pkg/platforms/telegram"
)

// runConfig is everything a command needs from the config file and environment.
type runConfig struct {
	Mode     mode.Mode
	Channels []int64
	BotToken string
	APIURL   string
	Session  telegram.SessionConfig
}

// loadRunConfig validates the configuration before any remote call is made.
func loadRunConfig() (runConfig, error) {
	cfg := runConfig{
		Mode:     mode.Resolve(viper.GetString("mode")),
		BotToken: viper.GetString("telegram.bot_token"),
		APIURL:   viper.GetString("telegram.api_url"),
	}

	if cfg.BotToken == "" {
		return cfg, fmt.Errorf("telegram.bot_token is not set")
	}

	appID := viper.GetInt("telegram.api_id")
	appHash := viper.GetString("telegram.api_hash")
	if appID == 0 || appHash == "" {
		return cfg, fmt.Errorf("telegram.api_id and telegram.api_hash are required to list channel members")
	}

	channels, err := utils.ParseChannelIDs(strings.Join(viper.GetStringSlice("channels"), " "))
	if err != nil {
		return cfg, fmt.Errorf("channels: %w", err)
	}
	cfg.Channels = channels

	sessionFile := viper.GetString("telegram.session_file")
	if sessionFile == "" {
		home, err := homedir.Dir()
		if err != nil {
			return cfg, err
		}
		sessionFile = filepath.Join(home, ".chanrotate.session")
	} else if sessionFile, err = homedir.Expand(sessionFile); err != nil {
		return cfg, err
	}

	cfg.Session = telegram.SessionConfig{
		AppID:       appID,
		AppHash:     appHash,
		BotToken:    cfg.BotToken,
		SessionFile: sessionFile,
	}
	return cfg, nil
}
