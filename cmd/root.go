package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/chanrotate/internal/utils"
	"github.com/sw33tLie/chanrotate/pkg/mode"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	      _                           _        _
	  ___| |__   __ _ _ __  _ __ ___ | |_ __ _| |_ ___
	 / __| '_ \ / _' | '_ \| '__/ _ \| __/ _' | __/ _ \
	| (__| | | | (_| | | | | | | (_) | || (_| | ||  __/
	 \___|_| |_|\__,_|_| |_|_|  \___/ \__\__,_|\__\___|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chanrotate",
	Short: "Monthly maintenance for Telegram channels.",
	Long: LOGO + `chanrotate removes every member who is not an owner or administrator, renames each
channel to the current month and year, and issues a fresh invite link that invalidates the old one.

Runs are simulated unless the config sets mode: live.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, mode.ErrAborted) {
			fmt.Println("Aborted, no channel was touched.")
			os.Exit(1)
		}
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chanrotate.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy for Bot API calls (Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".chanrotate")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("chanrotate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine as long as the environment provides the keys.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}

	setDefaults()

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

func setDefaults() {
	viper.SetDefault("mode", "dry_run")
	viper.SetDefault("channels", "")
	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.api_id", 0)
	viper.SetDefault("telegram.api_hash", "")
	viper.SetDefault("telegram.api_url", "")
	viper.SetDefault("telegram.session_file", "")
}
