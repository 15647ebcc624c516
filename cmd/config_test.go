package cmd

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/sw33tLie/chanrotate/pkg/mode"
)

func setConfig(t *testing.T, values map[string]interface{}) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()
	for k, v := range values {
		viper.Set(k, v)
	}
}

func validConfig() map[string]interface{} {
	return map[string]interface{}{
		"mode":                  "live",
		"channels":              "-1003 -1001\n-1002",
		"telegram.bot_token":    "123:abc",
		"telegram.api_id":       12345,
		"telegram.api_hash":     "deadbeef",
		"telegram.session_file": "/tmp/chanrotate.session",
	}
}

func TestLoadRunConfig(t *testing.T) {
	setConfig(t, validConfig())

	cfg, err := loadRunConfig()
	if err != nil {
		t.Fatalf("loadRunConfig: %v", err)
	}
	if cfg.Mode != mode.Commit {
		t.Fatalf("expected commit mode, got %s", cfg.Mode)
	}
	if !reflect.DeepEqual(cfg.Channels, []int64{-1003, -1001, -1002}) {
		t.Fatalf("channel order not preserved: %v", cfg.Channels)
	}
	if cfg.Session.AppID != 12345 || cfg.Session.SessionFile != "/tmp/chanrotate.session" || cfg.Session.BotToken != "123:abc" {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
}

func TestLoadRunConfigChannelList(t *testing.T) {
	values := validConfig()
	values["channels"] = []interface{}{-1001, "-1002"}
	setConfig(t, values)

	cfg, err := loadRunConfig()
	if err != nil {
		t.Fatalf("loadRunConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg.Channels, []int64{-1001, -1002}) {
		t.Fatalf("unexpected channels %v", cfg.Channels)
	}
}

func TestLoadRunConfigDefaultsToSimulate(t *testing.T) {
	values := validConfig()
	delete(values, "mode")
	setConfig(t, values)

	cfg, err := loadRunConfig()
	if err != nil {
		t.Fatalf("loadRunConfig: %v", err)
	}
	if cfg.Mode != mode.Simulate {
		t.Fatalf("expected simulate mode without a mode key, got %s", cfg.Mode)
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   interface{}
		wantErr string
	}{
		{"missing token", "telegram.bot_token", "", "bot_token"},
		{"missing api id", "telegram.api_id", 0, "api_id"},
		{"missing api hash", "telegram.api_hash", "", "api_hash"},
		{"empty channels", "channels", "  ", "no channels"},
		{"bad channel", "channels", "-1001 @handle", "invalid channel id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validConfig()
			values[tt.key] = tt.value
			setConfig(t, values)

			_, err := loadRunConfig()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
