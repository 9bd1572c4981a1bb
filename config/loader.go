package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. MPVCTL_PLAYER_SEEK_STEP
const EnvPrefix = "MPVCTL"

// EnvKeyReplacer turns config keys into environment variable names
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Load reads config.toml (or the explicit path when non-empty) and returns a
// validated Config. A missing config file is not an error.
func Load(path string) (*Config, error) {
	// Set config file properties
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/mpvctl/")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	// Set defaults from DefaultConfig
	defaults := DefaultConfig()
	viper.SetDefault("player.seek_step", defaults.Player.SeekStep)
	viper.SetDefault("player.initial_volume", defaults.Player.InitialVolume)
	viper.SetDefault("player.loop", defaults.Player.Loop)
	viper.SetDefault("player.muted", defaults.Player.Muted)
	viper.SetDefault("ui.indicator_fade_ms", defaults.UI.IndicatorFadeMs)
	viper.SetDefault("ui.indicator_hide_ms", defaults.UI.IndicatorHideMs)
	viper.SetDefault("ui.mouse", defaults.UI.Mouse)
	viper.SetDefault("mpv.vo", defaults.MPV.VideoOutput)
	viper.SetDefault("mpv.hwdec", defaults.MPV.HWDec)
	viper.SetDefault("mpv.native_controls", defaults.MPV.NativeControls)
	viper.SetDefault("log.write", defaults.Log.Write)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.json", defaults.Log.JSON)
	viper.SetDefault("log.dir", defaults.Log.Dir)

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
