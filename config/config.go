package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents the complete application configuration
type Config struct {
	Player PlayerConfig `mapstructure:"player"`
	UI     UIConfig     `mapstructure:"ui"`
	MPV    MPVConfig    `mapstructure:"mpv"`
	Log    LogConfig    `mapstructure:"log"`
}

// PlayerConfig contains the initial control state applied at load time
type PlayerConfig struct {
	SeekStep      int  `mapstructure:"seek_step" validate:"min=1"` // in seconds
	InitialVolume int  `mapstructure:"initial_volume" validate:"min=0,max=10"`
	Loop          bool `mapstructure:"loop"`
	Muted         bool `mapstructure:"muted"`
}

// UIConfig contains control surface settings
type UIConfig struct {
	IndicatorFadeMs int  `mapstructure:"indicator_fade_ms" validate:"min=0"`
	IndicatorHideMs int  `mapstructure:"indicator_hide_ms" validate:"gtfield=IndicatorFadeMs"`
	Mouse           bool `mapstructure:"mouse"`
}

// MPVConfig contains libmpv options
type MPVConfig struct {
	VideoOutput    string `mapstructure:"vo"`
	HWDec          string `mapstructure:"hwdec"`
	NativeControls bool   `mapstructure:"native_controls"`
}

// LogConfig contains file logging settings
type LogConfig struct {
	Write bool   `mapstructure:"write"`
	Level string `mapstructure:"level" validate:"oneof=panic fatal error warn warning info debug trace"`
	JSON  bool   `mapstructure:"json"`
	Dir   string `mapstructure:"dir"`
}

// GetSeekStep returns the seek step in seconds as a float
func (p *PlayerConfig) GetSeekStep() float64 {
	return float64(p.SeekStep)
}

// GetFadeAfter returns the delay before an indicator starts fading
func (u *UIConfig) GetFadeAfter() time.Duration {
	return time.Duration(u.IndicatorFadeMs) * time.Millisecond
}

// GetHideAfter returns the delay before an indicator is hidden
func (u *UIConfig) GetHideAfter() time.Duration {
	return time.Duration(u.IndicatorHideMs) * time.Millisecond
}

var validate = newValidator()

// newValidator reports fields by their mapstructure key so messages match config.toml
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldKeys maps cross-field validation params back to config keys
var fieldKeys = map[string]string{
	"IndicatorFadeMs": "indicator_fade_ms",
}

// Validate checks value ranges and names every offending key
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", key, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must not exceed %s", key, fe.Param()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", key, fe.Param()))
		case "gtfield":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", key, fieldKeys[fe.Param()]))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid (%s)", key, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			SeekStep:      10,
			InitialVolume: 10,
		},
		UI: UIConfig{
			IndicatorFadeMs: 300,
			IndicatorHideMs: 500,
			Mouse:           true,
		},
		MPV: MPVConfig{
			HWDec:          "auto-safe",
			NativeControls: true,
		},
		Log: LogConfig{
			Level: "info",
			Dir:   defaultLogDir(),
		},
	}
}

func defaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "mpvctl", "logs")
}
