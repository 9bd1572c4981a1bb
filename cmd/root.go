// Package cmd implements the command-line interface for mpvctl.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yhkl-dev/mpvctl/config"
	"github.com/yhkl-dev/mpvctl/log"
	"github.com/yhkl-dev/mpvctl/mpvplayer"
	"github.com/yhkl-dev/mpvctl/ui"
)

// Version is set at build time with -ldflags
var Version = "dev"

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("config", "c", "", "Path to a config.toml (default $HOME/.config/mpvctl/config.toml)")

	rootCmd.Flags().Int("volume", 0, "Initial volume level, 0 to 10")
	lo.Must0(viper.BindPFlag("player.initial_volume", rootCmd.Flags().Lookup("volume")))

	rootCmd.Flags().Bool("loop", false, "Start with looping enabled")
	lo.Must0(viper.BindPFlag("player.loop", rootCmd.Flags().Lookup("loop")))

	rootCmd.Flags().Bool("mute", false, "Start muted")
	lo.Must0(viper.BindPFlag("player.muted", rootCmd.Flags().Lookup("mute")))

	rootCmd.Flags().Int("seek-step", 0, "Seconds skipped by rewind and fast forward")
	lo.Must0(viper.BindPFlag("player.seek_step", rootCmd.Flags().Lookup("seek-step")))

	rootCmd.Flags().String("log-level", "", "Log level (error, warn, info, debug)")
	lo.Must0(viper.BindPFlag("log.level", rootCmd.Flags().Lookup("log-level")))

	rootCmd.Flags().Bool("log", false, "Write a log file")
	lo.Must0(viper.BindPFlag("log.write", rootCmd.Flags().Lookup("log")))

	rootCmd.Flags().String("vo", "", "mpv video output driver")
	lo.Must0(viper.BindPFlag("mpv.vo", rootCmd.Flags().Lookup("vo")))
}

// rootCmd defines the entry point for mpvctl
var rootCmd = &cobra.Command{
	Use:   "mpvctl [flags] <media>",
	Short: "A keyboard and mouse control surface for mpv",
	Long: `mpvctl plays a single file or URL in mpv and replaces mpv's on-screen
controller with a terminal control surface: play/pause, a draggable
timeline, speed, volume, mute, loop and fullscreen.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			fmt.Fprintf(cmd.OutOrStdout(), "mpvctl %s\n", Version)
			return nil
		}
		return run(cmd.Context(), lo.Must(cmd.Flags().GetString("config")), args[0])
	},
}

func run(parent context.Context, configPath, media string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := log.Setup(cfg.Log); err != nil {
		return errors.Wrap(err, "setup log")
	}
	defer func() {
		if err := log.Close(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "mpvctl: %v\n", err)
		}
	}()
	log.Infof("mpvctl %s starting", Version)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := mpvplayer.NewEngine(ctx, mpvplayer.Options{
		VideoOutput:    cfg.MPV.VideoOutput,
		HWDec:          cfg.MPV.HWDec,
		NativeControls: cfg.MPV.NativeControls,
	})
	if err != nil {
		return err
	}
	defer func() {
		// Stop the event listener first so Close can free the handle.
		stop()
		if err := engine.Close(); err != nil {
			log.Warnf("close engine: %v", err)
		}
	}()

	if err := engine.Load(media); err != nil {
		return errors.Wrapf(err, "load %s", media)
	}
	log.WithFields(logrus.Fields{
		"media": media,
		"vo":    cfg.MPV.VideoOutput,
		"hwdec": cfg.MPV.HWDec,
	}).Info("media loaded")

	return ui.NewApp(ctx, cfg, engine, MediaTitle(media)).Run()
}

// MediaTitle is the name shown on the media panel: the file name for local
// paths and URLs, the raw argument otherwise.
func MediaTitle(media string) string {
	if u, err := url.Parse(media); err == nil && u.Scheme != "" && u.Host != "" {
		if name := filepath.Base(u.Path); name != "." && name != "/" {
			return name
		}
		return u.Host
	}
	return filepath.Base(media)
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "mpvctl: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
