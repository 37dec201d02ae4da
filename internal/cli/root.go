// Package cli implements the icontheme command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mjelva/icontheme"
	"github.com/mjelva/icontheme/internal/config"
)

var (
	// persistent flags
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "icontheme",
	Short:         "Look up icons from installed icon themes",
	Long:          "icontheme resolves logical icon names to files on disk, following icon theme inheritance the way desktop environments do.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsed).With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/icontheme/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		return err
	}
	return nil
}

// newIcons builds the lookup facade from the loaded configuration plus any
// per-command overrides.
func newIcons(overrides func(*icontheme.Options)) *icontheme.Icons {
	opts := cfg.Options()
	opts.Logger = &logger
	if overrides != nil {
		overrides(&opts)
	}
	return icontheme.WithOptions(opts)
}
