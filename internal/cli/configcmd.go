// Package cli provides the configuration inspection command.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjelva/icontheme"
	"github.com/mjelva/icontheme/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDirs := cfg.BaseDirs
		if len(baseDirs) == 0 {
			baseDirs = icontheme.DefaultBaseDirs()
		}

		rows := [][]string{
			{"config file", orDefault(cfgFile, config.DefaultPath())},
			{"default theme", cfg.DefaultTheme},
			{"include baseline", formatYesNo(cfg.IncludeBaseline)},
			{"extensions", strings.Join(cfg.Extensions, ",")},
			{"base dirs", strings.Join(baseDirs, ":")},
			{"log level", cfg.LogLevel},
		}
		return writeTable(cmd.OutOrStdout(), nil, rows)
	},
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
