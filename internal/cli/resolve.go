// Package cli provides the icon resolution command.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mjelva/icontheme"
)

var (
	// resolve flags
	resolveSize    int
	resolveScale   int
	resolveTheme   string
	resolveDirs    []string
	resolveDetails bool
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().IntVarP(&resolveSize, "size", "s", 48, "requested icon size in pixels")
	resolveCmd.Flags().IntVar(&resolveScale, "scale", 1, "display scale factor")
	resolveCmd.Flags().StringVarP(&resolveTheme, "theme", "t", "", "theme to search (default: configured default theme)")
	resolveCmd.Flags().StringSliceVar(&resolveDirs, "base-dir", nil, "base directory to search (repeatable, overrides config)")
	resolveCmd.Flags().BoolVar(&resolveDetails, "details", false, "print theme, subdirectory and size alongside the path")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME",
	Short: "Resolve an icon name to a file path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if resolveSize < 1 {
			return fmt.Errorf("size must be at least 1, got %d", resolveSize)
		}
		if resolveScale < 1 {
			return fmt.Errorf("scale must be at least 1, got %d", resolveScale)
		}

		icons := newIcons(func(opts *icontheme.Options) {
			if len(resolveDirs) > 0 {
				opts.BaseDirs = resolveDirs
			}
		})

		theme := resolveTheme
		if theme == "" {
			theme = cfg.DefaultTheme
		}

		icon, err := icons.FindIcon(name, resolveSize, resolveScale, theme)
		if err != nil {
			return err
		}

		if !resolveDetails {
			fmt.Fprintln(cmd.OutOrStdout(), icon.Path)
			return nil
		}

		theme = icon.Theme
		subdir := icon.SubdirPath
		if theme == "" {
			theme = "(standalone)"
			subdir = "-"
		}
		return writeTable(cmd.OutOrStdout(),
			[]string{"PATH", "THEME", "SUBDIR", "SIZE", "TYPE"},
			[][]string{{icon.Path, theme, subdir, strconv.Itoa(icon.Size), icon.Type.String()}},
		)
	},
}
