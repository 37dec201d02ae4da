// Package cli provides theme inspection commands.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjelva/icontheme"
)

var themesDirs []string

func init() {
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(chainCmd)

	themesCmd.Flags().StringSliceVar(&themesDirs, "base-dir", nil, "base directory to search (repeatable, overrides config)")
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List discovered icon themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		icons := newIcons(func(opts *icontheme.Options) {
			if len(themesDirs) > 0 {
				opts.BaseDirs = themesDirs
			}
		})
		reg := icons.Registry()

		rows := make([][]string, 0)
		for _, name := range reg.ThemeNames() {
			theme := reg.Theme(name)
			index := theme.Index
			rows = append(rows, []string{
				name,
				index.Name,
				strings.Join(index.Inherits, ","),
				strconv.Itoa(len(index.Directories)),
				formatYesNo(index.Hidden),
			})
		}
		if err := writeTable(cmd.OutOrStdout(), []string{"THEME", "NAME", "INHERITS", "DIRS", "HIDDEN"}, rows); err != nil {
			return err
		}

		faults := reg.Faults()
		if len(faults) == 0 {
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout())
		for name, err := range faults {
			fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("skipped:"), name+":", err.Error())
		}
		return nil
	},
}

var chainCmd = &cobra.Command{
	Use:   "chain THEME",
	Short: "Print a theme's flattened inheritance chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		icons := newIcons(nil)

		chain, err := icons.Registry().Chain(args[0])
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(err.Error()))
		}
		for i, name := range chain {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
		}
		return nil
	},
}
