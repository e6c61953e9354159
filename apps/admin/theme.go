package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trezcool/synapse/core/preference"
)

const toggleArg = "toggle"

func (cli *commandLine) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(preference.ThemeDark), string(preference.ThemeLight), toggleArg},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := cli.prefs.Theme()
			if len(args) > 0 {
				var err error
				if args[0] == toggleArg {
					theme, err = cli.prefs.ToggleTheme()
				} else {
					theme = preference.Theme(args[0])
					err = cli.prefs.SetTheme(theme)
				}
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	}
}
