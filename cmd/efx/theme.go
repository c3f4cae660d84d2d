package main

import (
	"github.com/spf13/cobra"

	"github.com/enhancedfx/efx/internal/config"
	"github.com/enhancedfx/efx/internal/errors"
	"github.com/enhancedfx/efx/pkg/theme"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Work with generated stylesheets",
	}
	cmd.AddCommand(themeGenCmd())
	return cmd
}

func themeGenCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the Material stylesheet",
		Long: `Render the built-in Material theme to CSS and write it to disk.

Examples:
  efx theme gen
  efx theme gen --out=assets/css`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				out = cfg.Theme.Dir
			}
			store, err := theme.NewDiskStore(out)
			if err != nil {
				return errors.Wrap(err, "E200", errors.CategoryTheme, "cannot create output directory "+out)
			}
			location, err := theme.Publish(theme.Material(), store)
			if err != nil {
				return errors.Wrap(err, "E201", errors.CategoryTheme, "cannot write stylesheet")
			}
			success("Wrote %s", location)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", config.DefaultThemeDir, "Output directory (default from efx.json)")

	return cmd
}
