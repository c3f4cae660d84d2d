package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enhancedfx/efx/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐─┐ ┬
  ├┤ ├┤ ┌┴┬┘
  └─┘└  ┴ └─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "efx",
		Short: "Reactive Material controls for Go",
		Long: `efx is a reactive control library with Material styling.

It ships observable properties with invalidation and change
listeners, fluent Material controls built on them, a theme
generator, and a browser playground:

  • Observable properties, bindings, and computed values
  • Text fields, text areas, buttons, and navigation bars
  • Pseudo-class driven Material styling
  • Live playground over WebSocket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		themeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var structured *errors.Error
		if stderrors.As(err, &structured) {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", structured.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the efx ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
