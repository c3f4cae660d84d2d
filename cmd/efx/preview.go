package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/enhancedfx/efx/internal/config"
	"github.com/enhancedfx/efx/pkg/control"
	"github.com/enhancedfx/efx/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the control playground",
		Long: `Start the browser playground with a demo set of controls.

The playground serves the Material theme, mirrors every property
and state change to the browser over WebSocket, and applies
browser interactions back to the controls.

Examples:
  efx preview
  efx preview --addr=:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Preview.Addr
			}
			if !cmd.Flags().Changed("verbose") {
				verbose = cfg.Preview.Verbose
			}
			return runPreview(addr, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", config.DefaultAddr, "Address to listen on (default from efx.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}

func runPreview(addr string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	s := preview.New(
		preview.WithAddr(addr),
		preview.WithLogger(logger),
	)

	email := control.NewTextField("email").
		WithTitle("Email").
		WithPrompt("you@example.com").
		WithSupporting("We never share it")
	tweet := control.NewTextArea("tweet").
		WithTitle("What is happening?").
		WithMaxLength(140)
	send := control.NewButton("send", "Send").
		OnAction(func() { logger.Info("send clicked", "text", tweet.Text().Get()) })
	nav := control.NewNavBar("nav").
		AddItem("home", "Home").
		AddItem("search", "Search").
		AddItem("profile", "Profile")

	s.RegisterTextField(email).
		RegisterTextArea(tweet).
		RegisterButton(send).
		RegisterNavBar(nav)

	printBanner()
	success("Playground ready")
	info("http://localhost%s", addr)
	info("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
