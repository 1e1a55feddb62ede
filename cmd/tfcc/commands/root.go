// Package commands holds the tfcc command-line interface.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tfccofficial/tfcc/internal/config"
)

var cfg *config.Config

// Execute runs the root command. With no subcommand it serves the site.
func Execute() error {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("fatal error", "error", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	serve := serveCmd()

	root := &cobra.Command{
		Use:           "tfcc",
		Short:         "TFCC promotional site server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: serve.RunE,
	}

	root.AddCommand(serve, buildCmd())
	return root
}
