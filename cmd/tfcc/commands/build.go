package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	webhandler "github.com/tfccofficial/tfcc/internal/adapter/driving/web"
)

func buildCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the static bundle served in production",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = cfg.BuildDir
			}

			db, web, err := openSite(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := webhandler.ExportSite(cmd.Context(), web, outDir); err != nil {
				return err
			}

			slog.Info("site bundle written", "dir", outDir)
			fmt.Fprintln(cmd.OutOrStdout(), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default $TFCC_BUILD_DIR)")
	return cmd
}
