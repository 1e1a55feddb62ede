package web

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ExportSite renders the home page to outDir/index.html and copies the
// embedded static assets to outDir/static, producing the bundle served in
// production mode. Existing files are overwritten.
func ExportSite(ctx context.Context, h *Handler, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var page bytes.Buffer
	if err := h.RenderHome(ctx, &page); err != nil {
		return fmt.Errorf("render home page: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outDir, "index.html"), page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	err := fs.WalkDir(StaticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(outDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(StaticFS, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	if err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	return nil
}
