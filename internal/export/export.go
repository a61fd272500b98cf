// Package export writes the landing site out as static files that any web
// server can host.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"impractical.co/landing"
	"impractical.co/landing/internal/site"
)

// Build renders every page of s into outDir, as index.html and 404.html,
// and copies the static files next to them. outDir is created if it doesn't
// exist; files already in it are overwritten, others are left alone.
func Build(ctx context.Context, s *site.Site, static fs.FS, outDir string) error {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	home, err := s.Home(ctx)
	if err != nil {
		return fmt.Errorf("error building home page: %w", err)
	}
	if err := writePage(ctx, s, home, filepath.Join(outDir, "index.html")); err != nil {
		return err
	}
	if err := writePage(ctx, s, s.NotFound(ctx), filepath.Join(outDir, "404.html")); err != nil {
		return err
	}

	if err := copyDirContents(static, outDir); err != nil {
		return fmt.Errorf("error copying static files: %w", err)
	}
	landing.Logger(ctx).InfoContext(ctx, "exported site", "dir", outDir)
	return nil
}

func writePage[P landing.Page](ctx context.Context, s *site.Site, page P, path string) error {
	var buf bytes.Buffer
	if err := landing.Execute(ctx, &buf, s, page); err != nil {
		return fmt.Errorf("error rendering %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { // #nosec G306
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	landing.Logger(ctx).DebugContext(ctx, "wrote page", "path", path, "bytes", buf.Len())
	return nil
}

// copyDirContents copies every file in src into dst, keeping the directory
// structure.
func copyDirContents(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(src, path, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		return nil
	})
}

func copyFile(src fs.FS, srcFile, dstFile string) error {
	srcF, err := src.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		_ = dstF.Close()
		return fmt.Errorf("failed to copy content: %w", err)
	}
	return dstF.Close()
}
