package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// copyAssets mirrors the static assets directory into the output directory.
// A missing assets directory is fine; the site simply ships without extra
// static files.
func (s *Service) copyAssets(ctx context.Context) (int, error) {
	src := s.cfg.AssetsDir
	if src == "" {
		return 0, nil
	}
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("assets dir missing, skipping copy", "dir", src)
			return 0, nil
		}
		return 0, fmt.Errorf("generator: stat assets dir %s: %w", src, err)
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("generator: asset path %s: %w", path, err)
		}
		target := filepath.Join(s.cfg.OutputDir, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("generator: copy assets: %w", err)
	}

	s.logger.Debug("assets copied", "count", copied)
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("generator: open asset %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("generator: ensure asset dir %s: %w", filepath.Dir(dst), err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("generator: create asset %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("generator: copy asset %s: %w", dst, err)
	}
	return out.Close()
}
