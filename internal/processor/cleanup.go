package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed media file out of the watch folder so
// it is not picked up again.
func (p *implProcessor) moveToArchived(ctx context.Context, mediaPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(mediaPath))
	p.logger.Info(ctx, "Archiving: %s -> %s", mediaPath, destPath)

	if err := os.Rename(mediaPath, destPath); err != nil {
		// Rename fails across filesystems; fall back to copy + remove.
		if copyErr := copyFile(mediaPath, destPath); copyErr != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
		if err := os.Remove(mediaPath); err != nil {
			p.logger.Warn(ctx, "Failed to remove source after copy: %v", err)
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
