package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hoopqueens/boxscore/internal/platform/logging"
)

// Manager takes whole-file copies of a file-backed store before every
// mutating operation. Snapshots are never pruned automatically; they are
// a manual recovery path, not a managed backup system.
type Manager struct {
	dir       string
	storePath string
	logger    *logging.Logger
	now       func() time.Time
}

func NewManager(dir, storePath string, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{
		dir:       strings.TrimSpace(dir),
		storePath: strings.TrimSpace(storePath),
		logger:    logger,
		now:       time.Now,
	}
}

// Take copies the store file into the snapshot dir, named
// <store-name>_<timestamp><ext>. Returns the snapshot path, or an empty
// path when the store is not file-backed or does not exist yet.
func (m *Manager) Take(ctx context.Context) (string, error) {
	if m.storePath == "" {
		return "", nil
	}
	if _, err := os.Stat(m.storePath); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat store file: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	base := filepath.Base(m.storePath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	stamp := m.now().Format("2006-01-02_15-04-05")
	target := filepath.Join(m.dir, fmt.Sprintf("%s_%s%s", name, stamp, ext))

	if err := copyFile(m.storePath, target); err != nil {
		return "", fmt.Errorf("copy store to snapshot: %w", err)
	}

	m.logger.InfoContext(ctx, "store snapshot created", "path", target)
	return target, nil
}

// Stats reports how many snapshots have accumulated and their total size,
// for the startup report. Retention is left to operators.
func (m *Manager) Stats() (count int, totalBytes int64) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return 0, 0
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		count++
		totalBytes += info.Size()
	}
	return count, totalBytes
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// StorePathFromDSN resolves the on-disk file behind a sqlite DSN.
// Returns an empty string for in-memory or non-file stores, which
// disables snapshotting.
func StorePathFromDSN(dsn string) string {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" || trimmed == ":memory:" {
		return ""
	}

	if strings.HasPrefix(trimmed, "file:") {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			trimmed = strings.TrimPrefix(trimmed, "file:")
		} else {
			trimmed = parsed.Opaque
			if trimmed == "" {
				trimmed = parsed.Path
			}
			if parsed.Query().Get("mode") == "memory" {
				return ""
			}
		}
	}

	if idx := strings.IndexByte(trimmed, '?'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if trimmed == "" || trimmed == ":memory:" {
		return ""
	}

	return trimmed
}
