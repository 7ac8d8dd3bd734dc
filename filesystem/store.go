// Package filesystem saves fetched lump values to local files.
// Writes are atomic: data goes to a temp file in the destination directory,
// is synced, then renamed over the target. Every path is resolved inside an
// os.Root so a name cannot escape the directory it was opened on.
package filesystem

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sagarc03/lumpctl"
)

// ErrInvalidPath is returned when a destination path names a directory or
// is empty.
var ErrInvalidPath = errors.New("invalid output path")

// SaveResult describes a completed write.
type SaveResult struct {
	Path         string `json:"path" yaml:"path"`
	BytesWritten int64  `json:"bytes_written" yaml:"bytes_written"`
	ContentID    string `json:"content_id" yaml:"content_id"`
}

// Store writes files below a single root directory.
type Store struct {
	root   *os.Root
	logger *slog.Logger
}

// NewStore creates a Store on an already opened root.
func NewStore(root *os.Root, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{root: root, logger: logger}
}

// Open opens dir as the root of a new Store. The caller must Close it.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open output directory: %w", err)
	}
	return NewStore(root, logger), nil
}

// Close releases the root directory handle.
func (s *Store) Close() error {
	return s.root.Close()
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

// Write atomically replaces name with the contents of r, creating
// intermediate directories as needed.
func (s *Store) Write(ctx context.Context, name string, r io.Reader) (SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return SaveResult{}, err
	}
	if name == "" || name == "." {
		return SaveResult{}, ErrInvalidPath
	}

	dir := filepath.Dir(name)
	if dir != "." {
		if err := s.root.MkdirAll(dir, 0o755); err != nil {
			return SaveResult{}, fmt.Errorf("could not create intermediate directories: %w", err)
		}
	}

	// The temp file lives next to the target so the rename stays on one
	// file system.
	tmp := filepath.Join(dir, tmpFileName())
	f, err := s.root.Create(tmp)
	if err != nil {
		return SaveResult{}, fmt.Errorf("could not open temp file: %w", err)
	}

	success := false
	defer func() {
		if closeErr := f.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
			s.logger.Warn("failed to close tmp file", "err", closeErr)
		}
		if !success {
			if rmErr := s.root.Remove(tmp); rmErr != nil {
				s.logger.Warn("failed to remove tmp file", "path", tmp, "err", rmErr)
			}
		}
	}()

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(h, f), &ctxReader{ctx: ctx, r: r})
	if err != nil {
		return SaveResult{}, fmt.Errorf("could not copy value: %w", err)
	}

	if err := f.Sync(); err != nil {
		return SaveResult{}, fmt.Errorf("could not sync written file: %w", err)
	}

	if info, statErr := s.root.Stat(name); statErr == nil && info.IsDir() {
		return SaveResult{}, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, name)
	}

	if err := s.root.Rename(tmp, name); err != nil {
		return SaveResult{}, fmt.Errorf("failed to rename file: %w", err)
	}
	success = true

	cid, err := lumpctl.ContentIDFromDigest(h.Sum(nil))
	if err != nil {
		return SaveResult{}, err
	}

	return SaveResult{Path: name, BytesWritten: n, ContentID: cid}, nil
}

// SaveFile writes r to path, opening the parent directory of path as the
// store root for the duration of the call. A path ending in a separator names
// a directory and is rejected.
func SaveFile(ctx context.Context, path string, r io.Reader, logger *slog.Logger) (SaveResult, error) {
	if path == "" {
		return SaveResult{}, ErrInvalidPath
	}
	if os.IsPathSeparator(path[len(path)-1]) {
		return SaveResult{}, fmt.Errorf("%w: %s names a directory", ErrInvalidPath, path)
	}
	if base := filepath.Base(path); base == "." || base == ".." {
		return SaveResult{}, fmt.Errorf("%w: %s names a directory", ErrInvalidPath, path)
	}

	s, err := Open(filepath.Dir(path), logger)
	if err != nil {
		return SaveResult{}, err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			s.logger.Warn("failed to close output directory", "err", closeErr)
		}
	}()

	res, err := s.Write(ctx, filepath.Base(path), r)
	if err != nil {
		return SaveResult{}, err
	}
	res.Path = path
	return res, nil
}

func tmpFileName() string {
	return fmt.Sprintf(".t%s", uuid.New().String())
}
