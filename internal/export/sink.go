package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives the finished PNG. It returns where the image ended up.
type Sink interface {
	Deliver(ctx context.Context, name string, data []byte) (string, error)
}

// DirSink writes images into a directory, replacing any existing file of
// the same name.
type DirSink struct {
	Dir string
}

// Deliver writes data to Dir/name through a temporary file so a failed
// write never leaves a partial image behind.
func (s DirSink) Deliver(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("move image into place: %w", err)
	}
	return path, nil
}
