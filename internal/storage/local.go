package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local writes objects under a directory that the HTTP server exposes at
// publicPrefix.
type Local struct {
	dir          string
	publicPrefix string
}

func NewLocal(dir, publicPrefix string) *Local {
	return &Local{dir: dir, publicPrefix: publicPrefix}
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Put(ctx context.Context, name, _ string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(l.dir, productsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	file := objectName(name)

	f, err := os.Create(filepath.Join(dir, file))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing upload file: %w", err)
	}

	return publicRef(l.publicPrefix, file), nil
}
