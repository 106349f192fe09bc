// Package storage persists uploaded product images and returns the public
// path they are served from.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const productsDir = "products"

// ObjectStore writes an object and returns the reference clients use to fetch it.
type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}

// objectName keeps the original extension and replaces the rest with a random id.
func objectName(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}

func publicRef(prefix, file string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + productsDir + "/" + file
}
