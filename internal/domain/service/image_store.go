package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for the product image bucket.
type ImageStore interface {
	// Upload writes the image under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
