// Package storage implements the product image store on a blob bucket.
// The bucket URL decides the backend: gs:// in production, file:// for
// local development.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type imageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// disabledImageStore rejects uploads when no bucket is configured.
type disabledImageStore struct{}

func (disabledImageStore) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", errors.New("image storage is not configured")
}

// StoreParams holds dependencies for the ImageStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured blob bucket and registers its shutdown
// with the application lifecycle. Without a storage section the admin image
// upload is disabled but the rest of the system runs normally.
func NewImageStore(params StoreParams) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("image storage not configured, uploads disabled")

		return disabledImageStore{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("image storage initialized", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &imageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes the image under the given key and returns its public URL.
func (s *imageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize %s", key)
	}

	s.logger.Info("image uploaded", slog.String("key", key))

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}
