// Package blob stores asset photos in a gocloud.dev bucket.
package blob

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"locus/config"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StoreParams holds dependencies for the BlobStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the bucket named by blob.url and closes it on shutdown.
func NewBlobStore(params StoreParams) (service.BlobStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Blob.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Blob.URL)
	}

	params.Logger.Info("Blob bucket opened", slog.String("url", params.Config.Blob.URL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newBlobStore(bucket, params.Config.Blob, params.Logger), nil
}

func newBlobStore(bucket *blob.Bucket, cfg config.BlobConfig, logger *slog.Logger) *blobStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload decodes base64Data, which may be a data URL, and writes it to path.
func (s *blobStore) Upload(ctx context.Context, path, base64Data string) (string, error) {
	data, contentType, err := decodeImage(base64Data)
	if err != nil {
		return "", err
	}

	if err := s.bucket.WriteAll(ctx, path, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	s.logger.Debug("Image uploaded",
		slog.String("path", path),
		slog.Int("size", len(data)),
		slog.String("content_type", contentType),
	)

	return s.publicBaseURL + "/" + path, nil
}

// Open returns a reader for path, or ErrImageNotFound.
func (s *blobStore) Open(ctx context.Context, path string) (*service.BlobObject, error) {
	reader, err := s.bucket.NewReader(ctx, path, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(domainerrors.ErrImageNotFound)
		}

		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	return &service.BlobObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// DeletePrefix removes every object under prefix except keep. Objects that
// vanish while listing are not an error.
func (s *blobStore) DeletePrefix(ctx context.Context, prefix, keep string) (int, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	deleted := 0
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return deleted, errors.Wrapf(err, "failed to list %s", prefix)
		}
		if obj.IsDir || obj.Key == keep {
			continue
		}

		if err := s.bucket.Delete(ctx, obj.Key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return deleted, errors.Wrapf(err, "failed to delete %s", obj.Key)
		}
		deleted++

		s.logger.Debug("Image deleted", slog.String("path", obj.Key))
	}

	return deleted, nil
}

// decodeImage accepts raw base64 or a data URL such as
// "data:image/jpeg;base64,...". The content type comes from the data URL
// when present and is sniffed otherwise.
func decodeImage(encoded string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)

	var contentType string
	if rest, ok := strings.CutPrefix(encoded, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, "", errors.Wrap(domainerrors.ErrInvalidImage, "malformed data URL")
		}
		contentType = strings.TrimSuffix(header, ";base64")
		encoded = payload
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil || len(data) == 0 {
		return nil, "", errors.Wrap(domainerrors.ErrInvalidImage, "image is not valid base64")
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return data, contentType, nil
}
