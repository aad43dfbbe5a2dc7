package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/sellerdesk/go-fin-ledger/internal/config"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

const ofxContentType = "application/x-ofx"

// StatementArchiveRepository keeps a copy of every imported statement file.
type StatementArchiveRepository interface {
	// Upload writes content to objectPath and returns the object URL. An
	// object already stored at objectPath is left untouched.
	Upload(ctx context.Context, objectPath string, content []byte) (url string, err error)
	Download(ctx context.Context, objectPath string) (content []byte, err error)
	IsObjectExist(ctx context.Context, objectPath string) (isExist bool, err error)
	GetURL(objectPath string) string
	Close() error
}

type cloudStorageClient struct {
	config *config.CloudStorageConfig
	client *storage.Client
}

func NewStatementArchiveRepository(cfg *config.Config, opts ...option.ClientOption) (StatementArchiveRepository, error) {
	if cfg.CloudStorageConfig.BucketName == "" {
		return nil, fmt.Errorf("failed to init cloud storage bucket name not set")
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return &cloudStorageClient{client: client, config: &cfg.CloudStorageConfig}, nil
}

func (cs *cloudStorageClient) GetURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(cs.config.BaseURL, "/"), cs.config.BucketName, objectPath)
}

func (cs *cloudStorageClient) Upload(ctx context.Context, objectPath string, content []byte) (url string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	obj := cs.client.Bucket(cs.config.BucketName).Object(objectPath).
		If(storage.Conditions{DoesNotExist: true})

	writer := obj.NewWriter(ctx)
	writer.ContentType = ofxContentType

	if _, err = writer.Write(content); err != nil {
		_ = writer.Close()
		return "", err
	}

	if err = writer.Close(); err != nil {
		if isPreconditionFailed(err) {
			// same content hash, already archived
			return cs.GetURL(objectPath), nil
		}
		return "", err
	}

	return cs.GetURL(objectPath), nil
}

func (cs *cloudStorageClient) Download(ctx context.Context, objectPath string) (content []byte, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	rc, err := cs.client.Bucket(cs.config.BucketName).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object in bucket: %w", err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func (cs *cloudStorageClient) IsObjectExist(ctx context.Context, objectPath string) (bool, error) {
	_, err := cs.client.Bucket(cs.config.BucketName).Object(objectPath).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func isPreconditionFailed(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == 412
}

func (cs *cloudStorageClient) Close() error {
	return cs.client.Close()
}
