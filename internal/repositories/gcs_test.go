package repositories

import (
	"context"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/sellerdesk/go-fin-ledger/internal/config"
)

type gcsHelper struct {
	server        *fakestorage.Server
	client        *storage.Client
	defaultConfig *config.CloudStorageConfig
}

func newGcsClientHelper(t *testing.T) *gcsHelper {
	t.Helper()

	server, err := fakestorage.NewServerWithOptions(fakestorage.Options{
		NoListener: true,
	})
	require.NoError(t, err)
	t.Cleanup(server.Stop)

	client, err := storage.NewClient(
		context.Background(),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.HTTPClient()))
	require.NoError(t, err)

	cfg := &config.CloudStorageConfig{
		BaseURL:    "http://test:1337",
		BucketName: "ofx-archive",
	}
	server.CreateBucketWithOpts(fakestorage.CreateBucketOpts{Name: cfg.BucketName})

	return &gcsHelper{
		server:        server,
		client:        client,
		defaultConfig: cfg,
	}
}

func (h *gcsHelper) repo() *cloudStorageClient {
	return &cloudStorageClient{config: h.defaultConfig, client: h.client}
}

func TestNewStatementArchiveRepository(t *testing.T) {
	helper := newGcsClientHelper(t)

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name: "success init cloud storage",
			cfg: &config.Config{
				CloudStorageConfig: *helper.defaultConfig,
			},
		},
		{
			name: "failed init cloud storage (bucket name not set)",
			cfg: &config.Config{
				CloudStorageConfig: config.CloudStorageConfig{BaseURL: "http://test:1337"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewStatementArchiveRepository(tt.cfg,
				option.WithoutAuthentication(),
				option.WithHTTPClient(helper.server.HTTPClient()))
			assert.Equal(t, tt.wantErr, err != nil)
			if err == nil {
				assert.NoError(t, repo.Close())
			}
		})
	}
}

func Test_cloudStorageClient_GetURL(t *testing.T) {
	cs := &cloudStorageClient{config: &config.CloudStorageConfig{
		BaseURL:    "https://storage.googleapis.com/",
		BucketName: "ofx-archive",
	}}

	assert.Equal(t,
		"https://storage.googleapis.com/ofx-archive/ofx-imports/t1/2024/01/abc.ofx",
		cs.GetURL("ofx-imports/t1/2024/01/abc.ofx"))
}

func Test_cloudStorageClient_UploadAndDownload(t *testing.T) {
	helper := newGcsClientHelper(t)
	cs := helper.repo()
	ctx := context.TODO()

	path := "ofx-imports/tenant-a/2024/01/abc.ofx"
	content := []byte("<OFX><STMTTRN><FITID>1</STMTTRN></OFX>")

	exist, err := cs.IsObjectExist(ctx, path)
	assert.NoError(t, err)
	assert.False(t, exist)

	url, err := cs.Upload(ctx, path, content)
	assert.NoError(t, err)
	assert.Equal(t, "http://test:1337/ofx-archive/"+path, url)

	exist, err = cs.IsObjectExist(ctx, path)
	assert.NoError(t, err)
	assert.True(t, exist)

	got, err := cs.Download(ctx, path)
	assert.NoError(t, err)
	assert.Equal(t, content, got)

	// re-archiving the same file is not an error
	_, err = cs.Upload(ctx, path, content)
	assert.NoError(t, err)
}

func Test_cloudStorageClient_Download_NotFound(t *testing.T) {
	helper := newGcsClientHelper(t)

	_, err := helper.repo().Download(context.TODO(), "missing.ofx")
	assert.Error(t, err)
}

func Test_cloudStorageClient_Upload_MissingBucket(t *testing.T) {
	helper := newGcsClientHelper(t)
	cs := &cloudStorageClient{
		config: &config.CloudStorageConfig{BaseURL: "http://test:1337", BucketName: "no-such-bucket"},
		client: helper.client,
	}

	_, err := cs.Upload(context.TODO(), "a.ofx", []byte("x"))
	assert.Error(t, err)
}
