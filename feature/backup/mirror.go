package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"ornasync/core/storage"
)

// Mirror pushes local backup archives to object storage and pulls
// missing ones back, so the archive history survives the machine the
// fetches run on.
type Mirror struct {
	client storage.Client
	bucket string
	log    *zap.Logger
}

// NewMirror creates a Mirror against the given bucket.
func NewMirror(client storage.Client, bucket string, log *zap.Logger) *Mirror {
	return &Mirror{client: client, bucket: bucket, log: log}
}

// Push uploads every archive in dir that the bucket does not hold yet.
// Returns the names uploaded.
func (m *Mirror) Push(ctx context.Context, dir string) ([]string, error) {
	remote, err := m.remoteNames(ctx)
	if err != nil {
		return nil, err
	}
	paths, err := ListArchives(dir)
	if err != nil {
		return nil, err
	}
	var pushed []string
	for _, path := range paths {
		name := filepath.Base(path)
		if _, ok := remote[name]; ok {
			continue
		}
		if err := m.upload(ctx, path, name); err != nil {
			return pushed, err
		}
		m.log.Info("mirrored archive", zap.String("name", name))
		pushed = append(pushed, name)
	}
	return pushed, nil
}

// Pull downloads every remote archive missing from dir. Returns the
// names downloaded.
func (m *Mirror) Pull(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}
	remote, err := m.remoteNames(ctx)
	if err != nil {
		return nil, err
	}
	var pulled []string
	for name := range remote {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := m.download(ctx, name, path); err != nil {
			return pulled, err
		}
		m.log.Info("fetched archive", zap.String("name", name))
		pulled = append(pulled, name)
	}
	return pulled, nil
}

func (m *Mirror) remoteNames(ctx context.Context) (map[string]struct{}, error) {
	names := map[string]struct{}{}
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", m.bucket, object.Err)
		}
		names[object.Key] = struct{}{}
	}
	return names, nil
}

func (m *Mirror) upload(ctx context.Context, path, name string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat archive %s: %w", path, err)
	}
	_, err = m.client.PutObject(ctx, m.bucket, name, file, info.Size(),
		minio.PutObjectOptions{ContentType: "application/gzip"})
	if err != nil {
		return fmt.Errorf("failed to upload archive %s: %w", name, err)
	}
	return nil
}

func (m *Mirror) download(ctx context.Context, name, path string) error {
	object, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to download archive %s: %w", name, err)
	}
	defer object.Close()
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", path, err)
	}
	if _, err := io.Copy(file, object); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write archive %s: %w", path, err)
	}
	return file.Close()
}
