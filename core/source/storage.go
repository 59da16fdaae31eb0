package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"pokemasdb/core/storage"

	"github.com/minio/minio-go/v7"
)

const indexObject = "index.json"

// StorageSource reads records mirrored into an object storage bucket.
// Records live at <prefix><trainer>.json and the listing at <prefix>index.json.
// Without a listing, the bucket is listed instead.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorage creates a storage-backed source.
func NewStorage(client storage.Client, bucket, prefix string) *StorageSource {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

func (s *StorageSource) Name() string {
	return "storage"
}

func (s *StorageSource) objectName(trainer string) string {
	return s.prefix + trainer + ".json"
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

func (s *StorageSource) read(ctx context.Context, object string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// TrainerNames reads the listing object, falling back to listing the prefix.
func (s *StorageSource) TrainerNames(ctx context.Context) ([]string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check bucket %s: %v", ErrUnavailable, s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %s does not exist", ErrUnavailable, s.bucket)
	}

	data, err := s.read(ctx, s.prefix+indexObject)
	switch {
	case err == nil:
		return parseListing(data)
	case isNoSuchKey(err):
		return s.listNames(ctx)
	default:
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrUnavailable, s.prefix+indexObject, err)
	}
}

func (s *StorageSource) listNames(ctx context.Context) ([]string, error) {
	names := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix, Recursive: false}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("%w: failed to list %s: %v", ErrUnavailable, s.prefix, obj.Err)
		}
		base := path.Base(obj.Key)
		if base == indexObject || !strings.HasSuffix(base, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(base, ".json"))
	}
	return names, nil
}

// Trainer reads one record object.
func (s *StorageSource) Trainer(ctx context.Context, name string) ([]byte, error) {
	object := s.objectName(name)
	data, err := s.read(ctx, object)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, &LookupError{Trainer: name, Status: http.StatusNotFound, Location: s.bucket + "/" + object}
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrUnavailable, object, err)
	}
	return data, nil
}

// SaveTrainers uploads every record and then the listing, creating the
// bucket when needed.
func (s *StorageSource) SaveTrainers(ctx context.Context, records []Record) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
		if err := s.put(ctx, s.objectName(r.Name), r.Payload); err != nil {
			return err
		}
	}

	index, err := encodeListing(names)
	if err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}
	if err := s.put(ctx, s.prefix+indexObject, index); err != nil {
		return err
	}
	return s.prune(ctx, names)
}

// prune removes record objects under the prefix that are not in names.
func (s *StorageSource) prune(ctx context.Context, names []string) error {
	keep := make(map[string]struct{}, len(names)+1)
	keep[s.prefix+indexObject] = struct{}{}
	for _, n := range names {
		keep[s.objectName(n)] = struct{}{}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var listErr error
	stale := make(chan minio.ObjectInfo)
	listed := make(chan struct{})
	go func() {
		defer close(listed)
		defer close(stale)
		for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.prefix}) {
			if obj.Err != nil {
				listErr = obj.Err
				return
			}
			if _, ok := keep[obj.Key]; ok || !strings.HasSuffix(obj.Key, ".json") {
				continue
			}
			select {
			case stale <- obj:
			case <-ctx.Done():
				return
			}
		}
	}()

	var removeErr error
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, stale, minio.RemoveObjectsOptions{}) {
		if removeErr == nil {
			removeErr = fmt.Errorf("failed to remove stale record %s: %w", rerr.ObjectName, rerr.Err)
		}
	}
	cancel()
	<-listed

	if removeErr != nil {
		return removeErr
	}
	if listErr != nil {
		return fmt.Errorf("failed to list stale records: %w", listErr)
	}
	return nil
}

func (s *StorageSource) put(ctx context.Context, object string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return nil
}
