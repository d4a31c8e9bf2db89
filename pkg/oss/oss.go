package oss

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"VidTube.com/pkg/constants"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Kind selects the bucket and key prefix of an upload.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

func (k Kind) Bucket() string {
	if k == KindVideo {
		return constants.VideoBucket
	}
	return constants.PictureBucket
}

// Object is a stored remote object.
type Object struct {
	Bucket string
	Key    string
	URL    string
}

// MediaStore keeps uploaded media. Remove of a missing object succeeds.
type MediaStore interface {
	Upload(ctx context.Context, kind Kind, localPath, contentType string) (*Object, error)
	Remove(ctx context.Context, bucket, key string) error
}

// ObjectKey is <kind>/<uuid><ext>, ext taken from the local file name.
func ObjectKey(kind Kind, localPath string) string {
	return string(kind) + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
}

type MinioStore struct {
	client     *minio.Client
	publicBase string
	region     string

	mu      sync.Mutex
	buckets map[string]bool
}

func NewMinioStore(client *minio.Client, publicBase, region string) *MinioStore {
	return &MinioStore{
		client:     client,
		publicBase: publicBase,
		region:     region,
		buckets:    make(map[string]bool),
	}
}

// 检查存储桶是否存在，不存在则创建
func (s *MinioStore) ensureBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucket] {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.Wrapf(err, "check bucket %s", bucket)
	}
	if !exists {
		if err = s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return errors.Wrapf(err, "create bucket %s", bucket)
		}
	}
	s.buckets[bucket] = true
	return nil
}

func (s *MinioStore) Upload(ctx context.Context, kind Kind, localPath, contentType string) (*Object, error) {
	bucket := kind.Bucket()
	if err := s.ensureBucket(ctx, bucket); err != nil {
		return nil, err
	}
	key := ObjectKey(kind, localPath)
	if _, err := s.client.FPutObject(ctx, bucket, key, localPath, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrapf(err, "upload %s to %s", localPath, bucket)
	}
	return &Object{Bucket: bucket, Key: key, URL: s.URL(bucket, key)}, nil
}

func (s *MinioStore) Remove(ctx context.Context, bucket, key string) error {
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "remove %s/%s", bucket, key)
	}
	return nil
}

func (s *MinioStore) URL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBase, bucket, key)
}

// Ping checks that the object store answers.
func (s *MinioStore) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, constants.VideoBucket)
	return err
}
