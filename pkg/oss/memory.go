package oss

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore keeps objects in process. It backs local runs without MinIO and
// the tests; FailUploads/FailRemoves inject store outages.
type MemoryStore struct {
	mu          sync.Mutex
	objects     map[string]string
	FailUploads bool
	FailRemoves bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]string)}
}

func (m *MemoryStore) Upload(ctx context.Context, kind Kind, localPath, contentType string) (*Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailUploads {
		return nil, errors.New("memory store: upload failed")
	}
	obj := &Object{Bucket: kind.Bucket(), Key: ObjectKey(kind, localPath)}
	obj.URL = "memory://" + obj.Bucket + "/" + obj.Key
	m.objects[obj.Bucket+"/"+obj.Key] = contentType
	return obj, nil
}

func (m *MemoryStore) Remove(ctx context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRemoves {
		return errors.New("memory store: remove failed")
	}
	delete(m.objects, bucket+"/"+key)
	return nil
}

// Put stores an object directly, for seeding.
func (m *MemoryStore) Put(bucket, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+key] = ""
}

func (m *MemoryStore) Has(bucket, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[bucket+"/"+key]
	return ok
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

func (m *MemoryStore) SetFailRemoves(fail bool) {
	m.mu.Lock()
	m.FailRemoves = fail
	m.mu.Unlock()
}
