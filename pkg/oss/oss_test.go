package oss

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/test/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey(KindVideo, "/tmp/upload-123/My Clip.MP4")
	assert.True(t, strings.HasPrefix(key, "video/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
	assert.False(t, strings.Contains(key, "My Clip"))
	assert.True(t, ObjectKey(KindImage, "a.png") != ObjectKey(KindImage, "a.png"))
}

func TestKindBucket(t *testing.T) {
	assert.DeepEqual(t, "video", KindVideo.Bucket())
	assert.DeepEqual(t, "picture", KindImage.Bucket())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	obj, err := m.Upload(ctx, KindImage, "thumb.png", "image/png")
	assert.Nil(t, err)
	assert.DeepEqual(t, "picture", obj.Bucket)
	assert.True(t, m.Has(obj.Bucket, obj.Key))

	m.SetFailRemoves(true)
	assert.NotNil(t, m.Remove(ctx, obj.Bucket, obj.Key))
	assert.True(t, m.Has(obj.Bucket, obj.Key))

	m.SetFailRemoves(false)
	assert.Nil(t, m.Remove(ctx, obj.Bucket, obj.Key))
	assert.False(t, m.Has(obj.Bucket, obj.Key))
	// removing twice is fine
	assert.Nil(t, m.Remove(ctx, obj.Bucket, obj.Key))
}
