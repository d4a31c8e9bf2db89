package utils

import (
	"net/http"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("1712345678901", "Invalid video ID")
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(1712345678901), id)

	for _, raw := range []string{"", "abc", "0", "-3", "12abc", "64b7f0c2e4b0a1a2b3c4d5e6", "99999999999999999999"} {
		_, err := ParseID(raw, "Invalid video ID")
		e := errno.ConvertErr(err)
		assert.DeepEqual(t, http.StatusBadRequest, e.StatusCode)
		assert.DeepEqual(t, "Invalid video ID", e.ErrMsg)
	}
}

func TestParseOptionalID(t *testing.T) {
	_, ok, err := ParseOptionalID("", "Invalid user ID")
	assert.Nil(t, err)
	assert.False(t, ok)

	id, ok, err := ParseOptionalID("42", "Invalid user ID")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.DeepEqual(t, int64(42), id)

	_, _, err = ParseOptionalID("nope", "Invalid user ID")
	assert.NotNil(t, err)
}

func TestTransfer(t *testing.T) {
	assert.DeepEqual(t, int64(5), Transfer("5"))
	assert.DeepEqual(t, int64(5), Transfer(float64(5)))
	assert.DeepEqual(t, int64(-1), Transfer("x"))
	assert.DeepEqual(t, int64(-1), Transfer(nil))
}

func TestNextIDUnique(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := NextID()
		assert.True(t, id > 0)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestParseProbeDuration(t *testing.T) {
	d, err := ParseProbeDuration(`{"streams":[],"format":{"filename":"a.mp4","duration":"12.480000"}}`)
	assert.Nil(t, err)
	assert.DeepEqual(t, 12.48, d)

	_, err = ParseProbeDuration(`{"format":{}}`)
	assert.NotNil(t, err)
	_, err = ParseProbeDuration(`not json`)
	assert.NotNil(t, err)
}
