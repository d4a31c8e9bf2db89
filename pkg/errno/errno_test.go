package errno

import (
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	assert.DeepEqual(t, Success, ConvertErr(nil))

	wrapped := errors.Wrap(NotFoundErr.WithMessage("Video not found"), "load video")
	got := ConvertErr(wrapped)
	assert.DeepEqual(t, http.StatusNotFound, got.StatusCode)
	assert.DeepEqual(t, "Video not found", got.ErrMsg)

	got = ConvertErr(errors.New("dial tcp: connection refused"))
	assert.DeepEqual(t, ServiceErr, got)
	assert.True(t, IsInternal(errors.New("boom")))
	assert.False(t, IsInternal(ParamErr))
}

func TestWithMessageKeepsStatus(t *testing.T) {
	e := ForbiddenErr.WithMessage("You are not allowed to update this comment")
	assert.DeepEqual(t, http.StatusForbidden, e.StatusCode)
	// the shared value is untouched
	assert.DeepEqual(t, "You are not allowed to perform this action", ForbiddenErr.ErrMsg)
}
