package response

import (
	"context"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Response is the only body shape the API answers with. Data is omitted on
// failures.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// SendResponse writes a success envelope with the given status.
func SendResponse(c *app.RequestContext, status int, message string, data interface{}) {
	c.JSON(status, Response{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

// SendError writes a failure envelope. Errors that are not an errno.ErrNo are
// logged and reported as a generic 500.
func SendError(ctx context.Context, c *app.RequestContext, err error) {
	Err := errno.ConvertErr(err)
	if errno.IsInternal(err) {
		hlog.CtxErrorf(ctx, "%s %s failed: %+v", c.Method(), c.Path(), err)
	}
	c.JSON(Err.StatusCode, Response{
		StatusCode: Err.StatusCode,
		Success:    false,
		Message:    Err.ErrMsg,
	})
}

// Abort writes a failure envelope and stops the handler chain.
func Abort(ctx context.Context, c *app.RequestContext, err error) {
	SendError(ctx, c, err)
	c.Abort()
}
