package errno

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrNo is an error that knows the HTTP status it should be reported with.
type ErrNo struct {
	StatusCode int
	ErrMsg     string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("status_code=%d, err_msg=%s", e.StatusCode, e.ErrMsg)
}

func NewErrNo(code int, msg string) ErrNo {
	return ErrNo{StatusCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success            = NewErrNo(http.StatusOK, "Success")
	ParamErr           = NewErrNo(http.StatusBadRequest, "Wrong Parameter has been given")
	AuthErr            = NewErrNo(http.StatusUnauthorized, "Unauthorized request")
	ForbiddenErr       = NewErrNo(http.StatusForbidden, "You are not allowed to perform this action")
	NotFoundErr        = NewErrNo(http.StatusNotFound, "Resource not found")
	TooManyRequestsErr = NewErrNo(http.StatusTooManyRequests, "Too many requests, please try again later")
	ServiceErr         = NewErrNo(http.StatusInternalServerError, "Something went wrong")
	UnavailableErr     = NewErrNo(http.StatusServiceUnavailable, "Service unavailable")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}

// IsInternal reports whether err would surface as a 5xx.
func IsInternal(err error) bool {
	return ConvertErr(err).StatusCode >= http.StatusInternalServerError
}
