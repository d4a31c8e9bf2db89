package utils

import (
	"strconv"
	"strings"

	"VidTube.com/pkg/errno"
)

// ParseID validates an identifier taken from a path or query. Only positive
// base-10 integers are ids; anything else is a parameter error carrying msg.
func ParseID(raw, msg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessage(msg)
	}
	return id, nil
}

// ParseOptionalID is ParseID for optional parameters: empty means "not set".
func ParseOptionalID(raw, msg string) (int64, bool, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}
	id, err := ParseID(raw, msg)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// Transfer converts a JWT identity claim into a user id, -1 when it is not one.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}
