package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs map[string]ErrorDetail

	// ErrorDetail is a client facing error: a stable code plus a message.
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.ErrorMessage)
}

func (e ErrorDetail) Unwrap() error {
	return e.ErrorMessage
}

// Is matches another ErrorDetail by code only.
func (e ErrorDetail) Is(target error) bool {
	t, ok := target.(ErrorDetail)
	return ok && t.Code != "" && t.Code == e.Code
}

// GetErrMap returns the mapped detail for key. The first arg, if any, is
// appended to the message.
func GetErrMap(key string, args ...string) ErrorDetail {
	v, ok := MapErrors[key]
	if !ok {
		return ErrorDetail{
			Code:         key,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 && args[0] != "" {
		v.ErrorMessage = fmt.Errorf("%w: %s", v.ErrorMessage, args[0])
	}

	return v
}

// HasErrKey reports whether err carries the detail mapped under key.
func HasErrKey(err error, key string) bool {
	mapped, ok := MapErrors[key]
	return ok && errors.Is(err, mapped)
}
