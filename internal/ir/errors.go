package ir

import (
	"errors"
	"fmt"
)

// DecodeError is a structural decode failure: a required key is missing, a
// value has the wrong shape, or a by-name reference does not resolve.
type DecodeError struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode: " + e.Message
	}
	return fmt.Sprintf("decode %s: %s", e.Path, e.Message)
}

// EnumError reports a scalar outside a closed set, such as an unknown
// operation type or selection kind.
type EnumError struct {
	Path  string `json:"path,omitempty"`
	Enum  string `json:"enum"`
	Value string `json:"value"`
}

func (e *EnumError) Error() string {
	msg := fmt.Sprintf("unknown GraphQL %s %q", e.Enum, e.Value)
	if e.Path == "" {
		return msg
	}
	return msg + " at " + e.Path
}

// ErrUnimplemented marks a feature that is recognized but has no
// implementation.
var ErrUnimplemented = errors.New("not implemented")

func decodeErrorf(path, format string, args ...any) *DecodeError {
	return &DecodeError{Path: path, Message: fmt.Sprintf(format, args...)}
}
