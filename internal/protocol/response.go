package protocol

import (
	"errors"
	"strings"

	"github.com/labi-le/clipwire/pkg/clipboard"
	"github.com/labi-le/clipwire/pkg/ptr"
)

// Response is one line on the wire. Data is a pointer so a successful paste
// of empty text still serializes "data":"" while non-paste responses omit
// the field entirely.
type Response struct {
	Success bool        `json:"success"`
	Version string      `json:"version,omitempty"`
	Data    *string     `json:"data,omitempty"`
	Mime    string      `json:"mime,omitempty"`
	Message string      `json:"message,omitempty"`
	Source  *ErrorChain `json:"source,omitempty"`
}

// ErrorChain is the recursive cause chain of a failure, rooted at the most
// specific underlying error.
type ErrorChain struct {
	Message string      `json:"message"`
	Source  *ErrorChain `json:"source,omitempty"`
}

func Success() Response {
	return Response{Success: true}
}

func VersionResponse(version string) Response {
	return Response{Success: true, Version: version}
}

func PasteResponse(data clipboard.Data) Response {
	return Response{Success: true, Data: ptr.Of(data.Text), Mime: data.Mime}
}

func Failure(err error) Response {
	return Response{
		Success: false,
		Message: linkMessage(err),
		Source:  encodeChain(errors.Unwrap(err)),
	}
}

func encodeChain(err error) *ErrorChain {
	if err == nil {
		return nil
	}
	return &ErrorChain{
		Message: linkMessage(err),
		Source:  encodeChain(errors.Unwrap(err)),
	}
}

// linkMessage reports only this link's own message. Errors built with
// fmt.Errorf("...: %w", cause) repeat the cause's text; cutting that suffix
// keeps each chain entry to a single layer.
func linkMessage(err error) string {
	msg := err.Error()
	cause := errors.Unwrap(err)
	if cause == nil {
		return msg
	}
	if trimmed, ok := strings.CutSuffix(msg, ": "+cause.Error()); ok {
		return trimmed
	}
	return msg
}
