// Package apperr classifies handler failures so they can be mapped to HTTP responses.
package apperr

import (
	"errors"
	"net/http"
)

// Kind - 에러 분류
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConfiguration
	KindUpstream
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is classification.
var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrUpstream      = errors.New("upstream error")
	ErrTransport     = errors.New("transport error")
)

// Error carries a kind and a message that is safe to show to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrUpstream:
		return e.Kind == KindUpstream
	case ErrTransport:
		return e.Kind == KindTransport
	}
	return false
}

// Status - 에러 종류별 HTTP 상태 코드
func (e *Error) Status() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func Upstream(message string) *Error {
	return &Error{Kind: KindUpstream, Message: message}
}

// UpstreamWrap - 업스트림 응답 파싱 실패 등 원인 에러가 있는 경우
func UpstreamWrap(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Transport wraps a network-level failure. The message is the underlying error text.
func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// IsClientFacing reports whether err should be returned to the caller verbatim
// instead of being prefixed with the handler's failure phrase.
func IsClientFacing(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrConfiguration)
}

// StatusOf - err에 해당하는 HTTP 상태 코드 (분류되지 않은 에러는 500)
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	return http.StatusInternalServerError
}
