package constants

import "net/http"

// CodedError is an error carrying an HTTP status code. The api error
// handler unwraps to the first CodedError in the chain.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string { return e.msg }

func (e *CodedError) Code() int { return e.code }

var (
	ErrDBNotFound       = NewCodedError("not found", http.StatusNotFound)
	ErrEmptyUpdate      = NewCodedError("no fields to update", http.StatusBadRequest)
	ErrUnknownDimension = NewCodedError("unknown dimension", http.StatusBadRequest)
	ErrUnknownMetric    = NewCodedError("unknown metric", http.StatusBadRequest)
	ErrBadDateBound     = NewCodedError("date bound must be YYYY-MM-DD", http.StatusBadRequest)
)
