package dispatch

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ljpx/problem"
)

// ResponseFactory produces the final HTTP response for a dispatch failure.
// Failure is the single normalization point for the whole error taxonomy - a
// typed *Error responds with its own status, anything else responds as a
// generic internal server error.
type ResponseFactory interface {
	Failure(ctx *Context, err error)
}

// ProblemResponseFactory renders every failure as an RFC 7807 problem details
// document.
type ProblemResponseFactory struct {
	config *Config
}

var _ ResponseFactory = &ProblemResponseFactory{}

// NewProblemResponseFactory creates a new ProblemResponseFactory with the
// provided config.
func NewProblemResponseFactory(config *Config) *ProblemResponseFactory {
	return &ProblemResponseFactory{
		config: config,
	}
}

// Failure responds to the request with the problem details for the provided
// error.
func (f *ProblemResponseFactory) Failure(ctx *Context, err error) {
	var typed *Error
	if !errors.As(err, &typed) {
		typed = &Error{
			Status: http.StatusInternalServerError,
			Slug:   "http/internal-server-error",
			Detail: "An internal server error prevented the request from completing.",
			Cause:  err,
		}
	}

	details := &problem.Details{
		Type:      fmt.Sprintf("%v/%v", f.config.ProblemDetailsTypePrefix, typed.Slug),
		Title:     http.StatusText(typed.Status),
		Detail:    typed.Detail,
		Specifics: typed.Specifics,
	}

	if f.config.DebuggingEnabled && typed.Cause != nil {
		details.AttachError(typed.Cause)
	}

	ctx.RespondWithJSON(typed.Status, details)
}
