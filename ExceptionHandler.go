package dispatch

import (
	"fmt"

	"github.com/ljpx/logging"
)

// ExceptionHandler is the outermost middleware of every pipeline.  It
// recovers panics, normalizes them to errors, logs every failure, and asks
// the response factory for the final response.  It is terminal - once inside
// this layer nothing re-throws, and every invocation produces a response.
type ExceptionHandler struct {
	logger  logging.Logger
	factory ResponseFactory
}

var _ Middleware = &ExceptionHandler{}

// NewExceptionHandler creates a new ExceptionHandler with the provided logger
// and response factory.
func NewExceptionHandler(logger logging.Logger, factory ResponseFactory) *ExceptionHandler {
	return &ExceptionHandler{
		logger:  logger,
		factory: factory,
	}
}

// Handle invokes the downstream handler, translating any failure into an HTTP
// response.  It never returns a non-nil error.
func (h *ExceptionHandler) Handle(ctx *Context, next Next) error {
	defer func() {
		if p := recover(); p != nil {
			h.respond(ctx, normalizeRecovered(p))
		}
	}()

	err := next()
	if err != nil {
		h.respond(ctx, err)
	}

	return nil
}

func (h *ExceptionHandler) respond(ctx *Context, err error) {
	h.logger.Printf("%v %v %v\n", ctx.Request().URL.Path, ctx.GetCorrelationID(), err)

	if !ctx.HasResponded() {
		h.factory.Failure(ctx, err)
	}
}

// normalizeRecovered converts a recovered panic value into an error.
func normalizeRecovered(p interface{}) error {
	if err, ok := p.(error); ok {
		return err
	}

	return fmt.Errorf("%v", p)
}
