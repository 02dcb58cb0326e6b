package dispatch

// Next invokes the remainder of the pipeline - subsequent middleware and,
// finally, the controller action.
type Next func() error

// Middleware defines the methods that any HTTP middleware must implement.
// Calling next propagates the request to subsequent middleware handlers and
// eventually the controller action.  Returning an error without calling next
// aborts the pipeline, and the error is mapped to an HTTP response at the
// outer boundary.
type Middleware interface {
	Handle(ctx *Context, next Next) error
}

// AttributeReceiver is implemented by middleware that accept per-route
// configuration attributes.  UseAttributes is called once per request, after
// resolution and before the pipeline runs.
type AttributeReceiver interface {
	UseAttributes(attributes map[string]interface{}) error
}
