package dispatch

// Controller defines the methods that any resolved controller must implement.
// A route whose resolver produces a value that does not satisfy Controller is
// a configuration error and yields an internal server error response.
//
// The provided context is owned by the controller for the duration of the
// invocation.  The arguments are the typed values resolved from the route
// variables, query string, and body as declared by the route's parameter
// specs.
type Controller interface {
	Handle(ctx *Context, args Arguments) error
}
