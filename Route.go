package dispatch

import "github.com/ljpx/di"

// Route defines the methods that any dispatchable route must implement.  A
// route binds a method and path pattern to a controller, an ordered list of
// middleware bindings, and the declarative parameter specs used to bind the
// controller's arguments.
type Route interface {
	Method() string
	Path() string
	Middleware() []MiddlewareBinding
	Parameters() []ParameterSpec
	ResolveController(c di.Container) (interface{}, error)
}

// HostConstrained is implemented by routes that should only match requests
// for a specific host.
type HostConstrained interface {
	Host() string
}
