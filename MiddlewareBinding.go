package dispatch

import "github.com/ljpx/di"

// MiddlewareBinding declares the association of a route with a middleware
// type and its configuration attributes.  The binding is resolved to a
// middleware instance once per request via the container, and the attributes
// are applied to instances that implement AttributeReceiver.
type MiddlewareBinding struct {
	Resolve    func(c di.Container) (interface{}, error)
	Attributes map[string]interface{}
}
