package dispatch

import (
	"fmt"
)

// invokeRoute resolves the controller, middleware, and declared parameters
// for the matched route, then runs the action through the middleware
// pipeline.  Any returned error has not yet been responded to - the
// exception handler wrapping this call maps it to a response.
func invokeRoute(ctx *Context, route Route) error {
	raw, err := route.ResolveController(ctx.Container())
	if err != nil {
		return newResolutionError(err)
	}

	controller, ok := raw.(Controller)
	if !ok {
		return newConfigurationError(fmt.Sprintf("the resolved controller of type %T does not implement Controller", raw), nil)
	}

	middleware, err := resolveMiddleware(ctx, route.Middleware())
	if err != nil {
		return err
	}

	args, err := ResolveParameters(ctx, route.Parameters())
	if err != nil {
		return err
	}

	pipeline := buildPipeline(ctx, middleware, func() error {
		return controller.Handle(ctx, args)
	})

	return pipeline()
}

// resolveMiddleware resolves each binding through the container, verifies the
// middleware capability, and applies the binding's attributes.
func resolveMiddleware(ctx *Context, bindings []MiddlewareBinding) ([]Middleware, error) {
	middleware := make([]Middleware, 0, len(bindings))

	for _, binding := range bindings {
		if binding.Resolve == nil {
			return nil, newConfigurationError("a middleware binding was declared without a resolver", nil)
		}

		raw, err := binding.Resolve(ctx.Container())
		if err != nil {
			return nil, newResolutionError(err)
		}

		mw, ok := raw.(Middleware)
		if !ok {
			return nil, newConfigurationError(fmt.Sprintf("the resolved middleware of type %T does not implement Middleware", raw), nil)
		}

		if receiver, ok := raw.(AttributeReceiver); ok && len(binding.Attributes) > 0 {
			err := receiver.UseAttributes(binding.Attributes)
			if err != nil {
				return nil, newConfigurationError(fmt.Sprintf("the middleware of type %T rejected its attributes", raw), err)
			}
		}

		middleware = append(middleware, mw)
	}

	return middleware, nil
}
