package dispatch

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ljpx/di"
	"github.com/ljpx/logging"
)

// HandlerBuilder is used to build a handler that can be passed to any HTTP
// server.  Once Build has been called, the HandlerBuilder is invalid and can
// no longer be used.  HandlerBuilder is not thread-safe.
type HandlerBuilder struct {
	c      di.Container
	config *Config
	logger logging.Logger

	negotiator *Negotiator
	factory    ResponseFactory

	routesByEndpoint map[endpoint][]Route
	endpointOrder    []endpoint
	hasBeenBuilt     bool
}

// endpoint identifies a group of routes matched together - same host
// constraint and path pattern, differing by method.
type endpoint struct {
	host string
	path string
}

// NewHandlerBuilder creates a new handler builder with the provided
// container, logger and config.  The default negotiator and problem-details
// response factory are used unless overridden.
func NewHandlerBuilder(c di.Container, logger logging.Logger, config *Config) *HandlerBuilder {
	return &HandlerBuilder{
		c:      c,
		config: config,
		logger: logger,

		negotiator: DefaultNegotiator(),
		factory:    NewProblemResponseFactory(config),

		routesByEndpoint: make(map[endpoint][]Route),
	}
}

// UseNegotiator replaces the negotiator used to select request and response
// formatters.
func (b *HandlerBuilder) UseNegotiator(negotiator *Negotiator) {
	b.assertNotAlreadyBuilt()
	b.negotiator = negotiator
}

// UseResponseFactory replaces the factory that produces failure responses.
func (b *HandlerBuilder) UseResponseFactory(factory ResponseFactory) {
	b.assertNotAlreadyBuilt()
	b.factory = factory
}

// Use adds a route to the list of routes this handler should expose.
func (b *HandlerBuilder) Use(route Route) {
	b.assertNotAlreadyBuilt()

	ep := endpoint{path: purifyPath(route.Path())}
	if constrained, ok := route.(HostConstrained); ok {
		ep.host = strings.ToLower(strings.TrimSpace(constrained.Host()))
	}

	if _, ok := b.routesByEndpoint[ep]; !ok {
		b.endpointOrder = append(b.endpointOrder, ep)
	}

	b.routesByEndpoint[ep] = append(b.routesByEndpoint[ep], route)
}

// Build builds a http.Handler that can be passed to any server.
func (b *HandlerBuilder) Build() http.Handler {
	b.assertNotAlreadyBuilt()
	b.hasBeenBuilt = true

	mx := mux.NewRouter()

	// Host-constrained endpoints are registered first.  A route for a
	// bare path matches every host, and registration order decides mux
	// precedence, so registering it early would shadow any sibling that
	// is pinned to a host.
	for _, ep := range b.orderedEndpoints() {
		ctxHandler := b.buildHandlerForEndpoint(b.routesByEndpoint[ep])
		requestHandler := b.buildHandlerFromRequest(ctxHandler)

		mxRoute := mx.Path(ep.path)
		if ep.host != "" {
			mxRoute = mxRoute.Host(ep.host)
		}

		mxRoute.HandlerFunc(requestHandler)
	}

	notFoundRequestHandler := b.buildHandlerFromRequest(func(ctx *Context) {
		b.factory.Failure(ctx, newRouteNotFoundError(ctx.Request().URL.Path))
	})

	mx.PathPrefix("/").HandlerFunc(notFoundRequestHandler)

	return mx
}

func (b *HandlerBuilder) orderedEndpoints() []endpoint {
	ordered := make([]endpoint, 0, len(b.endpointOrder))

	for _, ep := range b.endpointOrder {
		if ep.host != "" {
			ordered = append(ordered, ep)
		}
	}

	for _, ep := range b.endpointOrder {
		if ep.host == "" {
			ordered = append(ordered, ep)
		}
	}

	return ordered
}

func (b *HandlerBuilder) assertNotAlreadyBuilt() {
	if b.hasBeenBuilt {
		panic("a HandlerBuilder can not be used after Build has been called")
	}
}

// buildHandlerFromRequest performs the per-request setup shared by every
// endpoint - the measured writer, the context, negotiation, the access log
// line, and a last-resort panic recovery.
func (b *HandlerBuilder) buildHandlerFromRequest(ctxHandler ContextHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mrw := NewMeasuredResponseWriter(w)
		ctx := NewContext(mrw, r, b.c, b.config)
		ctx.negotiate(b.negotiator)

		defer func() {
			if p := recover(); p != nil && !mrw.HasWrittenHeaders() {
				b.factory.Failure(ctx, normalizeRecovered(p))
			}

			logmsg := fmt.Sprintf("%v %v %v %v %v\n", r.Method, mrw.StatusCode(), mrw.Duration(), ByteSizeToFriendlyString(mrw.Volume()), r.URL.Path)
			b.logger.Printf(logmsg)
		}()

		ctxHandler(ctx)
	}
}

// buildHandlerForEndpoint dispatches by method within an endpoint, answering
// known paths with an unknown method with the allowed set.
func (b *HandlerBuilder) buildHandlerForEndpoint(routes []Route) ContextHandlerFunc {
	handlerByMethod := make(map[string]ContextHandlerFunc)
	allowedMethods := []string{}

	for _, route := range routes {
		method := strings.ToUpper(route.Method())

		handlerByMethod[method] = b.buildHandlerForRoute(route)
		allowedMethods = append(allowedMethods, method)
	}

	return func(ctx *Context) {
		handler, ok := handlerByMethod[strings.ToUpper(ctx.Request().Method)]
		if !ok {
			b.factory.Failure(ctx, newMethodNotAllowedError(ctx.Request().Method, allowedMethods))
			return
		}

		if _, ok := ctx.ResponseFormatter(); !ok {
			b.factory.Failure(ctx, newNotAcceptableError(ctx.Request().Header.Get("Accept")))
			return
		}

		handler(ctx)
	}
}

func (b *HandlerBuilder) buildHandlerForRoute(route Route) ContextHandlerFunc {
	exceptionHandler := NewExceptionHandler(b.logger, b.factory)

	return func(ctx *Context) {
		ctx.setRoute(route)

		exceptionHandler.Handle(ctx, func() error {
			return invokeRoute(ctx, route)
		})
	}
}

func purifyPath(path string) string {
	return strings.TrimSpace(strings.ReplaceAll(path, "\\", "/"))
}
