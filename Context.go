package dispatch

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ljpx/di"
	"github.com/ljpx/id"
)

// Context represents the context of a single HTTP web request.  It aggregates
// the request, the negotiated request and response formatters, and the
// matched route.  It is created once per request and is not thread-safe.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	c      di.Container
	config *Config

	route Route

	requestFormatter      Formatter
	responseFormatter     Formatter
	responseContentType   string
	supportedContentTypes []string

	correlationID       id.ID
	middlewareArtifacts map[string]interface{}
}

// NewContext creates a new context for the provided request.
func NewContext(w http.ResponseWriter, r *http.Request, c di.Container, config *Config) *Context {
	return &Context{
		w:      w,
		r:      r,
		c:      c.Fork(),
		config: config,

		correlationID:       id.New(),
		middlewareArtifacts: make(map[string]interface{}),
	}
}

// negotiate records the request and response formatters for the request's
// Content-Type and Accept headers.  Either formatter may remain unset.
func (ctx *Context) negotiate(n *Negotiator) {
	ctx.supportedContentTypes = n.SupportedContentTypes()

	if formatter, ok := n.RequestFormatter(ctx.r.Header.Get("Content-Type")); ok {
		ctx.requestFormatter = formatter
	}

	if formatter, contentType, ok := n.ResponseFormatter(ctx.r.Header.Get("Accept")); ok {
		ctx.responseFormatter = formatter
		ctx.responseContentType = contentType
	}
}

func (ctx *Context) setRoute(route Route) {
	ctx.route = route
}

// Route returns the matched route, or nil if no route matched.
func (ctx *Context) Route() Route {
	return ctx.route
}

// GetCorrelationID returns the correlationID for the request.
func (ctx *Context) GetCorrelationID() id.ID {
	return ctx.correlationID
}

// GetMiddlewareArtifact retrieves the middleware artifact with the specified
// name.  It will return nil if the artifact does not exist.
func (ctx *Context) GetMiddlewareArtifact(name string) interface{} {
	v, _ := ctx.middlewareArtifacts[name]
	return v
}

// SetMiddlewareArtifact sets the middleware artifact for the specified name.
func (ctx *Context) SetMiddlewareArtifact(name string, value interface{}) {
	ctx.middlewareArtifacts[name] = value
}

// ResponseWriter returns the http.ResponseWriter.
func (ctx *Context) ResponseWriter() http.ResponseWriter {
	return ctx.w
}

// Container returns the underlying container.
func (ctx *Context) Container() di.Container {
	return ctx.c
}

// Request returns the *http.Request.
func (ctx *Context) Request() *http.Request {
	return ctx.r
}

// Header returns the set of response headers.
func (ctx *Context) Header() http.Header {
	return ctx.w.Header()
}

// RequestFormatter returns the formatter negotiated for the request body, if
// any.
func (ctx *Context) RequestFormatter() (Formatter, bool) {
	return ctx.requestFormatter, ctx.requestFormatter != nil
}

// ResponseFormatter returns the formatter negotiated for the response body,
// if any.
func (ctx *Context) ResponseFormatter() (Formatter, bool) {
	return ctx.responseFormatter, ctx.responseFormatter != nil
}

// ResponseContentType returns the negotiated response content type, or the
// empty string when negotiation failed.
func (ctx *Context) ResponseContentType() string {
	return ctx.responseContentType
}

// SupportedContentTypes returns the content types of the negotiator this
// context was negotiated with.
func (ctx *Context) SupportedContentTypes() []string {
	return ctx.supportedContentTypes
}

// LookupPathParameter retrieves a path segment parameter from the request,
// reporting whether the parameter was present.
func (ctx *Context) LookupPathParameter(name string) (string, bool) {
	val, ok := mux.Vars(ctx.r)[name]
	return val, ok
}

// GetPathParameter retrieves a path segment parameter from the request.
func (ctx *Context) GetPathParameter(name string) string {
	val, _ := ctx.LookupPathParameter(name)
	return val
}

// LookupQueryParameter retrieves a query parameter from the request,
// reporting whether the parameter was present.
func (ctx *Context) LookupQueryParameter(name string) (string, bool) {
	values, ok := ctx.r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// GetQueryParameter retrieves a query parameter from the request.
func (ctx *Context) GetQueryParameter(name string) string {
	val, _ := ctx.LookupQueryParameter(name)
	return val
}

// Resolve resolves from the underlying container.
func (ctx *Context) Resolve(dependencies ...interface{}) error {
	return ctx.c.Resolve(dependencies...)
}

// HasResponded returns true once response headers have been written.
func (ctx *Context) HasResponded() bool {
	if mrw, ok := ctx.w.(*MeasuredResponseWriter); ok {
		return mrw.HasWrittenHeaders()
	}

	return false
}

// Respond responds to the request with the provided HTTP code.
func (ctx *Context) Respond(code int) {
	ctx.w.Header().Set("Correlation-ID", ctx.correlationID.String())
	ctx.w.WriteHeader(code)
}

// RespondWith responds to the request with the provided HTTP code and model,
// serialized with the negotiated response formatter.  When no formatter was
// negotiated the model is written as JSON.
func (ctx *Context) RespondWith(code int, model interface{}) {
	formatter := ctx.responseFormatter
	contentType := ctx.responseContentType
	if formatter == nil {
		formatter = &JSONFormatter{}
		contentType = formatter.ContentType()
	}

	buf := &bytes.Buffer{}

	err := formatter.Write(buf, model)
	if err != nil {
		rawJSON := ctx.getRawProblemDetailsForSerializationError(err)
		ctx.w.Header().Set("Content-Type", "application/json")
		ctx.w.Header().Set("Content-Length", fmt.Sprintf("%v", len(rawJSON)))
		ctx.Respond(http.StatusInternalServerError)
		ctx.w.Write(rawJSON)
		return
	}

	ctx.w.Header().Set("Content-Type", contentType)
	ctx.w.Header().Set("Content-Length", fmt.Sprintf("%v", buf.Len()))
	ctx.Respond(code)
	ctx.w.Write(buf.Bytes())
}

// RespondWithJSON responds to the request with the provided HTTP code and
// model, always as JSON, regardless of the negotiated response formatter.
func (ctx *Context) RespondWithJSON(code int, model interface{}) {
	jsonFormatter := &JSONFormatter{}

	buf := &bytes.Buffer{}

	err := jsonFormatter.Write(buf, model)
	rawJSON := buf.Bytes()
	if err != nil {
		rawJSON = ctx.getRawProblemDetailsForSerializationError(err)
		code = http.StatusInternalServerError
	}

	ctx.w.Header().Set("Content-Type", "application/json")
	ctx.w.Header().Set("Content-Length", fmt.Sprintf("%v", len(rawJSON)))
	ctx.Respond(code)
	ctx.w.Write(rawJSON)
}

func (ctx *Context) getRawProblemDetailsForSerializationError(err error) []byte {
	formatJSON := `{"type":"%v/http/internal-server-error","title":"Internal Server Error","detail":"Serialization of the response model failed."%v}`

	errStr := ""
	if ctx.config.DebuggingEnabled && err != nil {
		errStr = fmt.Sprintf(`,"error":"%v"`, err.Error())
	}

	return []byte(fmt.Sprintf(formatJSON, ctx.config.ProblemDetailsTypePrefix, errStr))
}
