package dispatch

import (
	"fmt"
	"net/http"
)

// Error is an error that has already been mapped to an HTTP response.  Errors
// of this type pass through dispatch unchanged.  Any other error becomes a
// generic internal server error at the outer boundary.
type Error struct {
	Status    int
	Slug      string
	Detail    string
	Specifics map[string]interface{}
	Cause     error
}

var _ error = &Error{}

// NewError creates a new Error with the provided status code, problem type
// slug, and detail message.
func NewError(status int, slug string, detail string) *Error {
	return &Error{
		Status: status,
		Slug:   slug,
		Detail: detail,
	}
}

// NotFoundError returns the typed error produced when a subject of the
// request could not be found.
func NotFoundError(subjectType string, subject string) *Error {
	return &Error{
		Status: http.StatusNotFound,
		Slug:   "http/not-found",
		Detail: fmt.Sprintf(`The %v '%v' was not found.`, subjectType, subject),
		Specifics: map[string]interface{}{
			"subjectType": subjectType,
			"subject":     subject,
		},
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v (%v)", e.Detail, e.Cause)
	}

	return e.Detail
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newRouteNotFoundError(path string) *Error {
	return &Error{
		Status: http.StatusNotFound,
		Slug:   "http/not-found",
		Detail: fmt.Sprintf(`The path '%v' was not found.`, path),
		Specifics: map[string]interface{}{
			"path": path,
		},
	}
}

func newMethodNotAllowedError(method string, allowedMethods []string) *Error {
	return &Error{
		Status: http.StatusMethodNotAllowed,
		Slug:   "http/method-not-allowed",
		Detail: fmt.Sprintf(`This endpoint does not allow use of the '%v' method.`, method),
		Specifics: map[string]interface{}{
			"methodUsed":     method,
			"allowedMethods": allowedMethods,
		},
	}
}

func newResolutionError(cause error) *Error {
	return &Error{
		Status: http.StatusInternalServerError,
		Slug:   "dispatch/resolution-failure",
		Detail: "A dependency could not be resolved for this request.",
		Cause:  cause,
	}
}

func newConfigurationError(detail string, cause error) *Error {
	return &Error{
		Status: http.StatusInternalServerError,
		Slug:   "dispatch/configuration",
		Detail: detail,
		Cause:  cause,
	}
}

func newMissingParameterError(name string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Slug:   "parameters/missing-value",
		Detail: fmt.Sprintf(`The required parameter '%v' was not provided.`, name),
		Specifics: map[string]interface{}{
			"parameter": name,
		},
	}
}

func newConversionError(name string, raw string, kind ParameterKind, cause error) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Slug:   "parameters/conversion",
		Detail: fmt.Sprintf(`The value provided for the parameter '%v' could not be converted to %v.`, name, kind),
		Specifics: map[string]interface{}{
			"parameter": name,
			"value":     raw,
			"kind":      kind.String(),
		},
		Cause: cause,
	}
}

func newUnsupportedKindError(spec ParameterSpec) *Error {
	detail := fmt.Sprintf(`The parameter '%v' has an unsupported kind.`, spec.Name)
	if spec.Kind == KindArray {
		detail = fmt.Sprintf(`The parameter '%v' is an array.  Array parameters are not supported.`, spec.Name)
	}

	return &Error{
		Status: http.StatusBadRequest,
		Slug:   "parameters/unsupported-kind",
		Detail: detail,
		Specifics: map[string]interface{}{
			"parameter": spec.Name,
			"kind":      spec.Kind.String(),
		},
	}
}

func newUnsupportedMediaTypeError(providedContentType string, supportedContentTypes []string) *Error {
	return &Error{
		Status: http.StatusUnsupportedMediaType,
		Slug:   "http/unsupported-media-type",
		Detail: fmt.Sprintf(`The Content-Type '%v' is not supported by this endpoint.`, providedContentType),
		Specifics: map[string]interface{}{
			"providedContentType":   providedContentType,
			"supportedContentTypes": supportedContentTypes,
		},
	}
}

func newNotAcceptableError(accept string) *Error {
	return &Error{
		Status: http.StatusNotAcceptable,
		Slug:   "http/not-acceptable",
		Detail: "None of the media types in the Accept header can be produced by this endpoint.",
		Specifics: map[string]interface{}{
			"accept": accept,
		},
	}
}

func newLengthRequiredError() *Error {
	return &Error{
		Status: http.StatusLengthRequired,
		Slug:   "http/length-required",
		Detail: "This endpoint requires that the Content-Length header be set to a positive, non-zero value.",
	}
}

func newRequestEntityTooLargeError(contentLength int64, max int64) *Error {
	detailFormat := "The provided request entity of length %v (%v bytes) exceeds the maximum of %v (%v bytes) on this endpoint."
	return &Error{
		Status: http.StatusRequestEntityTooLarge,
		Slug:   "http/request-entity-too-large",
		Detail: fmt.Sprintf(detailFormat, ByteSizeToFriendlyString(contentLength), contentLength, ByteSizeToFriendlyString(max), max),
		Specifics: map[string]interface{}{
			"contentLength":        contentLength,
			"maximumContentLength": max,
		},
	}
}

func newDeserializationError(cause error) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Slug:   "body/deserialization",
		Detail: "The provided request body could not be meaningfully deserialized.  It appears to be invalid.",
		Cause:  cause,
	}
}

func newValidationError(field string, cause error) *Error {
	return &Error{
		Status: http.StatusUnprocessableEntity,
		Slug:   "body/unprocessable-entity",
		Detail: "The provided request body was understood but contained some invalid values.",
		Specifics: map[string]interface{}{
			"field": field,
			"error": cause.Error(),
		},
		Cause: cause,
	}
}
