package dispatch

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ResolveParameters converts the raw values of the current request - route
// variables, query string, and body - into the typed arguments declared by
// the route's parameter specs.  Any returned error is a typed *Error that
// carries the status code to respond with.
func ResolveParameters(ctx *Context, specs []ParameterSpec) (Arguments, error) {
	args := make(Arguments, len(specs))

	for _, spec := range specs {
		value, err := resolveParameter(ctx, spec)
		if err != nil {
			return nil, err
		}

		args[spec.Name] = value
	}

	return args, nil
}

func resolveParameter(ctx *Context, spec ParameterSpec) (interface{}, error) {
	if spec.Kind == KindBody {
		return resolveBodyParameter(ctx, spec)
	}

	return resolveScalarParameter(ctx, spec)
}

func resolveScalarParameter(ctx *Context, spec ParameterSpec) (interface{}, error) {
	convert, supported := scalarConverters[spec.Kind]
	if !supported {
		return nil, newUnsupportedKindError(spec)
	}

	raw, ok := ctx.LookupPathParameter(spec.Name)
	if !ok {
		raw, ok = ctx.LookupQueryParameter(spec.Name)
	}

	if !ok && spec.HasDefault {
		raw, ok = spec.Default, true
	}

	if !ok {
		if spec.Nullable {
			return nil, nil
		}

		return nil, newMissingParameterError(spec.Name)
	}

	value, err := convert(raw)
	if err != nil {
		return nil, newConversionError(spec.Name, raw, spec.Kind, err)
	}

	return value, nil
}

// resolveBodyParameter negotiates a formatter for the request body and
// deserializes it into a new model.  A missing body, an unsupported media
// type, or an undeserializable body each raise a typed error - unless the
// parameter is nullable, in which case they resolve to absence of value.  A
// body that deserialized but failed validation is always an error.
func resolveBodyParameter(ctx *Context, spec ParameterSpec) (interface{}, error) {
	if spec.Model == nil {
		return nil, newConfigurationError("a body parameter was declared without a model", nil)
	}

	formatter, ok := ctx.RequestFormatter()
	if !ok {
		if spec.Nullable {
			return nil, nil
		}

		return nil, newUnsupportedMediaTypeError(ctx.Request().Header.Get("Content-Type"), ctx.SupportedContentTypes())
	}

	contentLength := ctx.Request().ContentLength
	if contentLength <= 0 {
		if spec.Nullable {
			return nil, nil
		}

		return nil, newLengthRequiredError()
	}

	max := ctx.config.BodyContentLengthLimit
	if max > 0 && contentLength > max {
		return nil, newRequestEntityTooLargeError(contentLength, max)
	}

	model := spec.Model()

	err := formatter.Read(ctx.Request().Body, model)
	if err != nil {
		if spec.Nullable {
			return nil, nil
		}

		return nil, newDeserializationError(err)
	}

	err = validateModel(model)
	if err != nil {
		return nil, err
	}

	return model, nil
}

func validateModel(model interface{}) error {
	err := validate.Struct(model)
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return newValidationError(verrs[0].Field(), verrs)
	}

	if purifiable, ok := model.(Purifiable); ok {
		field, err := purifiable.Purify()
		if err != nil {
			return newValidationError(field, err)
		}
	}

	return nil
}
