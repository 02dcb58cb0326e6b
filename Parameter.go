package dispatch

import (
	"fmt"
	"strconv"
)

// ParameterKind identifies the declared type of a controller parameter.
type ParameterKind int

const (
	KindString ParameterKind = iota
	KindInt
	KindFloat
	KindBool
	KindAny
	KindArray
	KindBody
)

func (k ParameterKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindAny:
		return "any"
	case KindArray:
		return "array"
	case KindBody:
		return "body"
	}

	return "unknown"
}

// ParameterSpec declares a single controller-action parameter and where its
// value comes from.  Scalar kinds resolve from the route variables first,
// then the query string, then the declared default.  KindBody resolves from
// the deserialized request body using the negotiated request formatter, in
// which case Model must produce a new, empty model to deserialize into.
type ParameterSpec struct {
	Name       string
	Kind       ParameterKind
	Nullable   bool
	Default    string
	HasDefault bool
	Model      func() interface{}
}

// scalarConverters is the fixed table of scalar coercions.  Kinds absent from
// the table are rejected outright.
var scalarConverters = map[ParameterKind]func(raw string) (interface{}, error){
	KindString: func(raw string) (interface{}, error) {
		return raw, nil
	},
	KindAny: func(raw string) (interface{}, error) {
		return raw, nil
	},
	KindInt: func(raw string) (interface{}, error) {
		return strconv.Atoi(raw)
	},
	KindFloat: func(raw string) (interface{}, error) {
		return strconv.ParseFloat(raw, 64)
	},
	KindBool: parseTruthy,
}

// parseTruthy accepts the usual boolean forms, and treats any numeric value
// as true when it is non-zero.
func parseTruthy(raw string) (interface{}, error) {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f != 0, nil
	}

	return nil, fmt.Errorf(`'%v' is not a recognizable boolean value`, raw)
}
