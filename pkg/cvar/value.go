package cvar

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// scalarType maps a Scalar type parameter to its cty type tag:
// cty.Bool, cty.Number or cty.String. Integer and float properties
// share cty.Number; the distinction is enforced when converting back
// to the Go value.
func scalarType[T Scalar]() cty.Type {
	var zero T
	typ, err := gocty.ImpliedType(zero)
	if err != nil {
		// Unreachable for types admitted by the Scalar constraint.
		panic(fmt.Sprintf("cvar: unsupported scalar type %T: %v", zero, err))
	}
	return typ
}

// parseScalar coerces free-form text into T via cty's conversion
// rules: "true"/"false" for bools, decimal notation for numbers, and
// the verbatim text for strings. A fractional number offered to an
// integer property fails rather than truncating.
func parseScalar[T Scalar](text string) (T, error) {
	var out T
	converted, err := convert.Convert(cty.StringVal(text), scalarType[T]())
	if err != nil {
		return out, err
	}
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return out, err
	}
	return out, nil
}

// renderScalar produces the canonical text form of a value, chosen so
// that parseScalar(renderScalar(v)) round-trips.
func renderScalar[T Scalar](v T) string {
	typ := scalarType[T]()
	cv, err := gocty.ToCtyValue(v, typ)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	switch {
	case typ.Equals(cty.String):
		return cv.AsString()
	case typ.Equals(cty.Bool):
		if cv.True() {
			return "true"
		}
		return "false"
	case typ.Equals(cty.Number):
		return cv.AsBigFloat().Text('f', -1)
	}
	return fmt.Sprintf("%v", v)
}
