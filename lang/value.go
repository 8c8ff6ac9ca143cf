package lang

import "strconv"

// Value is the result of evaluating an expression: either a primitive or a
// function literal.
type Value struct {
	Prim Primitive
	Fn   *Function
}

// NullValue returns the null value.
func NullValue() Value {
	return Value{Prim: Null}
}

// PrimitiveValue wraps a primitive as a value.
func PrimitiveValue(p Primitive) Value {
	return Value{Prim: p}
}

// FunctionValue wraps a function literal as a value.
func FunctionValue(fn *Function) Value {
	return Value{Fn: fn}
}

// IsFunction reports whether the value is a function.
func (v Value) IsFunction() bool {
	return v.Fn != nil
}

// Type returns the short type name used for diagnostic and REPL display:
// "integer", "float", "string", "boolean", "null", or "function".
func (v Value) Type() string {
	if v.IsFunction() {
		return "function"
	}

	return v.Prim.Kind.String()
}

// Text renders the value in its human-readable form.
func (v Value) Text() string {
	if v.IsFunction() {
		return "function"
	}

	return v.Prim.Text()
}

// Display renders the value as "<value> : <type>", the form printed for
// successful evaluations.
func (v Value) Display() string {
	return v.Text() + " : " + v.Type()
}

// formatFloat renders a float without an exponent and without trailing
// zeros, so 1.0 displays as "1" and 3.14 as "3.14".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
