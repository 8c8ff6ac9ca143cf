package lang

// evalOperator applies a variadic operator. Inverse requires exactly one
// boolean argument; every other kind requires at least two arguments, all
// primitives, dispatched by the kind of the first.
func evalOperator(op *Operator, scope *Scope) (Value, error) {
	if op.Kind == OpInverse {
		return evalInverse(op, scope)
	}

	if len(op.Args) < 2 {
		return NullValue(), Errorf(
			"expected at least 2 arguments for %s operator", op.Kind,
		)
	}

	values := make([]Primitive, 0, len(op.Args))

	for _, arg := range op.Args {
		v, err := evalExpr(arg, scope)
		if err != nil {
			return NullValue(), err
		}

		if v.IsFunction() {
			return NullValue(), Errorf("cannot compare type function")
		}

		values = append(values, v.Prim)
	}

	switch op.Kind {
	case OpEqual:
		return evalEqual(values)
	case OpAdd:
		return evalAdd(values)
	case OpSubtract:
		return evalSubtract(values)
	case OpMultiply:
		return evalMultiply(values)
	case OpDivide:
		return evalDivide(values)
	default:
		return NullValue(), Errorf("unknown operator %s", op.Kind)
	}
}

func evalInverse(op *Operator, scope *Scope) (Value, error) {
	if len(op.Args) != 1 {
		return NullValue(), ErrInverseArity
	}

	v, err := evalExpr(op.Args[0], scope)
	if err != nil {
		return NullValue(), err
	}

	if v.IsFunction() {
		return NullValue(), Errorf("cannot inverse type function")
	}

	if v.Prim.Kind != KindBoolean {
		return NullValue(), Errorf("cannot inverse type %s", v.Prim.Kind)
	}

	return PrimitiveValue(NewBoolean(!v.Prim.Boolean)), nil
}

// evalEqual compares same-kind primitives for equality. Null equals only
// null; null against any non-null kind is false; mismatched non-null kinds
// are a type error.
func evalEqual(values []Primitive) (Value, error) {
	first := values[0]
	result := true

	for _, arg := range values[1:] {
		switch {
		case first.Kind == KindNull && arg.Kind == KindNull:
			// null == null holds

		case first.Kind == KindNull || arg.Kind == KindNull:
			result = false

		case first.Kind != arg.Kind:
			return NullValue(), Errorf(
				"cannot compare type %s with type %s", first.Kind, arg.Kind,
			)

		case !primEqual(first, arg):
			result = false
		}
	}

	return PrimitiveValue(NewBoolean(result)), nil
}

func primEqual(a, b Primitive) bool {
	switch a.Kind {
	case KindInteger:
		return a.Integer == b.Integer
	case KindFloat:
		return a.Float == b.Float
	case KindString:
		return a.String == b.String
	case KindBoolean:
		return a.Boolean == b.Boolean
	case KindNull:
		return true
	default:
		return false
	}
}

// evalAdd sums integers or floats and concatenates strings in argument
// order. Booleans and null are not addable.
func evalAdd(values []Primitive) (Value, error) {
	switch first := values[0]; first.Kind {
	case KindInteger:
		acc := first.Integer

		for _, arg := range values[1:] {
			if arg.Kind != KindInteger {
				return NullValue(), Errorf(
					"cannot add type integer with type %s", arg.Kind,
				)
			}

			acc += arg.Integer
		}

		return PrimitiveValue(NewInteger(acc)), nil

	case KindFloat:
		acc := first.Float

		for _, arg := range values[1:] {
			if arg.Kind != KindFloat {
				return NullValue(), Errorf(
					"cannot add type float with type %s", arg.Kind,
				)
			}

			acc += arg.Float
		}

		return PrimitiveValue(NewFloat(acc)), nil

	case KindString:
		acc := first.String

		for _, arg := range values[1:] {
			if arg.Kind != KindString {
				return NullValue(), Errorf(
					"cannot add type string with type %s", arg.Kind,
				)
			}

			acc += arg.String
		}

		return PrimitiveValue(NewString(acc)), nil

	default:
		return NullValue(), Errorf("cannot add type %s", first.Kind)
	}
}

// evalSubtract left-folds subtraction over integer or float arguments.
func evalSubtract(values []Primitive) (Value, error) {
	switch first := values[0]; first.Kind {
	case KindInteger:
		acc := first.Integer

		for _, arg := range values[1:] {
			if arg.Kind != KindInteger {
				return NullValue(), Errorf(
					"cannot subtract type integer with type %s", arg.Kind,
				)
			}

			acc -= arg.Integer
		}

		return PrimitiveValue(NewInteger(acc)), nil

	case KindFloat:
		acc := first.Float

		for _, arg := range values[1:] {
			if arg.Kind != KindFloat {
				return NullValue(), Errorf(
					"cannot subtract type float with type %s", arg.Kind,
				)
			}

			acc -= arg.Float
		}

		return PrimitiveValue(NewFloat(acc)), nil

	default:
		return NullValue(), Errorf("cannot subtract type %s", first.Kind)
	}
}

// evalMultiply left-folds multiplication over integer or float arguments.
func evalMultiply(values []Primitive) (Value, error) {
	switch first := values[0]; first.Kind {
	case KindInteger:
		acc := first.Integer

		for _, arg := range values[1:] {
			if arg.Kind != KindInteger {
				return NullValue(), Errorf(
					"cannot multiply type integer with type %s", arg.Kind,
				)
			}

			acc *= arg.Integer
		}

		return PrimitiveValue(NewInteger(acc)), nil

	case KindFloat:
		acc := first.Float

		for _, arg := range values[1:] {
			if arg.Kind != KindFloat {
				return NullValue(), Errorf(
					"cannot multiply type float with type %s", arg.Kind,
				)
			}

			acc *= arg.Float
		}

		return PrimitiveValue(NewFloat(acc)), nil

	default:
		return NullValue(), Errorf("cannot multiply type %s", first.Kind)
	}
}

// evalDivide left-folds division over integer or float arguments.
//
// Division by zero is guarded only for two accumulator states: when a zero
// already occurred earlier in the fold or the accumulator is currently
// zero, the error is "divide 0 by 0"; when the accumulator is exactly one,
// the error is "infinity division". Any other division by zero is left to
// the host's default numeric behavior (a run-time panic for integers,
// an infinity for floats).
func evalDivide(values []Primitive) (Value, error) {
	switch first := values[0]; first.Kind {
	case KindInteger:
		acc := first.Integer
		zeroSeen := false

		for _, arg := range values[1:] {
			if arg.Kind != KindInteger {
				return NullValue(), Errorf(
					"cannot divide type integer with type %s", arg.Kind,
				)
			}

			if arg.Integer == 0 {
				switch {
				case zeroSeen || acc == 0:
					return NullValue(), ErrDivideZeroByZero
				case acc == 1:
					return NullValue(), ErrInfinityDivision
				}

				zeroSeen = true
			}

			acc /= arg.Integer
		}

		return PrimitiveValue(NewInteger(acc)), nil

	case KindFloat:
		acc := first.Float
		zeroSeen := false

		for _, arg := range values[1:] {
			if arg.Kind != KindFloat {
				return NullValue(), Errorf(
					"cannot divide type float with type %s", arg.Kind,
				)
			}

			if arg.Float == 0 {
				switch {
				case zeroSeen || acc == 0:
					return NullValue(), ErrDivideZeroByZero
				case acc == 1:
					return NullValue(), ErrInfinityDivision
				}

				zeroSeen = true
			}

			acc /= arg.Float
		}

		return PrimitiveValue(NewFloat(acc)), nil

	default:
		return NullValue(), Errorf("cannot divide type %s", first.Kind)
	}
}
