package lang

// Eval executes the program's statements in order against the given scope,
// returning the value of the last statement executed (null if none ran).
// The scope is mutated as a side effect of assignment statements.
//
// Evaluation fails fast: the first error aborts the remainder of statement
// execution with no partial result.
func Eval(prog *Program, scope *Scope) (Value, error) {
	result := NullValue()

	for _, stmt := range prog.Statements {
		var err error

		result, err = evalStatement(stmt, scope)
		if err != nil {
			return NullValue(), err
		}
	}

	return result, nil
}

func evalStatement(stmt Statement, scope *Scope) (Value, error) {
	switch s := stmt.(type) {
	case *Assign:
		return evalAssign(s, scope)
	case *If:
		return evalIf(s, scope)
	case *ExpressionStmt:
		return evalExpr(s.Expression, scope)
	default:
		return NullValue(), Errorf("unknown statement %T", stmt)
	}
}

// evalAssign evaluates the right-hand expression in the current scope,
// stores it under the target name in the current scope only, and returns
// the value.
func evalAssign(a *Assign, scope *Scope) (Value, error) {
	value, err := evalExpr(a.Value, scope)
	if err != nil {
		return NullValue(), err
	}

	scope.Set(a.Name.Name, value)

	return value, nil
}

// evalIf evaluates the condition and executes the matching branch in the
// same scope, so branch-local assignments remain visible afterwards. An If
// statement always yields null.
func evalIf(s *If, scope *Scope) (Value, error) {
	cond, err := evalExpr(s.Condition, scope)
	if err != nil {
		return NullValue(), err
	}

	truthy, err := condTruth(cond)
	if err != nil {
		return NullValue(), err
	}

	branch := s.Consequence
	if !truthy {
		branch = s.Alternative
	}

	for _, stmt := range branch {
		if _, err := evalStatement(stmt, scope); err != nil {
			return NullValue(), err
		}
	}

	return NullValue(), nil
}

// condTruth classifies a condition value: booleans are used as-is, null is
// false, any other primitive is true, and a function is a type error.
func condTruth(v Value) (bool, error) {
	if v.IsFunction() {
		return false, Errorf("cannot use type function as a condition")
	}

	switch v.Prim.Kind {
	case KindBoolean:
		return v.Prim.Boolean, nil
	case KindNull:
		return false, nil
	default:
		return true, nil
	}
}

func evalExpr(expr Expression, scope *Scope) (Value, error) {
	switch e := expr.(type) {
	case Primitive:
		return PrimitiveValue(e), nil

	case Identifier:
		v, ok := scope.Get(e.Name)
		if !ok {
			return NullValue(), Errorf("undefined variable %s", e.Name)
		}

		return v, nil

	case *Operator:
		return evalOperator(e, scope)

	case *Function:
		return FunctionValue(e), nil

	case *Call:
		return evalCall(e, scope)

	case *And:
		return evalAnd(e, scope)

	case *Or:
		return evalOr(e, scope)

	default:
		return NullValue(), Errorf("unknown expression %T", expr)
	}
}

// evalOperands evaluates every operand eagerly into a list. There is no
// short-circuit for And/Or: all operands run before classification.
func evalOperands(args []Expression, scope *Scope) ([]Value, error) {
	values := make([]Value, 0, len(args))

	for _, arg := range args {
		v, err := evalExpr(arg, scope)
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return values, nil
}

// evalAnd is false when any operand is boolean false or null; otherwise
// true, functions included.
func evalAnd(a *And, scope *Scope) (Value, error) {
	values, err := evalOperands(a.Args, scope)
	if err != nil {
		return NullValue(), err
	}

	for _, v := range values {
		if v.IsFunction() {
			continue
		}

		switch v.Prim.Kind {
		case KindNull:
			return PrimitiveValue(NewBoolean(false)), nil
		case KindBoolean:
			if !v.Prim.Boolean {
				return PrimitiveValue(NewBoolean(false)), nil
			}
		}
	}

	return PrimitiveValue(NewBoolean(true)), nil
}

// evalOr is true when any operand is a function or a primitive that is
// neither boolean false nor null; otherwise false.
func evalOr(o *Or, scope *Scope) (Value, error) {
	values, err := evalOperands(o.Args, scope)
	if err != nil {
		return NullValue(), err
	}

	for _, v := range values {
		if v.IsFunction() {
			return PrimitiveValue(NewBoolean(true)), nil
		}

		switch v.Prim.Kind {
		case KindNull:
		case KindBoolean:
			if v.Prim.Boolean {
				return PrimitiveValue(NewBoolean(true)), nil
			}
		default:
			return PrimitiveValue(NewBoolean(true)), nil
		}
	}

	return PrimitiveValue(NewBoolean(false)), nil
}

// evalCall resolves the callee name in the current scope, binds arguments
// in a child scope chained to the caller's scope at call time, and runs the
// body. The callee therefore sees the caller's live bindings at the call
// site, not the bindings where the function was defined.
func evalCall(call *Call, scope *Scope) (Value, error) {
	val, ok := scope.Get(call.Name.Name)
	if !ok {
		return NullValue(), Errorf(
			"undefined function variable %s", call.Name.Name,
		)
	}

	if !val.IsFunction() {
		return NullValue(), Errorf(
			"cannot call type %s as a function", val.Prim.Kind,
		)
	}

	fn := val.Fn

	args := call.Args
	if len(fn.Params) == 0 && len(args) == 1 && isNullLiteral(args[0]) {
		// Conventional empty-call syntax: f ()
		args = nil
	}

	if len(args) != len(fn.Params) {
		return NullValue(), Errorf(
			"expected %d arguments to function %s",
			len(fn.Params), call.Name.Name,
		)
	}

	child := scope.Child()

	for i, param := range fn.Params {
		v, err := evalExpr(args[i], child)
		if err != nil {
			return NullValue(), err
		}

		child.Set(param.Name, v)
	}

	result := NullValue()

	for _, stmt := range fn.Body {
		var err error

		result, err = evalStatement(stmt, child)
		if err != nil {
			return NullValue(), err
		}
	}

	return result, nil
}

func isNullLiteral(expr Expression) bool {
	p, ok := expr.(Primitive)

	return ok && p.Kind == KindNull
}
