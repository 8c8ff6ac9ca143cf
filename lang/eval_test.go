package lang

import (
	"context"
	"errors"
	"testing"
)

func evalSource(t *testing.T, source string) Value {
	t.Helper()

	v, err := Run(context.Background(), source, NewScope())
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	return v
}

func evalSourceError(t *testing.T, source string) error {
	t.Helper()

	_, err := Run(context.Background(), source, NewScope())
	if err == nil {
		t.Fatalf("expected eval error for %q", source)
	}

	return err
}

func assertDisplay(t *testing.T, v Value, want string) {
	t.Helper()

	if got := v.Display(); got != want {
		t.Errorf("result = %q, want %q", got, want)
	}
}

func TestEvalPrimitives(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: `42`, want: "42 : integer"},
		{source: `3.14`, want: "3.14 : float"},
		{source: `1.0`, want: "1 : float"},
		{source: `"hi"`, want: "hi : string"},
		{source: `true`, want: "true : boolean"},
		{source: `()`, want: "null : null"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assertDisplay(t, evalSource(t, tt.source), tt.want)
		})
	}
}

func TestEvalAssign(t *testing.T) {
	// Assignment yields the bound value, and the binding is visible to
	// later statements.
	assertDisplay(t, evalSource(t, `= x 2`), "2 : integer")
	assertDisplay(t, evalSource(t, "= x 2\nx"), "2 : integer")
}

func TestEvalUndefinedVariable(t *testing.T) {
	err := evalSourceError(t, `y`)
	if want := "undefined variable y"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: `+ 1 2 3`, want: "6 : integer"},
		{source: `+ 1.5 2.5`, want: "4 : float"},
		{source: `+ "a" "b" "c"`, want: "abc : string"},
		{source: `- 10 2 3`, want: "5 : integer"},
		{source: `* 2 3 4`, want: "24 : integer"},
		{source: `/ 8 2 2`, want: "2 : integer"},
		{source: `/ 5.0 2.0`, want: "2.5 : float"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assertDisplay(t, evalSource(t, tt.source), tt.want)
		})
	}
}

func TestEvalArithmeticErrors(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: `+ 1 2.0`, want: "cannot add type integer with type float"},
		{source: `+ true true`, want: "cannot add type boolean"},
		{source: `- "a" "b"`, want: "cannot subtract type string"},
		{source: `* 2 "x"`, want: "cannot multiply type integer with type string"},
		{source: `+ 1`, want: "expected at least 2 arguments for add operator"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			err := evalSourceError(t, tt.source)
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestEvalDivideByZero(t *testing.T) {
	tests := []struct {
		source string
		want   error
	}{
		{source: `/ 1 0`, want: ErrInfinityDivision},
		{source: `/ 0 0`, want: ErrDivideZeroByZero},
		{source: `/ 1.0 0.0`, want: ErrInfinityDivision},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			err := evalSourceError(t, tt.source)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEvalEqual(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: `== 1 1 1`, want: "true : boolean"},
		{source: `== 1 2`, want: "false : boolean"},
		{source: `== "a" "a"`, want: "true : boolean"},
		{source: `== () ()`, want: "true : boolean"},
		{source: `== () 1`, want: "false : boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assertDisplay(t, evalSource(t, tt.source), tt.want)
		})
	}
}

func TestEvalEqualKindMismatch(t *testing.T) {
	err := evalSourceError(t, `== 1 "1"`)
	if want := "cannot compare type integer with type string"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestEvalInverse(t *testing.T) {
	assertDisplay(t, evalSource(t, `! true`), "false : boolean")
	assertDisplay(t, evalSource(t, `! false`), "true : boolean")

	err := evalSourceError(t, `! 1`)
	if want := "cannot inverse type integer"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}

	if err := evalSourceError(t, `! true false`); !errors.Is(err, ErrInverseArity) {
		t.Errorf("error = %v, want %v", err, ErrInverseArity)
	}
}

func TestEvalIf(t *testing.T) {
	t.Run("taken branch binds in the same scope", func(t *testing.T) {
		source := "if true { = x 1; } else { = x 2; }\nx"
		assertDisplay(t, evalSource(t, source), "1 : integer")
	})

	t.Run("alternative branch", func(t *testing.T) {
		source := "if false { = x 1; } else { = x 2; }\nx"
		assertDisplay(t, evalSource(t, source), "2 : integer")
	})

	t.Run("if itself yields null", func(t *testing.T) {
		assertDisplay(t, evalSource(t, `if true { 1; } else { 2; }`), "null : null")
	})
}

func TestEvalConditionTruthiness(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "null is false",
			source: "if () { = x 1; } else { = x 2; }\nx",
			want:   "2 : integer",
		},
		{
			name:   "non-boolean is true",
			source: "if 0 { = x 1; } else { = x 2; }\nx",
			want:   "1 : integer",
		},
		{
			name:   "string is true",
			source: "if \"\" { = x 1; } else { = x 2; }\nx",
			want:   "1 : integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDisplay(t, evalSource(t, tt.source), tt.want)
		})
	}
}

func TestEvalFunctionCondition(t *testing.T) {
	// A bare identifier before a block parses as a call, so a function used
	// directly as a condition can only be reached through a built tree.
	scope := NewScope()
	scope.Set("f", FunctionValue(&Function{}))

	prog := &Program{Statements: []Statement{
		&If{Condition: Identifier{Name: "f"}, Else: true},
	}}

	_, err := Eval(prog, scope)
	if err == nil {
		t.Fatal("expected eval error")
	}
	if want := "cannot use type function as a condition"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestEvalCall(t *testing.T) {
	t.Run("two arguments", func(t *testing.T) {
		source := `= f { [a b] + a b }; f 2 3`
		assertDisplay(t, evalSource(t, source), "5 : integer")
	})

	t.Run("null literal invokes a zero parameter function", func(t *testing.T) {
		source := "= f { 7 }\nf ()"
		assertDisplay(t, evalSource(t, source), "7 : integer")
	})

	t.Run("free names resolve in the caller scope", func(t *testing.T) {
		source := "= f { + x 1 }\n= x 41\nf ()"
		assertDisplay(t, evalSource(t, source), "42 : integer")
	})

	t.Run("bindings inside the body do not escape", func(t *testing.T) {
		source := "= f { [a] = b a; b; }\nf 7\nb"
		err := evalSourceError(t, source)
		if want := "undefined variable b"; err.Error() != want {
			t.Errorf("error = %q, want %q", err, want)
		}
	})
}

func TestEvalCallErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "undefined function",
			source: `g 1`,
			want:   "undefined function variable g",
		},
		{
			name:   "callee is not a function",
			source: "= x 5\nx 1",
			want:   "cannot call type integer as a function",
		},
		{
			name:   "arity mismatch",
			source: "= f { [a b] + a b }\nf 2",
			want:   "expected 2 arguments to function f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := evalSourceError(t, tt.source)
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestEvalAnd(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: `&& true 1 "x"`, want: "true : boolean"},
		{source: `&& true false`, want: "false : boolean"},
		{source: `&& true ()`, want: "false : boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assertDisplay(t, evalSource(t, tt.source), tt.want)
		})
	}
}

func TestEvalOr(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: `|| false 1`, want: "true : boolean"},
		{source: `|| false ()`, want: "false : boolean"},
		{source: `|| true false`, want: "true : boolean"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assertDisplay(t, evalSource(t, tt.source), tt.want)
		})
	}
}

func TestEvalLogicalOperandsAreEager(t *testing.T) {
	// Every operand is evaluated before the result is decided, so a failing
	// operand after a deciding one still fails the expression.
	err := evalSourceError(t, `&& false (/ 1 0)`)
	if !errors.Is(err, ErrInfinityDivision) {
		t.Errorf("error = %v, want %v", err, ErrInfinityDivision)
	}
}

func TestEvalOperatorRejectsFunctions(t *testing.T) {
	err := evalSourceError(t, "= f { 1 }\n+ 1 f")
	if want := "cannot compare type function"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestEvalProgramResult(t *testing.T) {
	// The program result is the value of the last statement; empty programs
	// yield null.
	assertDisplay(t, evalSource(t, "1\n2\n3"), "3 : integer")
	assertDisplay(t, evalSource(t, ""), "null : null")
}
