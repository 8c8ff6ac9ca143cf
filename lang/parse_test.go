package lang

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func parse(t *testing.T, source string) *Program {
	t.Helper()

	prog, err := ParseString(context.Background(), source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return prog
}

func parseError(t *testing.T, source string) error {
	t.Helper()

	_, err := ParseString(context.Background(), source)
	if err == nil {
		t.Fatalf("expected parse error for %q", source)
	}

	return err
}

func TestParseAssign(t *testing.T) {
	prog := parse(t, `= x 1`)
	if len(prog.Statements) != 1 {
		t.Fatalf("parsed %d statements, want 1", len(prog.Statements))
	}

	assign, ok := prog.Statements[0].(*Assign)
	if !ok {
		t.Fatalf("statement is %T, want *Assign", prog.Statements[0])
	}

	if assign.Name.Name != "x" {
		t.Errorf("name = %q, want %q", assign.Name.Name, "x")
	}

	prim, ok := assign.Value.(Primitive)
	if !ok {
		t.Fatalf("value is %T, want Primitive", assign.Value)
	}

	if prim.Kind != KindInteger || prim.Integer != 1 {
		t.Errorf("value = %s %s, want integer 1", prim.Kind, prim.Text())
	}
}

func TestParseAssignTrailingToken(t *testing.T) {
	err := parseError(t, `= x 1 2`)
	if want := "unexpected token integer: 2"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestParseNullLiteral(t *testing.T) {
	prog := parse(t, `()`)

	stmt, ok := prog.Statements[0].(*ExpressionStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ExpressionStmt", prog.Statements[0])
	}

	prim, ok := stmt.Expression.(Primitive)
	if !ok || prim.Kind != KindNull {
		t.Errorf("expression = %#v, want null primitive", stmt.Expression)
	}
}

func TestParseGroupedExpression(t *testing.T) {
	prog := parse(t, `(+ 1 2)`)

	stmt := prog.Statements[0].(*ExpressionStmt)
	op, ok := stmt.Expression.(*Operator)
	if !ok {
		t.Fatalf("expression is %T, want *Operator", stmt.Expression)
	}

	if op.Kind != OpAdd {
		t.Errorf("operator = %s, want add", op.Kind)
	}
	if len(op.Args) != 2 {
		t.Errorf("operator has %d args, want 2", len(op.Args))
	}
}

func TestParseMissingRightParen(t *testing.T) {
	err := parseError(t, `(+ 1 2`)
	if want := "expected right paren; got eof"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestParseIdentifierVersusCall(t *testing.T) {
	t.Run("bare identifier", func(t *testing.T) {
		prog := parse(t, `x`)

		stmt := prog.Statements[0].(*ExpressionStmt)
		ident, ok := stmt.Expression.(Identifier)
		if !ok || ident.Name != "x" {
			t.Errorf("expression = %#v, want identifier x", stmt.Expression)
		}
	})

	t.Run("identifier with arguments", func(t *testing.T) {
		prog := parse(t, `f 1 2`)

		stmt := prog.Statements[0].(*ExpressionStmt)
		call, ok := stmt.Expression.(*Call)
		if !ok {
			t.Fatalf("expression is %T, want *Call", stmt.Expression)
		}

		if call.Name.Name != "f" || len(call.Args) != 2 {
			t.Errorf("call = %s with %d args, want f with 2",
				call.Name.Name, len(call.Args))
		}
	})

	t.Run("null argument call", func(t *testing.T) {
		prog := parse(t, `f ()`)

		stmt := prog.Statements[0].(*ExpressionStmt)
		call, ok := stmt.Expression.(*Call)
		if !ok {
			t.Fatalf("expression is %T, want *Call", stmt.Expression)
		}

		if len(call.Args) != 1 {
			t.Fatalf("call has %d args, want 1", len(call.Args))
		}

		prim, ok := call.Args[0].(Primitive)
		if !ok || prim.Kind != KindNull {
			t.Errorf("argument = %#v, want null primitive", call.Args[0])
		}
	})
}

func TestParseOperatorStopsAtInvalidArgument(t *testing.T) {
	// An argument that fails to parse ends the operand list rather than
	// failing the whole expression.
	prog := parse(t, `+ 1 =`)

	stmt := prog.Statements[0].(*ExpressionStmt)
	op := stmt.Expression.(*Operator)
	if len(op.Args) != 1 {
		t.Errorf("operator has %d args, want 1", len(op.Args))
	}
}

func TestParseFunction(t *testing.T) {
	prog := parse(t, `= f { [a b] + a b }`)

	assign := prog.Statements[0].(*Assign)
	fn, ok := assign.Value.(*Function)
	if !ok {
		t.Fatalf("value is %T, want *Function", assign.Value)
	}

	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Errorf("params = %v, want [a b]", fn.Params)
	}
	if len(fn.Body) != 1 {
		t.Errorf("body has %d statements, want 1", len(fn.Body))
	}
}

func TestParseEmptyFunction(t *testing.T) {
	prog := parse(t, `= f {}`)

	assign := prog.Statements[0].(*Assign)
	fn, ok := assign.Value.(*Function)
	if !ok {
		t.Fatalf("value is %T, want *Function", assign.Value)
	}

	if len(fn.Params) != 0 || len(fn.Body) != 0 {
		t.Errorf("function = %d params, %d statements, want empty",
			len(fn.Params), len(fn.Body))
	}
}

func TestParseFunctionThenCall(t *testing.T) {
	prog := parse(t, `= f { [a b] + a b }; f 2 3`)
	if len(prog.Statements) != 2 {
		t.Fatalf("parsed %d statements, want 2", len(prog.Statements))
	}

	stmt, ok := prog.Statements[1].(*ExpressionStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ExpressionStmt", prog.Statements[1])
	}

	if _, ok := stmt.Expression.(*Call); !ok {
		t.Errorf("expression is %T, want *Call", stmt.Expression)
	}
}

func TestParseIfElse(t *testing.T) {
	prog := parse(t, `if true { 1; } else { 2; }`)

	node, ok := prog.Statements[0].(*If)
	if !ok {
		t.Fatalf("statement is %T, want *If", prog.Statements[0])
	}

	if !node.Else {
		t.Error("else branch not recorded")
	}
	if len(node.Consequence) != 1 || len(node.Alternative) != 1 {
		t.Errorf("branches have %d and %d statements, want 1 and 1",
			len(node.Consequence), len(node.Alternative))
	}

	cond, ok := node.Condition.(Primitive)
	if !ok || cond.Kind != KindBoolean || !cond.Boolean {
		t.Errorf("condition = %#v, want boolean true", node.Condition)
	}
}

func TestParseIfWithoutElseTopLevel(t *testing.T) {
	err := parseError(t, `if true { 1 }`)
	if want := "expected block end or else statement; got eof"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestParseIfWithoutElseInsideBlock(t *testing.T) {
	prog := parse(t, "= f { if true { 1 }\n}")

	assign := prog.Statements[0].(*Assign)
	fn := assign.Value.(*Function)
	if len(fn.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(fn.Body))
	}

	node, ok := fn.Body[0].(*If)
	if !ok {
		t.Fatalf("body statement is %T, want *If", fn.Body[0])
	}

	if node.Else {
		t.Error("else branch recorded for if without else")
	}
}

func TestParseIfMissingBlock(t *testing.T) {
	err := parseError(t, `if true 1`)
	if want := "expected block start; got integer: 1"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestParseUnexpectedEndOfFile(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "open function body", source: `= f {`},
		{name: "open if block", source: `if true { 1`},
		{name: "open parameter list", source: `= f { [a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.source)
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("error = %v, want %v", err, ErrUnexpectedEOF)
			}
		})
	}
}

func TestParseLogicalExpressions(t *testing.T) {
	prog := parse(t, `&& true false`)

	stmt := prog.Statements[0].(*ExpressionStmt)
	and, ok := stmt.Expression.(*And)
	if !ok {
		t.Fatalf("expression is %T, want *And", stmt.Expression)
	}
	if len(and.Args) != 2 {
		t.Errorf("conjunction has %d args, want 2", len(and.Args))
	}

	prog = parse(t, `|| false true`)

	stmt = prog.Statements[0].(*ExpressionStmt)
	or, ok := stmt.Expression.(*Or)
	if !ok {
		t.Fatalf("expression is %T, want *Or", stmt.Expression)
	}
	if len(or.Args) != 2 {
		t.Errorf("disjunction has %d args, want 2", len(or.Args))
	}
}

func TestProgramPrint(t *testing.T) {
	prog := parse(t, `= x 1`)

	var sb strings.Builder
	prog.Print(&sb)

	out := sb.String()
	for _, want := range []string{"Assign: x", "integer: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}
