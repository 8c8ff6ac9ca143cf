package lang

import (
	"fmt"
	"io"
	"strings"
)

// Program is an ordered sequence of statements; the unit the evaluator
// consumes.
type Program struct {
	Statements []Statement
}

// Statement is one of Assign, If, or a bare expression.
type Statement interface {
	stmtNode()
	dump(w io.Writer, indent int)
}

// Expression is an immutable tree owned by its enclosing statement.
type Expression interface {
	exprNode()
	dump(w io.Writer, indent int)
}

// Assign binds the value of an expression to a name in the innermost scope.
type Assign struct {
	Name  Identifier
	Value Expression
}

// If executes one of two statement blocks depending on its condition. The
// alternative block is absent when Else is false.
type If struct {
	Condition   Expression
	Consequence []Statement
	Alternative []Statement
	Else        bool
}

// ExpressionStmt is a bare expression in statement position.
type ExpressionStmt struct {
	Expression Expression
}

func (*Assign) stmtNode()         {}
func (*If) stmtNode()             {}
func (*ExpressionStmt) stmtNode() {}

// PrimitiveKind discriminates the atomic value kinds.
type PrimitiveKind int

const (
	KindInteger PrimitiveKind = iota
	KindFloat
	KindString
	KindBoolean
	KindNull
)

// String returns the short type name used in diagnostics and REPL display.
func (k PrimitiveKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Primitive is an atomic literal: 64-bit integer, 64-bit float, string,
// boolean, or null. Exactly the field selected by Kind is meaningful.
type Primitive struct {
	String  string
	Integer int64
	Float   float64
	Boolean bool
	Kind    PrimitiveKind
}

// Null is the null primitive.
var Null = Primitive{Kind: KindNull}

// NewInteger creates an integer primitive.
func NewInteger(v int64) Primitive { return Primitive{Kind: KindInteger, Integer: v} }

// NewFloat creates a float primitive.
func NewFloat(v float64) Primitive { return Primitive{Kind: KindFloat, Float: v} }

// NewString creates a string primitive.
func NewString(v string) Primitive { return Primitive{Kind: KindString, String: v} }

// NewBoolean creates a boolean primitive.
func NewBoolean(v bool) Primitive { return Primitive{Kind: KindBoolean, Boolean: v} }

// Identifier references a variable by name.
type Identifier struct {
	Name string
}

// OperatorKind discriminates the variadic operator applications.
type OperatorKind int

const (
	OpEqual OperatorKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpInverse
)

// String returns the operator name used in diagnostics.
func (k OperatorKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpInverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Operator is a variadic operator application typed by its first operand.
type Operator struct {
	Args []Expression
	Kind OperatorKind
}

// Function is a parameter-name list plus a body statement sequence. It
// captures no enclosing environment at definition time; free names resolve
// against the caller's scope at call time.
type Function struct {
	Params []Identifier
	Body   []Statement
}

// Call applies the function bound to Name to the given argument expressions.
type Call struct {
	Name Identifier
	Args []Expression
}

// And is the eager logical conjunction of its operands.
type And struct {
	Args []Expression
}

// Or is the eager logical disjunction of its operands.
type Or struct {
	Args []Expression
}

func (Primitive) exprNode()  {}
func (Identifier) exprNode() {}
func (*Operator) exprNode()  {}
func (*Function) exprNode()  {}
func (*Call) exprNode()      {}
func (*And) exprNode()       {}
func (*Or) exprNode()        {}

// Print writes a formatted representation of the statement tree to the
// writer. It is used by the --parse debug mode.
func (prog *Program) Print(w io.Writer) {
	for _, stmt := range prog.Statements {
		stmt.dump(w, 0)
	}
}

func put(w io.Writer, indent int, parts ...string) {
	_, err := io.WriteString(
		w, strings.Repeat("  ", indent)+strings.Join(parts, ": ")+"\n",
	)
	if err != nil {
		panic(err)
	}
}

func dumpBlock(w io.Writer, indent int, label string, stmts []Statement) {
	put(w, indent, label)

	for _, stmt := range stmts {
		stmt.dump(w, indent+1)
	}
}

func dumpArgs(w io.Writer, indent int, args []Expression) {
	for _, arg := range args {
		arg.dump(w, indent)
	}
}

func (s *Assign) dump(w io.Writer, indent int) {
	put(w, indent, "Assign", s.Name.Name)
	s.Value.dump(w, indent+1)
}

func (s *If) dump(w io.Writer, indent int) {
	put(w, indent, "If")
	s.Condition.dump(w, indent+1)
	dumpBlock(w, indent+1, "Consequence", s.Consequence)

	if s.Else {
		dumpBlock(w, indent+1, "Alternative", s.Alternative)
	}
}

func (s *ExpressionStmt) dump(w io.Writer, indent int) {
	s.Expression.dump(w, indent)
}

func (p Primitive) dump(w io.Writer, indent int) {
	put(w, indent, p.Kind.String(), p.Text())
}

func (i Identifier) dump(w io.Writer, indent int) {
	put(w, indent, "Identifier", i.Name)
}

func (o *Operator) dump(w io.Writer, indent int) {
	put(w, indent, "Operator", o.Kind.String())
	dumpArgs(w, indent+1, o.Args)
}

func (f *Function) dump(w io.Writer, indent int) {
	names := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		names = append(names, param.Name)
	}

	put(w, indent, "Function", "["+strings.Join(names, " ")+"]")
	dumpBlock(w, indent+1, "Body", f.Body)
}

func (c *Call) dump(w io.Writer, indent int) {
	put(w, indent, "Call", c.Name.Name)
	dumpArgs(w, indent+1, c.Args)
}

func (a *And) dump(w io.Writer, indent int) {
	put(w, indent, "And")
	dumpArgs(w, indent+1, a.Args)
}

func (o *Or) dump(w io.Writer, indent int) {
	put(w, indent, "Or")
	dumpArgs(w, indent+1, o.Args)
}

// Text renders the primitive's value in its human-readable form.
func (p Primitive) Text() string {
	switch p.Kind {
	case KindInteger:
		return fmt.Sprintf("%d", p.Integer)
	case KindFloat:
		return formatFloat(p.Float)
	case KindString:
		return p.String
	case KindBoolean:
		if p.Boolean {
			return "true"
		}

		return "false"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}
