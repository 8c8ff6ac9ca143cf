// Package token defines the lexical vocabulary shared by the clip lexer and
// parser. Tokens are immutable once produced.
package token

import "strconv"

// Kind discriminates the category of a lexed token.
type Kind int

const (
	// EOF terminates every token stream.
	EOF Kind = iota
	// Illegal carries the message describing unexpected input. The lexer
	// never aborts; failure is deferred to the parser.
	Illegal

	// Separators.
	Newline
	Semicolon

	// Structural punctuation.
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	BlockStart
	BlockEnd

	// Keywords.
	If
	Elif
	Else
	True
	False

	// Operator symbols.
	Assign
	Equal
	Plus
	Minus
	Asterisk
	Slash
	Bang
	And
	Or

	// Literals.
	Integer
	Float
	String
	Ident
)

// kindName maps each Kind to the diagnostic name used in error messages.
var kindName = map[Kind]string{
	EOF:          "eof",
	Illegal:      "illegal",
	Newline:      "newline",
	Semicolon:    "semicolon",
	LeftParen:    "left paren",
	RightParen:   "right paren",
	LeftBracket:  "left bracket",
	RightBracket: "right bracket",
	BlockStart:   "block start",
	BlockEnd:     "block end",
	If:           "if",
	Elif:         "elif",
	Else:         "else",
	True:         "boolean: true",
	False:        "boolean: false",
	Assign:       "assign",
	Equal:        "equal",
	Plus:         "plus",
	Minus:        "minus",
	Asterisk:     "asterisk",
	Slash:        "slash",
	Bang:         "bang",
	And:          "and",
	Or:           "or",
	Integer:      "integer",
	Float:        "float",
	String:       "string",
	Ident:        "ident",
}

// String returns the diagnostic name of the kind.
func (k Kind) String() string {
	name, ok := kindName[k]
	if !ok {
		return "unknown"
	}

	return name
}

// Span is a half-open source region with start/stop line and column.
// Lines and columns are zero-based, matching REPL prompt offsets.
type Span struct {
	LineStart int
	LineStop  int
	ColStart  int
	ColStop   int
}

// String renders the span as "line:line, col:col".
func (s Span) String() string {
	return strconv.Itoa(s.LineStart) + ":" + strconv.Itoa(s.LineStop) +
		", " + strconv.Itoa(s.ColStart) + ":" + strconv.Itoa(s.ColStop)
}

// Token is a lexed unit: a kind, the literal text for kinds that carry one
// (Integer, Float, String, Ident, Illegal), and its source span.
type Token struct {
	Literal string
	Span    Span
	Kind    Kind
}

// New creates a token without a literal payload.
func New(kind Kind, span Span) Token {
	return Token{Kind: kind, Span: span}
}

// NewLiteral creates a token carrying literal text.
func NewLiteral(kind Kind, literal string, span Span) Token {
	return Token{Kind: kind, Literal: literal, Span: span}
}

// String returns the diagnostic rendering used in parser error messages,
// e.g. "left paren", "integer: 42", or "illegal: unexpected: &".
func (t Token) String() string {
	switch t.Kind {
	case Integer, Float, String, Ident, Illegal:
		return t.Kind.String() + ": " + t.Literal
	default:
		return t.Kind.String()
	}
}

// Dump renders the token with its source span for --tokens output.
func (t Token) Dump() string {
	return "Token(" + t.String() + ", " + t.Span.String() + ")"
}
