// Package lexer turns clip source text into an ordered token sequence.
//
// The lexer never fails: malformed input is embedded in the stream as
// Illegal tokens and every stream is terminated by EOF.
package lexer

import (
	"github.com/devnote-dev/clip/lang/token"
)

// Lexer scans source text left to right with a single rune of lookahead.
type Lexer struct {
	input []rune
	pos   int
	span  token.Span
}

// New creates a Lexer over the given source text.
func New(input []rune) *Lexer {
	return &Lexer{input: input}
}

// NewString creates a Lexer over the given source string.
func NewString(input string) *Lexer {
	return New([]rune(input))
}

// Scan tokenizes the entire input. The returned slice always ends with an
// EOF token.
func (l *Lexer) Scan() []token.Token {
	var res []token.Token

	for {
		c, ok := l.peek()
		if !ok {
			res = append(res, token.New(token.EOF, l.loc()))

			return res
		}

		switch c {
		case ' ', '\t':
			l.next()
			l.span.ColStart = l.span.ColStop

		case '\r':
			// A carriage return is dropped; a following newline is
			// handled by the next iteration.
			l.next()

		case '\n':
			res = append(res, token.New(token.Newline, l.loc()))
			l.next()
			l.span.LineStart++
			l.span.ColStop = 0

		case ';':
			res = append(res, token.New(token.Semicolon, l.loc()))
			l.next()

		case '#':
			tok, terminated := l.skipComment()
			if terminated {
				res = append(res, tok)
			}

		case '(':
			res = append(res, token.New(token.LeftParen, l.loc()))
			l.next()

		case ')':
			res = append(res, token.New(token.RightParen, l.loc()))
			l.next()

		case '[':
			res = append(res, token.New(token.LeftBracket, l.loc()))
			l.next()

		case ']':
			res = append(res, token.New(token.RightBracket, l.loc()))
			l.next()

		case '{':
			res = append(res, token.New(token.BlockStart, l.loc()))
			l.next()

		case '}':
			res = append(res, token.New(token.BlockEnd, l.loc()))
			l.next()

		case '=':
			l.next()

			if c, ok := l.peek(); ok && c == '=' {
				res = append(res, token.New(token.Equal, l.loc()))
				l.next()
			} else {
				res = append(res, token.New(token.Assign, l.loc()))
			}

		case '+':
			res = append(res, token.New(token.Plus, l.loc()))
			l.next()

		case '-':
			res = append(res, token.New(token.Minus, l.loc()))
			l.next()

		case '*':
			res = append(res, token.New(token.Asterisk, l.loc()))
			l.next()

		case '/':
			res = append(res, token.New(token.Slash, l.loc()))
			l.next()

		case '!':
			res = append(res, token.New(token.Bang, l.loc()))
			l.next()

		case '&':
			l.next()

			if c, ok := l.peek(); ok && c == '&' {
				res = append(res, token.New(token.And, l.loc()))
				l.next()
			} else {
				res = append(res, token.NewLiteral(
					token.Illegal, "unexpected: &", l.loc(),
				))
			}

		case '|':
			l.next()

			if c, ok := l.peek(); ok && c == '|' {
				res = append(res, token.New(token.Or, l.loc()))
				l.next()
			} else {
				res = append(res, token.NewLiteral(
					token.Illegal, "unexpected: |", l.loc(),
				))
			}

		case '"':
			res = append(res, l.scanString())

		default:
			switch {
			case isDigit(c):
				res = append(res, l.scanNumber())

			case isIdent(c):
				res = append(res, l.scanIdent())

			default:
				res = append(res, token.NewLiteral(
					token.Illegal, "unexpected: "+string(c), l.loc(),
				))
				l.next()
			}
		}
	}
}

// skipComment consumes input through end of line or end of input.
// When input ends mid-comment, it returns an EOF token and true.
func (l *Lexer) skipComment() (token.Token, bool) {
	for {
		c, ok := l.peek()
		if !ok {
			return token.New(token.EOF, l.loc()), true
		}

		l.next()

		if c == '\n' {
			return token.Token{}, false
		}
	}
}

// scanNumber accumulates a digit sequence into an Integer literal. A single
// '.' switches the literal to Float; a second '.' is illegal and consumed.
// Underscores are digit-group separators: consumed and skipped.
func (l *Lexer) scanNumber() token.Token {
	var (
		value []rune
		float bool
	)

	for {
		c, ok := l.peek()
		if !ok {
			break
		}

		switch {
		case isDigit(c):
			value = append(value, c)
			l.next()

		case c == '_':
			// Group separator. Must advance or the scan stalls here.
			l.next()

		case c == '.':
			if float {
				l.next()

				return token.NewLiteral(
					token.Illegal, "unexpected: "+string(c), l.loc(),
				)
			}

			float = true

			value = append(value, '.')
			l.next()

		default:
			if float {
				return token.NewLiteral(token.Float, string(value), l.loc())
			}

			return token.NewLiteral(token.Integer, string(value), l.loc())
		}
	}

	if float {
		return token.NewLiteral(token.Float, string(value), l.loc())
	}

	return token.NewLiteral(token.Integer, string(value), l.loc())
}

// scanString copies content between double quotes verbatim. A backslash
// toggles the escaped flag and is itself copied into the content; while the
// flag is set a quote is literal text and the flag clears. End of input
// before the closing quote yields an Illegal token.
func (l *Lexer) scanString() token.Token {
	var (
		content []rune
		escaped bool
	)

	l.next() // opening quote

	for {
		c, ok := l.peek()
		if !ok {
			return token.NewLiteral(
				token.Illegal, "unterminated quote string", l.loc(),
			)
		}

		switch c {
		case '\\':
			escaped = !escaped

			content = append(content, c)
			l.next()

		case '"':
			if escaped {
				escaped = false

				content = append(content, c)
				l.next()

				continue
			}

			l.next()

			return token.NewLiteral(token.String, string(content), l.loc())

		default:
			escaped = false

			content = append(content, c)
			l.next()
		}
	}
}

// scanIdent accumulates identifier characters (letters and underscore only)
// and maps reserved words to their keyword tokens.
func (l *Lexer) scanIdent() token.Token {
	var ident []rune

	for {
		c, ok := l.peek()
		if !ok || !isIdent(c) {
			break
		}

		ident = append(ident, c)
		l.next()
	}

	switch string(ident) {
	case "if":
		return token.New(token.If, l.loc())
	case "elif":
		return token.New(token.Elif, l.loc())
	case "else":
		return token.New(token.Else, l.loc())
	case "true":
		return token.New(token.True, l.loc())
	case "false":
		return token.New(token.False, l.loc())
	default:
		return token.NewLiteral(token.Ident, string(ident), l.loc())
	}
}

// peek returns the current rune without consuming it.
func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}

	return l.input[l.pos], true
}

// next consumes the current rune and advances the column counter.
func (l *Lexer) next() {
	l.pos++
	l.span.ColStop++
}

// loc returns the span of the token being emitted and rolls the start
// markers forward so the next token begins where this one stopped.
func (l *Lexer) loc() token.Span {
	span := l.span
	l.span.LineStop = l.span.LineStart
	l.span.ColStart = l.span.ColStop

	return span
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdent(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
