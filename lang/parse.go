package lang

import (
	"strconv"

	"github.com/devnote-dev/clip/lang/token"
)

// Parser is a recursive-descent parser over a token list. It keeps a cursor
// with the current token and one token of lookahead; there is no general
// backtracking.
type Parser struct {
	tokens []token.Token
	pos    int
}

// NewParser creates a Parser over the given tokens. The slice must be
// terminated by an EOF token, as produced by the lexer.
func NewParser(tokens []token.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{token.New(token.EOF, token.Span{})}
	}

	return &Parser{tokens: tokens}
}

// Parse consumes the token stream and returns the Program, or the first
// syntax error encountered.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}

	for {
		switch p.cur().Kind {
		case token.EOF:
			return prog, nil

		case token.Semicolon, token.Newline:
			p.next()

		default:
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}

			prog.Statements = append(prog.Statements, stmt)

			if p.cur().Kind == token.EOF {
				return prog, nil
			}

			p.next()
		}
	}
}

// cur returns the token under the cursor.
func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

// next advances the cursor and returns the new current token. The cursor
// never advances past the trailing EOF.
func (p *Parser) next() token.Token {
	if p.pos+1 < len(p.tokens) {
		p.pos++
	}

	return p.tokens[p.pos]
}

// peek returns the token after the cursor without advancing, or EOF when
// the cursor is at the end of the stream.
func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.New(token.EOF, token.Span{})
	}

	return p.tokens[p.pos+1]
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.cur().Kind {
	case token.Assign:
		return p.parseAssign()
	case token.If:
		return p.parseIf()
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		return &ExpressionStmt{Expression: expr}, nil
	}
}

// parseAssign parses: '=' Identifier Expression. The statement must be
// immediately followed by end of input, a semicolon, or a newline.
func (p *Parser) parseAssign() (Statement, error) {
	p.next()

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	p.next()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	switch t := p.peek(); t.Kind {
	case token.EOF, token.Semicolon, token.Newline:
		return &Assign{Name: name, Value: value}, nil
	default:
		return nil, Errorf("unexpected token %s", t)
	}
}

// parseIf parses: 'if' Expression '{' Statement* '}' with an optional
// 'else' block following the same brace rule.
func (p *Parser) parseIf() (Statement, error) {
	p.next()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if t := p.next(); t.Kind != token.BlockStart {
		return nil, Errorf("expected block start; got %s", t)
	}

	consequence, err := p.parseIfBlock()
	if err != nil {
		return nil, err
	}

	node := &If{Condition: cond, Consequence: consequence}

	for p.peek().Kind == token.Semicolon || p.peek().Kind == token.Newline {
		p.next()
	}

	switch t := p.peek(); t.Kind {
	case token.BlockEnd:
		// No else: the if is the last statement of an enclosing block.
		p.next()

	case token.Else:
		p.next()

		if t := p.next(); t.Kind != token.BlockStart {
			return nil, Errorf("expected block start; got %s", t)
		}

		alternative, err := p.parseIfBlock()
		if err != nil {
			return nil, err
		}

		node.Alternative = alternative
		node.Else = true

		p.next()

	default:
		return nil, Errorf("expected block end or else statement; got %s", t)
	}

	return node, nil
}

// parseIfBlock collects statements until the closing brace. On return the
// cursor rests on the closing brace.
func (p *Parser) parseIfBlock() ([]Statement, error) {
	var stmts []Statement

	for {
		switch p.peek().Kind {
		case token.EOF:
			return nil, ErrUnexpectedEOF

		case token.Semicolon, token.Newline:
			p.next()

		case token.BlockEnd:
			p.next()

			return stmts, nil

		default:
			p.next()

			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}

			stmts = append(stmts, stmt)
		}
	}
}

// parseExpression parses any expression, allowing an identifier followed by
// more tokens to form a Call.
func (p *Parser) parseExpression() (Expression, error) {
	return p.parseExpr(true)
}

// parseExpressionNonCall parses any expression except a Call: a bare
// identifier is always a variable reference. Operator arguments are parsed
// in this form.
func (p *Parser) parseExpressionNonCall() (Expression, error) {
	return p.parseExpr(false)
}

func (p *Parser) parseExpr(allowCall bool) (Expression, error) {
	switch t := p.cur(); t.Kind {
	case token.LeftParen:
		// Empty parenthesis parses as the null primitive.
		if p.next().Kind == token.RightParen {
			return Null, nil
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if t := p.peek(); t.Kind != token.RightParen {
			return nil, Errorf("expected right paren; got %s", t)
		}

		p.next()

		return expr, nil

	case token.And:
		return p.parseAnd()

	case token.Or:
		return p.parseOr()

	case token.BlockStart:
		return p.parseFunction()

	case token.Integer, token.Float, token.String, token.True, token.False:
		return p.parsePrimitive()

	case token.Ident:
		if !allowCall {
			return p.parseIdentifier()
		}

		switch p.peek().Kind {
		case token.EOF, token.Semicolon, token.Newline:
			return p.parseIdentifier()
		default:
			return p.parseCall()
		}

	case token.Equal, token.Plus, token.Minus, token.Asterisk,
		token.Slash, token.Bang:
		return p.parseOperator()

	default:
		return nil, Errorf("unexpected token %s", t)
	}
}

func (p *Parser) parsePrimitive() (Expression, error) {
	switch t := p.cur(); t.Kind {
	case token.Integer:
		v, err := strconv.ParseInt(t.Literal, 10, 64)
		if err != nil {
			return nil, WrapError(err)
		}

		return NewInteger(v), nil

	case token.Float:
		v, err := strconv.ParseFloat(t.Literal, 64)
		if err != nil {
			return nil, WrapError(err)
		}

		return NewFloat(v), nil

	case token.String:
		return NewString(t.Literal), nil

	case token.True:
		return NewBoolean(true), nil

	case token.False:
		return NewBoolean(false), nil

	default:
		return nil, Errorf("unexpected token %s", t)
	}
}

func (p *Parser) parseIdentifier() (Identifier, error) {
	if t := p.cur(); t.Kind != token.Ident {
		return Identifier{}, Errorf("unexpected token %s", t)
	}

	return Identifier{Name: p.cur().Literal}, nil
}

// parseOperator collects a variadic operator's arguments. Collection stops
// at a separator or closing delimiter, and also as soon as an argument
// fails to parse: the partial failure is swallowed, not propagated, and the
// already-collected arguments are used.
func (p *Parser) parseOperator() (Expression, error) {
	var kind OperatorKind

	switch p.cur().Kind {
	case token.Equal:
		kind = OpEqual
	case token.Plus:
		kind = OpAdd
	case token.Minus:
		kind = OpSubtract
	case token.Asterisk:
		kind = OpMultiply
	case token.Slash:
		kind = OpDivide
	case token.Bang:
		kind = OpInverse
	default:
		return nil, Errorf("unexpected token %s", p.cur())
	}

	op := &Operator{Kind: kind}

	for {
		switch p.peek().Kind {
		case token.EOF, token.Semicolon, token.Newline,
			token.RightParen, token.BlockStart:
			return op, nil

		default:
			p.next()

			expr, err := p.parseExpressionNonCall()
			if err != nil {
				// Try-parse: stop and keep what was collected.
				return op, nil
			}

			op.Args = append(op.Args, expr)
		}
	}
}

// parseCall parses an identifier applied to the expressions that follow it,
// up to the next separator or closing paren.
func (p *Parser) parseCall() (Expression, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	call := &Call{Name: name}

	for {
		switch p.peek().Kind {
		case token.EOF, token.Semicolon, token.Newline, token.RightParen:
			return call, nil

		default:
			p.next()

			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			call.Args = append(call.Args, expr)
		}
	}
}

func (p *Parser) parseAnd() (Expression, error) {
	args, err := p.parseLogicalArgs()
	if err != nil {
		return nil, err
	}

	return &And{Args: args}, nil
}

func (p *Parser) parseOr() (Expression, error) {
	args, err := p.parseLogicalArgs()
	if err != nil {
		return nil, err
	}

	return &Or{Args: args}, nil
}

// parseLogicalArgs collects operands for And/Or. Unlike operator arguments,
// a failed sub-parse propagates.
func (p *Parser) parseLogicalArgs() ([]Expression, error) {
	var args []Expression

	for {
		switch p.peek().Kind {
		case token.EOF, token.Semicolon, token.Newline,
			token.RightParen, token.BlockStart:
			return args, nil

		default:
			p.next()

			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			args = append(args, expr)
		}
	}
}

// parseFunction parses: '{' ('[' Identifier* ']')? Statement* '}'. The
// cursor is on the opening brace on entry and rests on the closing brace on
// return, so an enclosing statement can check its trailing separator.
func (p *Parser) parseFunction() (Expression, error) {
	fn := &Function{}

	if p.next().Kind == token.LeftBracket {
		switch t := p.next(); t.Kind {
		case token.EOF:
			return nil, ErrUnexpectedEOF

		case token.RightBracket:
			p.next()

		default:
			param, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}

			fn.Params = append(fn.Params, param)

		params:
			for {
				switch t := p.next(); t.Kind {
				case token.EOF:
					return nil, ErrUnexpectedEOF

				case token.RightBracket:
					p.next()

					break params

				default:
					param, err := p.parseIdentifier()
					if err != nil {
						return nil, err
					}

					fn.Params = append(fn.Params, param)
				}
			}
		}
	}

	for {
		switch p.cur().Kind {
		case token.EOF:
			return nil, ErrUnexpectedEOF

		case token.Semicolon, token.Newline:
			p.next()

		case token.BlockEnd:
			return fn, nil

		default:
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}

			fn.Body = append(fn.Body, stmt)

			if p.cur().Kind == token.BlockEnd {
				return fn, nil
			}

			p.next()
		}
	}
}
