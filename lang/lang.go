// Package lang implements the clip language pipeline: a lexer turning
// source text into tokens, a recursive-descent parser turning tokens into a
// statement tree, and a tree-walking evaluator executing that tree against
// a chained variable scope.
//
// The pipeline composes in strict one-directional data flow:
//
//	source text -> [lexer] -> tokens -> [parser] -> Program -> [Eval] -> Value
//
// The core performs no I/O; reading files, the interactive loop, and
// token/tree debug printing live in the surrounding cli packages.
package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/devnote-dev/clip/lang/lexer"
	"github.com/devnote-dev/clip/lang/token"
	"github.com/devnote-dev/clip/log"
)

// ParseReader parses a Program from an io.Reader.
func ParseReader(ctx context.Context, r io.Reader) (*Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data))
}

// ParseString parses a Program from a string. The lexer itself never
// fails; illegal input is embedded in the token stream and surfaces here
// as a parse error.
func ParseString(ctx context.Context, source string) (*Program, error) {
	return ParseTokens(ctx, Scan(source))
}

// ParseTokens parses a Program from an already-scanned token stream.
func ParseTokens(ctx context.Context, tokens []token.Token) (*Program, error) {
	prog, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	log.TraceContext(ctx, "parse complete",
		slog.Int("statement_count", len(prog.Statements)))

	return prog, nil
}

// Scan tokenizes source text. The returned stream always ends with EOF.
func Scan(source string) []token.Token {
	return lexer.NewString(source).Scan()
}

// Run parses and evaluates source text against the given scope, returning
// the value of the last statement. It is the convenience form used by the
// REPL and the file runner.
func Run(ctx context.Context, source string, scope *Scope) (Value, error) {
	prog, err := ParseString(ctx, source)
	if err != nil {
		return NullValue(), err
	}

	value, err := Eval(prog, scope)
	if err != nil {
		return NullValue(), err
	}

	log.TraceContext(ctx, "eval complete",
		slog.String("type", value.Type()),
		slog.Int("scope_size", scope.Len()))

	return value, nil
}
