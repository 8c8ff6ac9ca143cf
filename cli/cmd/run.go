package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/devnote-dev/clip/lang"
)

// Run scans, parses, and evaluates a clip source file, printing the result
// of the final statement.
type Run struct {
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin" name:"source"`

	Tokens bool   `help:"Print the token stream and exit"          xor:"stage"`
	Parse  bool   `help:"Print the syntax tree and exit"           xor:"stage"`
	Format string `default:"text" enum:"text,json,yaml" help:"Result output format" short:"o"`
}

// result is the marshaled form of an evaluation result for the json and
// yaml output formats.
type result struct {
	Value any    `json:"value" yaml:"value"`
	Type  string `json:"type"  yaml:"type"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	out := io.Writer(os.Stdout)
	if ktx := kongContextFrom(ctx); ktx != nil {
		out = ktx.Stdout
	}

	source, err := readSource(r.Source)
	if err != nil {
		return err
	}

	if r.Tokens {
		for _, tok := range lang.Scan(source) {
			fmt.Fprintln(out, tok.Dump())
		}

		return nil
	}

	prog, err := lang.ParseString(ctx, source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "run"), slog.String("source", r.Source))
	}

	if r.Parse {
		prog.Print(out)

		return nil
	}

	value, err := lang.Eval(prog, lang.NewScope())
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "run"), slog.String("source", r.Source))
	}

	return writeResult(out, value, r.Format)
}

// writeResult prints an evaluation result in the requested format.
func writeResult(w io.Writer, value lang.Value, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result{
			Value: nativeValue(value),
			Type:  value.Type(),
		}, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err

	case "yaml":
		data, err := yaml.Marshal(result{
			Value: nativeValue(value),
			Type:  value.Type(),
		})
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(data)

		return err

	default:
		_, err := fmt.Fprintln(w, value.Display())

		return err
	}
}

// nativeValue converts an evaluation result to its native Go representation
// for marshaling. Functions have no native form and marshal as their display
// text.
func nativeValue(v lang.Value) any {
	if v.IsFunction() {
		return v.Text()
	}

	switch v.Type() {
	case "integer":
		return v.Prim.Integer
	case "float":
		return v.Prim.Float
	case "string":
		return v.Prim.String
	case "boolean":
		return v.Prim.Boolean
	default:
		return nil
	}
}
