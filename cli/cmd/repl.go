package cmd

import (
	"context"

	"github.com/devnote-dev/clip/cli/cmd/repl"
)

// Repl starts an interactive read-eval-print session.
type Repl struct {
	History string `default:"${cache}" help:"Directory for session history" type:"path"`

	Tokens bool `help:"Print the token stream instead of evaluating" xor:"stage"`
	Parse  bool `help:"Print the syntax tree instead of evaluating"  xor:"stage"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return repl.Run(ctx, r.History, r.Tokens, r.Parse)
}
