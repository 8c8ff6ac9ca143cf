package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource reads the entire contents of the given source file, or stdin
// when the path is "-".
func readSource(path string) (string, error) {
	if path == stdinSource {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", ErrReadSource.Wrap(err)
		}

		return string(source), nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", ErrReadSource.Wrap(err)
	}

	return string(source), nil
}
