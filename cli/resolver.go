package cli

import (
	"context"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/devnote-dev/clip/lang"
)

// resolve returns a [kong.ConfigurationLoader] that reads config files
// written in the clip language.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.clip")
//
// The config file is an ordinary clip source: a sequence of assignments
// evaluated in a fresh scope. Each resulting variable becomes a flag value.
// Flag names with hyphens (e.g., "log-level") use underscores in the config
// file (e.g., "log_level"). Function and null values are ignored.
//
// Example clip config file:
//
//	= log_level "debug"
//	= log_format "json"
//	= log_pretty true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolve(ctx context.Context) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		prog, err := lang.ParseReader(ctx, r)
		if err != nil {
			// Parse error - return empty config
			return config{}, nil
		}

		scope := lang.NewScope()

		_, err = lang.Eval(prog, scope)
		if err != nil {
			// Evaluation error - return empty config
			return config{}, nil
		}

		return config(scopeToMap(scope)), nil
	}
}

// config implements [kong.Resolver] for clip language configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already evaluated successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but clip identifiers
	// only allow underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// scopeToMap converts the evaluated scope to a native map representation.
func scopeToMap(scope *lang.Scope) map[string]any {
	result := make(map[string]any)

	for _, name := range scope.Names() {
		value, ok := scope.Get(name)
		if !ok || value.IsFunction() {
			continue
		}

		switch value.Type() {
		case "null":
			// No value to apply

		case "boolean":
			result[name] = value.Prim.Boolean

		default:
			// Kong requires numbers as strings for parsing, and Text
			// already renders strings unquoted.
			result[name] = value.Text()
		}
	}

	return result
}
