package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveConfig(t *testing.T, source string) kong.Resolver {
	t.Helper()

	r, err := resolve(context.Background())(strings.NewReader(source))
	if err != nil {
		t.Fatalf("resolver error: %v", err)
	}

	return r
}

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	v, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("resolve %q: %v", name, err)
	}

	return v
}

func TestResolveClipConfig(t *testing.T) {
	r := resolveConfig(t, strings.Join([]string{
		`= log_level "debug"`,
		`= log_pretty true`,
		`= log_format "json"`,
	}, "\n"))

	tests := []struct {
		flag string
		want any
	}{
		// Hyphenated flag names map to underscored config names.
		{flag: "log-level", want: "debug"},
		{flag: "log-format", want: "json"},
		{flag: "log-pretty", want: true},
		{flag: "log-caller", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			if got := resolveFlag(t, r, tt.flag); got != tt.want {
				t.Errorf("resolved %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveNumbersAsStrings(t *testing.T) {
	// Kong parses flag values from strings, so numbers resolve as text.
	r := resolveConfig(t, "= retries 3\n= ratio 1.5")

	if got := resolveFlag(t, r, "retries"); got != "3" {
		t.Errorf("resolved %v, want %q", got, "3")
	}
	if got := resolveFlag(t, r, "ratio"); got != "1.5" {
		t.Errorf("resolved %v, want %q", got, "1.5")
	}
}

func TestResolveSkipsFunctionsAndNull(t *testing.T) {
	r := resolveConfig(t, "= helper { 1 }\n= nothing ()")

	if got := resolveFlag(t, r, "helper"); got != nil {
		t.Errorf("function value resolved as %v, want nil", got)
	}
	if got := resolveFlag(t, r, "nothing"); got != nil {
		t.Errorf("null value resolved as %v, want nil", got)
	}
}

func TestResolveInvalidConfigIsEmpty(t *testing.T) {
	// Broken config files fall back to defaults rather than failing startup.
	r := resolveConfig(t, "= x")

	if got := resolveFlag(t, r, "x"); got != nil {
		t.Errorf("resolved %v from invalid config, want nil", got)
	}
}

func TestResolveValidate(t *testing.T) {
	r := resolveConfig(t, `= log_level "info"`)

	if err := r.Validate(nil); err != nil {
		t.Errorf("validate error: %v", err)
	}
}
