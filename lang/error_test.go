package lang

import (
	"errors"
	"io"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  NewError("boom"),
			want: "boom",
		},
		{
			name: "formatted message",
			err:  Errorf("undefined variable %s", "x"),
			want: "undefined variable x",
		},
		{
			name: "message with cause",
			err:  NewError("boom").Wrap(io.ErrUnexpectedEOF),
			want: "boom: unexpected EOF",
		},
		{
			name: "cause only",
			err:  WrapError(io.ErrUnexpectedEOF),
			want: "unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIsMatchesByMessage(t *testing.T) {
	// Wrapped and attributed copies of a sentinel still match errors.Is.
	err := ErrReadInput.Wrap(io.ErrClosedPipe)
	if !errors.Is(err, ErrReadInput) {
		t.Error("wrapped sentinel did not match")
	}

	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("cause did not match through Unwrap")
	}

	if errors.Is(err, ErrUnexpectedEOF) {
		t.Error("unrelated sentinel matched")
	}
}

func TestWrapErrorPromotesExisting(t *testing.T) {
	orig := Errorf("boom")

	if got := WrapError(orig); got != orig {
		t.Errorf("WrapError returned %v, want the original instance", got)
	}
}
