package repl

import "testing"

func TestIsWordBoundary(t *testing.T) {
	for _, r := range " \t\n()[]{}=+-*/!&|;:\"#" {
		if !isWordBoundary(r) {
			t.Errorf("isWordBoundary(%q) = false, want true", r)
		}
	}

	for _, r := range "abcXYZ_09" {
		if isWordBoundary(r) {
			t.Errorf("isWordBoundary(%q) = true, want false", r)
		}
	}
}

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{
			name:   "empty input",
			input:  "",
			cursor: 0,
			word:   "",
			start:  0,
			end:    0,
		},
		{
			name:   "cursor inside word",
			input:  "= counter 1",
			cursor: 5,
			word:   "counter",
			start:  2,
			end:    9,
		},
		{
			name:   "cursor at end of word",
			input:  "counter",
			cursor: 7,
			word:   "counter",
			start:  0,
			end:    7,
		},
		{
			name:   "cursor after a space",
			input:  "counter ",
			cursor: 8,
			word:   "",
			start:  8,
			end:    8,
		},
		{
			name:   "word after operator",
			input:  "+ abc",
			cursor: 5,
			word:   "abc",
			start:  2,
			end:    5,
		},
		{
			name:   "command word excludes the colon",
			input:  ":help",
			cursor: 3,
			word:   "help",
			start:  1,
			end:    5,
		},
		{
			name:   "cursor clamped to input length",
			input:  "ab",
			cursor: 10,
			word:   "ab",
			start:  0,
			end:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			if word != tt.word {
				t.Errorf("word = %q, want %q", word, tt.word)
			}
			if start != tt.start || end != tt.end {
				t.Errorf("bounds = [%d, %d], want [%d, %d]",
					start, end, tt.start, tt.end)
			}
		})
	}
}
