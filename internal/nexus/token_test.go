package nexus

import (
	"errors"
	"reflect"
	"testing"
)

// TestTokenize covers the quote-aware tokenizer, including the explicit
// malformed-quote branch.
func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain whitespace split",
			input: "taxA taxB\ttaxC",
			want:  []string{"taxA", "taxB", "taxC"},
		},
		{
			name:  "single quotes preserve internal whitespace",
			input: "'tax one' taxB",
			want:  []string{"tax one", "taxB"},
		},
		{
			name:  "double quotes preserve internal whitespace",
			input: `"tax two" taxB`,
			want:  []string{"tax two", "taxB"},
		},
		{
			name:  "mixed quote styles in one line",
			input: `'a b' "c d" e`,
			want:  []string{"a b", "c d", "e"},
		},
		{
			name:  "quote characters stripped from quoted tokens",
			input: `'quoted'`,
			want:  []string{"quoted"},
		},
		{
			name:  "quote inside a bare token is literal",
			input: "don't stop",
			want:  []string{"don't", "stop"},
		},
		{
			name:  "leading and trailing whitespace ignored",
			input: "   taxA   ",
			want:  []string{"taxA"},
		},
		{
			name:  "empty input yields no tokens",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only yields no tokens",
			input: " \t \n ",
			want:  nil,
		},
		{
			name:  "newlines are separators",
			input: "taxA\ntaxB",
			want:  []string{"taxA", "taxB"},
		},
		{
			name:  "empty quoted token is emitted",
			input: "'' taxB",
			want:  []string{"", "taxB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("unterminated single quote returns ErrUnterminatedQuote", func(t *testing.T) {
		t.Parallel()
		_, err := Tokenize("'taxA taxB")
		if !errors.Is(err, ErrUnterminatedQuote) {
			t.Errorf("expected ErrUnterminatedQuote, got %v", err)
		}
	})

	t.Run("unterminated double quote returns ErrUnterminatedQuote", func(t *testing.T) {
		t.Parallel()
		_, err := Tokenize(`"taxA taxB`)
		if !errors.Is(err, ErrUnterminatedQuote) {
			t.Errorf("expected ErrUnterminatedQuote, got %v", err)
		}
	})
}
