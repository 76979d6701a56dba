package nexus

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned by Tokenize when a quoted token is
// opened but the line ends before the closing quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// tokenizer states.
type tokenState int

const (
	stateOutside tokenState = iota
	stateInSingleQuote
	stateInDoubleQuote
)

// Tokenize splits text into tokens. A token is either the content between
// a matching pair of single or double quotes (quote characters stripped,
// internal whitespace preserved) or a maximal run of non-whitespace
// characters. A quote character opens a quoted token only at a token
// boundary; inside a bare token it is literal, so names like "don't"
// survive intact.
//
// An unterminated quote yields ErrUnterminatedQuote. Callers decide
// whether that aborts the whole scan (strict mode) or just the file.
func Tokenize(text string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		state   = stateOutside
		inBare  bool
	)

	flush := func() {
		if inBare || current.Len() > 0 {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		inBare = false
	}

	for _, r := range text {
		switch state {
		case stateOutside:
			switch {
			case unicode.IsSpace(r):
				flush()
			case r == '\'' && !inBare:
				state = stateInSingleQuote
			case r == '"' && !inBare:
				state = stateInDoubleQuote
			default:
				inBare = true
				current.WriteRune(r)
			}
		case stateInSingleQuote:
			if r == '\'' {
				// Quoted tokens may be empty; emit even with no content.
				tokens = append(tokens, current.String())
				current.Reset()
				state = stateOutside
			} else {
				current.WriteRune(r)
			}
		case stateInDoubleQuote:
			if r == '"' {
				tokens = append(tokens, current.String())
				current.Reset()
				state = stateOutside
			} else {
				current.WriteRune(r)
			}
		}
	}

	if state != stateOutside {
		quote := "'"
		if state == stateInDoubleQuote {
			quote = `"`
		}
		return nil, fmt.Errorf("%w: missing closing %s", ErrUnterminatedQuote, quote)
	}
	flush()

	return tokens, nil
}
