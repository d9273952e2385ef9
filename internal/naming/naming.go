package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Case selects the grammar and normalization applied by Check.
type Case int

const (
	// SnakeCase allows ASCII letters and underscores; output is lower-cased.
	SnakeCase Case = iota
	// TrainCase allows ASCII letters and hyphens; output capitalizes the
	// first character of every hyphen-separated segment.
	TrainCase
)

// String returns the conventional spelling of the case for user-facing
// messages.
func (c Case) String() string {
	switch c {
	case SnakeCase:
		return "snake_case"
	case TrainCase:
		return "Train-Case"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// Name is a string proven to satisfy its Case's grammar. Only Check
// produces one.
type Name string

// Sentinel causes for validation failures. Callers branch with errors.Is.
var (
	ErrNumberNotAllowed      = errors.New("numbers are not allowed")
	ErrSpecialCharNotAllowed = errors.New("only alphabetic characters are allowed")
)

// Check validates raw against the given case and returns the normalized
// name. The walk is a single pass; the first offending character wins.
// An empty string is valid under both cases and normalizes to itself.
// Consecutive, leading, or trailing delimiters are accepted: the grammar
// is a character-class check, not a segment check.
func Check(raw string, c Case) (Name, error) {
	switch c {
	case TrainCase:
		return checkTrain(raw)
	default:
		return checkSnake(raw)
	}
}

func checkSnake(raw string) (Name, error) {
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			return "", fmt.Errorf("%q at position %d: %w", r, i, ErrNumberNotAllowed)
		}
		if !isASCIILetter(r) && r != '_' {
			return "", fmt.Errorf("%q at position %d: %w", r, i, ErrSpecialCharNotAllowed)
		}
	}
	return Name(strings.ToLower(raw)), nil
}

func checkTrain(raw string) (Name, error) {
	var b strings.Builder
	b.Grow(len(raw))

	// Lower-case first, then re-capitalize segment starts. upperNext is
	// the whole state machine: true at the start of the string and after
	// a hyphen. The flag is consumed by the next character whatever it
	// is, so a doubled hyphen eats the capitalization ("a--b" stays
	// "A--b") and a leading hyphen is kept verbatim.
	upperNext := true
	for i, r := range strings.ToLower(raw) {
		if r >= '0' && r <= '9' {
			return "", fmt.Errorf("%q at position %d: %w", r, i, ErrNumberNotAllowed)
		}
		if !isASCIILetter(r) && r != '-' {
			return "", fmt.Errorf("%q at position %d: %w", r, i, ErrSpecialCharNotAllowed)
		}
		if upperNext {
			if r != '-' {
				r = r - 'a' + 'A'
			}
			b.WriteRune(r)
			upperNext = false
			continue
		}
		if r == '-' {
			upperNext = true
		}
		b.WriteRune(r)
	}
	return Name(b.String()), nil
}

// isASCIILetter reports whether r is in [a-zA-Z]. Non-ASCII letters are
// rejected by the grammar, so unicode.IsLetter is deliberately not used.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
