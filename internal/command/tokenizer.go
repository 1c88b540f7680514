package command

import "strings"

// Stop words terminating multi-word fields. A name or department equal to
// one of these cannot be expressed in the command language.
const (
	StopTo   = "to"
	StopFrom = "from"
	StopIn   = "in"
)

// Tokens is a cursor over the whitespace-separated tokens of one line.
type Tokens struct {
	items []string
	pos   int
}

// Tokenize splits line on runs of whitespace. There is no quoting or escaping.
func Tokenize(line string) *Tokens {
	return &Tokens{items: strings.Fields(line)}
}

// Next returns the next token and advances the cursor.
func (t *Tokens) Next() (string, bool) {
	if t.pos >= len(t.items) {
		return "", false
	}
	tok := t.items[t.pos]
	t.pos++
	return tok, true
}

// Remaining returns how many tokens have not been consumed.
func (t *Tokens) Remaining() int {
	return len(t.items) - t.pos
}

// FieldKind classifies the outcome of ReadField.
type FieldKind int

const (
	// FieldPresent means at least one token was read.
	FieldPresent FieldKind = iota
	// FieldEmpty means the stop word or end of input came before any token.
	FieldEmpty
	// FieldMalformed means a stop word was expected but input ran out first.
	FieldMalformed
)

// String returns a lowercase name for the kind.
func (k FieldKind) String() string {
	switch k {
	case FieldPresent:
		return "present"
	case FieldEmpty:
		return "empty"
	case FieldMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Field is one multi-word argument read from a command line.
type Field struct {
	Kind  FieldKind
	Value string
}

// ReadField consumes tokens up to stop, joining them with single spaces.
// The stop word itself is consumed and not included. With an empty stop
// the rest of the line is read. When stop is set and never appears, the
// tokens are still consumed and the field is Malformed.
func ReadField(t *Tokens, stop string) Field {
	var parts []string
	for {
		tok, ok := t.Next()
		if !ok {
			break
		}
		if stop != "" && tok == stop {
			return newField(parts)
		}
		parts = append(parts, tok)
	}

	if stop != "" {
		return Field{Kind: FieldMalformed, Value: strings.Join(parts, " ")}
	}
	return newField(parts)
}

func newField(parts []string) Field {
	if len(parts) == 0 {
		return Field{Kind: FieldEmpty}
	}
	return Field{Kind: FieldPresent, Value: strings.Join(parts, " ")}
}
