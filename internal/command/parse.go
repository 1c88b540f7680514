package command

import (
	"strings"
)

// Command is one parsed line of the command language.
// Args holds the verb-specific fields in grammar order:
//
//	Add     name, department
//	Remove  name, department
//	Move    name, from, to
//	Rename  old name, department, new name
//	Print   department (optional, may be "")
type Command struct {
	Verb Verb
	Raw  string
	Args []string
}

// argSpec names one field of a verb's grammar and the stop word ending it.
type argSpec struct {
	field string
	stop  string
}

var grammar = map[Verb][]argSpec{
	VerbAdd:    {{"name", StopTo}, {"department", ""}},
	VerbRemove: {{"name", StopFrom}, {"department", ""}},
	VerbMove:   {{"name", StopFrom}, {"source department", StopTo}, {"target department", ""}},
	VerbRename: {{"name", StopIn}, {"department", StopTo}, {"new name", ""}},
}

// Parse tokenizes line and extracts the verb and its arguments.
// An empty field is reported as ErrMissingArgument and a missing stop word
// as ErrMalformed, whichever comes first in the line.
func Parse(line string) (Command, error) {
	cmd := Command{Raw: strings.TrimSpace(line)}
	tokens := Tokenize(line)

	first, ok := tokens.Next()
	if !ok {
		return cmd, &ParseError{Field: "verb", Err: ErrMissingArgument}
	}

	cmd.Verb = ParseVerb(first)
	switch cmd.Verb {
	case VerbUnknown:
		suggestion, _ := Suggest(first)
		return cmd, &ParseError{Token: first, Suggestion: suggestion, Err: ErrUnknownCommand}
	case VerbHelp, VerbExit:
		return cmd, nil
	case VerbPrint:
		cmd.Args = []string{ReadField(tokens, "").Value}
		return cmd, nil
	}

	specs := grammar[cmd.Verb]
	cmd.Args = make([]string, 0, len(specs))
	for _, spec := range specs {
		field := ReadField(tokens, spec.stop)
		switch field.Kind {
		case FieldMalformed:
			return cmd, &ParseError{Verb: cmd.Verb, Field: spec.field, Expected: spec.stop, Err: ErrMalformed}
		case FieldEmpty:
			return cmd, &ParseError{Verb: cmd.Verb, Field: spec.field, Err: ErrMissingArgument}
		}
		cmd.Args = append(cmd.Args, field.Value)
	}
	return cmd, nil
}
