package command

// Verb selects the directory operation a command line dispatches to.
type Verb int

const (
	// VerbUnknown is any first token outside the command language.
	VerbUnknown Verb = iota
	// VerbAdd adds an employee to a department.
	VerbAdd
	// VerbRemove removes an employee from a department.
	VerbRemove
	// VerbMove moves an employee between departments.
	VerbMove
	// VerbRename renames an employee within a department.
	VerbRename
	// VerbPrint lists one department or the whole directory.
	VerbPrint
	// VerbHelp prints the command grammar.
	VerbHelp
	// VerbExit ends the session.
	VerbExit
)

// knownVerbs lists the dispatchable verbs in grammar order.
var knownVerbs = []Verb{VerbAdd, VerbRemove, VerbMove, VerbRename, VerbPrint, VerbHelp, VerbExit}

// String returns the verb as it is typed on the command line.
func (v Verb) String() string {
	switch v {
	case VerbAdd:
		return "Add"
	case VerbRemove:
		return "Remove"
	case VerbMove:
		return "Move"
	case VerbRename:
		return "Rename"
	case VerbPrint:
		return "Print"
	case VerbHelp:
		return "Help"
	case VerbExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// ParseVerb matches token case-sensitively against the known verbs.
func ParseVerb(token string) Verb {
	for _, v := range knownVerbs {
		if v.String() == token {
			return v
		}
	}
	return VerbUnknown
}

// Verbs returns the dispatchable verbs in grammar order.
func Verbs() []Verb {
	out := make([]Verb, len(knownVerbs))
	copy(out, knownVerbs)
	return out
}
