package command

const helpText = `Commands (verbs are case-sensitive, fields may contain spaces):
  Add <name> to <department>
  Remove <name> from <department>
  Move <name> from <department> to <department>
  Rename <name> in <department> to <new name>
  Print [<department>]
  Help
  Exit

Names and departments cannot be the words "to", "from" or "in".`

// HelpText returns the command grammar shown by the Help verb.
func HelpText() string {
	return helpText
}
