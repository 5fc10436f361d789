package core

// Dialog is a modal prompt the platform draws over the game.
// While a dialog is open the game does not advance.
type Dialog struct {
	Kind   string   // Stable identifier, e.g. "purchase"
	Title  string   // First line, emphasized
	Lines  []string // Body text; empty strings are blank lines
	Prompt string   // Label of the text field; empty when there is none
	Footer []string // Key hints
}

// HasInput reports whether the dialog takes typed input.
func (d Dialog) HasInput() bool {
	return d.Prompt != ""
}
