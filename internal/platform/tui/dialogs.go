package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/golddigger/internal/core"
)

var (
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(1, 3)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("220"))

	dialogErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9"))

	dialogFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// newDialogInput creates the text field used by dialogs that take input.
func newDialogInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 9
	ti.Width = 12
	ti.Prompt = "$ "
	ti.Validate = digitsOnly
	return ti
}

// digitsOnly rejects anything but decimal digits while typing.
func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return errNotDigit
		}
	}
	return nil
}

type dialogError string

func (e dialogError) Error() string { return string(e) }

const errNotDigit = dialogError("digits only")

// renderDialog draws a dialog box. The input is shown only for dialogs
// that take text.
func renderDialog(d core.Dialog, input textinput.Model, errMsg string) string {
	var b strings.Builder

	b.WriteString(dialogTitleStyle.Render(d.Title))
	b.WriteString("\n\n")
	for _, line := range d.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if d.HasInput() {
		b.WriteString("\n")
		b.WriteString(d.Prompt)
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n")
		if errMsg != "" {
			b.WriteString(dialogErrorStyle.Render(errMsg))
			b.WriteString("\n")
		}
	}

	if len(d.Footer) > 0 {
		b.WriteString("\n")
		b.WriteString(dialogFooterStyle.Render(strings.Join(d.Footer, "\n")))
	}

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(strings.TrimRight(b.String(), "\n"))
	return dialogBoxStyle.Render(content)
}

// overlay draws box centered over base, keeping the base visible around it.
func overlay(base, box string, width int) string {
	lines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)

	x := max((width-boxW)/2, 0)
	y := max((len(lines)-len(boxLines))/2, 0)

	for i, bl := range boxLines {
		row := y + i
		if row >= len(lines) {
			break
		}
		line := lines[row]
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+boxW, "")
		lines[row] = left + bl + right
	}
	return strings.Join(lines, "\n")
}

// capitalize upper-cases the first letter of an error message for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
