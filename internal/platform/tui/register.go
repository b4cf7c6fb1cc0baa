package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxNameLen = 20

// RegisterModel asks for the player's name.
type RegisterModel struct {
	input textinput.Model
	empty bool // Enter was pressed on a blank name
}

// NewRegisterModel creates a focused name prompt.
func NewRegisterModel() RegisterModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen
	ti.Prompt = "> "
	ti.Focus()
	return RegisterModel{input: ti}
}

// Update feeds a key to the prompt. It returns the trimmed name once the
// player confirms a non-empty one.
func (m RegisterModel) Update(msg tea.KeyMsg) (RegisterModel, string, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.empty = true
			return m, "", nil
		}
		return m, name, nil
	}

	m.empty = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, "", cmd
}

// View renders the prompt.
func (m RegisterModel) View(width, height int) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("\n", max(0, height/2-5)))
	b.WriteString(centerText(titleStyle.Render("R S A   S N A K E"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter your name:", width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), width))
	b.WriteString("\n\n")
	if m.empty {
		b.WriteString(centerText(errorStyle.Render("The name cannot be empty"), width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("enter: confirm  |  ctrl+c: quit"), width))

	return b.String()
}
