// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix/internal/core/domain"
)

// NumeralInput wraps a bubbles textinput for entering a numeral.
// Input is capped at domain.MaxInputLength characters.
type NumeralInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewNumeralInput creates a new numeral input component.
func NewNumeralInput(s *styles.Styles) *NumeralInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a number..."
	ti.Focus()
	ti.CharLimit = domain.MaxInputLength
	ti.Width = domain.MaxInputLength + 1

	return &NumeralInput{
		textinput: ti,
		styles:    s,
		label:     "Number: ",
		width:     domain.MaxInputLength + 1,
	}
}

// Init initialises the input.
func (n *NumeralInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (n *NumeralInput) Update(msg tea.Msg) (*NumeralInput, tea.Cmd) {
	var cmd tea.Cmd
	n.textinput, cmd = n.textinput.Update(msg)
	return n, cmd
}

// View renders the input.
func (n *NumeralInput) View() string {
	label := n.styles.Title.Render(n.label)
	field := n.styles.InputField.Render(n.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// SetLabel sets the text shown before the field.
func (n *NumeralInput) SetLabel(label string) {
	n.label = label
}

// SetPlaceholder sets the placeholder text.
func (n *NumeralInput) SetPlaceholder(p string) {
	n.textinput.Placeholder = p
}

// SetCharLimit overrides the maximum input length.
func (n *NumeralInput) SetCharLimit(limit int) {
	n.textinput.CharLimit = limit
}

// Value returns the current input value.
func (n *NumeralInput) Value() string {
	return n.textinput.Value()
}

// SetValue sets the input value.
func (n *NumeralInput) SetValue(value string) {
	n.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (n *NumeralInput) Focus() tea.Cmd {
	return n.textinput.Focus()
}

// Blur removes focus from the input.
func (n *NumeralInput) Blur() {
	n.textinput.Blur()
}

// Focused returns whether the input is focused.
func (n *NumeralInput) Focused() bool {
	return n.textinput.Focused()
}

// SetWidth sets the width of the input, never below the input cap.
func (n *NumeralInput) SetWidth(width int) {
	n.width = width
	inputWidth := width - lipgloss.Width(n.label) - 4
	if inputWidth < domain.MaxInputLength+1 {
		inputWidth = domain.MaxInputLength + 1
	}
	n.textinput.Width = inputWidth
}

// Width returns the current width.
func (n *NumeralInput) Width() int {
	return n.width
}

// Reset clears the input.
func (n *NumeralInput) Reset() {
	n.textinput.Reset()
}
