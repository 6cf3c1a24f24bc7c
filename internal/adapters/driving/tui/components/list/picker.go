// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix/internal/adapters/driving/tui/styles"
)

// Option is one selectable row.
type Option struct {
	Label string

	// Detail is rendered muted after the label.
	Detail string

	// Disabled options are shown but cannot be chosen.
	Disabled bool
}

// Picker displays options in a navigable list.
type Picker struct {
	options  []Option
	selected int
	styles   *styles.Styles
}

// NewPicker creates a new picker over options.
func NewPicker(s *styles.Styles, options []Option) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Picker{
		options: options,
		styles:  s,
	}
}

// Init initialises the picker.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			p.MoveUp()
		case "down", "j":
			p.MoveDown()
		}
	}
	return p, nil
}

// View renders the options with a cursor on the selected row.
func (p *Picker) View() string {
	var b strings.Builder
	for i, opt := range p.options {
		cursor := "  "
		style := p.styles.Normal
		switch {
		case opt.Disabled:
			style = p.styles.Muted
		case i == p.selected:
			style = p.styles.Selected
		}
		if i == p.selected {
			cursor = "> "
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(opt.Label))
		if opt.Detail != "" {
			b.WriteString("  ")
			b.WriteString(p.styles.Muted.Render(opt.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MoveUp moves the cursor up one row.
func (p *Picker) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the cursor down one row.
func (p *Picker) MoveDown() {
	if p.selected < len(p.options)-1 {
		p.selected++
	}
}

// Selected returns the selected index.
func (p *Picker) Selected() int {
	return p.selected
}

// SelectedOption returns the selected option and whether it can be chosen.
func (p *Picker) SelectedOption() (Option, bool) {
	if p.selected < 0 || p.selected >= len(p.options) {
		return Option{}, false
	}
	opt := p.options[p.selected]
	return opt, !opt.Disabled
}

// SetSelected moves the cursor to i, clamped to the option range.
func (p *Picker) SetSelected(i int) {
	switch {
	case len(p.options) == 0 || i < 0:
		p.selected = 0
	case i >= len(p.options):
		p.selected = len(p.options) - 1
	default:
		p.selected = i
	}
}

// SetOptions replaces the options, keeping the cursor in range.
func (p *Picker) SetOptions(options []Option) {
	p.options = options
	p.SetSelected(p.selected)
}

// Options returns the current options.
func (p *Picker) Options() []Option {
	return p.options
}

// Len returns the number of options.
func (p *Picker) Len() int {
	return len(p.options)
}
