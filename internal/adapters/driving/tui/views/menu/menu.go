// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles *styles.Styles
	items  []Item
	picker *list.Picker
	width  int
	height int
	ready  bool
}

// DefaultItems returns the main menu entries in display order.
func DefaultItems() []Item {
	return []Item{
		{Label: "Convert Number", View: messages.ViewConvert},
		{Label: "Settings", View: messages.ViewSettings},
		{Label: "History", View: messages.ViewHistory},
		{Label: "Help", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := DefaultItems()
	options := make([]list.Option, len(items))
	for i, item := range items {
		options[i] = list.Option{Label: item.Label}
	}

	return &View{
		styles: s,
		items:  items,
		picker: list.NewPicker(s, options),
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			item := v.items[v.picker.Selected()]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}
		case "q":
			return v, tea.Quit
		case "?":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewHelp}
			}
		}
		v.picker.Update(msg)
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Radix"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Number Base Converter (bases 2-16)"))
	b.WriteString("\n\n")
	b.WriteString(v.picker.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [?] Help  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.picker.Selected()
}
