// Package history provides the recorded conversions view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

const timeFormat = "2006-01-02 15:04:05"

var errNoService = errors.New("history is not available")

// View lists recorded conversions newest first.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	history driving.HistoryService
	ctx     context.Context

	entries      []domain.HistoryEntry
	picker       *list.Picker
	status       *status.Bar
	loaded       bool
	confirmClear bool

	width  int
	height int
	ready  bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetBindings(km.HistoryHelp())

	return &View{
		styles:  s,
		keymap:  km,
		history: history,
		ctx:     context.Background(),
		picker:  list.NewPicker(s, nil),
		status:  bar,
	}
}

// WithContext sets the context used for store calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	ctx, svc := v.ctx, v.history
	return func() tea.Msg {
		if svc == nil {
			return messages.HistoryLoaded{Err: errNoService}
		}
		entries, err := svc.List(ctx, 0)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

func (v *View) clear() tea.Cmd {
	ctx, svc := v.ctx, v.history
	return func() tea.Msg {
		if svc == nil {
			return messages.HistoryCleared{Err: errNoService}
		}
		n, err := svc.Clear(ctx)
		return messages.HistoryCleared{Removed: n, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.HistoryLoaded:
		v.loaded = true
		if msg.Err != nil {
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.setEntries(msg.Entries)
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.setEntries(nil)
		v.status.SetState(status.StateNotice)
		v.status.SetMessage(fmt.Sprintf("Removed %d entries", msg.Removed))
		return v, nil

	case tea.KeyMsg:
		return v.handleKeys(msg)
	}

	return v, nil
}

func (v *View) handleKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	if !keymap.Matches(k, v.keymap.Clear) {
		v.confirmClear = false
	}

	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(k, v.keymap.Refresh):
		v.status.Clear()
		return v, v.load()
	case keymap.Matches(k, v.keymap.Clear):
		if len(v.entries) == 0 {
			return v, nil
		}
		if !v.confirmClear {
			v.confirmClear = true
			v.status.SetState(status.StateNotice)
			v.status.SetMessage("Press x again to clear all history")
			return v, nil
		}
		v.confirmClear = false
		return v, v.clear()
	}

	v.picker.Update(msg)
	return v, nil
}

func (v *View) setEntries(entries []domain.HistoryEntry) {
	v.entries = entries
	options := make([]list.Option, len(entries))
	for i, e := range entries {
		options[i] = list.Option{
			Label:  fmt.Sprintf("%s → %s", e.Source.Format(true), e.Target.Format(true)),
			Detail: e.CreatedAt.Local().Format(timeFormat),
		}
	}
	v.picker.SetOptions(options)
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading history..."))
		b.WriteString("\n")
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No conversions recorded yet."))
		b.WriteString("\n")
	default:
		b.WriteString(v.picker.View())
		if e, ok := v.Selected(); ok {
			b.WriteString("\n")
			b.WriteString(v.renderEntry(e))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderEntry(e domain.HistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s (%s)\n", v.styles.Numeral.Render(e.Source.Digits), e.Source.Base.Description())
	fmt.Fprintf(&b, "To:   %s (%s)\n", v.styles.Numeral.Render(e.Target.Digits), e.Target.Base.Description())
	fmt.Fprintf(&b, "Decimal value: %d\n", e.Magnitude)
	b.WriteString(v.styles.Muted.Render("ID: " + e.ID))
	return v.styles.Panel.Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.status.SetWidth(width)
	v.ready = true
}

// Entries returns the loaded entries.
func (v *View) Entries() []domain.HistoryEntry {
	return v.entries
}

// Selected returns the highlighted entry.
func (v *View) Selected() (domain.HistoryEntry, bool) {
	i := v.picker.Selected()
	if i < 0 || i >= len(v.entries) {
		return domain.HistoryEntry{}, false
	}
	return v.entries[i], true
}
