package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func testOptions() []Option {
	return []Option{
		{Label: "Binary", Detail: "2"},
		{Label: "Octal", Detail: "8", Disabled: true},
		{Label: "Decimal", Detail: "10"},
	}
}

func TestPicker_Navigation(t *testing.T) {
	p := NewPicker(nil, testOptions())

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, p.Selected())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, p.Selected())

	// Bounded at the last option
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, p.Selected())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, p.Selected())
}

func TestPicker_SelectedOption(t *testing.T) {
	p := NewPicker(nil, testOptions())

	opt, ok := p.SelectedOption()
	assert.True(t, ok)
	assert.Equal(t, "Binary", opt.Label)

	p.SetSelected(1)
	opt, ok = p.SelectedOption()
	assert.False(t, ok, "disabled options cannot be chosen")
	assert.Equal(t, "Octal", opt.Label)
}

func TestPicker_SelectedOption_Empty(t *testing.T) {
	p := NewPicker(nil, nil)

	_, ok := p.SelectedOption()

	assert.False(t, ok)
	assert.Zero(t, p.Len())
}

func TestPicker_SetSelectedClamps(t *testing.T) {
	p := NewPicker(nil, testOptions())

	p.SetSelected(10)
	assert.Equal(t, 2, p.Selected())

	p.SetSelected(-1)
	assert.Equal(t, 0, p.Selected())
}

func TestPicker_SetOptionsKeepsCursorInRange(t *testing.T) {
	p := NewPicker(nil, testOptions())
	p.SetSelected(2)

	p.SetOptions([]Option{{Label: "Only"}})

	assert.Equal(t, 0, p.Selected())
	assert.Len(t, p.Options(), 1)
}

func TestPicker_View(t *testing.T) {
	p := NewPicker(nil, testOptions())

	out := p.View()

	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "Binary")
	assert.Contains(t, out, "Decimal")
	assert.Contains(t, out, "10")
}
