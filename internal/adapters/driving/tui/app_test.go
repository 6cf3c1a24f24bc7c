package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/views/convert"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and feeds every resulting message back into app.
func drain(app *App, cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.BatchMsg); ok {
			return
		}
		_, cmd = app.Update(msg)
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingConverterService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
	assert.False(t, app.Ready())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Radix")
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_Quit(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	tests := []struct {
		view    messages.ViewType
		want    string
		wantCmd bool
	}{
		{view: messages.ViewConvert, want: "Binary", wantCmd: true},
		{view: messages.ViewSettings, want: "Settings", wantCmd: true},
		{view: messages.ViewHistory, want: "History", wantCmd: true},
		{view: messages.ViewHelp, want: "Help"},
		{view: messages.ViewMenu, want: "Convert Number"},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			app := newTestApp(t)

			_, cmd := app.Update(messages.ViewChanged{View: tt.view})

			assert.Equal(t, tt.view, app.CurrentView())
			assert.Equal(t, tt.wantCmd, cmd != nil)
			assert.Contains(t, app.View(), tt.want)
		})
	}
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	out := app.View()
	assert.Contains(t, out, "0x")
	assert.Contains(t, out, "Hexadecimal")
	assert.Contains(t, out, "esc")

	app.Update(keyRunes("j"))
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_MenuNavigation(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, messages.ViewConvert, app.CurrentView())
}

func TestApp_ConversionFlow(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewConvert})

	// Binary source, then hexadecimal target.
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 3; i++ {
		app.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	for _, r := range "11111111" {
		app.Update(keyRunes(string(r)))
	}
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	drain(app, cmd)

	require.NoError(t, app.Err())
	assert.Equal(t, convert.StageResult, app.convertView.Stage())
	assert.Contains(t, app.View(), "0xFF")

	_, cmd = app.Update(messages.ViewChanged{View: messages.ViewHistory})
	drain(app, cmd)
	require.Len(t, app.historyView.Entries(), 1)
	assert.Equal(t, "FF", app.historyView.Entries()[0].Target.Digits)
}

func TestApp_SettingsMessagesReachSettingsView(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewSettings})
	drain(app, cmd)

	require.NotNil(t, app.settingsView.Settings())
	assert.True(t, app.settingsView.Settings().Display.ShowSteps)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(app, cmd)

	assert.False(t, app.settingsView.Settings().Display.ShowSteps)
}

func TestApp_ConfigReloaded(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.ConfigReloaded{})
	assert.Nil(t, cmd)

	app.Update(messages.ViewChanged{View: messages.ViewSettings})
	_, cmd = app.Update(messages.ConfigReloaded{})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.SettingsLoaded{}, cmd())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, app.Err(), "boom")
}
