// Package settings provides the settings toggles view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// Row identifies a setting in the list.
type Row int

const (
	RowShowSteps Row = iota
	RowNumberType
	RowPrefix
	RowOverflow
	RowHistory
)

var rowLabels = []string{
	RowShowSteps:  "Step Visualization",
	RowNumberType: "Number Type",
	RowPrefix:     "Prefix Annotations",
	RowOverflow:   "Overflow Mode",
	RowHistory:    "History Recording",
}

const signedNotice = "Signed mode saved; conversions still treat values as unsigned"

var errNoService = errors.New("settings service not available")

// View is the settings view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	picker   *list.Picker
	notice   string
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		picker:          list.NewPicker(s, nil),
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// Reset clears transient state before the view is shown again.
func (v *View) Reset() {
	v.notice = ""
	v.err = nil
	v.picker.SetSelected(0)
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: errNoService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.err = nil
		v.picker.SetOptions(v.options())
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = msg.Notice
		return v, v.loadSettings()

	case messages.ConfigReloaded:
		return v, v.loadSettings()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "enter", " ":
			if v.settings == nil {
				return v, nil
			}
			return v, v.toggle(Row(v.picker.Selected()))
		case "d":
			return v, v.restoreDefaults()
		}
		v.picker.Update(msg)
	}

	return v, nil
}

// toggle returns a command that flips the setting on row.
func (v *View) toggle(row Row) tea.Cmd {
	current := *v.settings
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: errNoService}
		}

		var (
			notice string
			err    error
		)
		switch row {
		case RowShowSteps:
			_, err = svc.ToggleShowSteps()
		case RowNumberType:
			var nt domain.NumberType
			nt, err = svc.ToggleNumberType()
			if err == nil && !nt.IsSupported() {
				notice = signedNotice
			}
		case RowPrefix:
			_, err = svc.TogglePrefixAnnotations()
		case RowOverflow:
			next := domain.OverflowExact
			if current.Engine.Overflow == domain.OverflowExact {
				next = domain.OverflowLiteral
			}
			err = svc.SetOverflowMode(next)
		case RowHistory:
			err = svc.SetHistoryEnabled(!current.History.Enabled)
		default:
			err = fmt.Errorf("%w: unknown setting row %d", domain.ErrInvalidInput, row)
		}
		return messages.SettingsSaved{Notice: notice, Err: err}
	}
}

func (v *View) restoreDefaults() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: errNoService}
		}
		defaults := svc.GetDefaults()
		return messages.SettingsSaved{Notice: "Defaults restored", Err: svc.Save(&defaults)}
	}
}

func (v *View) options() []list.Option {
	s := v.settings
	values := []string{
		RowShowSteps:  domain.EnabledLabel(s.Display.ShowSteps),
		RowNumberType: s.Display.NumberType.Description(),
		RowPrefix:     domain.EnabledLabel(s.Display.PrefixAnnotations),
		RowOverflow:   s.Engine.Overflow.Description(),
		RowHistory:    domain.EnabledLabel(s.History.Enabled),
	}

	options := make([]list.Option, len(rowLabels))
	for i, label := range rowLabels {
		options[i] = list.Option{Label: fmt.Sprintf("%-20s", label), Detail: values[i]}
	}
	return options
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	b.WriteString(v.picker.View())

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Toggle  [d] Defaults  [Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
