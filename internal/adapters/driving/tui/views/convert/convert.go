// Package convert provides the conversion view: base selection, numeral
// input and the result with its step trace.
package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/radix/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix/internal/core/domain"
	"github.com/custodia-labs/radix/internal/core/ports/driving"
)

// Stage is a step of the conversion flow.
type Stage int

const (
	StageSource Stage = iota
	StageSourceCustom
	StageTarget
	StageTargetCustom
	StageInput
	StageResult
)

const customLabel = "Custom base (2-16)"

// errEmptyInput is shown when enter is pressed on an empty field.
var errEmptyInput = errors.New("enter a number first")

// View is the conversion view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	converter driving.ConverterService
	settings  driving.SettingsService
	ctx       context.Context

	stage     Stage
	picker    *list.Picker
	baseInput *input.NumeralInput
	numInput  *input.NumeralInput
	status    *status.Bar

	source domain.Base
	target domain.Base
	result *domain.ConversionResult
	prefix bool

	width  int
	height int
	ready  bool
}

// NewView creates a new conversion view.
func NewView(s *styles.Styles, converter driving.ConverterService, settings driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	baseInput := input.NewNumeralInput(s)
	baseInput.SetLabel("Base: ")
	baseInput.SetPlaceholder("2-16")
	baseInput.SetCharLimit(len("hexadecimal"))

	v := &View{
		styles:    s,
		keymap:    km,
		converter: converter,
		settings:  settings,
		ctx:       context.Background(),
		picker:    list.NewPicker(s, baseOptions(0)),
		baseInput: baseInput,
		numInput:  input.NewNumeralInput(s),
		status:    status.NewBar(s, km),
		prefix:    true,
		width:     80,
		height:    24,
	}
	v.Reset()
	return v
}

// baseOptions lists the quick-select bases plus the custom entry.
// exclude marks a base as unavailable; zero excludes nothing.
func baseOptions(exclude domain.Base) []list.Option {
	common := domain.CommonBases()
	options := make([]list.Option, 0, len(common)+1)
	for _, b := range common {
		opt := list.Option{Label: b.Description()}
		if b == exclude {
			opt.Disabled = true
			opt.Detail = "(source)"
		}
		options = append(options, opt)
	}
	return append(options, list.Option{Label: customLabel})
}

// WithContext sets the context passed to the converter.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the current input.
func (v *View) Init() tea.Cmd {
	return v.numInput.Init()
}

// Reset returns the flow to source base selection.
func (v *View) Reset() {
	v.stage = StageSource
	v.source = 0
	v.target = 0
	v.result = nil
	v.picker.SetOptions(baseOptions(0))
	v.picker.SetSelected(0)
	v.baseInput.Reset()
	v.numInput.Reset()
	v.status.Clear()
	v.status.SetBindings(v.keymap.PickerHelp())
}

// Update handles messages for the conversion view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ConversionCompleted:
		return v.handleCompleted(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v.back()
		}
		switch v.stage {
		case StageSource, StageTarget:
			return v.handlePickerKeys(msg)
		case StageSourceCustom, StageTargetCustom:
			return v.handleCustomKeys(msg)
		case StageInput:
			return v.handleInputKeys(msg)
		case StageResult:
			return v.handleResultKeys(msg)
		}
	}

	return v, nil
}

func (v *View) back() (*View, tea.Cmd) {
	v.status.Clear()
	switch v.stage {
	case StageSourceCustom:
		v.stage = StageSource
	case StageTarget:
		v.Reset()
	case StageTargetCustom:
		v.stage = StageTarget
	case StageInput:
		v.enterTarget()
	case StageSource, StageResult:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

func (v *View) handlePickerKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() != "enter" {
		v.picker.Update(msg)
		return v, nil
	}

	opt, ok := v.picker.SelectedOption()
	if !ok {
		v.status.SetError(domain.ErrSameBase)
		return v, nil
	}
	v.status.Clear()

	if opt.Label == customLabel {
		v.baseInput.Reset()
		if v.stage == StageSource {
			v.stage = StageSourceCustom
		} else {
			v.stage = StageTargetCustom
		}
		return v, v.baseInput.Focus()
	}

	return v.chooseBase(domain.CommonBases()[v.picker.Selected()])
}

func (v *View) handleCustomKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		v.baseInput, cmd = v.baseInput.Update(msg)
		return v, cmd
	}

	b, err := domain.ParseBase(v.baseInput.Value())
	if err != nil {
		v.status.SetError(err)
		return v, nil
	}
	return v.chooseBase(b)
}

// chooseBase records b for the current stage and advances.
func (v *View) chooseBase(b domain.Base) (*View, tea.Cmd) {
	if v.stage == StageSource || v.stage == StageSourceCustom {
		v.source = b
		v.enterTarget()
		return v, nil
	}

	if b == v.source {
		v.status.SetError(domain.ErrSameBase)
		return v, nil
	}
	v.target = b
	return v, v.enterInput()
}

func (v *View) enterTarget() {
	v.stage = StageTarget
	v.target = 0
	v.picker.SetOptions(baseOptions(v.source))
	v.picker.SetSelected(0)
	v.status.SetBindings(v.keymap.PickerHelp())
}

func (v *View) enterInput() tea.Cmd {
	v.stage = StageInput
	v.result = nil
	v.numInput.Reset()
	v.numInput.SetLabel(fmt.Sprintf("%s: ", v.source.Name()))
	v.numInput.SetPlaceholder(fmt.Sprintf("digits %s", digitRange(v.source)))
	v.status.SetBindings(v.keymap.ShortHelp())
	return v.numInput.Focus()
}

func (v *View) handleInputKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		v.numInput, cmd = v.numInput.Update(msg)
		return v, cmd
	}

	raw := v.numInput.Value()
	if raw == "" {
		v.status.SetError(errEmptyInput)
		return v, nil
	}

	v.status.SetState(status.StateConverting)
	return v, v.convert(raw)
}

// convert returns a command that runs the conversion.
func (v *View) convert(raw string) tea.Cmd {
	req := driving.ConvertRequest{Input: raw, From: v.source, To: v.target}
	ctx := v.ctx
	return func() tea.Msg {
		if v.converter == nil {
			return messages.ConversionCompleted{Err: errors.New("converter service not available")}
		}
		result, err := v.converter.Convert(ctx, req)
		return messages.ConversionCompleted{Result: result, Err: err}
	}
}

func (v *View) handleCompleted(msg messages.ConversionCompleted) (*View, tea.Cmd) {
	if msg.Err != nil {
		// Recoverable: stay on the input so the user can correct it.
		v.status.SetError(msg.Err)
		return v, nil
	}

	v.result = msg.Result
	v.stage = StageResult
	v.prefix = v.prefixEnabled()
	v.status.Clear()
	v.status.SetBindings(v.keymap.ResultHelp())
	return v, nil
}

func (v *View) handleResultKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Again):
		return v, v.enterInput()
	case keymap.Matches(key, v.keymap.NewBases):
		v.Reset()
	}
	return v, nil
}

func (v *View) prefixEnabled() bool {
	if v.settings == nil {
		return true
	}
	settings, err := v.settings.Get()
	if err != nil {
		return true
	}
	return settings.Display.PrefixAnnotations
}

// digitRange describes the valid digits of b, e.g. "0-1" or "0-9, A-F".
func digitRange(b domain.Base) string {
	last := domain.SymbolOf(int(b) - 1)
	if b <= domain.Decimal {
		return fmt.Sprintf("0-%c", last)
	}
	if b == domain.Decimal+1 {
		return "0-9, A"
	}
	return fmt.Sprintf("0-9, A-%c", last)
}

// View renders the conversion view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Convert Number"))
	b.WriteString("\n\n")

	switch v.stage {
	case StageSource:
		b.WriteString(v.styles.Subtitle.Render("Select source base"))
		b.WriteString("\n\n")
		b.WriteString(v.picker.View())
	case StageSourceCustom, StageTargetCustom:
		b.WriteString(v.styles.Subtitle.Render("Enter a base from 2 to 16"))
		b.WriteString("\n\n")
		b.WriteString(v.baseInput.View())
		b.WriteString("\n")
	case StageTarget:
		b.WriteString(v.styles.Muted.Render("From " + v.source.Description()))
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Select target base"))
		b.WriteString("\n\n")
		b.WriteString(v.picker.View())
	case StageInput:
		b.WriteString(v.styles.Muted.Render(
			fmt.Sprintf("%s → %s", v.source.Description(), v.target.Description())))
		b.WriteString("\n\n")
		b.WriteString(v.numInput.View())
		b.WriteString("\n")
	case StageResult:
		b.WriteString(v.renderResult())
	}

	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderResult() string {
	r := v.result
	if r == nil {
		return ""
	}

	var body strings.Builder
	fmt.Fprintf(&body, "%s: %s\n", r.Source.Base.Description(), v.styles.Numeral.Render(r.Source.Format(v.prefix)))
	fmt.Fprintf(&body, "%s: %s\n", r.Target.Base.Description(), v.styles.Numeral.Render(r.Target.Format(v.prefix)))
	fmt.Fprintf(&body, "Validation (Decimal): %d", r.Magnitude)

	var b strings.Builder
	b.WriteString(v.styles.Panel.Render(body.String()))
	b.WriteString("\n")

	if r.HasTrace() {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Steps: " + r.TraceTitle()))
		b.WriteString("\n")
		for i, step := range r.Steps {
			b.WriteString(v.styles.Step.Render(fmt.Sprintf("%d. %s", i+1, step.String())))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.numInput.SetWidth(width)
	v.status.SetWidth(width)
}

// Stage returns the current stage.
func (v *View) Stage() Stage {
	return v.stage
}

// Bases returns the chosen source and target bases.
func (v *View) Bases() (source, target domain.Base) {
	return v.source, v.target
}

// Result returns the last successful result.
func (v *View) Result() *domain.ConversionResult {
	return v.result
}

// Err returns the error shown in the status bar, if any.
func (v *View) Err() string {
	if v.status.State() != status.StateError {
		return ""
	}
	return v.status.Message()
}
