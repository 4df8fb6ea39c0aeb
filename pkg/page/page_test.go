package page

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/signup/internal/validate"
	"github.com/marcus/signup/pkg/signup"
	"github.com/marcus/signup/pkg/surface"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, w, h int) Model {
	t.Helper()
	m, err := New(Options{Signup: signup.DefaultOptions()})
	require.NoError(t, err)
	m = update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	m.View()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func wheelDown() tea.MouseMsg {
	return tea.MouseMsg{X: 1, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
}

// openDialog presses enter on the trigger and fires the initial focus timer.
func openDialog(t *testing.T, m Model) Model {
	t.Helper()
	require.Equal(t, NodeTrigger, m.activeID())
	m = update(t, m, key("enter"))
	require.True(t, m.Controller().IsOpen())
	m.Surface().FireAll()
	m.View()
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return update(t, m, key(s))
}

func deliverOutcome(t *testing.T, m Model) Model {
	t.Helper()
	o := m.Controller().Outcome()
	require.True(t, o.Resolved())
	return update(t, m, o.Await()())
}

func regionCenter(t *testing.T, m Model, id string) (int, int) {
	t.Helper()
	require.NotNil(t, m.form)
	for _, f := range m.form.modal.Focusables() {
		if f.ID == id {
			return f.OffsetX + f.Width/2, f.OffsetY
		}
	}
	t.Fatalf("region %q not rendered", id)
	return 0, 0
}

func TestOpenFocusesFirstField(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	require.Equal(t, signup.FieldNodeID(signup.FieldName), m.activeID())
	require.True(t, m.ScrollLock().Locked())

	view := m.View()
	require.Contains(t, view, "Application form")
	require.Contains(t, view, "Submit")
}

func TestOpenOnStart(t *testing.T) {
	m, err := New(Options{OpenOnStart: true})
	require.NoError(t, err)
	cmd := m.Init()
	require.NotNil(t, cmd)
	require.IsType(t, OpenMsg{}, cmd())

	m = update(t, m, OpenMsg{})
	require.True(t, m.Controller().IsOpen())
}

func TestEscCancels(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)
	m = typeText(t, m, "draft")

	m = update(t, m, key("esc"))
	require.False(t, m.Controller().IsOpen())
	require.Nil(t, m.form)
	require.Equal(t, NodeTrigger, m.activeID(), "focus back on trigger")
	require.False(t, m.ScrollLock().Locked())

	m = deliverOutcome(t, m)
	data, ok := m.Result()
	require.True(t, ok)
	require.Nil(t, data)
	require.Equal(t, "Application cancelled", m.StatusMessage)
	require.Equal(t, 1, m.Outcomes)

	m = update(t, m, ClearStatusMsg{})
	require.Empty(t, m.StatusMessage)
}

func TestFullKeyboardSubmission(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	m = typeText(t, m, "Kim")
	m = update(t, m, key("tab"))
	require.Equal(t, signup.FieldNodeID(signup.FieldEmail), m.activeID())
	m = typeText(t, m, "kim@example.com")
	m = update(t, m, key("tab"))
	require.Equal(t, signup.FieldNodeID(signup.FieldExperienceTier), m.activeID())
	m = update(t, m, key("down"))
	require.Equal(t, signup.DefaultTiers[0], m.Controller().Form().ExperienceTier)
	m = update(t, m, key("tab"))
	require.Equal(t, signup.FieldNodeID(signup.FieldGithubLink), m.activeID())

	o := m.Controller().Outcome()
	m = update(t, m, key("enter"))
	require.False(t, m.Controller().IsOpen())

	data, ok := o.Result()
	require.True(t, ok)
	require.Equal(t, &signup.FormState{
		Name:           "Kim",
		Email:          "kim@example.com",
		ExperienceTier: signup.DefaultTiers[0],
	}, data)

	m = deliverOutcome(t, m)
	require.Contains(t, m.StatusMessage, "Kim")
	require.Contains(t, m.renderStatus(), "Kim")
}

func TestTabWrapsInsideDialog(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	m = update(t, m, key("shift+tab"))
	require.Equal(t, signup.NodeSubmit, m.activeID())
	m = update(t, m, key("tab"))
	require.Equal(t, signup.FieldNodeID(signup.FieldName), m.activeID())
}

func TestClickSubmitWithEmptyFormShowsErrors(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	x, y := regionCenter(t, m, signup.NodeSubmit)
	m = update(t, m, click(x, y))
	require.True(t, m.Controller().IsOpen())
	require.True(t, m.StatusIsError)
	require.Len(t, m.Controller().Errors(), 3)

	view := m.View()
	require.Contains(t, view, signup.DefaultMessages.Text(signup.FieldName, validate.KeyRequired))
}

func TestClickInsideKeepsDialogOpen(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	x, y := regionCenter(t, m, signup.FieldNodeID(signup.FieldEmail))
	m = update(t, m, click(x, y))
	require.True(t, m.Controller().IsOpen())
	require.Equal(t, signup.FieldNodeID(signup.FieldEmail), m.activeID(), "click focuses the input")

	// Trigger is excluded from outside detection and must not take focus
	// from the dialog.
	m.View()
	m = update(t, m, click(0, 0))
	require.True(t, m.Controller().IsOpen())
	require.Equal(t, signup.FieldNodeID(signup.FieldEmail), m.activeID())
	require.True(t, m.Controller().Dialog().Content.Contains(m.Surface().ActiveElement()))

	m = typeText(t, m, "x")
	require.Equal(t, "x", m.Controller().Form().Email, "typing still reaches the focused field")
}

func TestDoubleClickSecondPressIgnored(t *testing.T) {
	m := newTestModel(t, 80, 24)
	presses := 0
	m.Surface().AddPointerDownListener(func(*surface.PointerEvent) { presses++ })

	m = update(t, m, click(2, 5))
	m.View()
	m = update(t, m, click(2, 5))
	require.Equal(t, 1, presses)
	require.False(t, m.Controller().IsOpen())
}

func TestClickTierRowSelects(t *testing.T) {
	m := newTestModel(t, 80, 30)
	m = openDialog(t, m)

	x, y := regionCenter(t, m, "field-experienceTier#2")
	m = update(t, m, click(x, y))
	require.Equal(t, signup.DefaultTiers[2], m.Controller().Form().ExperienceTier)
	require.Equal(t, signup.FieldNodeID(signup.FieldExperienceTier), m.activeID())
}

func TestClickOutsideCancels(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	m = update(t, m, click(0, 5))
	require.False(t, m.Controller().IsOpen())
	require.Nil(t, m.form)

	data, ok := m.Controller().Outcome().Result()
	require.True(t, ok)
	require.Nil(t, data)
}

func TestCancelButton(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	x, y := regionCenter(t, m, signup.NodeCancel)
	m = update(t, m, click(x, y))
	require.False(t, m.Controller().IsOpen())
}

func TestScrollLockedWhileOpen(t *testing.T) {
	m := newTestModel(t, 60, 6)
	require.Greater(t, m.Viewport().TotalLineCount(), m.Viewport().Height)

	m = update(t, m, wheelDown())
	scrolled := m.Viewport().YOffset
	require.Positive(t, scrolled)

	m = openDialog(t, m)
	m = update(t, m, wheelDown())
	require.Equal(t, scrolled, m.Viewport().YOffset, "page must not scroll under the dialog")

	m = update(t, m, key("esc"))
	m = update(t, m, key("down"))
	require.Greater(t, m.Viewport().YOffset, scrolled)
}

func TestCtrlCCancelsAndQuits(t *testing.T) {
	m := newTestModel(t, 80, 24)
	m = openDialog(t, m)

	next, cmd := m.Update(key("ctrl+c"))
	m = next.(Model)
	require.NotNil(t, cmd)
	require.False(t, m.Controller().IsOpen())
	require.True(t, m.Controller().Outcome().Resolved())
	require.Empty(t, m.View())
}

func TestQuitOnOutcome(t *testing.T) {
	m, err := New(Options{QuitOnOutcome: true})
	require.NoError(t, err)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = openDialog(t, m)
	m = update(t, m, key("esc"))

	next, cmd := m.Update(m.Controller().Outcome().Await()())
	require.NotNil(t, cmd)
	require.True(t, next.(Model).quitting)
}

func TestFormatFormAsMarkdown(t *testing.T) {
	md := formatFormAsMarkdown(signup.FormState{Name: "Kim", Email: "kim@example.com"})
	require.True(t, strings.HasPrefix(md, "# Application: Kim\n"))
	require.Contains(t, md, "kim@example.com")
	require.NotContains(t, md, signup.Labels[signup.FieldGithubLink])
}

func TestFormModalWidth(t *testing.T) {
	require.Equal(t, 44, formModalWidth(20))
	require.Equal(t, 64, formModalWidth(80))
	require.Equal(t, 72, formModalWidth(200))
}

func TestDialogHintsNameDismissKeys(t *testing.T) {
	require.True(t, strings.HasSuffix(dialogHints([]string{"esc", "q"}), "esc/q cancel"))
	require.True(t, strings.HasSuffix(dialogHints(nil), "any key cancel"))
}
