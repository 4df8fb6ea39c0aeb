package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type textSection struct {
	text string
}

// Text is a static, word-wrapped paragraph.
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	return RenderedSection{Content: Body.Width(contentWidth).Render(s.text)}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type spacerSection struct{}

// Spacer is a blank line.
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: " "}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type markdownSection struct {
	source   string
	width    int
	rendered string
}

// Markdown renders s with glamour. The output is cached until the content
// width changes.
func Markdown(s string) Section {
	return &markdownSection{source: s}
}

func (s *markdownSection) Render(contentWidth int, _, _ string) RenderedSection {
	if s.source == "" {
		return RenderedSection{}
	}
	if s.width != contentWidth || s.rendered == "" {
		s.rendered = RenderMarkdown(s.source, contentWidth)
		s.width = contentWidth
	}
	return RenderedSection{Content: s.rendered}
}

func (s *markdownSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// RenderMarkdown renders text as terminal markdown wrapped at width. On
// renderer failure the raw text is returned.
func RenderMarkdown(text string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	// glamour pads with blank lines and a left margin
	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// InputOption configures an Input section.
type InputOption func(*inputSection)

// WithError supplies the validation message shown under the input. An empty
// string hides it.
func WithError(fn func() string) InputOption {
	return func(s *inputSection) {
		s.errFn = fn
	}
}

// WithSubmitOnEnter makes Enter inside the input return action.
func WithSubmitOnEnter(action string) InputOption {
	return func(s *inputSection) {
		s.submitAction = action
	}
}

type inputSection struct {
	id           string
	label        string
	model        *textinput.Model
	errFn        func() string
	submitAction string
}

// Input is a labelled single-line text input backed by model.
func Input(id, label string, model *textinput.Model, opts ...InputOption) Section {
	s := &inputSection{id: id, label: label, model: model}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *inputSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	focused := focusID == s.id
	errText := ""
	if s.errFn != nil {
		errText = s.errFn()
	}

	labelStyle := InputLabel
	if focused {
		labelStyle = InputLabelFocused
	}
	boxStyle := InputBox
	switch {
	case errText != "":
		boxStyle = InputBoxInvalid
	case focused || hoverID == s.id:
		boxStyle = InputBoxFocused
	}

	// border (2) + padding (2) + prompt
	s.model.Width = max(contentWidth-4-lipgloss.Width(s.model.Prompt)-1, 1)
	if focused {
		s.model.Focus()
	} else {
		s.model.Blur()
	}

	box := boxStyle.Width(contentWidth - 2).Render(s.model.View())
	parts := []string{labelStyle.Render(s.label), box}
	if errText != "" {
		parts = append(parts, ErrorText.Width(contentWidth).Render(errText))
	}

	return RenderedSection{
		Content: strings.Join(parts, "\n"),
		Focusables: []FocusableInfo{{
			ID:     s.id,
			Width:  contentWidth,
			Height: 1 + lipgloss.Height(box),
		}},
	}
}

func (s *inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return s.submitAction, nil
	}
	if !s.model.Focused() {
		s.model.Focus()
	}
	var cmd tea.Cmd
	*s.model, cmd = s.model.Update(msg)
	return "", cmd
}

// ButtonDef describes one button of a Buttons row.
type ButtonDef struct {
	Label  string
	ID     string
	Danger bool
}

// ButtonOption configures a ButtonDef.
type ButtonOption func(*ButtonDef)

// BtnDanger styles the button for destructive actions.
func BtnDanger() ButtonOption {
	return func(b *ButtonDef) {
		b.Danger = true
	}
}

// Btn creates a button definition. Clicking or pressing Enter on it returns
// id as the action.
func Btn(label, id string, opts ...ButtonOption) ButtonDef {
	b := ButtonDef{Label: label, ID: id}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons is a horizontal row of buttons.
func Buttons(btns ...ButtonDef) Section {
	return &buttonsSection{buttons: btns}
}

func (s *buttonsSection) Render(_ int, focusID, hoverID string) RenderedSection {
	var parts []string
	var focusables []FocusableInfo
	x := 0
	for i, b := range s.buttons {
		style := Button
		switch {
		case b.ID == focusID && b.Danger:
			style = ButtonDangerFocused
		case b.ID == focusID:
			style = ButtonFocused
		case b.ID == hoverID:
			style = ButtonHover
		}
		rendered := style.Render(b.Label)
		w := lipgloss.Width(rendered)
		focusables = append(focusables, FocusableInfo{ID: b.ID, OffsetX: x, Width: w, Height: 1})
		parts = append(parts, rendered)
		x += w
		if i < len(s.buttons)-1 {
			parts = append(parts, "  ")
			x += 2
		}
	}
	return RenderedSection{
		Content:    lipgloss.JoinHorizontal(lipgloss.Top, parts...),
		Focusables: focusables,
	}
}

func (s *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}
	switch key.String() {
	case "enter", " ":
		for _, b := range s.buttons {
			if b.ID == focusID {
				return b.ID, nil
			}
		}
	}
	return "", nil
}

type whenSection struct {
	cond    func() bool
	section Section
}

// When renders section only while cond returns true.
func When(cond func() bool, section Section) Section {
	return &whenSection{cond: cond, section: section}
}

func (s *whenSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{}
	}
	return s.section.Render(contentWidth, focusID, hoverID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.section.Update(msg, focusID)
}
