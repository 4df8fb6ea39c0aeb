package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/signup/pkg/page/mouse"
)

const (
	defaultWidth = 50
	minWidth     = 24

	// border (2) + horizontal padding (2)
	chromeWidth = 4
	// top border row
	chromeTop = 1
)

// Section is one vertical block of a modal.
type Section interface {
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// FocusableInfo is a clickable rectangle inside a section, relative to the
// section's top-left corner.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
	Data    any
}

// RenderedSection is a section's output plus its clickable rectangles.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the outer width of the box.
func WithWidth(w int) Option {
	return func(m *Modal) {
		m.width = max(w, minWidth)
	}
}

// WithHints toggles the keyboard hint row.
func WithHints(show bool) Option {
	return func(m *Modal) {
		m.showHints = show
	}
}

// WithHintText replaces the default hint row.
func WithHintText(s string) Option {
	return func(m *Modal) {
		m.hintText = s
	}
}

// WithPrimaryAction sets the action returned for an implicit Enter.
func WithPrimaryAction(actionID string) Option {
	return func(m *Modal) {
		m.primaryAction = actionID
	}
}

// WithID sets the region ID registered for the whole box.
func WithID(id string) Option {
	return func(m *Modal) {
		m.id = id
	}
}

// Modal is a declarative dialog built from sections.
type Modal struct {
	id            string
	title         string
	width         int
	variant       Variant
	showHints     bool
	hintText      string
	primaryAction string
	sections      []Section

	focusID string
	hoverID string

	// last layout
	x, y, w, h int
	focusables []FocusableInfo
}

// New creates a modal with the given title.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:     title,
		width:     defaultWidth,
		showHints: true,
		hintText:  "tab next · shift+tab prev · enter submit · esc cancel",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends s and returns m for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// ID returns the region ID of the box.
func (m *Modal) ID() string {
	return m.id
}

// PrimaryAction returns the implicit submit action.
func (m *Modal) PrimaryAction() string {
	return m.primaryAction
}

// Width returns the configured outer width.
func (m *Modal) Width() int {
	return m.width
}

// SetFocus sets the ID of the focused element.
func (m *Modal) SetFocus(id string) {
	m.focusID = id
}

// Focus returns the focused element ID.
func (m *Modal) Focus() string {
	return m.focusID
}

// SetHover sets the ID of the element under the pointer.
func (m *Modal) SetHover(id string) {
	m.hoverID = id
}

// SetVariant changes the border color for subsequent renders.
func (m *Modal) SetVariant(v Variant) {
	m.variant = v
}

// Focusables returns the focusable rectangles from the last render, in
// absolute screen coordinates.
func (m *Modal) Focusables() []FocusableInfo {
	return m.focusables
}

// Position returns the top-left corner of the last render.
func (m *Modal) Position() (int, int) {
	return m.x, m.y
}

// Bounds returns the rectangle of the last render.
func (m *Modal) Bounds() mouse.Rect {
	return mouse.Rect{X: m.x, Y: m.y, W: m.w, H: m.h}
}

// Render lays out the modal centered on a screenW x screenH screen and
// registers its regions on h. The box region is registered first so the
// sections inside it take priority. h may be nil.
func (m *Modal) Render(screenW, screenH int, h *mouse.Handler) string {
	width := m.width
	if screenW > 0 && width > screenW {
		width = max(screenW, minWidth)
	}
	contentWidth := width - chromeWidth

	var body strings.Builder
	var focusables []FocusableInfo
	line := 0

	write := func(s string) {
		if line > 0 {
			body.WriteString("\n")
		}
		body.WriteString(s)
		line += lipgloss.Height(s)
	}

	if m.title != "" {
		write(ModalTitle.Render(ansi.Truncate(m.title, contentWidth, "…")))
		write("")
	}

	for _, s := range m.sections {
		rs := s.Render(contentWidth, m.focusID, m.hoverID)
		if rs.Content == "" && len(rs.Focusables) == 0 {
			continue
		}
		start := line
		write(rs.Content)
		for _, f := range rs.Focusables {
			f.OffsetY += start
			focusables = append(focusables, f)
		}
	}

	if m.showHints && m.hintText != "" {
		write("")
		write(HintText.Render(ansi.Truncate(m.hintText, contentWidth, "…")))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.variant.borderColor()).
		Padding(0, 1).
		Width(width - 2).
		Render(body.String())

	m.w = lipgloss.Width(box)
	m.h = lipgloss.Height(box)
	m.x = max((screenW-m.w)/2, 0)
	m.y = max((screenH-m.h)/2, 0)

	// Convert section offsets to screen coordinates.
	originX := m.x + chromeWidth/2
	originY := m.y + chromeTop
	m.focusables = m.focusables[:0]
	for _, f := range focusables {
		f.OffsetX += originX
		f.OffsetY += originY
		m.focusables = append(m.focusables, f)
	}

	if h != nil {
		if m.id != "" {
			h.HitMap.AddRect(m.id, m.x, m.y, m.w, m.h, nil)
		}
		for _, f := range m.focusables {
			h.HitMap.AddRect(f.ID, f.OffsetX, f.OffsetY, f.Width, f.Height, f.Data)
		}
	}
	return box
}

// Update forwards msg to every section and returns the first action any of
// them produced.
func (m *Modal) Update(msg tea.Msg) (string, tea.Cmd) {
	var action string
	var cmds []tea.Cmd
	for _, s := range m.sections {
		a, cmd := s.Update(msg, m.focusID)
		if action == "" && a != "" {
			action = a
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return action, tea.Batch(cmds...)
}

// HandleMouse classifies msg with h and returns the ID of the region that
// was clicked, or "" for anything else.
func (m *Modal) HandleMouse(msg tea.MouseMsg, h *mouse.Handler) string {
	action := h.HandleMouse(msg)
	switch action.Type {
	case mouse.ActionHover:
		m.hoverID = ""
		if action.Region != nil {
			m.hoverID = action.Region.ID
		}
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region != nil {
			return action.Region.ID
		}
	}
	return ""
}
