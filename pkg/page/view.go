package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/signup/pkg/page/modal"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(modal.Muted)
	statusError = lipgloss.NewStyle().Foreground(modal.Error).Bold(true)
	hintStyle   = modal.HintText
)

// View implements tea.Model. Hit regions are re-registered on every render.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.mouse.Clear()

	trigger := m.renderTrigger()
	triggerW := lipgloss.Width(trigger)
	header := trigger + "  " + headerStyle.Render("Frontend engineer hiring")

	m.mouse.HitMap.AddRect(NodePage, 0, 1, m.Width, m.viewport.Height, nil)
	m.mouse.HitMap.AddRect(NodeTrigger, 0, 0, triggerW, 1, nil)

	base := strings.Join([]string{
		ansi.Truncate(header, max(m.Width, 1), ""),
		m.viewport.View(),
		m.renderStatus(),
	}, "\n")

	if m.form == nil {
		return base
	}

	md := m.form.modal
	md.SetFocus(m.activeID())
	md.SetHover(m.Hover)
	if len(m.ctrl.Errors()) > 0 {
		md.SetVariant(modal.VariantWarning)
	} else {
		md.SetVariant(modal.VariantDefault)
	}
	box := md.Render(m.Width, m.Height, m.mouse)
	x, y := md.Position()
	return modal.Overlay(modal.Dim(base), box, x, y)
}

func (m Model) renderTrigger() string {
	style := modal.Button
	switch {
	case m.surface.ActiveElement() == m.trigger:
		style = modal.ButtonFocused
	case m.Hover == NodeTrigger:
		style = modal.ButtonHover
	}
	return style.Render("Apply")
}

func (m Model) renderStatus() string {
	if m.StatusMessage != "" {
		if m.StatusIsError {
			return statusError.Render(m.StatusMessage)
		}
		return statusStyle.Render(m.StatusMessage)
	}
	hints := "enter/o apply · ↑/↓ scroll · q quit"
	if data, ok := m.Result(); ok && data != nil {
		hints += " · y copy"
	}
	return hintStyle.Render(hints)
}
