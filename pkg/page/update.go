package page

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/signup/pkg/page/modal"
	"github.com/marcus/signup/pkg/page/mouse"
	"github.com/marcus/signup/pkg/signup"
	"github.com/marcus/signup/pkg/surface"
)

const (
	statusDuration = 2 * time.Second
	scrollStep     = 3
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	case OpenMsg:
		m, cmd = m.openDialog()
	case timerMsg:
		m.surface.FireTimer(msg.ID)
	case signup.OutcomeMsg:
		m, cmd = m.handleOutcome(msg)
	case ClearStatusMsg:
		m.StatusMessage = ""
		m.StatusIsError = false
	case clipboardMsg:
		if msg.Err != nil {
			m, cmd = m.setStatus("Copy failed: "+msg.Err.Error(), true)
		} else {
			m, cmd = m.setStatus("Copied application to clipboard", false)
		}
	}
	m = m.afterEvent()
	return m, tea.Batch(cmd, m.timerCmds())
}

func (m Model) resize(w, h int) Model {
	m.Width = w
	m.Height = h
	m.viewport.Width = w
	m.viewport.Height = max(h-2, 1)
	if m.pageText == "" || m.viewport.Width != w {
		m.pageText = modal.RenderMarkdown(m.opts.PageMarkdown, max(w-2, 20))
	}
	m.viewport.SetContent(m.pageText)
	return m
}

// afterEvent drops the dialog widgets once the controller has closed.
func (m Model) afterEvent() Model {
	if m.form != nil && !m.ctrl.IsOpen() {
		m.form = nil
		m.Hover = ""
	}
	return m
}

// timerCmds turns newly scheduled surface timers into ticks.
func (m Model) timerCmds() tea.Cmd {
	timers := m.surface.TakeScheduled()
	if len(timers) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(timers))
	for _, t := range timers {
		id := t.ID
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return timerMsg{ID: id}
		}))
	}
	return tea.Batch(cmds...)
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.StatusMessage = text
	m.StatusIsError = isErr
	return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

func (m Model) openDialog() (Model, tea.Cmd) {
	if m.ctrl.IsOpen() {
		return m, nil
	}
	o, err := m.ctrl.Open()
	if err != nil {
		m.logger.Error("open dialog", "err", err)
		return m.setStatus(err.Error(), true)
	}
	m.form = newFormView(m.ctrl, formModalWidth(m.Width))
	return m, o.Await()
}

func (m Model) submit() (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	m.form.sync(m.ctrl)
	if m.ctrl.Submit() {
		return m, nil
	}
	n := len(m.ctrl.Errors())
	return m.setStatus(fmt.Sprintf("Please fix %d field(s)", n), true)
}

func (m Model) handleOutcome(msg signup.OutcomeMsg) (Model, tea.Cmd) {
	m.Last = &msg
	m.Outcomes++

	var cmd tea.Cmd
	if msg.Cancelled() {
		m, cmd = m.setStatus("Application cancelled", false)
	} else {
		m, cmd = m.setStatus("Application received from "+msg.Data.Name, false)
	}
	if m.opts.QuitOnOutcome {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.ctrl.Cancel()
		m.quitting = true
		return m, tea.Quit
	}

	ev := &surface.KeyEvent{Key: key}
	if !m.surface.DispatchKey(ev) {
		return m, nil
	}
	// A listener may have closed the dialog.
	if m.form != nil && !m.ctrl.IsOpen() {
		return m, nil
	}

	switch key {
	case "tab":
		m.surface.FocusNext()
		return m, nil
	case "shift+tab":
		m.surface.FocusPrev()
		return m, nil
	}

	if m.form != nil {
		return m.handleDialogKey(msg)
	}
	return m.handlePageKey(msg)
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	md := m.form.modal
	md.SetFocus(m.activeID())
	action, cmd := md.Update(msg)
	m.form.sync(m.ctrl)

	switch action {
	case signup.NodeSubmit:
		var scmd tea.Cmd
		m, scmd = m.submit()
		return m, tea.Batch(cmd, scmd)
	case signup.NodeCancel:
		m.ctrl.Cancel()
	}
	return m, cmd
}

func (m Model) handlePageKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if m.surface.ActiveElement() == m.trigger {
			return m.openDialog()
		}
	case "o":
		return m.openDialog()
	case "y":
		if data, ok := m.Result(); ok && data != nil {
			return m, copyFormCmd(*data)
		}
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.scrollPage(-1)
	case "down", "j":
		m.scrollPage(1)
	case "pgup":
		m.scrollPage(-m.viewport.Height)
	case "pgdown":
		m.scrollPage(m.viewport.Height)
	}
	return m, nil
}

// scrollPage scrolls the landing page unless the dialog holds the scroll lock.
func (m *Model) scrollPage(delta int) {
	if m.lock.Locked() {
		return
	}
	if delta < 0 {
		m.viewport.ScrollUp(-delta)
	} else {
		m.viewport.ScrollDown(delta)
	}
}

func (m Model) activeID() string {
	if n := m.surface.ActiveElement(); n != nil {
		return n.ID
	}
	return ""
}

// nodeForRegion maps a hit region to the surface node drawn there. A miss
// maps to nil, which the surface treats as the body.
func (m Model) nodeForRegion(r *mouse.Region) *surface.Node {
	if r == nil {
		return nil
	}
	if list, _, ok := modal.ParseItemRegionID(r.ID); ok {
		return m.surface.Find(list)
	}
	return m.surface.Find(r.ID)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionHover:
		m.Hover = ""
		if action.Region != nil {
			m.Hover = action.Region.ID
		}
		return m, nil

	case mouse.ActionScrollUp:
		m.scrollPage(-scrollStep)
		return m, nil
	case mouse.ActionScrollDown:
		m.scrollPage(scrollStep)
		return m, nil

	case mouse.ActionClick:
		return m.handleClick(action)
	}
	return m, nil
}

func (m Model) handleClick(action mouse.MouseAction) (Model, tea.Cmd) {
	target := m.nodeForRegion(action.Region)
	ev := &surface.PointerEvent{Target: target, Kind: surface.PointerMouse, X: action.X, Y: action.Y}
	if !m.surface.DispatchPointerDown(ev) {
		return m, nil
	}
	if m.form != nil && !m.ctrl.IsOpen() {
		// Outside press closed the dialog.
		return m, nil
	}
	if target == nil {
		return m, nil
	}
	// While open, presses outside the dialog content neither move focus nor act.
	if m.form != nil && !m.ctrl.Dialog().Content.Contains(target) {
		return m, nil
	}
	if target.Focusable() {
		m.surface.Focus(target)
	}

	switch target.ID {
	case NodeTrigger:
		return m.openDialog()
	case signup.NodeSubmit:
		return m.submit()
	case signup.NodeCancel:
		m.ctrl.Cancel()
		return m, nil
	}

	if m.form != nil && action.Region != nil {
		if _, idx, ok := modal.ParseItemRegionID(action.Region.ID); ok {
			m.form.tierIdx = idx
			m.form.sync(m.ctrl)
		}
	}
	return m, nil
}
