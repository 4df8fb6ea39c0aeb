// Package page is the terminal host for the signup dialog: a scrollable
// landing page with a trigger button that opens the dialog over it.
package page

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/signup/pkg/overlay"
	"github.com/marcus/signup/pkg/page/mouse"
	"github.com/marcus/signup/pkg/signup"
	"github.com/marcus/signup/pkg/surface"
)

// Node and region IDs owned by the page.
const (
	NodeTrigger = "open-signup"
	NodePage    = "page"
)

// DefaultPageMarkdown is the landing page shown behind the dialog.
const DefaultPageMarkdown = `# Frontend engineer hiring

We are looking for frontend engineers to join the product team.

## What you will do

- Build and maintain the customer-facing web app
- Work with design on accessible, keyboard-friendly components
- Own features from proposal to production

## Requirements

- Experience with a modern UI framework
- Care for details such as focus handling and form validation

Press **enter** on the *Apply* button, or click it, to open the application form.
Scroll this page with the arrow keys or the mouse wheel.
`

// Options configures the page.
type Options struct {
	Signup        signup.Options
	PageMarkdown  string
	OpenOnStart   bool
	QuitOnOutcome bool
	Logger        *slog.Logger
}

// Model is the bubbletea model of the page.
type Model struct {
	Width  int
	Height int

	StatusMessage string
	StatusIsError bool
	Hover         string

	// Last is the most recent outcome; nil data means cancelled.
	Last     *signup.OutcomeMsg
	Outcomes int

	opts     Options
	logger   *slog.Logger
	surface  *surface.Surface
	lock     *overlay.ScrollLock
	ctrl     *signup.Controller
	trigger  *surface.Node
	pageNode *surface.Node
	mouse    *mouse.Handler
	viewport viewport.Model
	pageText string
	form     *formView
	quitting bool
}

// New builds the page, its surface and the dialog controller.
func New(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.PageMarkdown == "" {
		opts.PageMarkdown = DefaultPageMarkdown
	}
	opts.Signup.Logger = logger

	s := surface.New(surface.WithLogger(logger))
	pageNode := surface.NewNode(surface.KindDiv, NodePage)
	trigger := surface.NewNode(surface.KindButton, NodeTrigger, surface.WithLabel("Apply"))
	if err := s.Mount(nil, trigger); err != nil {
		return Model{}, err
	}
	if err := s.Mount(nil, pageNode); err != nil {
		return Model{}, err
	}
	s.Focus(trigger)

	lock := &overlay.ScrollLock{}
	ctrl, err := signup.NewController(s, trigger, lock, opts.Signup)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:     opts,
		logger:   logger.With("component", "page"),
		surface:  s,
		lock:     lock,
		ctrl:     ctrl,
		trigger:  trigger,
		pageNode: pageNode,
		mouse:    mouse.NewHandler(),
		viewport: viewport.New(0, 0),
	}, nil
}

// Controller returns the dialog controller.
func (m Model) Controller() *signup.Controller {
	return m.ctrl
}

// Surface returns the element tree the page dispatches into.
func (m Model) Surface() *surface.Surface {
	return m.surface
}

// ScrollLock returns the page's scroll lock.
func (m Model) ScrollLock() *overlay.ScrollLock {
	return m.lock
}

// Viewport returns the landing page viewport.
func (m Model) Viewport() viewport.Model {
	return m.viewport
}

// Result returns the submitted form of the last outcome, and whether any
// outcome was delivered.
func (m Model) Result() (*signup.FormState, bool) {
	if m.Last == nil {
		return nil, false
	}
	return m.Last.Data, true
}

// Init opens the dialog when configured to.
func (m Model) Init() tea.Cmd {
	if !m.opts.OpenOnStart {
		return nil
	}
	return func() tea.Msg { return OpenMsg{} }
}
