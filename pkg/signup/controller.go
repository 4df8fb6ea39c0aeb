// Package signup implements the signup dialog lifecycle: opening a modal
// form on a surface, validating it on submit, and resolving a single
// Outcome with the submitted data or a cancellation.
package signup

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcus/signup/pkg/overlay"
	"github.com/marcus/signup/pkg/surface"
)

// ErrNoSurface is returned when a controller is created without a surface.
var ErrNoSurface = errors.New("signup: surface is nil")

// Phase is the lifecycle state of the controller's dialog.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseClosing
	PhaseUnmounted
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	case PhaseUnmounted:
		return "unmounted"
	}
	return "unknown"
}

// Options configures a Controller.
type Options struct {
	Title             string
	Description       string
	Tiers             []string
	DismissKeys       []string
	InitialFocusDelay time.Duration
	LockScroll        bool
	Messages          Messages
	Logger            *slog.Logger
}

// DefaultOptions returns the stock dialog configuration.
func DefaultOptions() Options {
	return Options{
		Title:             "Application form",
		Description:       "Enter your email, **FE experience** and a few other details.",
		Tiers:             slices.Clone(DefaultTiers),
		DismissKeys:       []string{"esc"},
		InitialFocusDelay: overlay.DefaultInitialFocusDelay,
		LockScroll:        true,
		Messages:          DefaultMessages,
	}
}

// Controller owns one trigger's dialog. At most one instance is open at a
// time; the controller is the only writer of its phase, form and errors.
type Controller struct {
	s       *surface.Surface
	trigger *surface.Node
	lock    *overlay.ScrollLock
	opts    Options
	logger  *slog.Logger

	phase    Phase
	outcome  *Outcome
	form     FormState
	errs     FieldErrors
	dialog   *Dialog
	teardown []func() error
}

// NewController creates a closed controller. trigger regains focus whenever
// the dialog closes and is excluded from outside-click detection. A nil
// lock gets a private one.
func NewController(s *surface.Surface, trigger *surface.Node, lock *overlay.ScrollLock, opts Options) (*Controller, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	if lock == nil {
		lock = &overlay.ScrollLock{}
	}
	defaults := DefaultOptions()
	if len(opts.Tiers) == 0 {
		opts.Tiers = defaults.Tiers
	}
	if opts.Messages == nil {
		opts.Messages = defaults.Messages
	}
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.DismissKeys == nil {
		opts.DismissKeys = defaults.DismissKeys
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		s:       s,
		trigger: trigger,
		lock:    lock,
		opts:    opts,
		logger:  logger.With("component", "signup"),
	}, nil
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// IsOpen reports whether a dialog is open.
func (c *Controller) IsOpen() bool {
	return c.phase == PhaseOpen
}

// Outcome returns the outcome of the current or most recent cycle.
func (c *Controller) Outcome() *Outcome {
	return c.outcome
}

// Dialog returns the mounted dialog, or nil when none is open.
func (c *Controller) Dialog() *Dialog {
	return c.dialog
}

// Form returns a copy of the open dialog's form state.
func (c *Controller) Form() FormState {
	return c.form
}

// Errors returns a copy of the current field errors.
func (c *Controller) Errors() FieldErrors {
	return c.errs.Clone()
}

// Tiers returns the allowed experience tier labels.
func (c *Controller) Tiers() []string {
	return slices.Clone(c.opts.Tiers)
}

// Options returns the controller configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// Open mounts the dialog and returns its outcome. While a dialog is open,
// Open returns the existing outcome without creating another instance.
func (c *Controller) Open() (*Outcome, error) {
	if c.phase == PhaseOpen {
		return c.outcome, nil
	}

	id := uuid.NewString()
	outcome := newOutcome(id)
	d := buildContent(id, c.opts)

	// Registrations are pushed in order and undone in reverse.
	var teardown []func() error
	fail := func(err error) (*Outcome, error) {
		if terr := runTeardown(teardown); terr != nil {
			err = errors.Join(err, terr)
		}
		return nil, fmt.Errorf("open signup dialog: %w", err)
	}

	dismiss := func() { c.cancelInstance(outcome) }

	container, keys, err := overlay.KeyDown(c.s,
		overlay.WrapOptions{AsChild: true},
		func(*surface.KeyEvent) { dismiss() },
		overlay.KeyOptions{Keys: c.opts.DismissKeys, Enabled: true},
		d.Container)
	if err != nil {
		return fail(err)
	}
	teardown = append(teardown, keys.Close)

	exclude := []*overlay.Ref[*surface.Node]{overlay.RefOf(c.trigger)}
	root, outside, err := overlay.OutsidePointerDown(c.s,
		overlay.WrapOptions{As: surface.KindDiv, ID: NodeDialog, Ref: func(n *surface.Node) { d.Root = n }},
		func(*surface.Node) { dismiss() },
		exclude,
		container)
	if err != nil {
		return fail(err)
	}
	teardown = append(teardown, outside.Close)

	if err := c.s.Mount(nil, root); err != nil {
		return fail(err)
	}
	teardown = append(teardown, func() error { return c.s.Unmount(root) })

	trap, err := overlay.NewFocusTrap(c.s, overlay.FocusTrapOptions{
		Container:    overlay.RefOf(d.Content),
		InitialFocus: overlay.RefOf(d.Fields[FieldName]),
		Delay:        c.opts.InitialFocusDelay,
		LockScroll:   c.opts.LockScroll,
		Lock:         c.lock,
	})
	if err != nil {
		return fail(err)
	}
	trap.Activate()
	teardown = append(teardown, trap.Close)

	c.phase = PhaseOpen
	c.outcome = outcome
	c.dialog = d
	c.form = FormState{}
	c.errs = FieldErrors{}
	c.teardown = teardown

	c.logger.Info("dialog opened", "instance", id)
	return outcome, nil
}

// SetField records user input for f. The field's error, if shown, is
// cleared on the first change. Returns false when no dialog is open or f is
// unknown.
func (c *Controller) SetField(f Field, v string) bool {
	if c.phase != PhaseOpen || !f.Valid() {
		return false
	}
	if c.form.Get(f) == v {
		return true
	}
	c.form.Set(f, v)
	if c.errs.Has(f) {
		delete(c.errs, f)
	}
	return true
}

// Submit validates the form. On failure the errors are stored, the dialog
// stays open and Submit returns false. On success the outcome resolves with
// the form and the dialog closes.
func (c *Controller) Submit() bool {
	if c.phase != PhaseOpen {
		return false
	}
	snapshot := c.form
	errs := Validate(snapshot, c.opts.Tiers, c.opts.Messages)
	c.errs = errs
	if len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for _, f := range Fields {
			if errs.Has(f) {
				fields = append(fields, string(f))
			}
		}
		c.logger.Debug("submit rejected", "instance", c.outcome.ID(), "fields", fields)
		return false
	}
	snapshot.GithubLink = strings.TrimSpace(snapshot.GithubLink)
	c.close(&snapshot)
	return true
}

// Cancel resolves the outcome with nil and closes the dialog. It is a no-op
// when no dialog is open.
func (c *Controller) Cancel() {
	if c.phase != PhaseOpen {
		return
	}
	c.close(nil)
}

// cancelInstance cancels only if o is still the open instance.
func (c *Controller) cancelInstance(o *Outcome) {
	if c.outcome != o {
		return
	}
	c.Cancel()
}

// close is the single exit path shared by submit and every cancel trigger.
func (c *Controller) close(data *FormState) {
	id := c.outcome.ID()
	c.phase = PhaseClosing
	c.outcome.resolve(data)

	teardown := c.teardown
	c.teardown = nil
	err := runTeardown(teardown)

	c.form = FormState{}
	c.errs = FieldErrors{}
	c.dialog = nil
	c.phase = PhaseUnmounted

	if c.trigger != nil {
		c.s.Focus(c.trigger)
	}

	if err != nil {
		c.logger.Error("dialog teardown", "instance", id, "err", err)
	}
	c.logger.Info("dialog closed", "instance", id, "submitted", data != nil)
}

// runTeardown runs every step in reverse order. A failing or panicking step
// does not stop the rest.
func runTeardown(steps []func() error) error {
	var errs []error
	for i := len(steps) - 1; i >= 0; i-- {
		if err := runStep(steps[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func runStep(step func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("teardown panic: %v", r)
		}
	}()
	return step()
}
