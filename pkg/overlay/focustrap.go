package overlay

import (
	"time"

	"github.com/marcus/signup/pkg/surface"
)

// DefaultInitialFocusDelay gives a freshly mounted dialog time to render
// before focus moves into it.
const DefaultInitialFocusDelay = 100 * time.Millisecond

const (
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
)

// FocusTrapOptions configures a FocusTrap.
type FocusTrapOptions struct {
	// Container bounds Tab cycling. Required.
	Container *Ref[*surface.Node]
	// InitialFocus, if set when the delay elapses, receives focus.
	InitialFocus *Ref[*surface.Node]
	// Delay between activation and the initial focus move.
	Delay time.Duration
	// LockScroll acquires Lock for as long as the trap is active.
	LockScroll bool
	Lock       *ScrollLock
}

// FocusTrap confines Tab and Shift+Tab to a container's focusable
// descendants while active.
type FocusTrap struct {
	s    *surface.Surface
	opts FocusTrapOptions

	active   bool
	remove   func()
	timer    surface.TimerID
	hasTimer bool
}

// NewFocusTrap creates an inactive trap.
func NewFocusTrap(s *surface.Surface, opts FocusTrapOptions) (*FocusTrap, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if opts.Container == nil {
		return nil, ErrNilRegion
	}
	return &FocusTrap{s: s, opts: opts}, nil
}

// Active reports whether the trap is intercepting Tab.
func (t *FocusTrap) Active() bool {
	return t.active
}

// Activate starts intercepting Tab, locks scrolling if configured and
// schedules the initial focus move.
func (t *FocusTrap) Activate() {
	if t.active {
		return
	}
	t.active = true
	t.remove = t.s.AddKeyListener(t.handleKey)

	if t.opts.LockScroll && t.opts.Lock != nil {
		t.opts.Lock.Acquire()
	}

	if t.opts.InitialFocus != nil {
		t.timer = t.s.AfterFunc(t.opts.Delay, func() {
			t.hasTimer = false
			if n := t.opts.InitialFocus.Get(); n != nil {
				t.s.Focus(n)
			}
		})
		t.hasTimer = true
	}
}

// Deactivate stops intercepting Tab, cancels a pending initial focus move
// and restores the scroll state saved on activation.
func (t *FocusTrap) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	if t.remove != nil {
		t.remove()
		t.remove = nil
	}
	if t.hasTimer {
		t.s.CancelTimer(t.timer)
		t.hasTimer = false
	}
	if t.opts.LockScroll && t.opts.Lock != nil {
		t.opts.Lock.Release()
	}
}

// Close deactivates the trap.
func (t *FocusTrap) Close() error {
	t.Deactivate()
	return nil
}

func (t *FocusTrap) handleKey(ev *surface.KeyEvent) {
	if ev.Key != keyTab && ev.Key != keyShiftTab {
		return
	}
	container := t.opts.Container.Get()
	if container == nil {
		return
	}

	nodes := surface.Focusables(container)
	if len(nodes) == 0 {
		ev.PreventDefault()
		return
	}
	first, last := nodes[0], nodes[len(nodes)-1]
	backward := ev.Key == keyShiftTab
	current := t.s.ActiveElement()

	switch {
	case current == nil || !container.Contains(current):
		// Focus escaped (or never arrived); pull it back in.
		if backward {
			t.s.Focus(last)
		} else {
			t.s.Focus(first)
		}
		ev.PreventDefault()
	case backward && current == first:
		t.s.Focus(last)
		ev.PreventDefault()
	case !backward && current == last:
		t.s.Focus(first)
		ev.PreventDefault()
	}
}
