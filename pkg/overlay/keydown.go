package overlay

import (
	"slices"

	"github.com/marcus/signup/pkg/surface"
)

// KeyOptions configures a KeyListener.
type KeyOptions struct {
	// Keys is the allow-list of key names. Empty matches every key.
	Keys []string
	// Enabled controls whether a surface listener is registered at all.
	Enabled bool
}

// KeyListener invokes a callback for matching key events while enabled.
type KeyListener struct {
	s      *surface.Surface
	fn     func(*surface.KeyEvent)
	keys   []string
	remove func()
	closed bool
}

// ListenKeys creates a KeyListener. When opts.Enabled is false nothing is
// registered until SetEnabled(true).
func ListenKeys(s *surface.Surface, fn func(*surface.KeyEvent), opts KeyOptions) (*KeyListener, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if fn == nil {
		return nil, ErrNilCallback
	}
	l := &KeyListener{s: s, fn: fn, keys: slices.Clone(opts.Keys)}
	l.SetEnabled(opts.Enabled)
	return l, nil
}

// SetEnabled attaches or detaches the surface listener. No-op after Close.
func (l *KeyListener) SetEnabled(enabled bool) {
	if l.closed {
		return
	}
	switch {
	case enabled && l.remove == nil:
		l.remove = l.s.AddKeyListener(l.handle)
	case !enabled && l.remove != nil:
		l.remove()
		l.remove = nil
	}
}

// Attached reports whether a surface listener is currently registered.
func (l *KeyListener) Attached() bool {
	return l.remove != nil
}

// Close detaches the listener permanently.
func (l *KeyListener) Close() error {
	l.SetEnabled(false)
	l.closed = true
	return nil
}

func (l *KeyListener) handle(ev *surface.KeyEvent) {
	if len(l.keys) > 0 && !slices.Contains(l.keys, ev.Key) {
		return
	}
	l.fn(ev)
}
