package overlay

import "github.com/marcus/signup/pkg/surface"

// Subscription is an outside pointer-down registration.
type Subscription struct {
	remove func()
	closed bool
}

// Close unregisters the detector. Reports already queued but not yet run
// are dropped. Safe to call more than once.
func (sub *Subscription) Close() error {
	if sub.closed {
		return nil
	}
	sub.closed = true
	sub.remove()
	return nil
}

// Closed reports whether Close has been called.
func (sub *Subscription) Closed() bool {
	return sub.closed
}

// WatchOutside calls onOutside with the region node whenever a pointer-down
// (mouse or touch) starts outside the region and outside every exclusion.
// Refs are read at event time, so they may be set after registration; an
// unset region ignores events.
//
// The report is deferred until the triggering dispatch finishes, and fires
// once per qualifying pointer-down.
func WatchOutside(s *surface.Surface, region *Ref[*surface.Node], onOutside func(*surface.Node), exclude ...*Ref[*surface.Node]) (*Subscription, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if region == nil {
		return nil, ErrNilRegion
	}
	if onOutside == nil {
		return nil, ErrNilCallback
	}

	sub := &Subscription{}
	sub.remove = s.AddPointerDownListener(func(ev *surface.PointerEvent) {
		target := region.Get()
		if target == nil || ev.Target == nil {
			return
		}
		if target.Contains(ev.Target) {
			return
		}
		for _, ex := range exclude {
			if n := ex.Get(); n != nil && n.Contains(ev.Target) {
				return
			}
		}
		s.Defer(func() {
			if sub.closed {
				return
			}
			onOutside(target)
		})
	})
	return sub, nil
}
