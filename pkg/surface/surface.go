// Package surface is the host render surface the signup dialog mounts into:
// a small element tree with a focused element, document-level key and
// pointer-down listeners, a deferred work queue and loop-driven timers.
//
// Everything runs on the caller's event loop. Nothing here is safe for
// concurrent use.
package surface

import (
	"errors"
	"log/slog"
)

var (
	// ErrDetached is returned when mounting under a node that is not part of
	// the surface tree.
	ErrDetached = errors.New("surface: parent is not attached")
	// ErrAlreadyMounted is returned when mounting a node that already has a parent.
	ErrAlreadyMounted = errors.New("surface: node is already mounted")
	// ErrNotMounted is returned when unmounting a node outside the tree.
	ErrNotMounted = errors.New("surface: node is not mounted")
)

// Surface owns the element tree and event dispatch.
type Surface struct {
	root   *Node
	active *Node

	keys     listenerSet[*KeyEvent]
	pointers listenerSet[*PointerEvent]

	deferred    []func()
	dispatching int

	timers timerQueue

	logger *slog.Logger
}

// Option configures a Surface.
type Option func(*Surface)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Surface) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a surface with an empty body node as its root.
func New(opts ...Option) *Surface {
	s := &Surface{
		root:   NewNode(KindBody, "body"),
		logger: slog.Default(),
	}
	s.timers.init()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the body node.
func (s *Surface) Root() *Node {
	return s.root
}

// Find returns the attached node with the given ID.
func (s *Surface) Find(id string) *Node {
	return s.root.Find(id)
}

// Attached reports whether n is part of the surface tree.
func (s *Surface) Attached(n *Node) bool {
	return n != nil && n.Root() == s.root
}

// Mount attaches n under parent (the body when parent is nil).
func (s *Surface) Mount(parent, n *Node) error {
	if parent == nil {
		parent = s.root
	}
	if !s.Attached(parent) {
		return ErrDetached
	}
	if n.parent != nil || n == s.root {
		return ErrAlreadyMounted
	}
	parent.Append(n)
	s.logger.Debug("surface: mount", "id", n.ID, "parent", parent.ID)
	return nil
}

// Unmount detaches n from the tree. Focus inside n is dropped.
func (s *Surface) Unmount(n *Node) error {
	if n == nil || n == s.root || !s.Attached(n) {
		return ErrNotMounted
	}
	if n.Contains(s.active) {
		s.active = nil
	}
	n.parent.Remove(n)
	s.logger.Debug("surface: unmount", "id", n.ID)
	return nil
}

// ActiveElement returns the focused node, or nil.
func (s *Surface) ActiveElement() *Node {
	return s.active
}

// Focus moves focus to n. Returns false when n is detached, disabled, or
// neither interactive nor carrying a tab index.
func (s *Surface) Focus(n *Node) bool {
	if n == nil || !s.Attached(n) || !n.canFocus() {
		return false
	}
	s.active = n
	return true
}

// Blur clears focus.
func (s *Surface) Blur() {
	s.active = nil
}

// FocusNext is the default Tab action: the next focusable node in document
// order, wrapping at the end.
func (s *Surface) FocusNext() *Node {
	return s.step(1)
}

// FocusPrev is the default Shift+Tab action.
func (s *Surface) FocusPrev() *Node {
	return s.step(-1)
}

func (s *Surface) step(delta int) *Node {
	nodes := Focusables(s.root)
	if len(nodes) == 0 {
		return nil
	}
	idx := -1
	for i, n := range nodes {
		if n == s.active {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx == -1 && delta > 0:
		next = 0
	case idx == -1:
		next = len(nodes) - 1
	default:
		next = (idx + delta + len(nodes)) % len(nodes)
	}
	s.active = nodes[next]
	return s.active
}

// AddKeyListener registers fn for every key event. The returned func
// removes it; removal takes effect immediately, even mid-dispatch.
func (s *Surface) AddKeyListener(fn func(*KeyEvent)) (remove func()) {
	return s.keys.add(fn)
}

// AddPointerDownListener registers fn for every pointer-down event.
func (s *Surface) AddPointerDownListener(fn func(*PointerEvent)) (remove func()) {
	return s.pointers.add(fn)
}

// ListenerCounts returns the number of registered key and pointer listeners.
func (s *Surface) ListenerCounts() (keys, pointers int) {
	return s.keys.len(), s.pointers.len()
}

// DispatchKey delivers ev to key listeners, then runs deferred work.
// Returns true when the host should perform the default action.
func (s *Surface) DispatchKey(ev *KeyEvent) bool {
	s.dispatching++
	s.keys.dispatch(ev)
	s.dispatching--
	s.Flush()
	return !ev.DefaultPrevented()
}

// DispatchPointerDown delivers ev to pointer-down listeners, then runs
// deferred work. A nil target is treated as the body.
func (s *Surface) DispatchPointerDown(ev *PointerEvent) bool {
	if ev.Target == nil {
		ev.Target = s.root
	}
	s.dispatching++
	s.pointers.dispatch(ev)
	s.dispatching--
	s.Flush()
	return !ev.DefaultPrevented()
}

// Defer queues fn to run after the current dispatch completes.
func (s *Surface) Defer(fn func()) {
	s.deferred = append(s.deferred, fn)
}

// Flush runs queued deferred work, including work queued while flushing.
// It does nothing while a dispatch is in progress.
func (s *Surface) Flush() {
	if s.dispatching > 0 {
		return
	}
	for len(s.deferred) > 0 {
		fn := s.deferred[0]
		s.deferred = s.deferred[1:]
		fn()
	}
}
