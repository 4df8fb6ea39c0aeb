package surface

// KeyEvent is a key press delivered to surface listeners. Key uses
// bubbletea's key names ("tab", "shift+tab", "esc", "enter", "a", ...).
type KeyEvent struct {
	Key string

	prevented bool
}

// PreventDefault suppresses the host's default action for this key.
func (e *KeyEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.prevented
}

// PointerKind distinguishes mouse presses from touch starts.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

func (k PointerKind) String() string {
	if k == PointerTouch {
		return "touch"
	}
	return "mouse"
}

// PointerEvent is a pointer-down on Target.
type PointerEvent struct {
	Target *Node
	Kind   PointerKind
	X, Y   int

	prevented bool
}

// PreventDefault suppresses the host's default action (focus, activation).
func (e *PointerEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.prevented
}

type listener[E any] struct {
	fn      func(E)
	removed bool
}

// listenerSet keeps registration order and tolerates removal mid-dispatch.
type listenerSet[E any] struct {
	items []*listener[E]
}

func (ls *listenerSet[E]) add(fn func(E)) func() {
	l := &listener[E]{fn: fn}
	ls.items = append(ls.items, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, it := range ls.items {
			if it == l {
				ls.items = append(ls.items[:i], ls.items[i+1:]...)
				break
			}
		}
	}
}

// dispatch calls every listener registered when dispatch began, skipping
// any removed along the way.
func (ls *listenerSet[E]) dispatch(ev E) {
	snapshot := make([]*listener[E], len(ls.items))
	copy(snapshot, ls.items)
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(ev)
	}
}

func (ls *listenerSet[E]) len() int {
	return len(ls.items)
}
