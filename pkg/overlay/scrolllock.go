package overlay

// ScrollLock is the single background-scroll flag shared by dialogs.
// Acquire saves the current state and locks; Release restores what Acquire
// saved. Nested acquires keep the first saved state and the last release
// wins, which is enough while at most one dialog is open.
type ScrollLock struct {
	locked bool
	held   bool
	saved  bool
}

// Locked reports whether background scrolling is currently disabled.
func (l *ScrollLock) Locked() bool {
	return l.locked
}

// Held reports whether an Acquire is outstanding.
func (l *ScrollLock) Held() bool {
	return l.held
}

// Set changes the lock state directly, as a host would for its own reasons.
func (l *ScrollLock) Set(locked bool) {
	l.locked = locked
}

// Acquire locks scrolling, remembering the prior state.
func (l *ScrollLock) Acquire() {
	if !l.held {
		l.saved = l.locked
		l.held = true
	}
	l.locked = true
}

// Release restores the state saved by the first outstanding Acquire.
func (l *ScrollLock) Release() {
	if !l.held {
		return
	}
	l.locked = l.saved
	l.held = false
}
