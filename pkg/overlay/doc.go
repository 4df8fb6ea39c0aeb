// Package overlay provides the reusable behaviors a modal needs on top of a
// surface: outside pointer-down detection, key triggers, a focus trap and a
// scroll lock, plus the refs and wrappers that wire them to nodes.
//
// # Wiring a dialog
//
//	region := overlay.NewRef[*surface.Node]()
//	sub, err := overlay.WatchOutside(s, region, onOutside, triggerRef)
//	keys, err := overlay.ListenKeys(s, onEsc, overlay.KeyOptions{Keys: []string{"esc"}, Enabled: true})
//	trap, err := overlay.NewFocusTrap(s, overlay.FocusTrapOptions{Container: content, LockScroll: true, Lock: lock})
//	trap.Activate()
//
// Every registration is torn down with Close (or Deactivate for the trap).
// Closing is idempotent and takes effect immediately, so a behavior closed
// during a dispatch never fires for that dispatch or any later one.
package overlay
