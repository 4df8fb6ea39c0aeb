package page

import "github.com/marcus/signup/pkg/surface"

// OpenMsg asks the page to open the signup dialog.
type OpenMsg struct{}

// ClearStatusMsg clears the status line.
type ClearStatusMsg struct{}

// timerMsg fires a surface timer.
type timerMsg struct {
	ID surface.TimerID
}

// clipboardMsg reports the result of a copy.
type clipboardMsg struct {
	Err error
}
