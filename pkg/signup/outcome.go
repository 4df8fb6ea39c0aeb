package signup

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Outcome is the single-resolution result of one open/close cycle. It
// resolves with the submitted form, or nil when the dialog was cancelled.
type Outcome struct {
	id   string
	once sync.Once
	done chan struct{}
	data *FormState
}

// OutcomeMsg is delivered to the bubbletea loop when an Outcome resolves.
type OutcomeMsg struct {
	ID   string
	Data *FormState // nil when cancelled
}

// Cancelled reports whether the dialog closed without a submission.
func (m OutcomeMsg) Cancelled() bool {
	return m.Data == nil
}

func newOutcome(id string) *Outcome {
	return &Outcome{id: id, done: make(chan struct{})}
}

// ID is the dialog instance this outcome belongs to.
func (o *Outcome) ID() string {
	return o.id
}

// resolve stores data and wakes waiters. Only the first call has any
// effect; it reports whether this call resolved the outcome.
func (o *Outcome) resolve(data *FormState) bool {
	resolved := false
	o.once.Do(func() {
		if data != nil {
			cp := *data
			o.data = &cp
		}
		close(o.done)
		resolved = true
	})
	return resolved
}

// Done is closed once the outcome resolves.
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// Resolved reports whether the outcome has resolved.
func (o *Outcome) Resolved() bool {
	select {
	case <-o.done:
		return true
	default:
		return false
	}
}

// Result returns the submitted form and whether the outcome has resolved.
// A resolved outcome with a nil form was cancelled.
func (o *Outcome) Result() (*FormState, bool) {
	if !o.Resolved() {
		return nil, false
	}
	return o.copyData(), true
}

// Wait blocks until the outcome resolves or ctx is done.
func (o *Outcome) Wait(ctx context.Context) (*FormState, error) {
	select {
	case <-o.done:
		return o.copyData(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Await returns a command that delivers an OutcomeMsg once resolved.
func (o *Outcome) Await() tea.Cmd {
	return func() tea.Msg {
		<-o.done
		return OutcomeMsg{ID: o.id, Data: o.copyData()}
	}
}

func (o *Outcome) copyData() *FormState {
	if o.data == nil {
		return nil
	}
	cp := *o.data
	return &cp
}
