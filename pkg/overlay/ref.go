package overlay

// Ref holds a value set after construction, typically the node a wrapper
// rendered into.
type Ref[T any] struct {
	value T
	set   bool
}

// NewRef creates an empty Ref.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// RefOf creates a Ref already holding v.
func RefOf[T any](v T) *Ref[T] {
	return &Ref[T]{value: v, set: true}
}

// Set stores v.
func (r *Ref[T]) Set(v T) {
	r.value = v
	r.set = true
}

// Get returns the stored value, or the zero value if unset. A nil Ref is
// treated as unset.
func (r *Ref[T]) Get() T {
	if r == nil {
		var zero T
		return zero
	}
	return r.value
}

// IsSet reports whether Set has been called.
func (r *Ref[T]) IsSet() bool {
	return r != nil && r.set
}

// Clear resets the ref to unset.
func (r *Ref[T]) Clear() {
	var zero T
	r.value = zero
	r.set = false
}

// MergeRefs returns one setter that forwards a value to every non-nil setter.
func MergeRefs[T any](setters ...func(T)) func(T) {
	return func(v T) {
		for _, set := range setters {
			if set != nil {
				set(v)
			}
		}
	}
}
