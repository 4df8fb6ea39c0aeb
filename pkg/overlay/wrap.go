package overlay

import "github.com/marcus/signup/pkg/surface"

// WrapOptions chooses how a behavior wrapper renders.
type WrapOptions struct {
	// As is the node kind to render when AsChild is false.
	As surface.Kind
	// AsChild adopts the single child node instead of creating a wrapper.
	AsChild bool
	// ID of the created wrapper node. Ignored with AsChild.
	ID string
	// Ref receives the rendered node.
	Ref func(*surface.Node)
}

// Wrap renders children into a node of kind opts.As, or returns the single
// child itself when opts.AsChild is set. AsChild with anything other than
// exactly one non-nil child is ErrInvalidChild.
func Wrap(opts WrapOptions, children ...*surface.Node) (*surface.Node, error) {
	var n *surface.Node
	if opts.AsChild {
		if len(children) != 1 || children[0] == nil {
			return nil, ErrInvalidChild
		}
		n = children[0]
	} else {
		n = surface.NewNode(opts.As, opts.ID, surface.WithChildren(children...))
	}
	if opts.Ref != nil {
		opts.Ref(n)
	}
	return n, nil
}

// OutsidePointerDown wraps children and watches for pointer-downs outside
// the rendered node. exclude refs are skipped the same way.
func OutsidePointerDown(s *surface.Surface, opts WrapOptions, onOutside func(*surface.Node), exclude []*Ref[*surface.Node], children ...*surface.Node) (*surface.Node, *Subscription, error) {
	region := NewRef[*surface.Node]()
	opts.Ref = MergeRefs(region.Set, opts.Ref)
	n, err := Wrap(opts, children...)
	if err != nil {
		return nil, nil, err
	}
	sub, err := WatchOutside(s, region, onOutside, exclude...)
	if err != nil {
		return nil, nil, err
	}
	return n, sub, nil
}

// KeyDown wraps children and attaches a key listener for the given keys.
func KeyDown(s *surface.Surface, opts WrapOptions, fn func(*surface.KeyEvent), keyOpts KeyOptions, children ...*surface.Node) (*surface.Node, *KeyListener, error) {
	n, err := Wrap(opts, children...)
	if err != nil {
		return nil, nil, err
	}
	l, err := ListenKeys(s, fn, keyOpts)
	if err != nil {
		return nil, nil, err
	}
	return n, l, nil
}
