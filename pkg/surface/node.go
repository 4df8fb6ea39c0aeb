package surface

// Kind is the element kind a node renders as.
type Kind int

const (
	KindDiv Kind = iota
	KindBody
	KindText
	KindHeading
	KindButton
	KindLink
	KindInput
	KindSelect
	KindTextarea
)

var kindNames = map[Kind]string{
	KindDiv:      "div",
	KindBody:     "body",
	KindText:     "text",
	KindHeading:  "heading",
	KindButton:   "button",
	KindLink:     "link",
	KindInput:    "input",
	KindSelect:   "select",
	KindTextarea: "textarea",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Interactive reports whether nodes of this kind take focus without an
// explicit tab index.
func (k Kind) Interactive() bool {
	switch k {
	case KindButton, KindLink, KindInput, KindSelect, KindTextarea:
		return true
	}
	return false
}

// Node is one element in the surface tree.
type Node struct {
	ID       string
	Kind     Kind
	Label    string
	Disabled bool

	tabIndex    int
	hasTabIndex bool

	parent   *Node
	children []*Node
}

// NodeOption configures a Node at construction.
type NodeOption func(*Node)

// WithTabIndex gives the node an explicit focus priority. Negative values
// make it focusable programmatically but skipped by Tab.
func WithTabIndex(i int) NodeOption {
	return func(n *Node) {
		n.tabIndex = i
		n.hasTabIndex = true
	}
}

// WithLabel sets the node's display label.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// WithDisabled marks the node disabled.
func WithDisabled() NodeOption {
	return func(n *Node) { n.Disabled = true }
}

// WithChildren appends children to the node.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) { n.Append(children...) }
}

// NewNode creates a detached node.
func NewNode(kind Kind, id string, opts ...NodeOption) *Node {
	n := &Node{ID: id, Kind: kind}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// TabIndex returns the explicit tab index and whether one was set.
func (n *Node) TabIndex() (int, bool) {
	return n.tabIndex, n.hasTabIndex
}

// Parent returns the parent node, or nil for a detached or root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Append adds children in order, detaching them from any previous parent.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child from n. Returns false if child was not a direct child.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	if n == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Root walks up to the topmost ancestor.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in n's subtree with the given ID.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Focusable reports whether Tab navigation may land on n: an enabled
// interactive element, or any node with a non-negative explicit tab index.
func (n *Node) Focusable() bool {
	if n.Disabled {
		return false
	}
	if n.hasTabIndex {
		return n.tabIndex >= 0
	}
	return n.Kind.Interactive()
}

// canFocus reports whether n accepts programmatic focus.
func (n *Node) canFocus() bool {
	if n.Disabled {
		return false
	}
	return n.hasTabIndex || n.Kind.Interactive()
}

// Focusables returns the Tab-reachable descendants of root in document
// order. The tree is walked on every call.
func Focusables(root *Node) []*Node {
	if root == nil {
		return nil
	}
	var out []*Node
	for _, c := range root.children {
		c.Walk(func(n *Node) bool {
			if n.Focusable() {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}
