package output

import (
	"fmt"
	"strings"

	"github.com/marcus/signup/pkg/surface"
)

// TreeNode represents an element in a tree structure for rendering
type TreeNode struct {
	ID        string
	Label     string
	Kind      string
	Focusable bool
	Disabled  bool
	Active    bool
	Children  []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowKind   bool // Whether to prefix the element kind
	ShowFocus  bool // Whether to mark focusable and active elements
	ShowLabels bool
}

// FromSurface converts the subtree at n. active is marked when ShowFocus is
// set; it may be nil.
func FromSurface(n, active *surface.Node) TreeNode {
	if n == nil {
		return TreeNode{}
	}
	t := TreeNode{
		ID:        n.ID,
		Label:     n.Label,
		Kind:      n.Kind.String(),
		Focusable: n.Focusable(),
		Disabled:  n.Disabled,
		Active:    n == active,
	}
	for _, c := range n.Children() {
		t.Children = append(t.Children, FromSurface(c, active))
	}
	return t
}

// focusMark returns a focus indicator symbol
func focusMark(n TreeNode) string {
	switch {
	case n.Active:
		return " ●"
	case n.Disabled:
		return " ✗"
	case n.Focusable:
		return " ○"
	default:
		return ""
	}
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── "
		if isLast {
			connector = "└── "
		}

		var parts []string
		if opts.ShowKind {
			parts = append(parts, node.Kind)
		}
		parts = append(parts, "#"+node.ID)
		if opts.ShowLabels && node.Label != "" {
			parts = append(parts, fmt.Sprintf("%q", node.Label))
		}

		line := prefix + connector + strings.Join(parts, " ")
		if opts.ShowFocus {
			line += focusMark(node)
		}
		lines = append(lines, line)

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}
