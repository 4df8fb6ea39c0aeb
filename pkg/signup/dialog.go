package signup

import "github.com/marcus/signup/pkg/surface"

// Node IDs of the dialog tree. Hosts use them to map rendered regions back
// to nodes.
const (
	NodeDialog      = "signup-dialog"
	NodeContainer   = "signup-container"
	NodeContent     = "signup-content"
	NodeTitle       = "signup-title"
	NodeDescription = "signup-description"
	NodeButtons     = "signup-buttons"
	NodeCancel      = "signup-cancel"
	NodeSubmit      = "signup-submit"
)

// FieldNodeID returns the node ID of the input for f.
func FieldNodeID(f Field) string {
	return "field-" + string(f)
}

// FieldForNode maps a node ID back to its field.
func FieldForNode(id string) (Field, bool) {
	for _, f := range Fields {
		if FieldNodeID(f) == id {
			return f, true
		}
	}
	return "", false
}

// Dialog holds the nodes of one mounted dialog instance.
type Dialog struct {
	ID          string
	Root        *surface.Node // outside-click region
	Container   *surface.Node // dismissal key scope
	Content     *surface.Node // focus trap container
	Title       *surface.Node
	Description *surface.Node
	Fields      map[Field]*surface.Node
	Cancel      *surface.Node
	Submit      *surface.Node
}

// buildContent creates the container subtree. The outer root is added by
// the outside-click wrapper in Controller.Open.
func buildContent(id string, opts Options) *Dialog {
	d := &Dialog{ID: id, Fields: make(map[Field]*surface.Node, len(Fields))}

	d.Title = surface.NewNode(surface.KindHeading, NodeTitle,
		surface.WithTabIndex(-1), surface.WithLabel(opts.Title))
	d.Description = surface.NewNode(surface.KindText, NodeDescription,
		surface.WithLabel(opts.Description))

	d.Content = surface.NewNode(surface.KindDiv, NodeContent,
		surface.WithChildren(d.Title, d.Description))

	for _, f := range Fields {
		kind := surface.KindInput
		if f == FieldExperienceTier {
			kind = surface.KindSelect
		}
		n := surface.NewNode(kind, FieldNodeID(f), surface.WithLabel(Labels[f]))
		d.Fields[f] = n
		d.Content.Append(n)
	}

	d.Cancel = surface.NewNode(surface.KindButton, NodeCancel, surface.WithLabel("Cancel"))
	d.Submit = surface.NewNode(surface.KindButton, NodeSubmit, surface.WithLabel("Submit"))
	d.Content.Append(surface.NewNode(surface.KindDiv, NodeButtons,
		surface.WithChildren(d.Cancel, d.Submit)))

	d.Container = surface.NewNode(surface.KindDiv, NodeContainer, surface.WithChildren(d.Content))
	return d
}
