package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/marcus/signup/pkg/page/modal"
	"github.com/marcus/signup/pkg/signup"
)

// formView holds the widgets of one open dialog. It lives behind a pointer
// so modal sections can keep references across Model copies.
type formView struct {
	inputs  map[signup.Field]*textinput.Model
	tierIdx int
	modal   *modal.Modal
}

func newFormView(ctrl *signup.Controller, width int) *formView {
	opts := ctrl.Options()
	fv := &formView{
		inputs:  make(map[signup.Field]*textinput.Model),
		tierIdx: -1,
	}
	for _, f := range signup.Fields {
		if f == signup.FieldExperienceTier {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = signup.Placeholders[f]
		in.CharLimit = 256
		fv.inputs[f] = &in
	}

	errFor := func(f signup.Field) func() string {
		return func() string { return ctrl.Errors()[f] }
	}

	tiers := ctrl.Tiers()
	items := make([]modal.ListItem, len(tiers))
	for i, t := range tiers {
		items[i] = modal.ListItem{ID: t, Label: t, Data: i}
	}

	md := modal.New(opts.Title,
		modal.WithWidth(width),
		modal.WithID(signup.NodeDialog),
		modal.WithPrimaryAction(signup.NodeSubmit),
		modal.WithHintText(dialogHints(opts.DismissKeys)))
	md.AddSection(modal.Markdown(opts.Description))
	md.AddSection(modal.Spacer())

	for _, f := range signup.Fields {
		if f == signup.FieldExperienceTier {
			md.AddSection(modal.List(signup.FieldNodeID(f), items, &fv.tierIdx,
				modal.WithListLabel(signup.Labels[f]),
				modal.WithListPlaceholder(signup.Placeholders[f]),
				modal.WithListError(errFor(f)),
				modal.WithFilter()))
			continue
		}
		md.AddSection(modal.Input(signup.FieldNodeID(f), signup.Labels[f], fv.inputs[f],
			modal.WithError(errFor(f)),
			modal.WithSubmitOnEnter(md.PrimaryAction())))
	}

	md.AddSection(modal.Spacer())
	md.AddSection(modal.Buttons(
		modal.Btn(" Cancel ", signup.NodeCancel),
		modal.Btn(" Submit ", signup.NodeSubmit),
	))
	fv.modal = md
	return fv
}

// sync pushes widget values into the controller. Only changed values reach
// it, so untouched fields keep their errors.
func (fv *formView) sync(ctrl *signup.Controller) {
	for f, in := range fv.inputs {
		ctrl.SetField(f, in.Value())
	}
	tiers := ctrl.Tiers()
	if fv.tierIdx >= 0 && fv.tierIdx < len(tiers) {
		ctrl.SetField(signup.FieldExperienceTier, tiers[fv.tierIdx])
	}
}

// dialogHints describes the dialog keys, naming the configured dismiss keys.
func dialogHints(dismissKeys []string) string {
	dismiss := "any key"
	if len(dismissKeys) > 0 {
		dismiss = strings.Join(dismissKeys, "/")
	}
	return "tab next · shift+tab prev · enter submit · " + dismiss + " cancel"
}

// formModalWidth returns the dialog width for a screen of the given width.
func formModalWidth(screenW int) int {
	w := screenW * 80 / 100
	if w > 72 {
		w = 72
	}
	if w < 44 {
		w = 44
	}
	return w
}
