// Package modal renders centered modal dialogs for bubbletea programs and
// registers their hit regions for mouse support.
//
// Each frame the sections render first and report where their focusable
// rows landed; the modal measures the finished box and turns those offsets
// into screen rectangles on the mouse handler. Regions are rebuilt on every
// Render, so they always match the last frame drawn.
//
// The caller owns focus and hover and sets both before rendering:
//
//	md := modal.New("Application form", modal.WithWidth(60), modal.WithID("signup-dialog")).
//	    AddSection(modal.Markdown(desc)).
//	    AddSection(modal.Input("field-name", "Name", &nameInput)).
//	    AddSection(modal.Buttons(
//	        modal.Btn(" Cancel ", "signup-cancel"),
//	        modal.Btn(" Submit ", "signup-submit"),
//	    ))
//
//	// In View():
//	md.SetFocus(focusedID)
//	box := md.Render(screenW, screenH, mouseHandler)
//	x, y := md.Position()
//	view := modal.Overlay(modal.Dim(page), box, x, y)
//
//	// In Update(), once the key was not consumed elsewhere:
//	action, cmd := md.Update(keyMsg)
//
// Sections: Text, Markdown (glamour, cached per width), Spacer, Input
// (bubbles textinput with label and error line), List (selectable, with
// optional fuzzy filter), Buttons and When.
//
// Options: WithWidth (default 50, minimum 24), WithHints,
// WithHintText, WithPrimaryAction (the action inputs pass to
// WithSubmitOnEnter) and WithID (region registered for the whole box, so a click
// anywhere inside it can be told apart from a click on the backdrop).
package modal
