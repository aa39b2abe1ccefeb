package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Editor wraps the multi-line entry. Text set by the application is not
// reported back as a user edit.
type Editor struct {
	entry         *widget.Entry
	syncing       bool
	changeHandler func(string)
}

// NewEditor creates the text area
func NewEditor(placeholder string) *Editor {
	e := &Editor{}
	e.entry = widget.NewMultiLineEntry()
	e.entry.Wrapping = fyne.TextWrapWord
	e.entry.SetPlaceHolder(placeholder)
	e.entry.OnChanged = e.onChanged
	return e
}

func (e *Editor) onChanged(text string) {
	if e.syncing || e.changeHandler == nil {
		return
	}
	e.changeHandler(text)
}

// SetChangeHandler sets the handler for user edits
func (e *Editor) SetChangeHandler(handler func(string)) {
	e.changeHandler = handler
}

// SetText replaces the editor content without firing the change handler
func (e *Editor) SetText(text string) {
	if e.entry.Text == text {
		return
	}
	e.syncing = true
	defer func() { e.syncing = false }()
	e.entry.SetText(text)
}

// Entry exposes the underlying widget for focus and shortcuts
func (e *Editor) Entry() *widget.Entry {
	return e.entry
}
