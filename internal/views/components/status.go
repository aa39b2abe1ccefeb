package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays document counters and the last status message
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	charsLabel  *widget.Label
	linesLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.charsLabel = widget.NewLabel("")
	sb.linesLabel = widget.NewLabel("")
	sb.SetCounts(0, 1)
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.charsLabel,
		widget.NewSeparator(),
		sb.linesLabel,
		layout.NewSpacer(),
		sb.statusLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// SetCounts updates the character and line counters
func (sb *StatusBar) SetCounts(characters, lines int) {
	sb.charsLabel.SetText(fmt.Sprintf("Characters: %d", characters))
	sb.linesLabel.SetText(fmt.Sprintf("Lines: %d", lines))
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
