package components

import (
	"tidy-notepad/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the command buttons, the application title and the file label
type Toolbar struct {
	container     *fyne.Container
	newButton     *widget.Button
	openButton    *widget.Button
	saveButton    *widget.Button
	sidebarButton *widget.Button
	titleLabel    *widget.Label
	fileLabel     *widget.Label

	commandHandler func(models.Command)
}

// NewToolbar creates a new toolbar component
func NewToolbar(title string) *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents(title)
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents(title string) {
	t.newButton = widget.NewButtonWithIcon(models.CommandNew.Label(), theme.DocumentCreateIcon(), nil)
	t.openButton = widget.NewButtonWithIcon(models.CommandOpen.Label(), theme.FolderOpenIcon(), nil)
	t.saveButton = widget.NewButtonWithIcon(models.CommandSave.Label(), theme.DocumentSaveIcon(), nil)
	t.saveButton.Importance = widget.HighImportance
	t.sidebarButton = widget.NewButtonWithIcon("", theme.MenuIcon(), nil)

	t.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	t.fileLabel = widget.NewLabel(models.UntitledName)
	t.fileLabel.Truncation = fyne.TextTruncateEllipsis
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	actions := container.NewHBox(
		t.sidebarButton,
		widget.NewSeparator(),
		t.newButton,
		t.openButton,
		t.saveButton,
	)

	t.container = container.NewBorder(nil, nil,
		actions,
		t.fileLabel,
		container.New(layout.NewCenterLayout(), t.titleLabel),
	)
}

// setupEventHandlers connects button events
func (t *Toolbar) setupEventHandlers() {
	buttons := map[*widget.Button]models.Command{
		t.newButton:     models.CommandNew,
		t.openButton:    models.CommandOpen,
		t.saveButton:    models.CommandSave,
		t.sidebarButton: models.CommandToggleSidebar,
	}
	for button, cmd := range buttons {
		cmd := cmd
		button.OnTapped = func() {
			if t.commandHandler != nil {
				t.commandHandler(cmd)
			}
		}
	}
}

// SetCommandHandler sets the handler invoked by every toolbar button
func (t *Toolbar) SetCommandHandler(handler func(models.Command)) {
	t.commandHandler = handler
}

// SetFileName updates the file label, e.g. "notes.txt *"
func (t *Toolbar) SetFileName(name string) {
	t.fileLabel.SetText(name)
}

// SetSidebarVisible updates the sidebar button hint
func (t *Toolbar) SetSidebarVisible(visible bool) {
	if visible {
		t.sidebarButton.Importance = widget.MediumImportance
	} else {
		t.sidebarButton.Importance = widget.LowImportance
	}
	t.sidebarButton.Refresh()
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
