package views

import (
	"context"

	"tidy-notepad/internal/models"
	"tidy-notepad/internal/views/components"
	"tidy-notepad/internal/workspace"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// AppTitle is shown in the toolbar and the window title.
const AppTitle = "Tidy Notepad"

// MainView is the editor window: toolbar, sidebar, text area and status bar
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	editor        *components.Editor
	sidebar       *components.Sidebar
	statusBar     *components.StatusBar
	dialogs       *FileDialogs

	// Event handlers - connected to controller
	commandHandler  func(models.Command, models.Source)
	openPathHandler func(string)
	editHandler     func(string)
	quitHandler     func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window, dialogs *FileDialogs, placeholder, workspaceRoot string) *MainView {
	view := &MainView{
		window:  window,
		dialogs: dialogs,
	}

	view.initializeComponents(placeholder, workspaceRoot)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(placeholder, workspaceRoot string) {
	mv.toolbar = components.NewToolbar(AppTitle)
	mv.editor = components.NewEditor(placeholder)
	mv.sidebar = components.NewSidebar(workspaceRoot)
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		mv.sidebar.GetContainer(),   // left
		nil,                         // right
		mv.editor.Entry(),           // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetCommandHandler(func(cmd models.Command) {
		mv.fireCommand(cmd, models.SourceToolbar)
	})

	mv.sidebar.SetSelectHandler(func(path string) {
		if mv.openPathHandler != nil {
			mv.openPathHandler(path)
		}
	})

	mv.editor.SetChangeHandler(func(text string) {
		if mv.editHandler != nil {
			mv.editHandler(text)
		}
	})
}

func (mv *MainView) fireCommand(cmd models.Command, source models.Source) {
	if mv.commandHandler != nil {
		mv.commandHandler(cmd, source)
	}
}

// Event handler setters - called by controller

// SetCommandHandler sets the handler shared by toolbar buttons, menu items and shortcuts
func (mv *MainView) SetCommandHandler(handler func(models.Command, models.Source)) {
	mv.commandHandler = handler
}

// SetOpenPathHandler sets the handler for sidebar file selection
func (mv *MainView) SetOpenPathHandler(handler func(string)) {
	mv.openPathHandler = handler
}

// SetEditHandler sets the handler for user edits
func (mv *MainView) SetEditHandler(handler func(string)) {
	mv.editHandler = handler
}

// SetQuitHandler sets the handler for quit requests from the menu and the window close button
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
	mv.window.SetCloseIntercept(func() {
		if mv.quitHandler != nil {
			mv.quitHandler()
		}
	})
}

// UI update methods - called by controller

// ShowDocument renders the whole document
func (mv *MainView) ShowDocument(doc models.Document) {
	fyne.Do(func() {
		mv.editor.SetText(doc.Content)
		mv.renderInfo(doc)
	})
}

// RefreshDocumentInfo updates title, counters and the sidebar selection
func (mv *MainView) RefreshDocumentInfo(doc models.Document) {
	fyne.Do(func() {
		mv.renderInfo(doc)
	})
}

func (mv *MainView) renderInfo(doc models.Document) {
	mv.toolbar.SetFileName(doc.Title())
	mv.statusBar.SetCounts(doc.CharacterCount(), doc.LineCount())
	mv.window.SetTitle(doc.Title() + " - " + AppTitle)
	mv.sidebar.SetActivePath(doc.Path)
}

// SetSidebarVisible shows or hides the file sidebar
func (mv *MainView) SetSidebarVisible(visible bool) {
	fyne.Do(func() {
		if visible {
			mv.sidebar.GetContainer().Show()
		} else {
			mv.sidebar.GetContainer().Hide()
		}
		mv.toolbar.SetSidebarVisible(visible)
		mv.mainContainer.Refresh()
	})
}

// SetWorkspaceEntries replaces the sidebar file list
func (mv *MainView) SetWorkspaceEntries(entries []workspace.Entry, err error) {
	fyne.Do(func() {
		if err != nil {
			mv.sidebar.SetError(err)
			return
		}
		mv.sidebar.SetEntries(entries)
	})
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// ShowError displays a blocking error dialog
func (mv *MainView) ShowError(title string, err error) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(title)
		dialog.ShowError(err, mv.window)
	})
}

// Confirm asks a yes/no question and waits for the answer
func (mv *MainView) Confirm(ctx context.Context, title, message string) (bool, error) {
	return mv.dialogs.Confirm(ctx, title, message)
}

// FocusEditor moves keyboard focus to the text area
func (mv *MainView) FocusEditor() {
	fyne.Do(func() {
		mv.window.Canvas().Focus(mv.editor.Entry())
	})
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}
