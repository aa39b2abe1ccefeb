package components

import (
	"fmt"
	"image/color"

	"tidy-notepad/internal/workspace"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SidebarWidth is the minimum width of the file list
const SidebarWidth = 220

// Sidebar lists workspace files; selecting one asks to open it
type Sidebar struct {
	container   *fyne.Container
	list        *widget.List
	headerLabel *widget.Label
	emptyLabel  *widget.Label

	entries       []workspace.Entry
	activePath    string
	syncing       bool
	selectHandler func(path string)
}

// NewSidebar creates a new sidebar component
func NewSidebar(root string) *Sidebar {
	sb := &Sidebar{}
	sb.createComponents(root)
	sb.buildLayout()
	return sb
}

// createComponents initializes sidebar components
func (sb *Sidebar) createComponents(root string) {
	sb.headerLabel = widget.NewLabelWithStyle(root, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	sb.headerLabel.Truncation = fyne.TextTruncateEllipsis
	sb.emptyLabel = widget.NewLabel("No files")

	sb.list = widget.NewList(
		func() int {
			return len(sb.entries)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FileTextIcon()), widget.NewLabel("template"))
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(sb.entries) {
				return
			}
			label := item.(*fyne.Container).Objects[1].(*widget.Label)
			label.SetText(sb.entries[id].RelPath)
		},
	)
	sb.list.OnSelected = sb.onSelected
}

// buildLayout constructs the sidebar layout
func (sb *Sidebar) buildLayout() {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(SidebarWidth, 0))

	sb.container = container.NewStack(
		spacer,
		container.NewBorder(sb.headerLabel, nil, nil, nil,
			container.NewStack(sb.emptyLabel, sb.list)),
	)
}

func (sb *Sidebar) onSelected(id widget.ListItemID) {
	if sb.syncing || id < 0 || id >= len(sb.entries) {
		return
	}
	path := sb.entries[id].Path
	if path == sb.activePath {
		return
	}
	if sb.selectHandler != nil {
		sb.selectHandler(path)
	}
}

// SetSelectHandler sets the handler for file selection
func (sb *Sidebar) SetSelectHandler(handler func(path string)) {
	sb.selectHandler = handler
}

// SetEntries replaces the file list
func (sb *Sidebar) SetEntries(entries []workspace.Entry) {
	sb.entries = entries
	sb.emptyLabel.SetText("No files")
	if len(entries) == 0 {
		sb.emptyLabel.Show()
	} else {
		sb.emptyLabel.Hide()
	}
	sb.list.Refresh()
	sb.SetActivePath(sb.activePath)
}

// SetActivePath highlights the entry for path, or clears the selection
func (sb *Sidebar) SetActivePath(path string) {
	sb.activePath = path

	sb.syncing = true
	defer func() { sb.syncing = false }()

	for i, e := range sb.entries {
		if e.Path == path {
			sb.list.Select(i)
			return
		}
	}
	sb.list.UnselectAll()
}

// SetError shows a listing failure in place of the files
func (sb *Sidebar) SetError(err error) {
	sb.entries = nil
	sb.list.Refresh()
	sb.emptyLabel.SetText(fmt.Sprintf("Cannot list files: %v", err))
	sb.emptyLabel.Show()
}

// GetContainer returns the sidebar container
func (sb *Sidebar) GetContainer() *fyne.Container {
	return sb.container
}
