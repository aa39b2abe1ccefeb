package views

import (
	"tidy-notepad/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// shortcutKeys maps commands to their Ctrl/Cmd accelerator.
var shortcutKeys = map[models.Command]fyne.KeyName{
	models.CommandNew:           fyne.KeyN,
	models.CommandOpen:          fyne.KeyO,
	models.CommandSave:          fyne.KeyS,
	models.CommandToggleSidebar: fyne.KeyB,
}

func commandShortcut(cmd models.Command) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: shortcutKeys[cmd], Modifier: fyne.KeyModifierShortcutDefault}
}

// SetupMenus installs the main menu and registers the same shortcuts on the canvas.
func (mv *MainView) SetupMenus() {
	mv.window.SetMainMenu(mv.buildMainMenu())

	for _, cmd := range models.Commands {
		mv.window.Canvas().AddShortcut(commandShortcut(cmd), func(fyne.Shortcut) {
			mv.fireCommand(cmd, models.SourceMenu)
		})
	}
}

func (mv *MainView) buildMainMenu() *fyne.MainMenu {
	commandItem := func(cmd models.Command, label string) *fyne.MenuItem {
		item := fyne.NewMenuItem(label, func() {
			mv.fireCommand(cmd, models.SourceMenu)
		})
		item.Shortcut = commandShortcut(cmd)
		return item
	}

	quitItem := fyne.NewMenuItem("Quit", func() {
		if mv.quitHandler != nil {
			mv.quitHandler()
		}
	})
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		commandItem(models.CommandNew, "New"),
		commandItem(models.CommandOpen, "Open..."),
		commandItem(models.CommandSave, "Save"),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	editMenu := fyne.NewMenu("Edit",
		mv.editorShortcutItem("Cut", &fyne.ShortcutCut{Clipboard: mv.window.Clipboard()}),
		mv.editorShortcutItem("Copy", &fyne.ShortcutCopy{Clipboard: mv.window.Clipboard()}),
		mv.editorShortcutItem("Paste", &fyne.ShortcutPaste{Clipboard: mv.window.Clipboard()}),
		fyne.NewMenuItemSeparator(),
		mv.editorShortcutItem("Select All", &fyne.ShortcutSelectAll{}),
	)

	viewMenu := fyne.NewMenu("View",
		commandItem(models.CommandToggleSidebar, "Toggle Sidebar"),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, viewMenu)
}

// editorShortcutItem forwards a clipboard or selection shortcut to the text area.
func (mv *MainView) editorShortcutItem(label string, shortcut fyne.Shortcut) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		entry := mv.editor.Entry()
		mv.window.Canvas().Focus(entry)
		entry.TypedShortcut(shortcut)
	})
}
