package models

// Command is a named user intent. Commands carry no payload.
type Command string

const (
	CommandNew           Command = "new"
	CommandOpen          Command = "open"
	CommandSave          Command = "save"
	CommandToggleSidebar Command = "toggle-sidebar"
)

// Commands lists every command in menu order.
var Commands = []Command{CommandNew, CommandOpen, CommandSave, CommandToggleSidebar}

// Label is the human-readable menu and button text.
func (c Command) Label() string {
	switch c {
	case CommandNew:
		return "New"
	case CommandOpen:
		return "Open"
	case CommandSave:
		return "Save"
	case CommandToggleSidebar:
		return "Toggle Sidebar"
	default:
		return string(c)
	}
}

// Source identifies where a command was fired from. It only affects logging.
type Source string

const (
	SourceToolbar Source = "toolbar"
	SourceMenu    Source = "menu"
	SourceSidebar Source = "sidebar"
	SourceCLI     Source = "cli"
)
