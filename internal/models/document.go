package models

import (
	"strings"
	"unicode/utf8"
)

// UntitledName is shown for a document that has never been bound to a file.
const UntitledName = "Untitled"

// Document is the in-memory text being edited and its file binding.
// Transitions return the next value and never mutate the receiver.
type Document struct {
	Content  string
	Path     string
	Modified bool
}

// FileContent is the outcome of a successful open.
type FileContent struct {
	Path    string
	Content string
}

// NewDocument returns the empty, untitled, unmodified document.
func NewDocument() Document {
	return Document{}
}

// Edit replaces the content and marks the document modified.
func (d Document) Edit(content string) Document {
	d.Content = content
	d.Modified = true
	return d
}

// BindToFile replaces content and path after a successful open.
func (d Document) BindToFile(path, content string) Document {
	return Document{Content: content, Path: path}
}

// MarkSaved records the saved path and clears the modified flag.
func (d Document) MarkSaved(path string) Document {
	d.Path = path
	d.Modified = false
	return d
}

// SavedAs applies a completed save of written to path. When the content
// changed while the save was pending, the path is recorded but the document
// stays modified.
func (d Document) SavedAs(path, written string) Document {
	if d.Content != written {
		d.Path = path
		return d
	}
	return d.MarkSaved(path)
}

// Reset returns the empty untitled state.
func (d Document) Reset() Document {
	return NewDocument()
}

// RequiresConfirmation reports whether a destructive command must ask first.
func (d Document) RequiresConfirmation() bool {
	return d.Modified
}

// IsBound reports whether the document has a file path.
func (d Document) IsBound() bool {
	return d.Path != ""
}

// DisplayName is the final segment of Path, or UntitledName.
func (d Document) DisplayName() string {
	return DisplayName(d.Path)
}

// Title is the display name with a trailing " *" when there are unsaved changes.
func (d Document) Title() string {
	if d.Modified {
		return d.DisplayName() + " *"
	}
	return d.DisplayName()
}

// CharacterCount counts Unicode code points.
func (d Document) CharacterCount() int {
	return utf8.RuneCountInString(d.Content)
}

// LineCount counts newline-separated lines; empty content is one line.
func (d Document) LineCount() int {
	return strings.Count(d.Content, "\n") + 1
}

// DisplayName returns the last segment of path, splitting on both slash styles.
func DisplayName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return UntitledName
	}
	return path
}
