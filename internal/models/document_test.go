package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentIsUntitled(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, "", doc.Content)
	assert.Equal(t, "", doc.Path)
	assert.False(t, doc.Modified)
	assert.Equal(t, UntitledName, doc.DisplayName())
	assert.False(t, doc.RequiresConfirmation())
}

func TestEditKeepsModifiedUntilBound(t *testing.T) {
	doc := NewDocument()
	for _, text := range []string{"a", "ab", "", "abc"} {
		doc = doc.Edit(text)
		assert.True(t, doc.Modified)
		assert.True(t, doc.RequiresConfirmation())
	}
	assert.Equal(t, "abc", doc.Content)

	assert.False(t, doc.BindToFile("/x/y.txt", "y").Modified)
	assert.False(t, doc.MarkSaved("/x/z.txt").Modified)
	assert.False(t, doc.Reset().Modified)
}

func TestResetFromAnyState(t *testing.T) {
	states := []Document{
		NewDocument(),
		NewDocument().Edit("hello"),
		NewDocument().BindToFile("/tmp/a.txt", "hello"),
		NewDocument().BindToFile("/tmp/a.txt", "hello").Edit("bye"),
	}
	for _, s := range states {
		assert.Equal(t, Document{}, s.Reset())
	}
}

func TestBindToFile(t *testing.T) {
	doc := NewDocument().Edit("draft").BindToFile("/home/me/notes/todo.txt", "buy milk")

	assert.Equal(t, "buy milk", doc.Content)
	assert.Equal(t, "/home/me/notes/todo.txt", doc.Path)
	assert.False(t, doc.Modified)
	assert.Equal(t, "todo.txt", doc.DisplayName())
}

func TestMarkSavedKeepsContent(t *testing.T) {
	doc := NewDocument().Edit("hello").MarkSaved("/tmp/a.txt")

	assert.Equal(t, Document{Content: "hello", Path: "/tmp/a.txt"}, doc)
	assert.Equal(t, "a.txt", doc.DisplayName())
}

func TestSavedAs(t *testing.T) {
	doc := NewDocument().Edit("hello")
	assert.Equal(t, Document{Content: "hello", Path: "/tmp/a.txt"}, doc.SavedAs("/tmp/a.txt", "hello"))

	// typed more while the dialog was open
	later := doc.Edit("hello world").SavedAs("/tmp/a.txt", "hello")
	assert.Equal(t, "/tmp/a.txt", later.Path)
	assert.True(t, later.Modified)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	orig := NewDocument().BindToFile("/tmp/a.txt", "one")
	_ = orig.Edit("two")
	_ = orig.MarkSaved("/tmp/b.txt")
	_ = orig.Reset()
	assert.Equal(t, Document{Content: "one", Path: "/tmp/a.txt"}, orig)
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"":                     UntitledName,
		"/tmp/a.txt":           "a.txt",
		"a.txt":                "a.txt",
		`C:\Users\me\note.txt`: "note.txt",
		"/mixed\\dir/last.md":  "last.md",
		"/tmp/dir/":            UntitledName,
	}
	for path, want := range cases {
		assert.Equal(t, want, DisplayName(path), path)
	}
}

func TestTitle(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, "Untitled", doc.Title())
	assert.Equal(t, "Untitled *", doc.Edit("x").Title())
	assert.Equal(t, "a.txt", doc.BindToFile("/tmp/a.txt", "").Title())
}

func TestCounters(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, 0, doc.CharacterCount())
	assert.Equal(t, 1, doc.LineCount())

	doc = doc.Edit("héllo\nwörld\n")
	assert.Equal(t, 12, doc.CharacterCount())
	assert.Equal(t, 3, doc.LineCount())
}

func TestRepositoryUpdate(t *testing.T) {
	repo := NewDocumentRepository()
	assert.Equal(t, NewDocument(), repo.Snapshot())
	assert.Zero(t, repo.Revision())

	next := repo.Update(func(d Document) Document { return d.Edit("hi") })
	assert.Equal(t, "hi", next.Content)
	assert.Equal(t, next, repo.Snapshot())
	assert.EqualValues(t, 1, repo.Revision())

	// identical result does not bump the revision
	repo.Update(func(d Document) Document { return d })
	assert.EqualValues(t, 1, repo.Revision())
}

func TestLayoutStateToggle(t *testing.T) {
	s := NewLayoutState()
	assert.True(t, s.SidebarVisible())
	assert.False(t, s.ToggleSidebar())
	assert.False(t, s.SidebarVisible())
	assert.True(t, s.ToggleSidebar())
}

func TestCommandLabels(t *testing.T) {
	labels := make([]string, 0, len(Commands))
	for _, c := range Commands {
		labels = append(labels, c.Label())
	}
	require.Len(t, labels, 4)
	assert.Equal(t, []string{"New", "Open", "Save", "Toggle Sidebar"}, labels)
	assert.Equal(t, "print", Command("print").Label())
}
