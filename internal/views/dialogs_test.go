package views

import (
	"testing"

	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFilterListsAllFilesWithoutExtensions(t *testing.T) {
	assert.Nil(t, NewFileDialogs(nil, "", nil).openFilter())

	filter := NewFileDialogs(nil, "", []string{".txt", ".md"}).openFilter()
	require.NotNil(t, filter)
	assert.True(t, filter.Matches(storage.NewFileURI("/notes/a.txt")))
	assert.False(t, filter.Matches(storage.NewFileURI("/notes/a.go")))
}
