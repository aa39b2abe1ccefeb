// Package workspace lists the files shown in the sidebar and watches them for changes.
package workspace

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// errLimitReached stops the walk once MaxEntries files were collected.
var errLimitReached = errors.New("entry limit reached")

// Entry is a file under the workspace root.
type Entry struct {
	Path    string // absolute (root-joined) path
	RelPath string // slash-separated path relative to the root
}

// Scanner walks a workspace root.
type Scanner struct {
	fs         afero.Fs
	root       string
	extensions map[string]struct{}
	maxEntries int
}

// NewScanner creates a scanner. An empty extension list accepts every file.
func NewScanner(fsys afero.Fs, root string, extensions []string, maxEntries int) *Scanner {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &Scanner{
		fs:         fsys,
		root:       filepath.Clean(root),
		extensions: exts,
		maxEntries: maxEntries,
	}
}

// Root returns the cleaned workspace root.
func (s *Scanner) Root() string {
	return s.root
}

// List returns matching files sorted by relative path. Hidden files and
// directories are skipped.
func (s *Scanner) List() ([]Entry, error) {
	entries := make([]Entry, 0)

	err := afero.Walk(s.fs, s.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			// unreadable sub-directories are skipped, not fatal
			return nil
		}
		if path != s.root && isHidden(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if !s.accepts(path) {
			return nil
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return nil
		}
		entries = append(entries, Entry{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
		})
		if s.maxEntries > 0 && len(entries) >= s.maxEntries {
			return errLimitReached
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RelPath < entries[j].RelPath
	})
	return entries, nil
}

func (s *Scanner) accepts(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	_, ok := s.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
