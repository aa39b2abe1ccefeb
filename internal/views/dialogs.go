package views

import (
	"context"
	"fmt"
	"path/filepath"

	"tidy-notepad/internal/apperr"
	"tidy-notepad/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// DefaultFileName is suggested by the save dialog for an untitled document.
const DefaultFileName = "Untitled.txt"

// FileDialogs shows Fyne dialogs and blocks the calling goroutine until the
// user answers. It must not be called from the UI goroutine.
type FileDialogs struct {
	window     fyne.Window
	root       string
	extensions []string
}

// NewFileDialogs creates dialogs that start browsing at root. When
// extensions is non-empty the open dialog shows only those files.
func NewFileDialogs(window fyne.Window, root string, extensions []string) *FileDialogs {
	return &FileDialogs{
		window:     window,
		root:       root,
		extensions: extensions,
	}
}

type reply[T any] struct {
	value T
	err   error
}

// await shows a dialog on the UI goroutine and waits for its single answer.
// When ctx ends first, a later answer is passed to release, if set.
func await[T any](ctx context.Context, release func(T), show func(answer func(T, error))) (T, error) {
	result := make(chan reply[T], 1)

	fyne.Do(func() {
		show(func(value T, err error) {
			select {
			case result <- reply[T]{value: value, err: err}:
			default:
			}
		})
	})

	select {
	case r := <-result:
		return r.value, r.err
	case <-ctx.Done():
		if release != nil {
			go func() {
				if r := <-result; r.err == nil {
					release(r.value)
				}
			}()
		}
		var zero T
		return zero, ctx.Err()
	}
}

// PickOpen asks for an existing file.
func (d *FileDialogs) PickOpen(ctx context.Context) (string, error) {
	return await(ctx, nil, func(answer func(string, error)) {
		dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				answer("", apperr.NewIOError("open dialog", "", err))
				return
			}
			if reader == nil {
				answer("", apperr.ErrCancelled)
				return
			}
			defer reader.Close()
			answer(localPath(reader.URI()))
		}, d.window)

		if filter := d.openFilter(); filter != nil {
			dlg.SetFilter(filter)
		}
		d.setLocation(dlg)
		dlg.Show()
	})
}

// PickSave asks for a destination file. The dialog has already created or
// truncated it, so the returned target keeps that writer open for the caller.
func (d *FileDialogs) PickSave(ctx context.Context) (services.SaveTarget, error) {
	return await(ctx, releaseTarget, func(answer func(services.SaveTarget, error)) {
		dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				answer(services.SaveTarget{}, apperr.NewIOError("save dialog", "", err))
				return
			}
			if writer == nil {
				answer(services.SaveTarget{}, apperr.ErrCancelled)
				return
			}
			path, err := localPath(writer.URI())
			if err != nil {
				writer.Close()
				answer(services.SaveTarget{}, err)
				return
			}
			answer(services.SaveTarget{Path: path, Writer: writer}, nil)
		}, d.window)

		dlg.SetFileName(DefaultFileName)
		d.setLocation(dlg)
		dlg.Show()
	})
}

func releaseTarget(target services.SaveTarget) {
	if target.Writer != nil {
		_ = target.Writer.Close()
	}
}

// Confirm asks a yes/no question.
func (d *FileDialogs) Confirm(ctx context.Context, title, message string) (bool, error) {
	return await(ctx, nil, func(answer func(bool, error)) {
		dialog.ShowConfirm(title, message, func(ok bool) {
			answer(ok, nil)
		}, d.window)
	})
}

// openFilter is nil when every file should be listed.
func (d *FileDialogs) openFilter() storage.FileFilter {
	if len(d.extensions) == 0 {
		return nil
	}
	return storage.NewExtensionFileFilter(d.extensions)
}

func (d *FileDialogs) setLocation(dlg *dialog.FileDialog) {
	if d.root == "" {
		return
	}
	abs, err := filepath.Abs(d.root)
	if err != nil {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(abs))
	if err != nil {
		return
	}
	dlg.SetLocation(lister)
}

func localPath(uri fyne.URI) (string, error) {
	if uri.Scheme() != "file" {
		return "", apperr.NewIOError("dialog", uri.String(), fmt.Errorf("unsupported location scheme %q", uri.Scheme()))
	}
	return uri.Path(), nil
}
