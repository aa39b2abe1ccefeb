package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/afero"

	"tidy-notepad/internal/apperr"
	"tidy-notepad/internal/logger"
	"tidy-notepad/internal/models"
)

const fileMode os.FileMode = 0o644

// Picker asks the user for a file location. A dismissed dialog returns apperr.ErrCancelled.
type Picker interface {
	PickOpen(ctx context.Context) (string, error)
	PickSave(ctx context.Context) (SaveTarget, error)
}

// SaveTarget is a picked save destination. A dialog that already opened
// (and truncated) the file hands over its Writer; the content goes through
// it instead of a second open of Path.
type SaveTarget struct {
	Path   string
	Writer io.WriteCloser
}

// FileAccess is the open/save boundary consumed by the controller.
type FileAccess interface {
	Open(ctx context.Context, path string) (models.FileContent, error)
	Save(ctx context.Context, content, path string) (string, error)
}

// FileService reads and writes plain UTF-8 text files, asking the Picker
// for a location when none is given.
type FileService struct {
	fs     afero.Fs
	picker Picker
	logger logger.Logger
}

// NewFileService creates a file service over fs.
func NewFileService(fs afero.Fs, picker Picker, log logger.Logger) *FileService {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &FileService{
		fs:     fs,
		picker: picker,
		logger: log,
	}
}

// NewOSFileService creates a file service backed by the real filesystem.
func NewOSFileService(picker Picker, log logger.Logger) *FileService {
	return NewFileService(afero.NewOsFs(), picker, log)
}

// Open reads path, or the file the user picks when path is empty.
func (s *FileService) Open(ctx context.Context, path string) (models.FileContent, error) {
	if path == "" {
		picked, err := s.pickOpen(ctx)
		if err != nil {
			return models.FileContent{}, err
		}
		path = picked
	}

	select {
	case <-ctx.Done():
		return models.FileContent{}, ctx.Err()
	default:
	}

	startTime := time.Now()
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return models.FileContent{}, apperr.NewIOError("read", path, unwrapPathError(err))
	}
	if !utf8.Valid(data) {
		return models.FileContent{}, apperr.NewIOError("read", path, errors.New("file is not valid UTF-8 text"))
	}

	s.logger.Debug("FileService", "file read", map[string]interface{}{
		"path":     path,
		"bytes":    len(data),
		"duration": time.Since(startTime).String(),
	})

	return models.FileContent{Path: path, Content: string(data)}, nil
}

// Save writes content to path, or to the destination the user picks when
// path is empty. It returns the path that was written.
func (s *FileService) Save(ctx context.Context, content, path string) (string, error) {
	if path != "" {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := afero.WriteFile(s.fs, path, []byte(content), fileMode); err != nil {
			return "", apperr.NewIOError("write", path, unwrapPathError(err))
		}
		s.logWritten(path, content)
		return path, nil
	}

	if s.picker == nil {
		return "", apperr.NewIOError("save dialog", "", errors.New("no file picker available"))
	}
	target, err := s.picker.PickSave(ctx)
	if err = pickError("save dialog", err); err == nil && target.Path == "" {
		err = apperr.ErrCancelled
	}
	if err != nil {
		closeQuietly(target.Writer)
		return "", err
	}
	if err := ctx.Err(); err != nil {
		closeQuietly(target.Writer)
		return "", err
	}

	if target.Writer == nil {
		err = afero.WriteFile(s.fs, target.Path, []byte(content), fileMode)
	} else {
		_, err = io.WriteString(target.Writer, content)
		err = errors.Join(err, target.Writer.Close())
	}
	if err != nil {
		return "", apperr.NewIOError("write", target.Path, unwrapPathError(err))
	}

	s.logWritten(target.Path, content)
	return target.Path, nil
}

func (s *FileService) logWritten(path, content string) {
	s.logger.Debug("FileService", "file written", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
}

func (s *FileService) pickOpen(ctx context.Context) (string, error) {
	if s.picker == nil {
		return "", apperr.NewIOError("open dialog", "", errors.New("no file picker available"))
	}
	path, err := s.picker.PickOpen(ctx)
	if err = pickError("open dialog", err); err != nil {
		return "", err
	}
	if path == "" {
		return "", apperr.ErrCancelled
	}
	return path, nil
}

// pickError maps a picker failure onto the error taxonomy.
func pickError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrCancelled):
		return apperr.ErrCancelled
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	var ioErr *apperr.IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return apperr.NewIOError(op, "", err)
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

// unwrapPathError drops the *os.PathError layer so IOError does not repeat the path.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}
