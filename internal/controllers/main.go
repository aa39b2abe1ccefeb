package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"tidy-notepad/internal/apperr"
	"tidy-notepad/internal/logger"
	"tidy-notepad/internal/models"
	"tidy-notepad/internal/services"
)

const component = "Controller"

// Event names emitted after a command changes the document binding.
const (
	EventDocumentOpened = "document_opened"
	EventDocumentSaved  = "document_saved"
	EventDocumentReset  = "document_reset"
)

// View is the presentation surface the controller drives.
type View interface {
	// ShowDocument renders the whole document, replacing the editor text.
	ShowDocument(doc models.Document)
	// RefreshDocumentInfo updates title, counters and sidebar selection
	// without touching the editor text.
	RefreshDocumentInfo(doc models.Document)
	SetSidebarVisible(visible bool)
	UpdateStatus(status string)
	ShowError(title string, err error)
	// Confirm blocks until the user answers or ctx ends.
	Confirm(ctx context.Context, title, message string) (bool, error)

	SetCommandHandler(handler func(models.Command, models.Source))
	SetOpenPathHandler(handler func(path string))
	SetEditHandler(handler func(content string))
}

// EventHandler reacts to document events.
type EventHandler func(doc models.Document) error

// MainController dispatches commands onto the document model.
type MainController struct {
	repo   *models.DocumentRepository
	layout *models.LayoutState
	files  services.FileAccess
	logger logger.Logger

	mainView View

	// one command at a time; a second one while a dialog is pending is dropped
	running *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// NewMainController creates a controller whose triggered commands live as long as ctx.
func NewMainController(
	ctx context.Context,
	repo *models.DocumentRepository,
	layout *models.LayoutState,
	files services.FileAccess,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ctx, cancel := context.WithCancel(ctx)
	return &MainController{
		repo:          repo,
		layout:        layout,
		files:         files,
		logger:        log,
		running:       semaphore.NewWeighted(1),
		ctx:           ctx,
		cancel:        cancel,
		eventHandlers: make(map[string][]EventHandler),
	}
}

// SetMainView associates the view and connects its callbacks.
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view

	view.SetCommandHandler(mc.Trigger)
	view.SetOpenPathHandler(func(path string) {
		mc.TriggerOpenPath(path, models.SourceSidebar)
	})
	view.SetEditHandler(mc.Edit)

	view.ShowDocument(mc.repo.Snapshot())
	view.SetSidebarVisible(mc.layout.SidebarVisible())
}

// Trigger runs cmd in the background. Toolbar buttons and menu items both land here.
func (mc *MainController) Trigger(cmd models.Command, source models.Source) {
	mc.goRun(func(ctx context.Context) {
		_ = mc.Execute(ctx, cmd, source)
	})
}

// TriggerOpenPath runs OpenPath in the background.
func (mc *MainController) TriggerOpenPath(path string, source models.Source) {
	mc.goRun(func(ctx context.Context) {
		_ = mc.OpenPath(ctx, path, source)
	})
}

func (mc *MainController) goRun(fn func(ctx context.Context)) {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		fn(mc.ctx)
	}()
}

// Execute runs a command to completion. It is the single invocation path
// for every command regardless of where it was fired from.
func (mc *MainController) Execute(ctx context.Context, cmd models.Command, source models.Source) error {
	switch cmd {
	case models.CommandNew:
		return mc.invoke(ctx, string(cmd), source, mc.newDocument)
	case models.CommandOpen:
		return mc.invoke(ctx, string(cmd), source, func(ctx context.Context, doc models.Document) error {
			return mc.openDocument(ctx, doc, "")
		})
	case models.CommandSave:
		return mc.invoke(ctx, string(cmd), source, mc.saveDocument)
	case models.CommandToggleSidebar:
		return mc.invoke(ctx, string(cmd), source, mc.toggleSidebar)
	default:
		err := fmt.Errorf("unknown command %q", cmd)
		mc.logger.Error(component, err, map[string]interface{}{"source": string(source)})
		return err
	}
}

// OpenPath opens a known file, asking first when there are unsaved changes.
func (mc *MainController) OpenPath(ctx context.Context, path string, source models.Source) error {
	if path == "" {
		return mc.Execute(ctx, models.CommandOpen, source)
	}
	return mc.invoke(ctx, "open-path", source, func(ctx context.Context, doc models.Document) error {
		return mc.openDocument(ctx, doc, path)
	})
}

// Edit records new editor content. It is called on every keystroke.
func (mc *MainController) Edit(content string) {
	doc := mc.repo.Update(func(d models.Document) models.Document {
		return d.Edit(content)
	})
	if mc.mainView != nil {
		mc.mainView.RefreshDocumentInfo(doc)
	}
}

// Document returns the current document snapshot.
func (mc *MainController) Document() models.Document {
	return mc.repo.Snapshot()
}

// RequestQuit runs Quit in the background.
func (mc *MainController) RequestQuit(confirm bool, quit func()) {
	mc.goRun(func(ctx context.Context) {
		_ = mc.Quit(ctx, confirm, quit)
	})
}

// Quit calls quit, first asking when there are unsaved changes and confirm
// is set. Like any command it returns apperr.ErrBusy while another one is
// pending, so a second dialog is never stacked on an open one.
func (mc *MainController) Quit(ctx context.Context, confirm bool, quit func()) error {
	if !mc.running.TryAcquire(1) {
		mc.logger.Debug(component, "quit dropped", nil)
		return apperr.ErrBusy
	}
	defer mc.running.Release(1)

	if confirm && mc.repo.Snapshot().RequiresConfirmation() && mc.mainView != nil {
		ok, err := mc.mainView.Confirm(ctx, "Unsaved Changes", "You have unsaved changes. Quit without saving?")
		if err != nil {
			return err
		}
		if !ok {
			mc.logger.Debug(component, "quit aborted", nil)
			return apperr.ErrConfirmationDeclined
		}
	}
	quit()
	return nil
}

// invoke serialises commands, takes the document snapshot after acquiring
// the slot and reports the outcome. Editor text is only replaced by the
// commands that load new content; afterwards the title, counters and
// sidebar selection are refreshed from the current document.
func (mc *MainController) invoke(ctx context.Context, name string, source models.Source, fn func(context.Context, models.Document) error) error {
	if !mc.running.TryAcquire(1) {
		mc.logger.Debug(component, "command dropped", map[string]interface{}{
			"command": name,
			"source":  string(source),
		})
		return apperr.ErrBusy
	}
	defer mc.running.Release(1)

	id := uuid.NewString()
	startTime := time.Now()
	mc.logger.Debug(component, "command started", map[string]interface{}{
		"command_id": id,
		"command":    name,
		"source":     string(source),
	})

	err := fn(ctx, mc.repo.Snapshot())

	fields := map[string]interface{}{
		"command_id": id,
		"command":    name,
		"source":     string(source),
		"duration":   time.Since(startTime).String(),
		"revision":   mc.repo.Revision(),
	}
	switch {
	case err == nil:
		mc.logger.Info(component, "command completed", fields)
	case apperr.IsSilent(err), errors.Is(err, context.Canceled):
		fields["outcome"] = err.Error()
		mc.logger.Debug(component, "command aborted", fields)
	default:
		mc.logger.Error(component, err, fields)
		mc.handleError(errorTitle(name), err)
	}

	if mc.mainView != nil && name != string(models.CommandToggleSidebar) {
		mc.mainView.RefreshDocumentInfo(mc.repo.Snapshot())
	}
	return err
}

func (mc *MainController) newDocument(ctx context.Context, doc models.Document) error {
	if err := mc.confirmDiscard(ctx, doc); err != nil {
		return err
	}

	next := mc.repo.Update(func(d models.Document) models.Document {
		return d.Reset()
	})
	mc.showDocument(next)
	mc.updateStatus("New document")
	mc.emitEvent(EventDocumentReset, next)
	return nil
}

func (mc *MainController) openDocument(ctx context.Context, doc models.Document, path string) error {
	if path != "" {
		if err := mc.confirmDiscard(ctx, doc); err != nil {
			return err
		}
	}

	file, err := mc.files.Open(ctx, path)
	if err != nil {
		return err
	}

	next := mc.repo.Update(func(d models.Document) models.Document {
		return d.BindToFile(file.Path, file.Content)
	})
	mc.showDocument(next)
	mc.updateStatus("Opened " + next.DisplayName())
	mc.emitEvent(EventDocumentOpened, next)
	return nil
}

func (mc *MainController) saveDocument(ctx context.Context, doc models.Document) error {
	path, err := mc.files.Save(ctx, doc.Content, doc.Path)
	if err != nil {
		return err
	}

	next := mc.repo.Update(func(d models.Document) models.Document {
		return d.SavedAs(path, doc.Content)
	})
	if doc.IsBound() {
		mc.updateStatus("Saved " + next.DisplayName())
	} else {
		mc.updateStatus("Saved as " + next.DisplayName())
	}
	mc.emitEvent(EventDocumentSaved, next)
	return nil
}

func (mc *MainController) toggleSidebar(ctx context.Context, doc models.Document) error {
	visible := mc.layout.ToggleSidebar()
	if mc.mainView != nil {
		mc.mainView.SetSidebarVisible(visible)
	}
	return nil
}

func (mc *MainController) confirmDiscard(ctx context.Context, doc models.Document) error {
	if !doc.RequiresConfirmation() {
		return nil
	}
	if mc.mainView == nil {
		return apperr.ErrConfirmationDeclined
	}

	ok, err := mc.mainView.Confirm(ctx, "Unsaved Changes", "You have unsaved changes. Continue without saving?")
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrConfirmationDeclined
	}
	return nil
}

func errorTitle(command string) string {
	switch command {
	case string(models.CommandSave):
		return "Error saving file"
	case string(models.CommandOpen), "open-path":
		return "Error opening file"
	default:
		return "Error"
	}
}

// Event system methods

// AddEventListener adds an event handler for a specific event type
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()

	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent triggers all handlers for a specific event type
func (mc *MainController) emitEvent(eventType string, doc models.Document) {
	mc.eventMu.RLock()
	handlers := mc.eventHandlers[eventType]
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		mc.wg.Add(1)
		go func(h EventHandler) {
			defer mc.wg.Done()
			if err := h(doc); err != nil {
				mc.logger.Warning(component, "event handler failed", map[string]interface{}{
					"event": eventType,
					"error": err.Error(),
				})
			}
		}(handler)
	}
}

func (mc *MainController) showDocument(doc models.Document) {
	if mc.mainView != nil {
		mc.mainView.ShowDocument(doc)
	}
}

func (mc *MainController) updateStatus(status string) {
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(status)
	}
}

// handleError shows an error with consistent UI feedback
func (mc *MainController) handleError(title string, err error) {
	if mc.mainView != nil {
		mc.mainView.ShowError(title, err)
	}
}

// Wait blocks until every triggered command and event handler has finished.
func (mc *MainController) Wait() {
	mc.wg.Wait()
}

// Shutdown cancels pending commands and waits for them to return.
func (mc *MainController) Shutdown() {
	mc.cancel()
	mc.Wait()
	mc.logger.Info(component, "controller stopped", nil)
}
