package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"tidy-notepad/internal/config"
	"tidy-notepad/internal/controllers"
	"tidy-notepad/internal/logger"
	"tidy-notepad/internal/models"
	"tidy-notepad/internal/services"
	"tidy-notepad/internal/shutdown"
	"tidy-notepad/internal/views"
	"tidy-notepad/internal/workspace"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const (
	AppName    = "Tidy Notepad"
	AppID      = "com.tidynotepad.editor"
	AppVersion = "1.0.0"

	defaultConfigFile = "config/config.yaml"
)

// Application owns the window, the MVC components and the background workers
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	cfg     *config.Config

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Workspace sidebar
	scanner *workspace.Scanner

	// Lifecycle management
	shutdown *shutdown.Manager
	group    *errgroup.Group
	groupCtx context.Context
}

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := config.NewDefaultConfig()
	required := cmd.IsSet("config") || configPath != defaultConfigFile
	if err := config.LoadOptional(configPath, required, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	appLogger := logger.New(cfg.App.LogFormat, cfg.App.Level())
	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"config":     configPath,
		"go_version": runtime.Version(),
		"log_level":  cfg.App.Level().String(),
	})

	application, err := NewApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("application initialization failed: %w", err)
	}

	if path := cmd.Args().First(); path != "" {
		application.OpenAtStartup(path)
	}

	return application.Run()
}

func main() {
	cmd := &cli.Command{
		Name:      "tidy-notepad",
		Usage:     "A minimal plain-text notepad",
		ArgsUsage: "[FILE]",
		Version:   AppVersion,
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: defaultConfigFile,
				Value:       defaultConfigFile,
				Sources:     cli.EnvVars("NOTEPAD_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.NewConsoleLogger(logger.ErrorLevel).Error("Main", err, nil)
		os.Exit(1)
	}
}

// NewApplication creates and wires the application
func NewApplication(ctx context.Context, cfg *config.Config, appLogger logger.Logger) (*Application, error) {
	root, err := filepath.Abs(cfg.Workspace.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	shutdownManager := shutdown.NewManager(appLogger)
	group, groupCtx := errgroup.WithContext(shutdownManager.Context())

	// Initialize repositories/models
	repo := models.NewDocumentRepository()
	layout := models.NewLayoutState()

	// Initialize services
	dialogs := views.NewFileDialogs(window, root, cfg.OpenDialogExtensions())
	fileService := services.NewOSFileService(dialogs, appLogger)

	// Initialize MVC components
	mainController := controllers.NewMainController(ctx, repo, layout, fileService, appLogger)
	mainView := views.NewMainView(window, dialogs, cfg.Editor.Placeholder, root)
	mainView.SetupMenus()
	mainController.SetMainView(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		cfg:        cfg,
		controller: mainController,
		view:       mainView,
		scanner:    workspace.NewScanner(afero.NewOsFs(), root, cfg.Workspace.Extensions, cfg.Workspace.MaxEntries),
		shutdown:   shutdownManager,
		group:      group,
		groupCtx:   groupCtx,
	}

	application.setupWindowEvents()
	application.setupWorkspace()

	appLogger.Info("Main", "application initialized", map[string]interface{}{
		"workspace": root,
		"watch":     cfg.Workspace.Watch,
	})

	return application, nil
}

// OpenAtStartup opens a file named on the command line
func (a *Application) OpenAtStartup(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	a.controller.TriggerOpenPath(path, models.SourceCLI)
}

// Run shows the window and blocks until the UI exits
func (a *Application) Run() error {
	a.shutdown.Register("workspace", shutdown.Func(func() {
		if err := a.group.Wait(); err != nil {
			a.logger.Error("Main", err, map[string]interface{}{"worker": "workspace"})
		}
	}))
	a.shutdown.Register("controller", a.controller)
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.view.FocusEditor()

	a.fyneApp.Run()

	a.shutdown.Shutdown()

	doc := a.controller.Document()
	a.logger.Info("Main", "application terminated", map[string]interface{}{
		"document":        doc.DisplayName(),
		"unsaved_changes": doc.Modified,
	})
	return nil
}

// setupWindowEvents routes window close and menu Quit through the unsaved-changes check
func (a *Application) setupWindowEvents() {
	a.view.SetQuitHandler(func() {
		a.logger.Debug("Main", "quit requested", nil)
		a.controller.RequestQuit(a.cfg.Editor.ConfirmOnQuit, func() {
			fyne.Do(a.fyneApp.Quit)
		})
	})
}

// setupWorkspace fills the sidebar and keeps it in sync with the disk
func (a *Application) setupWorkspace() {
	a.refreshWorkspace()

	refresh := func(models.Document) error {
		a.refreshWorkspace()
		return nil
	}
	a.controller.AddEventListener(controllers.EventDocumentSaved, refresh)

	if !a.cfg.Workspace.Watch {
		return
	}
	a.group.Go(func() error {
		if err := workspace.Watch(a.groupCtx, a.scanner.Root(), a.logger, a.refreshWorkspace); err != nil {
			return fmt.Errorf("workspace watcher: %w", err)
		}
		return nil
	})
}

func (a *Application) refreshWorkspace() {
	entries, err := a.scanner.List()
	if err != nil {
		a.logger.Warning("Workspace", "listing failed", map[string]interface{}{
			"root":  a.scanner.Root(),
			"error": err.Error(),
		})
	}
	a.view.SetWorkspaceEntries(entries, err)
}
