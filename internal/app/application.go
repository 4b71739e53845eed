package app

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aipros/console/internal/backend"
	"github.com/aipros/console/internal/config"
	"github.com/aipros/console/internal/core"
	"github.com/aipros/console/internal/dispatcher"
	"github.com/aipros/console/internal/eventbus"
	"github.com/aipros/console/internal/logging"
	"github.com/aipros/console/internal/models"
)

// Options are the command-line overrides shared by every entry point.
type Options struct {
	BackendURL string // overrides the profile and AIPROS_BACKEND_URL
	LogFile    string // defaults to <config dir>/console.log
	Debug      bool
}

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.ConsoleService
	model      *AppModel
}

func NewApplication(opts Options) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := NewLogger(cfg, opts)
	if err != nil {
		return nil, err
	}

	client, err := NewBackendClient(cfg, opts, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(busErr eventbus.EventBusError) {
		logger.Warn("event bus error", zap.String("operation", busErr.Operation), zap.Error(busErr.Err))
	})

	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewConsoleService(client, eb, core.ServiceOptions{Logger: logger})

	model := &AppModel{
		appModel:   models.NewAppModel(cfg.ActiveProfile, client.BaseURL(), cfg.GetQuickCommands()),
		dispatcher: disp,
	}

	logger.Info("console started",
		zap.String("profile", cfg.ActiveProfile),
		zap.String("backend", client.BaseURL()))

	return &Application{
		config:     cfg,
		logger:     logger,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	_ = app.logger.Sync()
}

// NewLogger opens the file logger for cfg.
func NewLogger(cfg *config.Config, opts Options) (*zap.Logger, error) {
	path := opts.LogFile
	if path == "" {
		path = filepath.Join(cfg.Dir(), logging.FileName)
	}
	return logging.New(path, opts.Debug)
}

// NewBackendClient resolves the backend URL and builds the HTTP client.
func NewBackendClient(cfg *config.Config, opts Options, logger *zap.Logger) (*backend.Client, error) {
	baseURL := cfg.GetBaseURL()
	if opts.BackendURL != "" {
		baseURL = opts.BackendURL
	}
	if err := config.ValidateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("backend for profile '%s': %w", cfg.ActiveProfile, err)
	}
	return backend.NewClient(baseURL, backend.WithLogger(logger)), nil
}
