package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/mte/internal/config"
	"github.com/dshills/mte/internal/config/watcher"
	"github.com/dshills/mte/internal/filestore"
	"github.com/dshills/mte/internal/input"
	"github.com/dshills/mte/internal/renderer"
	"github.com/dshills/mte/internal/renderer/backend"
	"github.com/dshills/mte/internal/renderer/dirty"
	"github.com/dshills/mte/internal/session"
)

// Options configures the application.
type Options struct {
	// Path is the file to edit.
	Path string

	// ConfigPath is the configuration file. Empty uses config.DefaultPath.
	ConfigPath string

	// LogLevel and LogFile override the configuration when set.
	LogLevel string
	LogFile  string

	// WatchConfig reloads the configuration file when it changes.
	WatchConfig bool

	// Debug checks the cursor and viewport after every event and logs
	// at debug level.
	Debug bool

	// FileSystem backs loading and saving. Nil uses the OS.
	FileSystem filestore.FileSystem

	// LogOutput receives logs instead of LogFile.
	LogOutput io.Writer
}

// Application runs one editing session on a backend.
type Application struct {
	opts   Options
	cfg    *config.Config
	logger *Logger

	store *filestore.Store
	doc   *filestore.Document

	backend  backend.Backend
	renderer *renderer.Renderer
	session  *session.Session
	watcher  *watcher.Watcher
	logFile  io.Closer

	ctx    context.Context
	cancel context.CancelFunc

	running      atomic.Bool
	initialized  atomic.Bool
	shutdownOnce sync.Once
}

// configChanged is posted onto the event loop when the config file changes.
type configChanged struct {
	path string
}

// New loads the configuration and the document.
func New(opts Options) (*Application, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath()
	}
	app := &Application{
		opts:  opts,
		store: filestore.NewStore(opts.FileSystem),
	}
	app.ctx, app.cancel = context.WithCancel(context.Background())

	cfg, err := app.loadConfig()
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	if err := app.initLogger(); err != nil {
		return nil, &InitError{Component: "logger", Err: err}
	}

	doc, err := app.store.Load(app.ctx, opts.Path)
	if err != nil {
		app.logger.Error("load %s: %v", opts.Path, err)
		app.closeLog()
		return nil, err
	}
	app.doc = doc
	app.logger.Info("loaded %s (%d lines)", doc.Path, len(doc.Lines))
	return app, nil
}

// loadConfig reads the configuration and applies the command line overrides.
func (app *Application) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Logging.File = app.opts.LogFile
	}
	if app.opts.Debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (app *Application) initLogger() error {
	out := app.opts.LogOutput
	if out == nil && app.cfg.Logging.File != "" {
		f, err := OpenLogFile(app.cfg.Logging.File)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}
	base := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(app.cfg.Logging.Level),
		Output: out,
		Prefix: "mte",
	})
	app.logger = base.WithField("session", uuid.NewString())
	return nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Session returns the editing session, or nil before Run.
func (app *Application) Session() *session.Session {
	return app.session
}

// SetBackend sets the display backend. It must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initialises the backend and processes events until the user quits
// or the backend stops delivering input. Quitting returns ErrQuit.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.initialized.Store(true)
	defer app.Shutdown()

	app.renderer = renderer.New(app.backend, renderer.Options{ReverseStatus: app.cfg.UI.ReverseStatus})
	app.session = session.New(app.doc, app.renderer.TextHeight(),
		session.WithPersister(app.store),
		session.WithLogger(app.logger.WithComponent("session")),
		session.WithContext(app.ctx),
		session.WithAutoIndent(app.cfg.Editor.AutoIndent),
		session.WithIndentChars(app.cfg.Editor.IndentChars),
		session.WithInvariantChecks(app.opts.Debug),
	)

	if app.opts.WatchConfig {
		if err := app.startWatcher(); err != nil {
			app.logger.Warn("config watch disabled: %v", err)
		}
	}

	app.logger.Info("editing %s", app.doc.Path)
	app.renderer.Render(app.session, dirty.Full())
	return app.eventLoop()
}

func (app *Application) eventLoop() error {
	for {
		ev := app.backend.PollEvent()
		if ev.Type == backend.EventNone {
			return nil
		}
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// handleEvent processes one backend event. It returns ErrQuit when the
// session asks to exit.
func (app *Application) handleEvent(ev backend.Event) error {
	in := input.Translate(ev)
	switch in.Action {
	case input.ActionNone:
		return nil
	case input.ActionInterrupt:
		app.handleInterrupt(in.Payload)
		return nil
	case input.ActionResize:
		app.renderer.Resize(in.Width, in.Height)
	}

	res := app.session.Handle(in)
	if res.Quit {
		app.logger.Info("quit")
		return ErrQuit
	}
	app.renderer.Render(app.session, res.Redraw)
	return nil
}

func (app *Application) handleInterrupt(payload any) {
	if c, ok := payload.(configChanged); ok {
		app.reloadConfig(c.path)
	}
}

// Shutdown stops the watcher and the backend. It is safe to call more
// than once and from any goroutine.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		app.cancel()
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.Warn("closing config watcher: %v", err)
			}
		}
		if app.initialized.Load() {
			app.backend.Shutdown()
		}
		app.logger.Info("shutdown")
		app.closeLog()
	})
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}
