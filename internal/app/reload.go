package app

import (
	"github.com/dshills/mte/internal/config/watcher"
	"github.com/dshills/mte/internal/renderer"
	"github.com/dshills/mte/internal/renderer/backend"
	"github.com/dshills/mte/internal/renderer/dirty"
)

// startWatcher watches the configuration file. Changes are posted to the
// backend as interrupts so the reload runs on the event loop.
func (app *Application) startWatcher() error {
	log := app.logger.WithComponent("watcher")
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn("watch error: %v", err)
	}))
	if err != nil {
		return err
	}
	if err := w.Watch(app.opts.ConfigPath); err != nil {
		_ = w.Close()
		return err
	}
	w.OnChange(func(ev watcher.Event) {
		log.Debug("%s %s", ev.Op, ev.Path)
		app.backend.PostEvent(backend.InterruptEvent(configChanged{path: ev.Path}))
	})
	app.watcher = w
	log.Info("watching %s", app.opts.ConfigPath)
	return nil
}

// reloadConfig re-reads the configuration and applies the settings that
// can change while editing. A broken file keeps the current settings.
func (app *Application) reloadConfig(path string) {
	cfg, err := app.loadConfig()
	if err != nil {
		app.logger.Warn("config reload from %s failed: %v", path, err)
		return
	}
	app.cfg = cfg
	app.applyConfig()
	app.logger.Info("config reloaded from %s", path)
}

// applyConfig pushes the current configuration into the running editor.
func (app *Application) applyConfig() {
	app.logger.SetLevel(ParseLogLevel(app.cfg.Logging.Level))
	app.renderer.SetOptions(renderer.Options{ReverseStatus: app.cfg.UI.ReverseStatus})
	app.session.SetAutoIndent(app.cfg.Editor.AutoIndent, app.cfg.Editor.IndentChars)
	app.renderer.Render(app.session, dirty.Full())
}
