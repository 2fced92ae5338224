package main

import (
	"context"
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wailslinux "github.com/wailsapp/wails/v2/pkg/options/linux"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"

	"focus-overlay/internal/config"
	"focus-overlay/internal/focus"
	"focus-overlay/internal/greeter"
	"focus-overlay/internal/logging"
	"focus-overlay/internal/window"
)

//go:embed all:frontend/dist
var assets embed.FS

// App struct
type App struct {
	config  *config.Service
	log     *logrus.Logger
	notices io.Writer
	win     mainWindow
	watcher *focus.Watcher
}

// mainWindow is the part of window.Host the app drives
type mainWindow interface {
	window.Window
	Attach() error
	Show()
	SetSize(width, height int)
	SetAlwaysOnTop(onTop bool)
	Close() error
}

// NewApp creates a new App application struct
func NewApp(configSvc *config.Service, log *logrus.Logger, notices io.Writer) *App {
	return &App{
		config:  configSvc,
		log:     log,
		notices: notices,
	}
}

// OnStartup is called once the main window exists
func (a *App) OnStartup(ctx context.Context) {
	host, err := window.NewHost(ctx, a.config.Get().Window.Title, a.log)
	if err != nil {
		a.log.WithError(err).Fatal("Failed to attach to main window")
	}
	a.setup(host)
}

// setup installs the focus watcher on win and shows it if it started hidden
func (a *App) setup(win mainWindow) {
	a.win = win
	cfg := a.config.Get()

	if !cfg.ClickThroughOnBlur {
		a.log.Info("Click-through on blur disabled")
	}
	a.watcher = focus.New(win, a.notices, a.log, cfg.ClickThroughOnBlur)
	a.watcher.Install()

	if cfg.Window.StartHidden {
		win.Show()
	}
}

// OnDomReady is called once the frontend has loaded and the window is mapped
func (a *App) OnDomReady(ctx context.Context) {
	if err := a.attach(); err != nil {
		a.log.WithError(err).Fatal("Main window not found")
	}
}

// attach locates the native window. Platforms without click-through are
// not an error.
func (a *App) attach() error {
	if a.win == nil || !a.config.Get().ClickThroughOnBlur {
		return nil
	}

	err := a.win.Attach()
	if errors.Cause(err) == window.ErrUnsupported {
		a.log.WithError(err).Warn("Click-through unavailable")
		return nil
	}
	return err
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	if a.win != nil {
		if err := a.win.Close(); err != nil {
			a.log.WithError(err).Warn("Failed to release main window")
		}
	}
	if a.config != nil {
		if err := a.config.Save(); err != nil {
			a.log.WithError(err).Warn("Failed to save config")
		}
	}
}

// Frontend API methods (these will be exposed to the frontend)

// Greet returns a greeting for name
func (a *App) Greet(name string) string {
	return greeter.Greet(name)
}

// GetWindowConfig returns the current window settings
func (a *App) GetWindowConfig() config.WindowConfig {
	return a.config.Get().Window
}

// UpdateWindow persists window settings and applies size and always-on-top
// to the running window. A new title applies on next launch.
func (a *App) UpdateWindow(cfg config.WindowConfig) error {
	if err := a.config.UpdateWindow(cfg); err != nil {
		return errors.Wrap(err, "failed to update window config")
	}

	if a.win != nil {
		a.win.SetSize(cfg.Width, cfg.Height)
		a.win.SetAlwaysOnTop(cfg.AlwaysOnTop)
	}
	return nil
}

func main() {
	configSvc, err := config.New()
	if err != nil {
		fmt.Printf("Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	cfg := configSvc.Get()

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Printf("Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Create an instance of the app structure
	app := NewApp(configSvc, log, os.Stdout)

	err = wails.Run(&options.App{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Frameless:        cfg.Window.Frameless,
		AlwaysOnTop:      cfg.Window.AlwaysOnTop,
		StartHidden:      cfg.Window.StartHidden,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0}, // Transparent
		Windows: &wailswindows.Options{
			WebviewIsTransparent: cfg.Window.Translucent,
			WindowIsTranslucent:  cfg.Window.Translucent,
		},
		Linux: &wailslinux.Options{
			WindowIsTranslucent: cfg.Window.Translucent,
			ProgramName:         "focus-overlay",
		},
		Logger:     logging.NewWailsLogger(log),
		LogLevel:   logging.WailsLevel(log.GetLevel()),
		OnStartup:  app.OnStartup,
		OnDomReady: app.OnDomReady,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	})

	if err != nil {
		log.WithError(err).Fatal("error while running application")
	}
}
