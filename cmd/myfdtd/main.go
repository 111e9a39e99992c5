// MyFDTD — minimal desktop sample
//
// Opens a single window with File/Help menus and a two-pane status bar.
//
// Build:
//   go build -o myfdtd ./cmd/myfdtd
//
// Cross-compile with fyne-cross:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"flag"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"

	"github.com/piwi3910/myfdtd/internal/logger"
	"github.com/piwi3910/myfdtd/internal/model"
	"github.com/piwi3910/myfdtd/internal/project"
	"github.com/piwi3910/myfdtd/internal/ui"
)

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "path to the JSON config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, cfgErr := project.LoadAppConfig(*configPath)
	if cfgErr != nil {
		cfg = model.DefaultAppConfig()
	}

	levelName := cfg.LogLevel
	if *debug {
		levelName = "debug"
	}
	log := logger.NewConsole(logger.ParseLevel(levelName)).With("session", uuid.New().String()[:8])

	application := app.NewWithID("com.piwi3910.myfdtd")
	application.Settings().SetTheme(ui.NewFrameThemeFromConfig(cfg))

	window := application.NewWindow(cfg.WindowTitle)

	frame := ui.NewFrame(window, cfg, log)
	frame.SetupMenus()
	window.SetContent(frame.Build())
	if cfgErr != nil {
		frame.ShowError(fmt.Errorf("using default settings: %w", cfgErr))
	}
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	log.Info("app", "showing main window", map[string]interface{}{
		"title":   cfg.WindowTitle,
		"menubar": cfg.MenuBar,
		"toolbar": cfg.Toolbar,
	})
	window.ShowAndRun()
}
