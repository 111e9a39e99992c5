// Package ui provides the main application frame: its menu bar, status bar
// and the command handlers bound to them.
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/myfdtd/internal/logger"
	"github.com/piwi3910/myfdtd/internal/model"
	"github.com/piwi3910/myfdtd/internal/sysinfo"
)

const (
	statusPanes    = 2
	welcomeText    = "Welcome to Fyne!"
	aboutTitle     = "About Fyne minimal sample"
	aboutTemplate  = "Welcome to %s!\n\nThis is the minimal Fyne sample\nrunning under %s."
	componentFrame = "frame"
)

// Frame is the top-level application window with its decorations.
type Frame struct {
	window    fyne.Window
	config    model.AppConfig
	log       *logger.Logger
	statusBar *StatusBar

	// handlers is the command table consulted by Dispatch.
	handlers map[Command]func()

	showInfo       func(title, message string, parent fyne.Window)
	showError      func(err error, parent fyne.Window)
	toolkitVersion func() string
	osDescription  func() string
}

// NewFrame binds a Frame to window and registers the command handlers and
// keyboard shortcuts. A nil log discards output.
func NewFrame(window fyne.Window, cfg model.AppConfig, log *logger.Logger) *Frame {
	if log == nil {
		log = logger.Nop()
	}
	f := &Frame{
		window:         window,
		config:         cfg,
		log:            log,
		statusBar:      NewStatusBar(statusPanes),
		showInfo:       dialog.ShowInformation,
		showError:      dialog.ShowError,
		toolkitVersion: sysinfo.ToolkitVersion,
		osDescription:  sysinfo.OSDescription,
	}
	f.handlers = map[Command]func(){
		CommandExit:  f.OnQuit,
		CommandAbout: f.OnAbout,
	}
	f.statusBar.SetStatusText(welcomeText, 0)
	f.bindShortcuts()
	return f
}

// Window returns the underlying Fyne window.
func (f *Frame) Window() fyne.Window {
	return f.window
}

// StatusBar returns the frame's status bar.
func (f *Frame) StatusBar() *StatusBar {
	return f.statusBar
}

// SetupMenus creates the native menu bar. It does nothing when the menu bar
// is disabled in the config; Build then shows an About button instead.
func (f *Frame) SetupMenus() {
	if !f.config.MenuBar {
		return
	}

	fileMenu := fyne.NewMenu("File", f.menuItem(CommandExit))
	helpMenu := fyne.NewMenu("Help", f.menuItem(CommandAbout))

	f.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (f *Frame) menuItem(cmd Command) *fyne.MenuItem {
	item := fyne.NewMenuItem(cmd.String(), func() {
		f.Dispatch(cmd)
	})
	item.Shortcut = cmd.Shortcut()
	return item
}

func (f *Frame) bindShortcuts() {
	for cmd := range f.handlers {
		shortcut := cmd.Shortcut()
		if shortcut == nil {
			continue
		}
		f.window.Canvas().AddShortcut(shortcut, func(fyne.Shortcut) {
			f.Dispatch(cmd)
		})
	}
}

// Build constructs the frame content and returns the root object.
func (f *Frame) Build() fyne.CanvasObject {
	var top fyne.CanvasObject
	if f.config.Toolbar {
		top = f.buildToolbar()
	}

	center := fyne.CanvasObject(layout.NewSpacer())
	if !f.config.MenuBar {
		center = container.NewCenter(f.buildAboutButton())
	}

	content := container.NewBorder(top, f.statusBar.CanvasObject(), nil, nil, center)
	return fynetooltip.AddWindowToolTipLayer(content, f.window.Canvas())
}

func (f *Frame) buildAboutButton() fyne.CanvasObject {
	return newButtonWithTooltip("About...", theme.InfoIcon(), CommandAbout.Help(), func() {
		f.Dispatch(CommandAbout)
	})
}

func (f *Frame) buildToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.InfoIcon(), func() {
			f.Dispatch(CommandAbout)
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.CancelIcon(), func() {
			f.Dispatch(CommandExit)
		}),
	)
}

// Dispatch runs the handler bound to cmd and reports whether one existed.
// The command's help text is shown in the second status pane, except for
// Exit which leaves the frame untouched before closing it.
func (f *Frame) Dispatch(cmd Command) bool {
	handler, ok := f.handlers[cmd]
	if !ok {
		f.log.Warning(componentFrame, "no handler bound", map[string]interface{}{"command": int(cmd)})
		return false
	}
	f.log.Debug(componentFrame, "command dispatched", map[string]interface{}{
		"command": int(cmd),
		"name":    cmd.String(),
	})
	if cmd != CommandExit {
		f.statusBar.SetStatusText(cmd.Help(), 1)
	}
	handler()
	return true
}

// OnQuit closes the frame window.
func (f *Frame) OnQuit() {
	f.log.Info(componentFrame, "closing window", nil)
	f.window.Close()
}

// OnAbout shows the about dialog.
func (f *Frame) OnAbout() {
	f.showInfo(aboutTitle, AboutMessage(f.toolkitVersion(), f.osDescription()), f.window)
}

// ShowError reports err to the user in a dialog over the frame window.
func (f *Frame) ShowError(err error) {
	if err == nil {
		return
	}
	f.log.Error(componentFrame, err, nil)
	f.showError(err, f.window)
}

// AboutMessage renders the about dialog body.
func AboutMessage(toolkitVersion, osDescription string) string {
	return fmt.Sprintf(aboutTemplate, toolkitVersion, osDescription)
}
