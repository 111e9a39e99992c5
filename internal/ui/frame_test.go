package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/myfdtd/internal/model"
)

type shownDialog struct {
	title   string
	message string
	parent  fyne.Window
}

// newTestFrame returns a frame on a headless window with the about dialog
// captured instead of rendered.
func newTestFrame(t *testing.T, cfg model.AppConfig) (*Frame, *[]shownDialog) {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(widget.NewLabel(""))

	f := NewFrame(w, cfg, nil)
	shown := &[]shownDialog{}
	f.showInfo = func(title, message string, parent fyne.Window) {
		*shown = append(*shown, shownDialog{title: title, message: message, parent: parent})
	}
	f.showError = func(err error, parent fyne.Window) {
		*shown = append(*shown, shownDialog{title: "error", message: err.Error(), parent: parent})
	}
	f.toolkitVersion = func() string { return "Fyne v2.7.2" }
	f.osDescription = func() string { return "ubuntu 24.04 x86_64" }
	return f, shown
}

func TestNewFrameStatusBar(t *testing.T) {
	f, _ := newTestFrame(t, model.DefaultAppConfig())

	sb := f.StatusBar()
	require.NotNil(t, sb)
	assert.Equal(t, 2, sb.PaneCount())
	assert.Equal(t, "Welcome to Fyne!", sb.StatusText(0))
	assert.Equal(t, "", sb.StatusText(1))
}

func TestSetupMenus(t *testing.T) {
	f, _ := newTestFrame(t, model.DefaultAppConfig())
	f.SetupMenus()

	menu := f.Window().MainMenu()
	require.NotNil(t, menu, "menu bar should be set")
	require.Len(t, menu.Items, 2)

	fileMenu, helpMenu := menu.Items[0], menu.Items[1]
	assert.Equal(t, "File", fileMenu.Label)
	assert.Equal(t, "Help", helpMenu.Label)

	require.Len(t, fileMenu.Items, 1)
	assert.Equal(t, "Exit", fileMenu.Items[0].Label)
	assert.Equal(t, CommandExit.Shortcut(), fileMenu.Items[0].Shortcut)

	require.Len(t, helpMenu.Items, 1)
	assert.Equal(t, "About", helpMenu.Items[0].Label)
	assert.Equal(t, CommandAbout.Shortcut(), helpMenu.Items[0].Shortcut)
}

func TestSetupMenusDisabled(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.MenuBar = false
	f, _ := newTestFrame(t, cfg)

	f.SetupMenus()

	assert.Nil(t, f.Window().MainMenu())
}

func TestExitMenuClosesWindow(t *testing.T) {
	f, shown := newTestFrame(t, model.DefaultAppConfig())
	f.SetupMenus()

	closed := 0
	f.Window().SetOnClosed(func() { closed++ })

	exit := f.Window().MainMenu().Items[0].Items[0]
	exit.Action()

	assert.Equal(t, 1, closed, "window should be closed exactly once")
	assert.Empty(t, *shown, "exit should not show any dialog")
	assert.Equal(t, "Welcome to Fyne!", f.StatusBar().StatusText(0))
}

func TestAboutMenuShowsDialog(t *testing.T) {
	f, shown := newTestFrame(t, model.DefaultAppConfig())
	f.SetupMenus()

	about := f.Window().MainMenu().Items[1].Items[0]
	about.Action()

	require.Len(t, *shown, 1)
	d := (*shown)[0]
	assert.Equal(t, "About Fyne minimal sample", d.title)
	assert.Equal(t,
		"Welcome to Fyne v2.7.2!\n\nThis is the minimal Fyne sample\nrunning under ubuntu 24.04 x86_64.",
		d.message)
	assert.Equal(t, f.Window(), d.parent)
	assert.Equal(t, "Show about dialog", f.StatusBar().StatusText(1))
}

func TestAboutIsIdempotent(t *testing.T) {
	f, shown := newTestFrame(t, model.DefaultAppConfig())

	for i := 0; i < 3; i++ {
		f.OnAbout()
	}

	require.Len(t, *shown, 3)
	for _, d := range *shown {
		assert.Equal(t, (*shown)[0], d)
	}
}

func TestAboutMessage(t *testing.T) {
	msg := AboutMessage("Fyne v2.7.2", "macOS 14.5 arm64")
	assert.Equal(t,
		"Welcome to Fyne v2.7.2!\n\nThis is the minimal Fyne sample\nrunning under macOS 14.5 arm64.",
		msg)
}

func TestDispatch(t *testing.T) {
	f, shown := newTestFrame(t, model.DefaultAppConfig())

	assert.True(t, f.Dispatch(CommandAbout))
	assert.Len(t, *shown, 1)

	assert.False(t, f.Dispatch(Command(42)), "unbound command should not dispatch")
	assert.Len(t, *shown, 1)
	assert.Equal(t, "Show about dialog", f.StatusBar().StatusText(1))
}

func TestDispatchExitLeavesStatus(t *testing.T) {
	f, _ := newTestFrame(t, model.DefaultAppConfig())

	closed := false
	f.Window().SetOnClosed(func() { closed = true })

	assert.True(t, f.Dispatch(CommandExit))
	assert.True(t, closed)
	assert.Equal(t, "", f.StatusBar().StatusText(1), "exit should leave the status bar untouched")
	assert.Equal(t, "Welcome to Fyne!", f.StatusBar().StatusText(0))
}

func TestBuild(t *testing.T) {
	f, _ := newTestFrame(t, model.DefaultAppConfig())
	content := f.Build()
	require.NotNil(t, content)

	cfg := model.DefaultAppConfig()
	cfg.Toolbar = true
	cfg.MenuBar = false
	f, _ = newTestFrame(t, cfg)
	assert.NotNil(t, f.Build())
}

func TestShortcutsRouteToHandlers(t *testing.T) {
	f, shown := newTestFrame(t, model.DefaultAppConfig())

	closed := false
	f.Window().SetOnClosed(func() { closed = true })

	canvas, ok := f.Window().Canvas().(fyne.Shortcutable)
	require.True(t, ok, "canvas should accept shortcuts")

	canvas.TypedShortcut(CommandAbout.Shortcut())
	require.Len(t, *shown, 1)
	assert.Equal(t, "About Fyne minimal sample", (*shown)[0].title)
	assert.False(t, closed)

	canvas.TypedShortcut(CommandExit.Shortcut())
	assert.True(t, closed)
	assert.Len(t, *shown, 1)
}

func TestToolbarActionsRouteToHandlers(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Toolbar = true
	f, shown := newTestFrame(t, cfg)

	closed := false
	f.Window().SetOnClosed(func() { closed = true })

	tb := f.buildToolbar()
	require.Len(t, tb.Items, 3)

	about, ok := tb.Items[0].(*widget.ToolbarAction)
	require.True(t, ok)
	about.OnActivated()
	require.Len(t, *shown, 1)
	assert.Equal(t, "About Fyne minimal sample", (*shown)[0].title)

	exit, ok := tb.Items[2].(*widget.ToolbarAction)
	require.True(t, ok)
	exit.OnActivated()
	assert.True(t, closed)
	assert.Len(t, *shown, 1)
}

func TestAboutButtonShowsDialog(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.MenuBar = false
	f, shown := newTestFrame(t, cfg)

	btn, ok := f.buildAboutButton().(fyne.Tappable)
	require.True(t, ok, "about button should be tappable")

	test.Tap(btn)

	require.Len(t, *shown, 1)
	assert.Equal(t, "About Fyne minimal sample", (*shown)[0].title)
	assert.Equal(t, "Show about dialog", f.StatusBar().StatusText(1))
}

func TestShowError(t *testing.T) {
	f, shown := newTestFrame(t, model.DefaultAppConfig())

	f.ShowError(nil)
	assert.Empty(t, *shown, "nil error should not show a dialog")

	f.ShowError(errors.New("parse config: unexpected EOF"))
	require.Len(t, *shown, 1)
	assert.Equal(t, "error", (*shown)[0].title)
	assert.Equal(t, "parse config: unexpected EOF", (*shown)[0].message)
	assert.Equal(t, f.Window(), (*shown)[0].parent)
}
