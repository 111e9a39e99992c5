package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar is a row of text panes docked at the bottom of the frame.
type StatusBar struct {
	container *fyne.Container
	panes     []*widget.Label
}

// NewStatusBar creates a status bar with the given number of panes.
// At least one pane is always created.
func NewStatusBar(panes int) *StatusBar {
	if panes < 1 {
		panes = 1
	}
	sb := &StatusBar{panes: make([]*widget.Label, panes)}

	objects := make([]fyne.CanvasObject, panes)
	for i := range sb.panes {
		sb.panes[i] = widget.NewLabel("")
		sb.panes[i].Truncation = fyne.TextTruncateEllipsis
		objects[i] = sb.panes[i]
	}

	sb.container = container.NewVBox(
		widget.NewSeparator(),
		container.NewGridWithColumns(panes, objects...),
	)
	return sb
}

// SetStatusText sets the text of a pane. Out of range panes are ignored.
func (sb *StatusBar) SetStatusText(text string, pane int) {
	if pane < 0 || pane >= len(sb.panes) {
		return
	}
	sb.panes[pane].SetText(text)
}

// StatusText returns the text of a pane, or "" if it does not exist.
func (sb *StatusBar) StatusText(pane int) string {
	if pane < 0 || pane >= len(sb.panes) {
		return ""
	}
	return sb.panes[pane].Text
}

// PaneCount returns the number of panes.
func (sb *StatusBar) PaneCount() int {
	return len(sb.panes)
}

// CanvasObject returns the container to dock at the bottom of the frame.
func (sb *StatusBar) CanvasObject() fyne.CanvasObject {
	return sb.container
}
