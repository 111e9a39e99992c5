package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Command identifies a frame action. Values alias the conventional stock
// identifiers used by desktop toolkits for Exit and About.
type Command int

const (
	IDExit  = 5006
	IDAbout = 5014
)

const (
	CommandExit  Command = IDExit
	CommandAbout Command = IDAbout
)

// commandInfo describes how a command is presented in menus and the status bar.
type commandInfo struct {
	label    string
	help     string
	shortcut fyne.Shortcut
}

var commandTable = map[Command]commandInfo{
	CommandExit: {
		label:    "Exit",
		help:     "Quit this program",
		shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyX, Modifier: fyne.KeyModifierAlt},
	},
	CommandAbout: {
		label:    "About",
		help:     "Show about dialog",
		shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyF1},
	},
}

func (c Command) String() string {
	if info, ok := commandTable[c]; ok {
		return info.label
	}
	return "Unknown"
}

// Help returns the one-line description shown in the status bar.
func (c Command) Help() string {
	return commandTable[c].help
}

// Shortcut returns the keyboard accelerator bound to the command, or nil.
func (c Command) Shortcut() fyne.Shortcut {
	return commandTable[c].shortcut
}
