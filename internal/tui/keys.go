package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	connect    key.Binding
	fetch      key.Binding
	copy       key.Binding
	deceased   key.Binding
	distribute key.Binding
	journal    key.Binding
	buildInfo  key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	connect:    key.NewBinding(key.WithKeys("ctrl+o")),
	fetch:      key.NewBinding(key.WithKeys("ctrl+g")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y")),
	deceased:   key.NewBinding(key.WithKeys("ctrl+x")),
	distribute: key.NewBinding(key.WithKeys("ctrl+t")),
	journal:    key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo:  key.NewBinding(key.WithKeys("f1")),
	yes:        key.NewBinding(key.WithKeys("y", "Y")),
	no:         key.NewBinding(key.WithKeys("n", "N", "esc")),
}

// Page hotkeys stay clear of the text input editing bindings so a focused
// field keeps word deletion, cursor movement and forward delete.
const mainHotKeys = "tab: next field │ enter: run field action │ ctrl+o: connect │ ctrl+g: fetch │ ctrl+y: copy │ ctrl+r: journal │ ctrl+x: deceased │ ctrl+t: distribute │ f1: about"
