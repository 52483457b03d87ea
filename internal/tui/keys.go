package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit    key.Binding
	tab       key.Binding
	backtab   key.Binding
	copy      key.Binding
	buildInfo key.Binding
	quit      key.Binding
}

var keys = keyMap{
	submit:    key.NewBinding(key.WithKeys("enter")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}
