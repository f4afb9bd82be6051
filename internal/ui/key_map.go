package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	toggle  key.Binding
	next    key.Binding
	prev    key.Binding
	seekFwd key.Binding
	seekBck key.Binding
	volUp   key.Binding
	volDown key.Binding
	mute    key.Binding
	like    key.Binding
	liked   key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		next:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		prev:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		seekFwd: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "seek +5s")),
		seekBck: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "seek -5s")),
		volUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		volDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),
		mute:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		like:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like/unlike")),
		liked:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "liked songs")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.toggle, k.like, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.toggle, k.next, k.prev, k.seekFwd, k.seekBck},
		{k.volUp, k.volDown, k.mute},
		{k.like, k.liked, k.quit},
	}
}
