package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	left      key.Binding
	right     key.Binding
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	leaveForm key.Binding
	instagram key.Binding
	twitter   key.Binding
	facebook  key.Binding
	user      key.Binding
	page      key.Binding
	quit      key.Binding
	interrupt key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close form")),
		leaveForm: key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "type row")),
		instagram: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "instagram")),
		twitter:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "twitter")),
		facebook:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "facebook")),
		user:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "user")),
		page:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "page")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.up, k.down, k.enter},
		{k.instagram, k.twitter, k.facebook, k.user, k.page},
		{k.back, k.quit},
	}
}

// rowHelp returns the bindings worth showing for the focused row.
func (k keyMap) rowHelp(row focusRow, showTypes bool) []key.Binding {
	switch row {
	case formRow:
		submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit"))
		return []key.Binding{submit, k.leaveForm, k.back, k.interrupt}
	case typeRow:
		return []key.Binding{k.left, k.right, k.up, k.enter, k.user, k.page, k.quit}
	}
	if showTypes {
		return []key.Binding{k.left, k.right, k.down, k.enter, k.instagram, k.twitter, k.facebook, k.quit}
	}
	return []key.Binding{k.left, k.right, k.enter, k.instagram, k.twitter, k.facebook, k.quit}
}
