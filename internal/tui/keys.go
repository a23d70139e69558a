package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Submit   key.Binding
	Currency key.Binding
	NewQuote key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fetch")),
		Currency: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "currency")),
		NewQuote: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new quote")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Submit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextTab, k.PrevTab, k.Submit, k.Currency, k.Quit}}
}
