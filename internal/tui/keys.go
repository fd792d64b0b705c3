package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typefast/internal/game"
)

type keyMap struct {
	Quit   key.Binding
	Escape key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move")),
	}
}

// toKeys maps a terminal key message to controller key events. A message can
// carry several runes when input arrives in a burst. Pasted text is dropped.
func toKeys(msg tea.KeyMsg, km keyMap) []game.Key {
	switch {
	case key.Matches(msg, km.Escape):
		return []game.Key{{Kind: game.KeyEscape}}
	case key.Matches(msg, km.Enter):
		return []game.Key{{Kind: game.KeyEnter}}
	case key.Matches(msg, km.Up):
		return []game.Key{{Kind: game.KeyUp}}
	case key.Matches(msg, km.Down):
		return []game.Key{{Kind: game.KeyDown}}
	}
	if msg.Paste {
		return nil
	}
	switch msg.Type {
	case tea.KeySpace:
		return []game.Key{{Kind: game.KeyChar, Rune: ' '}}
	case tea.KeyRunes:
		out := make([]game.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, game.Key{Kind: game.KeyChar, Rune: r})
		}
		return out
	default:
		return []game.Key{{Kind: game.KeyOther}}
	}
}
