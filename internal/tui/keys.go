package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-comp/internal/nav"
)

// keyMap описывает привязки клавиш навигатора
type keyMap struct {
	down     key.Binding
	up       key.Binding
	pageDown key.Binding
	pageUp   key.Binding
	home     key.Binding
	end      key.Binding
	toggle   key.Binding
	play     key.Binding
	quit     key.Binding
	mode     key.Binding
	scope    key.Binding
	video    key.Binding
	help     key.Binding
	force    key.Binding
	confirm  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		pageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		end:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		play:     key.NewBinding(key.WithKeys("x", "enter"), key.WithHelp("x/enter", "play")),
		quit:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		mode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		scope:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/selected")),
		video:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "video")),
		help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		force:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
		confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.play, k.toggle, k.mode, k.scope, k.video, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.pageUp, k.pageDown, k.home, k.end},
		{k.toggle, k.play, k.mode, k.scope, k.video},
		{k.help, k.quit, k.force},
	}
}

// eventFor переводит нажатие клавиши в событие навигатора
func (k keyMap) eventFor(msg tea.KeyMsg) (nav.Event, bool) {
	switch {
	case key.Matches(msg, k.down):
		return nav.MoveDown, true
	case key.Matches(msg, k.up):
		return nav.MoveUp, true
	case key.Matches(msg, k.pageDown):
		return nav.PageDown, true
	case key.Matches(msg, k.pageUp):
		return nav.PageUp, true
	case key.Matches(msg, k.home):
		return nav.Home, true
	case key.Matches(msg, k.end):
		return nav.End, true
	case key.Matches(msg, k.toggle):
		return nav.ToggleSelect, true
	case key.Matches(msg, k.play):
		return nav.PlayCurrent, true
	case key.Matches(msg, k.quit):
		return nav.Quit, true
	}
	return 0, false
}
