package record

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	toggleRecord key.Binding
	togglePlay   key.Binding
	toggleKeep   key.Binding
	split        key.Binding
	seekBack     key.Binding
	seekForward  key.Binding
	quit         key.Binding
}

var defaultKeymap = keymap{
	toggleRecord: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "keep on/off"),
	),
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/pause"),
	),
	toggleKeep: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "flip segment"),
	),
	split: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "split segment"),
	),
	seekBack: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "seek back"),
	),
	seekForward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "seek forward"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "save & quit"),
	),
}
