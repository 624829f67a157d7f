package event

import tea "github.com/charmbracelet/bubbletea"

// FromKeyMsg converts a Bubble Tea key message into key events. Pasted or
// buffered input may carry several runes, which become one event each.
func FromKeyMsg(msg tea.KeyMsg) []Event {
	var mod Modifiers
	if msg.Alt {
		mod |= ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		events := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, KeyInput(Key{Code: KeyChar, Rune: r, Mod: mod}))
		}
		return events
	case tea.KeySpace:
		return []Event{KeyInput(Key{Code: KeyChar, Rune: ' ', Mod: mod})}
	case tea.KeyBackspace:
		return []Event{KeyInput(Key{Code: KeyBackspace, Mod: mod})}
	case tea.KeyEnter:
		return []Event{KeyInput(Key{Code: KeyEnter, Mod: mod})}
	case tea.KeyTab:
		return []Event{KeyInput(Key{Code: KeyTab, Mod: mod})}
	case tea.KeyEsc:
		return []Event{KeyInput(Key{Code: KeyEsc, Mod: mod})}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []Event{KeyInput(Key{Code: KeyChar, Rune: r, Mod: mod | ModControl})}
	}
	return []Event{KeyInput(Key{Code: KeyUnknown, Mod: mod})}
}
