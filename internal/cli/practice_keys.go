package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"selftalk/internal/locale"
)

// planKeyMap holds the key bindings active on the plan step.
type planKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Digits   key.Binding
	More     key.Binding
	Less     key.Binding
	Clear    key.Binding
	Reminder key.Binding
	Expand   key.Binding
	Record   key.Binding
	Stop     key.Binding
	Save     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func newPlanKeyMap(cp locale.Copy) planKeyMap {
	return planKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", cp.Done)),
		Digits:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", cp.Repetitions)),
		More:     key.NewBinding(key.WithKeys("+")),
		Less:     key.NewBinding(key.WithKeys("-")),
		Clear:    key.NewBinding(key.WithKeys("backspace")),
		Reminder: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", cp.ReminderLabel)),
		Expand:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", cp.Expand)),
		Record:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", cp.RecorderStart)),
		Stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", cp.RecorderStop)),
		Save:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", cp.RecorderSave)),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "")),
	}
}

// helpLine renders the bottom key hint bar from the bindings that
// carry help text.
func (k planKeyMap) helpLine() string {
	bindings := []key.Binding{k.Up, k.Toggle, k.Digits, k.Reminder, k.Expand, k.Record, k.Stop, k.Save, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if h.Desc == "" {
			parts = append(parts, h.Key)
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
