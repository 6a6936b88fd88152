package extras

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/franpass87/bookwidget/internal/models"
)

// ToggleExtraMsg is emitted when the visitor flips an extra's checkbox.
type ToggleExtraMsg struct {
	ID string
}

type Item struct {
	Extra      models.Extra
	Currency   string
	DecimalSep string
}

func (i Item) Title() string {
	box := "[ ] "
	if i.Extra.Selected {
		box = "[x] "
	}
	return box + i.Extra.Name
}

func (i Item) Description() string {
	return i.Extra.Price.Format(i.Currency, i.DecimalSep)
}

func (i Item) FilterValue() string { return i.Extra.Name }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle extra"),
		),
	}
}

type Model struct {
	list       list.Model
	keys       KeyMap
	currency   string
	decimalSep string
}

func New(items []models.Extra, currency, decimalSep string, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Extras"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	m := Model{list: l, keys: keys, currency: currency, decimalSep: decimalSep}
	m.SetExtras(items)
	return m
}

// SetExtras refreshes the checkbox states. The set itself is fixed per
// widget; only the selected flags change.
func (m *Model) SetExtras(items []models.Extra) {
	listItems := make([]list.Item, len(items))
	for i, e := range items {
		listItems[i] = Item{Extra: e, Currency: m.currency, DecimalSep: m.decimalSep}
	}
	m.list.SetItems(listItems)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Toggle) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleExtraMsg{ID: i.Extra.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No extras for this product."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
