package slotlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/franpass87/bookwidget/internal/models"
)

// SelectSlotMsg is emitted when the visitor picks a selectable slot.
type SelectSlotMsg struct {
	ID string
}

type Item struct {
	Slot        models.Slot
	Chosen      bool
	Placeholder bool // the single disabled "no slots" entry
}

func (i Item) Title() string {
	if i.Placeholder {
		return "no slots available"
	}
	title := i.Slot.Label()
	if i.Chosen {
		title = "● " + title
	} else {
		title = "○ " + title
	}
	return title
}

func (i Item) Description() string {
	if i.Placeholder {
		return "pick a different date"
	}
	if i.Slot.SoldOut {
		return "sold out"
	}
	if i.Chosen {
		return "selected"
	}
	return "press enter to select"
}

func (i Item) FilterValue() string {
	if i.Placeholder {
		return ""
	}
	return i.Slot.Time
}

// Selectable reports whether the entry reacts to enter.
func (i Item) Selectable() bool {
	return !i.Placeholder && i.Slot.Selectable()
}

type KeyMap struct {
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select slot"),
		),
	}
}

type Model struct {
	list    list.Model
	keys    KeyMap
	loading bool
	hasDate bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Slots"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}

	return Model{list: l, keys: keys}
}

// SetSlots replaces the rendered slot list wholesale, in server order.
// chosenID marks the currently selected slot, if it is still present.
func (m *Model) SetSlots(slots []models.Slot, chosenID string) {
	m.loading = false
	m.hasDate = true

	if len(slots) == 0 {
		m.list.SetItems([]list.Item{Item{Placeholder: true}})
		return
	}
	items := make([]list.Item, len(slots))
	for i, s := range slots {
		items[i] = Item{Slot: s, Chosen: s.ID == chosenID && chosenID != ""}
	}
	m.list.SetItems(items)
}

// Clear empties the list immediately, before a new query resolves, so
// slots for the previous date never linger on screen.
func (m *Model) Clear(loading bool) {
	m.list.SetItems(nil)
	m.loading = loading
	m.hasDate = loading
}

// SetChosen re-marks items after the selection changed.
func (m *Model) SetChosen(chosenID string) {
	items := m.list.Items()
	for i, it := range items {
		if item, ok := it.(Item); ok && !item.Placeholder {
			item.Chosen = item.Slot.ID == chosenID && chosenID != ""
			items[i] = item
		}
	}
	m.list.SetItems(items)
}

// Items exposes the rendered entries.
func (m Model) Items() []Item {
	items := m.list.Items()
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if item, ok := it.(Item); ok {
			out = append(out, item)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Select) {
			if i, ok := m.list.SelectedItem().(Item); ok && i.Selectable() {
				return m, func() tea.Msg { return SelectSlotMsg{ID: i.Slot.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return "\n  Loading slots..."
	}
	if !m.hasDate {
		return "\n  Pick a date to see available slots."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
