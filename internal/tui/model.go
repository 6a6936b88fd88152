package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/franpass87/bookwidget/internal/analytics"
	"github.com/franpass87/bookwidget/internal/backend"
	"github.com/franpass87/bookwidget/internal/config"
	"github.com/franpass87/bookwidget/internal/models"
	"github.com/franpass87/bookwidget/internal/tui/components/extras"
	"github.com/franpass87/bookwidget/internal/tui/components/slotlist"
)

type SessionState int

const (
	StateWidget SessionState = iota
	StateEditDate
	StateEditCounts
)

type Focus int

const (
	FocusSlots Focus = iota
	FocusExtras
)

type DateFormModel struct {
	Date string
}

type CountsFormModel struct {
	Adults   string
	Children string
}

// Model is one booking widget instance. It owns the selection state and
// wires user input to the availability client, the pricing calculator
// and the submission client. Instances are independent; nothing here is
// shared.
type Model struct {
	cfg          config.Widget
	availability backend.AvailabilityQuerier
	submitter    backend.ReservationSubmitter
	sink         analytics.Sink

	state SessionState
	focus Focus
	keys  KeyMap
	help  help.Model

	selection models.Selection
	extras    []models.Extra

	slotList    slotlist.Model
	extrasPanel extras.Model

	// querySeq tags each availability query; a response is applied only
	// when its tag still matches, so a superseded query can never paint
	// stale slots.
	querySeq int

	submitting bool
	feedback   string
	cartURL    string

	form       *huh.Form
	dateForm   *DateFormModel
	countsForm *CountsFormModel

	quitting bool
	width    int
	height   int
}

// NewModel builds a widget bound to one product configuration. The
// analytics sink is injected so tests can substitute a recording or
// no-op sink.
func NewModel(cfg config.Widget, availability backend.AvailabilityQuerier, submitter backend.ReservationSubmitter, sink analytics.Sink) Model {
	if sink == nil {
		sink = analytics.Nop{}
	}

	items := make([]models.Extra, len(cfg.Extras))
	copy(items, cfg.Extras)

	return Model{
		cfg:          cfg,
		availability: availability,
		submitter:    submitter,
		sink:         sink,
		state:        StateWidget,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		selection:    models.NewSelection(),
		extras:       items,
		slotList:     slotlist.New(0, 0),
		extrasPanel:  extras.New(items, cfg.Currency, cfg.DecimalSep, 0, 0),
	}
}

// CartURL is the redirect target after a successful booking, set just
// before the program quits.
func (m Model) CartURL() string {
	return m.cartURL
}

// Selection exposes the current selection state.
func (m Model) Selection() models.Selection {
	return m.selection
}

// Feedback exposes the current feedback message.
func (m Model) Feedback() string {
	return m.feedback
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Date, m.keys.Counts, m.keys.Tab, m.keys.Book, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Date, m.keys.Counts, m.keys.Book},
		{m.keys.Tab, m.keys.Up, m.keys.Down, m.keys.Enter},
		{m.keys.Quit, m.keys.Help},
	}
}
