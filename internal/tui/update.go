package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/franpass87/bookwidget/internal/analytics"
	"github.com/franpass87/bookwidget/internal/backend"
	"github.com/franpass87/bookwidget/internal/models"
	"github.com/franpass87/bookwidget/internal/pricing"
	"github.com/franpass87/bookwidget/internal/tui/components/extras"
	"github.com/franpass87/bookwidget/internal/tui/components/slotlist"
)

// slotsLoadedMsg carries an availability response together with the
// sequence number of the query that produced it.
type slotsLoadedMsg struct {
	seq   int
	slots []models.Slot
}

// submitFinishedMsg carries the outcome of a reservation attempt.
type submitFinishedMsg struct {
	result models.SubmissionResult
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Modal form states delegate everything to the form first.
	if m.state == StateEditDate || m.state == StateEditCounts {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateWidget
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if m.state == StateEditDate {
				cmds = append(cmds, m.applyDate())
			} else {
				m.applyCounts()
			}
			m.state = StateWidget
		case huh.StateAborted:
			m.state = StateWidget
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		panelW := msg.Width/2 - 2
		panelH := msg.Height - 10
		m.slotList.SetSize(panelW, panelH)
		m.extrasPanel.SetSize(panelW, panelH)
		return m, nil

	case slotsLoadedMsg:
		// Stale-response suppression: a date change issued a newer query,
		// so this response must not touch the UI.
		if msg.seq != m.querySeq {
			return m, nil
		}
		m.slotList.SetSlots(msg.slots, m.selection.SlotID)
		return m, nil

	case submitFinishedMsg:
		m.submitting = false
		if msg.result.OK {
			if m.cfg.Analytics {
				total := pricing.Total(m.selection, m.extras, m.cfg)
				m.sink.Push(analytics.BeginCheckout(total, m.cfg.Currency))
			}
			m.cartURL = msg.result.CartURL
			m.quitting = true
			return m, tea.Quit
		}
		m.feedback = msg.result.Message
		return m, nil

	case slotlist.SelectSlotMsg:
		m.selection.SlotID = msg.ID
		m.slotList.SetChosen(msg.ID)
		return m, nil

	case extras.ToggleExtraMsg:
		selected := m.selection.ToggleExtra(msg.ID)
		for i := range m.extras {
			if m.extras[i].ID == msg.ID {
				m.extras[i].Selected = selected
				if m.cfg.Analytics {
					m.sink.Push(analytics.ExtraSelected(m.extras[i], selected))
				}
			}
		}
		m.extrasPanel.SetExtras(m.extras)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			if m.focus == FocusSlots {
				m.focus = FocusExtras
			} else {
				m.focus = FocusSlots
			}
			return m, nil
		case key.Matches(msg, m.keys.Date):
			m.dateForm = &DateFormModel{Date: m.selection.Date}
			m.form = newDateForm(m.dateForm)
			m.state = StateEditDate
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Counts):
			m.countsForm = &CountsFormModel{
				Adults:   strconv.Itoa(m.selection.Adults),
				Children: strconv.Itoa(m.selection.Children),
			}
			m.form = newCountsForm(m.countsForm)
			m.state = StateEditCounts
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Book):
			return m.submit()
		}
	}

	// Everything else goes to the focused panel.
	var cmd tea.Cmd
	if m.focus == FocusSlots {
		m.slotList, cmd = m.slotList.Update(msg)
	} else {
		m.extrasPanel, cmd = m.extrasPanel.Update(msg)
	}
	return m, cmd
}

// applyDate records the new date, invalidates the slot choice, clears
// the rendered list immediately and issues the tagged query.
func (m *Model) applyDate() tea.Cmd {
	date := strings.TrimSpace(m.dateForm.Date)
	m.selection.SetDate(date)
	m.querySeq++

	if date == "" {
		m.slotList.Clear(false)
		return nil
	}
	m.slotList.Clear(true)

	seq := m.querySeq
	productID := m.cfg.ProductID
	q := m.availability
	return func() tea.Msg {
		return slotsLoadedMsg{seq: seq, slots: q.QuerySlots(context.Background(), productID, date)}
	}
}

// applyCounts parses the participant inputs; anything unparseable or
// negative counts as zero.
func (m *Model) applyCounts() {
	m.selection.Adults = parseCount(m.countsForm.Adults)
	m.selection.Children = parseCount(m.countsForm.Children)
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// submit validates the snapshot locally and, only if it passes, hands it
// to the submission client. Repeat presses while a request is in flight
// are ignored.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.feedback = ""

	res := m.reservation()
	if err := backend.ValidateReservation(res); err != nil {
		m.feedback = err.Error()
		return m, nil
	}

	m.submitting = true
	sub := m.submitter
	return m, func() tea.Msg {
		return submitFinishedMsg{result: sub.SubmitReservation(context.Background(), res)}
	}
}

// reservation snapshots the current selection, denormalizing the chosen
// extras so the backend gets names and prices inline.
func (m Model) reservation() models.Reservation {
	sel := m.selection.Snapshot()
	res := models.Reservation{
		ProductID:    m.cfg.ProductID,
		OccurrenceID: sel.SlotID,
		Adults:       sel.Adults,
		Children:     sel.Children,
	}
	for _, e := range m.extras {
		if sel.ExtraIDs[e.ID] {
			res.Extras = append(res.Extras, models.ReservationExtra{Name: e.Name, Price: e.Price})
		}
	}
	return res
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := time.Parse("2006-01-02", s)
	return err
}
