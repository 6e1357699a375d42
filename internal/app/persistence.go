package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/state"
)

// SaveCarouselState persists the displayed item, page size and auto-scroll
// setting. Saves are debounced by the state manager.
func (m *Model) SaveCarouselState() {
	m.StateMgr.SaveCarousel(state.CarouselState{
		FocusedItem:  m.Displayed,
		ItemsPerPage: m.Carousel.Options().ItemsPerPage,
		AutoScroll:   m.Carousel.AutoScroll().Enabled(),
	})
}

// RecordSelection stores a selection of item in the history and returns the
// command sending its notification, if any.
func (m *Model) RecordSelection(item int) tea.Cmd {
	sel := state.Selection{
		Item:       item,
		Label:      m.Source.Label(item),
		SelectedAt: time.Now(),
	}
	if err := m.StateMgr.RecordSelection(sel); err != nil {
		m.log.Error().Err(err).Int("item", item).Msg("record selection")
		m.ErrorMsg = errmsg.Format(errmsg.OpSelectionSave, err)
		return nil
	}

	if m.Source.counts == nil {
		m.Source.counts = make(map[int]int)
	}
	m.Source.counts[item]++
	m.LastSelection = &sel
	m.log.Info().Int("item", item).Str("label", sel.Label).Msg("item selected")

	if m.Notifier == nil {
		return nil
	}
	return NotifyCmd(m.Notifier, notify.Selection(sel.Label, sel.Item, m.Source.NumberOfItems(), m.notifyID))
}

// refreshCounts reloads the per-item selection counts.
func (m *Model) refreshCounts() {
	counts, err := m.StateMgr.SelectionCounts()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpSelectionsLoad, err)
		return
	}
	m.Source.counts = counts
}

// handleSourceEvents handles the callbacks the carousel made during its last
// Update.
func (m *Model) handleSourceEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.Source.drain() {
		switch e.kind {
		case eventDisplayed:
			m.Displayed = e.index
			m.SaveCarouselState()
		case eventSelected:
			cmds = append(cmds, m.RecordSelection(e.index))
		}
	}
	return tea.Batch(cmds...)
}
