package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case helpbindings.CloseMsg:
		m.HelpVisible = false
		return m, nil

	case StatusTickMsg:
		return m, StatusTickCmd()

	case StderrMsg:
		m.Notice = msg.Line
		return m, WatchStderr(m.Stderr)

	case NotifiedMsg:
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Msg("desktop notification")
			return m, nil
		}
		m.notifyID = msg.ID
		return m, nil
	}

	// Carousel timers and internal messages
	return m.updateCarousel(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	panelHeight := layout.PanelHeight(m.Height, layout.DefaultChrome())
	m.Carousel.SetSize(layout.StripSize(m.Width, panelHeight))
	m.Help.SetSize(m.Width, m.Height)
	return m, nil
}

// keyContext returns the binding context of the region receiving keys.
func (m Model) keyContext() string {
	switch {
	case m.HelpVisible:
		return keymap.ContextHelp
	case m.Focus == FocusCarousel:
		return keymap.ContextCarousel
	default:
		return keymap.ContextButtons
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.HelpVisible {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	action := m.Keys.Resolve(m.keyContext(), msg.String())
	switch action {
	case keymap.ActionMoveLeft, keymap.ActionMoveRight, keymap.ActionSelect:
		return m.updateCarousel(msg)

	case keymap.ActionPrevButton:
		m.Buttons.Move(-1)
		return m, nil

	case keymap.ActionNextButton:
		m.Buttons.Move(1)
		return m, nil

	case keymap.ActionPress:
		return m.runAction(m.Buttons.Action())

	case keymap.ActionSwitchFocus:
		target := FocusCarousel
		if m.Focus == FocusCarousel {
			target = FocusButtons
		}
		cmd := m.setFocus(target)
		return m, cmd

	case keymap.ActionFocusUp:
		cmd := m.setFocus(FocusCarousel)
		return m, cmd

	case keymap.ActionFocusDown:
		cmd := m.setFocus(FocusButtons)
		return m, cmd

	case keymap.ActionHelp:
		m.HelpVisible = true
		m.Help.SetContexts([]string{
			keymap.ContextGlobal,
			keymap.ContextCarousel,
			keymap.ContextButtons,
			keymap.ContextHelp,
		})
		return m, nil
	}

	return m.runAction(action)
}

// runAction performs an action shared by the keyboard and the buttons.
func (m Model) runAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionQuit:
		m.SaveCarouselState()
		return m, tea.Quit

	case keymap.ActionToggleAutoScroll:
		cmd := m.Carousel.SetAutoScroll(!m.Carousel.AutoScroll().Enabled())
		m.SaveCarouselState()
		return m, cmd

	case keymap.ActionReload:
		return m.reload()

	case keymap.ActionMorePerPage:
		return m.setItemsPerPage(m.Carousel.Options().ItemsPerPage + 1)

	case keymap.ActionFewerPerPage:
		return m.setItemsPerPage(m.Carousel.Options().ItemsPerPage - 1)
	}
	return m, nil
}

// setFocus moves keyboard focus between the strip and the buttons. The strip
// pauses auto-scroll while it owns focus.
func (m *Model) setFocus(target FocusTarget) tea.Cmd {
	if m.Focus == target {
		return nil
	}
	m.Focus = target
	if target == FocusCarousel {
		return m.Carousel.Focus()
	}
	return m.Carousel.Blur()
}

// reload re-reads the items, keeping the displayed item in view.
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.refreshCounts()
	m.Carousel.SetInitialItem(m.Displayed)
	cmd, err := m.Carousel.Reload()
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpCarouselReload, err)
		return m, cmd
	}
	m.ErrorMsg = ""
	m.log.Info().Int("items", m.Source.NumberOfItems()).Msg("carousel reloaded")
	return m, cmd
}

// setItemsPerPage changes the page size. Both buffers must be filled, so the
// page can hold at most half the items.
func (m Model) setItemsPerPage(n int) (tea.Model, tea.Cmd) {
	if n < 1 {
		return m, nil
	}
	count := m.Source.NumberOfItems()
	if n > maxPerPage(count) {
		err := fmt.Errorf("%w: %d per page needs %d items, have %d",
			carousel.ErrTooFewItems, n, 2*n, count)
		m.ErrorMsg = errmsg.Format(errmsg.OpCarouselOptions, err)
		return m, nil
	}

	opts := m.Carousel.Options()
	opts.ItemsPerPage = n
	opts.LayoutDelegate = stripLayout{cfg: m.Config, perPage: n}
	m.Carousel.SetInitialItem(m.Displayed)
	cmd, err := m.Carousel.SetOptions(opts)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpCarouselOptions, err)
		return m, cmd
	}

	m.ErrorMsg = ""
	m.SaveCarouselState()
	m.log.Info().Int("per_page", n).Msg("page size changed")
	return m, cmd
}

// handleMouse routes presses on the button row to the buttons and everything
// else to the strip, in strip-local coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.HelpVisible {
		return m, nil
	}

	panelHeight := layout.PanelHeight(m.Height, layout.DefaultChrome())
	stripTop := ui.HeaderHeight + 1
	buttonsTop := ui.HeaderHeight + panelHeight
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if press && msg.Y >= buttonsTop && msg.Y < buttonsTop+ui.ButtonRowHeight {
		i := m.Buttons.At(msg.X, m.Width, m.Carousel.AutoScroll().Enabled())
		if i < 0 {
			return m, nil
		}
		m.Buttons.selected = i
		focusCmd := m.setFocus(FocusButtons)
		model, cmd := m.runAction(m.Buttons.Action())
		return model, tea.Batch(focusCmd, cmd)
	}

	var focusCmd tea.Cmd
	if press && msg.Y >= stripTop && msg.Y < stripTop+panelHeight-ui.BorderHeight {
		focusCmd = m.setFocus(FocusCarousel)
	}

	local := msg
	local.X -= ui.BorderWidth / 2
	local.Y -= stripTop
	model, cmd := m.updateCarousel(local)
	return model, tea.Batch(focusCmd, cmd)
}

// updateCarousel forwards msg to the strip and handles the callbacks it made.
func (m Model) updateCarousel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	events := m.handleSourceEvents()
	return m, tea.Batch(cmd, events)
}
