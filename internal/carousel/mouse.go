package carousel

import tea "github.com/charmbracelet/bubbletea"

// handleMouse turns a left-button press/drag/release into a gesture. A press
// reports drag-began to the focus controller and pauses auto-advance; motion
// moves focus one item at a time as the pointer crosses cell boundaries;
// release ends the gesture and snaps the offset to the focused page. A press
// and release without motion is a click.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Y < 0 || msg.Y >= m.StripHeight() {
			return nil
		}
		m.drag = dragState{active: true, startX: msg.X}
		m.focus.BeginDrag()
		m.auto.Stop()
		m.log.Debug().Int("initial", m.focus.Initial()).Msg("drag began")
		return nil

	case tea.MouseActionMotion:
		if !m.drag.active {
			return nil
		}
		total := m.geom.layout.TotalItemWidth()
		if total <= 0 {
			return nil
		}
		// Dragging content left reveals higher indices
		steps := -(msg.X - m.drag.startX) / total
		if steps == m.drag.applied {
			return nil
		}
		delta := 1
		if steps < m.drag.applied {
			delta = -1
		}
		ok, cmd := m.moveFocus(delta)
		if ok {
			m.drag.applied += delta
		}
		return cmd

	case tea.MouseActionRelease:
		if !m.drag.active {
			return nil
		}
		clicked := m.drag.applied == 0 && msg.X == m.drag.startX
		m.endDrag()
		resume := m.resumeAutoScroll()
		if clicked {
			return tea.Batch(resume, m.click(msg.X))
		}
		snap := m.SetContentOffset(m.geom.targetContentOffset(m.offset.Value(), m.focusedCell), true)
		return tea.Batch(resume, snap)
	}
	return nil
}

// click focuses the cell under column x, or selects it if already focused.
func (m *Model) click(x int) tea.Cmd {
	v, ok := m.geom.itemAt(x, m.offset.Value())
	if !ok {
		return nil
	}
	if v == m.focusedCell {
		m.selectItem(v)
		return nil
	}
	_, cmd := m.moveFocus(v - m.focusedCell)
	return cmd
}

// resumeAutoScroll restarts auto-advance after a gesture unless the strip
// owns focus.
func (m *Model) resumeAutoScroll() tea.Cmd {
	if m.IsFocused() {
		return nil
	}
	return m.auto.Start()
}

func (m *Model) endDrag() {
	m.drag = dragState{}
	m.focus.EndDrag()
}
