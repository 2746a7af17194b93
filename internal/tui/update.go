package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

var hourStep = decimal.NewFromFloat(0.5)

// Update handles key and resize events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
				m.recompute()
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.profile.Activities)-1 {
				m.selected++
				m.recompute()
			}

		case key.Matches(msg, m.keys.Increase):
			m.adjustSelected(hourStep)
		case key.Matches(msg, m.keys.Decrease):
			m.adjustSelected(hourStep.Neg())

		case key.Matches(msg, m.keys.Reset):
			// Reset the selected activity to its baseline hours.
			if m.selected >= 0 && m.selected < len(m.profile.Activities) {
				m.profile.Activities[m.selected].HoursPerDay = m.baseline[m.selected]
				m.recompute()
			}
		}
	}
	return m, nil
}

func (m *Model) adjustSelected(delta decimal.Decimal) {
	if m.selected < 0 || m.selected >= len(m.profile.Activities) {
		return
	}
	activity := &m.profile.Activities[m.selected]
	next := activity.HoursPerDay.Add(delta)
	next = decimal.Max(next, decimal.Zero)
	next = decimal.Min(next, decimal.NewFromInt(24))
	activity.HoursPerDay = next
	m.recompute()
}
