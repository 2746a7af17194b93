package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MetricCard displays a single labeled value in a bordered box.
type MetricCard struct {
	Label string
	Value string
	Width int
}

// NewMetricCard creates a card with the default width.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: 24}
}

// WithWidth sets the card width.
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled card.
func (m *MetricCard) Render() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle := lipgloss.NewStyle().Bold(true)

	content := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Width(m.Width).
		Padding(0, 1).
		Render(content)
}
