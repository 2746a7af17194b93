package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HourSlider displays an adjustable daily-hours value with a visual track.
type HourSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Width     int
	IsFocused bool
}

// NewHourSlider creates a slider over the 0..24h daily range.
func NewHourSlider(label string, value float64) *HourSlider {
	return &HourSlider{
		Label: label,
		Value: value,
		Min:   0,
		Max:   24,
		Step:  0.5,
		Width: 30,
	}
}

// SetFocused marks the slider as the active control.
func (s *HourSlider) SetFocused(focused bool) *HourSlider {
	s.IsFocused = focused
	return s
}

// Increment raises the value by one step, capped at Max.
func (s *HourSlider) Increment() {
	s.Value += s.Step
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// Decrement lowers the value by one step, floored at Min.
func (s *HourSlider) Decrement() {
	s.Value -= s.Step
	if s.Value < s.Min {
		s.Value = s.Min
	}
}

// Render returns the styled slider line.
func (s *HourSlider) Render() string {
	trackStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	thumbStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	labelStyle := lipgloss.NewStyle()
	if s.IsFocused {
		labelStyle = labelStyle.Bold(true).Foreground(lipgloss.Color("212"))
	}

	position := 0
	if s.Max > s.Min {
		position = int((s.Value - s.Min) / (s.Max - s.Min) * float64(s.Width-1))
	}

	var track strings.Builder
	for i := 0; i < s.Width; i++ {
		if i == position {
			track.WriteString(thumbStyle.Render("●"))
		} else {
			track.WriteString(trackStyle.Render("─"))
		}
	}

	return fmt.Sprintf("%s [%s] %s",
		labelStyle.Render(s.Label),
		track.String(),
		labelStyle.Render(fmt.Sprintf("%.1fh/day", s.Value)))
}
