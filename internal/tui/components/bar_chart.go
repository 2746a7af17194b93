package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarChart renders a horizontal bar chart of labeled values.
type BarChart struct {
	Title    string
	Labels   []string
	Values   []float64
	Unit     string
	Width    int
	Selected int
	BarColor lipgloss.Color
}

// NewBarChart creates a chart with sensible defaults.
func NewBarChart(title string) *BarChart {
	return &BarChart{
		Title:    title,
		Width:    40,
		Selected: -1,
		BarColor: lipgloss.Color("45"),
	}
}

// AddBar appends one labeled value.
func (c *BarChart) AddBar(label string, value float64) *BarChart {
	c.Labels = append(c.Labels, label)
	c.Values = append(c.Values, value)
	return c
}

// WithSelected highlights one bar.
func (c *BarChart) WithSelected(index int) *BarChart {
	c.Selected = index
	return c
}

// WithUnit sets the value suffix.
func (c *BarChart) WithUnit(unit string) *BarChart {
	c.Unit = unit
	return c
}

// Render returns the styled chart.
func (c *BarChart) Render() string {
	if len(c.Values) == 0 {
		return "no data"
	}

	max := c.Values[0]
	for _, v := range c.Values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		max = 1
	}

	labelWidth := 0
	for _, label := range c.Labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(c.BarColor)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(c.Title))
		b.WriteString("\n")
	}
	for i, value := range c.Values {
		filled := int(value / max * float64(c.Width))
		if filled < 1 && value > 0 {
			filled = 1
		}
		bar := strings.Repeat("█", filled)

		style := barStyle
		if i == c.Selected {
			style = selectedStyle
		}
		b.WriteString(fmt.Sprintf("%-*s %s %.1f%s\n",
			labelWidth, c.Labels[i], style.Render(bar), value, c.Unit))
	}
	return b.String()
}
