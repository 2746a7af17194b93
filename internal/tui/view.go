package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifeviz/lifeviz/internal/tui/components"
)

// View renders the explorer: metric cards, the lifetime bar chart, the hour
// slider for the selected activity, and the live trend panel.
func (m Model) View() string {
	if m.report == nil {
		return AppStyle.Render("loading...")
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Life Visualizer"))
	if m.profile.Name != "" {
		b.WriteString(SubtitleStyle.Render("  —  " + m.profile.Name))
	}
	b.WriteString("\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewMetricCard("Current age", fmt.Sprintf("%d", m.report.Age)).Render(),
		" ",
		components.NewMetricCard("Life expectancy", m.report.LifeExpectancy.StringFixed(1)+" yrs").Render(),
		" ",
		components.NewMetricCard("Years remaining", m.report.RemainingYears.StringFixed(1)).Render(),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	chart := components.NewBarChart("Lifetime years per activity").
		WithUnit(" yrs").
		WithSelected(m.selected)
	for _, item := range m.report.Items {
		total := item.YearsSpent.Add(item.YearsProjected)
		chart.AddBar(item.Name, total.InexactFloat64())
	}
	b.WriteString(PanelStyle.Render(chart.Render()))
	b.WriteString("\n\n")

	if m.selected >= 0 && m.selected < len(m.profile.Activities) {
		activity := m.profile.Activities[m.selected]
		slider := components.NewHourSlider(activity.Name, activity.HoursPerDay.InexactFloat64()).
			SetFocused(true)
		b.WriteString(slider.Render())
		b.WriteString("\n")
	}

	if m.trend != nil {
		b.WriteString("\n")
		b.WriteString(m.renderTrend())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return AppStyle.Render(b.String())
}

func (m Model) renderTrend() string {
	var b strings.Builder

	effect := m.trend.CompoundEffect
	style := PositiveStyle
	sign := "+"
	if effect.IsNegative() {
		style = NegativeStyle
		sign = ""
	}
	b.WriteString(fmt.Sprintf("Net effect over remaining years: %s\n",
		style.Render(sign+effect.StringFixed(2)+" yrs")))
	b.WriteString(fmt.Sprintf("Compounding benefit: x%s (health x%s, skill x%s)\n",
		m.trend.CompoundingFactors.TotalBenefit.StringFixed(2),
		m.trend.CompoundingFactors.HealthMultiplier.StringFixed(2),
		m.trend.CompoundingFactors.SkillMultiplier.StringFixed(2)))

	for _, rec := range m.trend.Recommendations {
		b.WriteString(SubtitleStyle.Render("• "+rec) + "\n")
	}
	return PanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
