package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a life report for one output target.
type Formatter interface {
	Name() string
	Format(report *domain.LifeReport) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for an
// unknown format.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "text", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// FormatYears renders a year count with two decimals.
func FormatYears(value decimal.Decimal) string {
	return value.StringFixed(2)
}

// ConsoleFormatter renders a plain-text report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.LifeReport) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintln(&b, "================================================================")
	fmt.Fprintln(&b, "LIFETIME ACTIVITY BREAKDOWN")
	fmt.Fprintln(&b, "================================================================")
	if report.ProfileName != "" {
		fmt.Fprintf(&b, "Profile:          %s\n", report.ProfileName)
	}
	fmt.Fprintf(&b, "Current age:      %d\n", report.Age)
	fmt.Fprintf(&b, "Life expectancy:  %s years\n", report.LifeExpectancy.StringFixed(1))
	fmt.Fprintf(&b, "Years remaining:  %s\n", FormatYears(report.RemainingYears))
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "%-20s %-10s %10s %12s %12s %8s\n",
		"ACTIVITY", "KIND", "HRS/DAY", "YEARS SPENT", "YEARS AHEAD", "% LIFE")
	fmt.Fprintln(&b, strings.Repeat("-", 78))
	for _, item := range report.Items {
		fmt.Fprintf(&b, "%-20s %-10s %10s %12s %12s %7s%%\n",
			item.Name,
			item.Kind,
			item.HoursPerDay.StringFixed(1),
			FormatYears(item.YearsSpent),
			FormatYears(item.YearsProjected),
			item.PercentOfLife.StringFixed(1),
		)
	}
	return b.Bytes(), nil
}

// JSONFormatter renders the report as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.LifeReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// CSVFormatter renders one row per activity.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.LifeReport) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"activity", "kind", "hours_per_day", "years_spent", "years_projected", "percent_of_life"}); err != nil {
		return nil, err
	}
	for _, item := range report.Items {
		record := []string{
			item.Name,
			item.Kind,
			item.HoursPerDay.String(),
			item.YearsSpent.String(),
			item.YearsProjected.String(),
			item.PercentOfLife.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return b.Bytes(), w.Error()
}
