package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/packex/pkg/shipping"
)

var (
	limitsTitleStyle = lipgloss.NewStyle().Bold(true)
	limitsLabelStyle = lipgloss.NewStyle().Width(26)
	limitsValueStyle = lipgloss.NewStyle().Bold(true)
)

// RenderLimits renders the configured shipping limits as a small table
func RenderLimits(limits shipping.Limits, divisor float64) string {
	rows := []struct {
		label string
		value string
	}{
		{"Max weight", formatLimit(limits.MaxWeight)},
		{"Max width+height+length", formatLimit(limits.MaxDimensionSum)},
		{"Pricing divisor", formatLimit(divisor)},
	}

	var b strings.Builder
	b.WriteString(limitsTitleStyle.Render("Package Express shipping limits") + "\n\n")
	for _, row := range rows {
		b.WriteString(limitsLabelStyle.Render(row.label))
		b.WriteString(" ")
		b.WriteString(limitsValueStyle.Render(row.value))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatLimit trims trailing zeros so "50" prints as 50, not 50.00
func formatLimit(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
