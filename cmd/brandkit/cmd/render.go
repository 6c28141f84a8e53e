package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/holdco/brandkit/internal/domain/registry"
	"github.com/holdco/brandkit/internal/domain/styles"
	"github.com/holdco/brandkit/internal/domain/ventures"
)

// Shared lipgloss styles for terminal output.
var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D8C"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A1A1AA")).Width(12)
	activeBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")).Bold(true)
	pipeBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C2B280"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// swatch renders a colored bullet for a hex value, followed by the hex
// string so the value survives non-color terminals and piped output.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●") + " " + hex
}

// cell pads a raw value to width before styling. Padding after Render
// would count ANSI escape bytes toward the column width and misalign
// rows on color terminals.
func cell(style lipgloss.Style, value string, width int) string {
	return style.Render(fmt.Sprintf("%-*s", width, value))
}

func statusBadge(b registry.Branded) string {
	label := registry.StatusLabel(b.Venture.Status)
	if b.Venture.Status == ventures.StatusActive {
		return activeBadge.Render(label)
	}
	return pipeBadge.Render(label)
}

// formatVentureRows renders one line per joined venture.
func formatVentureRows(list []registry.Branded) string {
	var sb strings.Builder
	for _, b := range list {
		fmt.Fprintf(&sb, "%s  %-22s %s %-20s %-10s %s\n",
			swatch(b.Style.Primary),
			b.Venture.Name,
			cell(keyStyle, b.Key, 12),
			b.Venture.Domain,
			b.Style.Name,
			statusBadge(b),
		)
	}
	return sb.String()
}

// formatStyleRows renders one line per style with its three color roles.
func formatStyleRows(list []styles.Keyed) string {
	var sb strings.Builder
	for _, s := range list {
		fmt.Fprintf(&sb, "%-14s %s %s %s %s  %s\n",
			s.Name,
			cell(keyStyle, s.Key, 12),
			swatch(s.Primary),
			swatch(s.Secondary),
			swatch(s.Accent),
			keyStyle.Render(string(s.Category)),
		)
	}
	return sb.String()
}

// formatVentureCard renders the full joined detail for one venture.
func formatVentureCard(b registry.Branded) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(b.Venture.Name) + "  " + statusBadge(b) + "\n")
	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label) + value + "\n")
	}
	row("Key", b.Key)
	row("Domain", b.Venture.Domain)
	row("Style", fmt.Sprintf("%s (%s)", b.Style.Name, b.Venture.Style))
	row("Primary", swatch(b.Style.Primary))
	row("Light", swatch(b.Style.PrimaryLight))
	row("Secondary", swatch(b.Style.Secondary))
	row("Accent", swatch(b.Style.Accent))
	row("Gradient", b.Style.Gradient)
	row("Contrast", b.Style.ContrastRatio+" ("+styles.StandardLabel+")")
	if b.Style.RAL != "" {
		row("RAL", b.Style.RAL)
	}
	row("Logo", b.Venture.Logo.Letter+" ("+string(b.Venture.Logo.Case)+")")
	row("Heading", b.Venture.Fonts.Heading)
	row("Body", b.Venture.Fonts.Body)
	row("About", b.Venture.Description)
	return cardStyle.Render(sb.String()) + "\n"
}
