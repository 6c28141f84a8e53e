package registry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects an export serialization.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
)

// csvHeader is the column layout shared by the csv and md exports.
var csvHeader = []string{"Key", "Name", "Domain", "Style", "Status", "Primary Color"}

// Export serializes the full status-sorted joined registry. Unsupported
// formats fail with an explicit error; this is the registry's only
// caller-visible failure besides unknown-key lookups.
func Export(format Format) (string, error) {
	list := All()
	switch format {
	case FormatJSON:
		return exportJSON(list)
	case FormatCSV:
		return exportCSV(list), nil
	case FormatMarkdown:
		return exportMarkdown(list), nil
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}

func exportJSON(list []Branded) (string, error) {
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal registry: %w", err)
	}
	return string(b), nil
}

// exportCSV emits the registry as tab-separated lines. The columns are
// joined with commas and then every comma in the line is rewritten to a
// tab. That rewrite also converts commas inside field values, so the
// output is not quoted CSV; downstream build scripts parse these exact
// bytes, keep the substitution as is.
func exportCSV(list []Branded) string {
	var sb strings.Builder
	sb.WriteString(tabbed(csvHeader))
	sb.WriteString("\n")
	for _, b := range list {
		row := []string{
			b.Key,
			b.Venture.Name,
			b.Venture.Domain,
			b.Style.Name,
			string(b.Venture.Status),
			b.Style.Primary,
		}
		sb.WriteString(tabbed(row))
		sb.WriteString("\n")
	}
	return sb.String()
}

func tabbed(fields []string) string {
	return strings.ReplaceAll(strings.Join(fields, ","), ",", "\t")
}

// exportMarkdown emits a GFM table, one row per venture, with the primary
// color shown as a bullet glyph followed by its hex value.
func exportMarkdown(list []Branded) string {
	var sb strings.Builder
	sb.WriteString("| Key | Name | Domain | Style | Status | Color |\n")
	sb.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, b := range list {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | ● %s |\n",
			b.Key,
			b.Venture.Name,
			b.Venture.Domain,
			b.Style.Name,
			b.Venture.Status,
			b.Style.Primary,
		)
	}
	return sb.String()
}
