// Package styles holds the shared visual identity table for the venture
// portfolio: color tokens, gradients, and stored WCAG contrast data.
//
// The table is authored at compile time and never mutated. Every accessor
// is a pure read; contrast ratios are editorial values carried alongside
// the colors, not recomputed from them.
package styles

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a style key is not in the table.
var ErrNotFound = errors.New("style not found")

// Category tags a style by its role in the design system.
type Category string

const (
	CategoryPrimary   Category = "primary"
	CategorySecondary Category = "secondary"
)

// Style is one entry in the visual identity table. Colors are hex strings,
// Gradient is a CSS gradient expression consumed verbatim by the site
// generator, and RAL maps the digital primary to a physical paint code
// for printed/physical branding.
type Style struct {
	Name          string   `json:"name"`
	Primary       string   `json:"primary"`
	PrimaryLight  string   `json:"primaryLight"`
	Secondary     string   `json:"secondary"`
	Accent        string   `json:"accent"`
	Gradient      string   `json:"gradient"`
	ContrastRatio string   `json:"contrastRatio"`
	RAL           string   `json:"ral,omitempty"`
	Category      Category `json:"category"`
	Usage         string   `json:"usage"`
	Note          string   `json:"note,omitempty"`
}

// Keyed is a style record tagged with its table key.
type Keyed struct {
	Key string `json:"key"`
	Style
}

// ContrastInfo is a projection of a style's accessibility data. Ratio is
// the stored editorial value; Standard is the target it was audited
// against.
type ContrastInfo struct {
	StyleName string `json:"styleName"`
	Ratio     string `json:"ratio"`
	Standard  string `json:"standard"`
	TextColor string `json:"textColor"`
}

// StandardLabel is the accessibility target all stored ratios refer to.
const StandardLabel = "WCAG AA"

// Get returns the style for key. Unknown keys return ErrNotFound.
func Get(key string) (Style, error) {
	s, ok := table[key]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return s, nil
}

// Keys returns every style key in table order.
func Keys() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Primary returns all primary-category styles in table order.
func Primary() []Keyed {
	return byCategory(CategoryPrimary)
}

// Secondary returns all secondary-category styles in table order.
func Secondary() []Keyed {
	return byCategory(CategorySecondary)
}

func byCategory(c Category) []Keyed {
	var out []Keyed
	for _, key := range order {
		if s := table[key]; s.Category == c {
			out = append(out, Keyed{Key: key, Style: s})
		}
	}
	return out
}

// ByUsage returns the first style whose usage text contains substr,
// case-insensitively, scanning in table order.
func ByUsage(substr string) (Keyed, bool) {
	needle := strings.ToLower(substr)
	for _, key := range order {
		s := table[key]
		if strings.Contains(strings.ToLower(s.Usage), needle) {
			return Keyed{Key: key, Style: s}, true
		}
	}
	return Keyed{}, false
}

// ContrastFor projects the stored contrast data for a style. The accent
// color is reported as the text color, matching how the site generator
// places accent text over the primary surface.
func ContrastFor(key string) (ContrastInfo, error) {
	s, err := Get(key)
	if err != nil {
		return ContrastInfo{}, err
	}
	return ContrastInfo{
		StyleName: s.Name,
		Ratio:     s.ContrastRatio,
		Standard:  StandardLabel,
		TextColor: s.Accent,
	}, nil
}
