// Package registry joins the venture table to the style table and
// serializes the combined view for downstream consumers (the site
// generator, build scripts, and the brandkit CLI).
package registry

import (
	"fmt"

	"github.com/holdco/brandkit/internal/domain/styles"
	"github.com/holdco/brandkit/internal/domain/ventures"
)

// Branded is a venture joined to its referenced style.
type Branded struct {
	Key     string           `json:"key"`
	Venture ventures.Venture `json:"venture"`
	Style   styles.Style     `json:"style"`
}

// DarkBackground is the portfolio-wide dark surface color used when
// reporting venture contrast. Authored alongside the tables.
const DarkBackground = "#0F1115"

// ContrastInfo reports a venture's text contrast on the shared dark
// surface: the style's primary color as foreground over DarkBackground.
type ContrastInfo struct {
	StyleName  string `json:"styleName"`
	Ratio      string `json:"ratio"`
	Standard   string `json:"standard"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// Resolve joins a venture to its style. Unknown venture keys fail with
// ventures.ErrNotFound; the style reference is trusted (authored together
// with the venture table, verified by Verify).
func Resolve(key string) (Branded, error) {
	v, err := ventures.Get(key)
	if err != nil {
		return Branded{}, err
	}
	s, err := styles.Get(v.Style)
	if err != nil {
		return Branded{}, fmt.Errorf("venture %q: %w", key, err)
	}
	return Branded{Key: key, Venture: v, Style: s}, nil
}

// Active returns the active ventures joined to their styles, in the
// order ventures.Active produces.
func Active() []Branded {
	return join(ventures.Active())
}

// Pipeline returns the pipeline ventures joined to their styles.
func Pipeline() []Branded {
	return join(ventures.Pipeline())
}

// All returns every venture joined to its style, in ventures.All order:
// active before pipeline, names collated within each group.
func All() []Branded {
	return join(ventures.All())
}

func join(keyed []ventures.Keyed) []Branded {
	out := make([]Branded, 0, len(keyed))
	for _, kv := range keyed {
		// Missing style means a broken authored reference; surface the
		// venture with a zero style rather than dropping it silently.
		s, _ := styles.Get(kv.Style)
		out = append(out, Branded{Key: kv.Key, Venture: kv.Venture, Style: s})
	}
	return out
}

// ByDomain returns the venture whose domain field equals domain exactly,
// case-sensitively, scanning in table order.
func ByDomain(domain string) (Branded, bool) {
	for _, key := range ventures.Keys() {
		v, _ := ventures.Get(key)
		if v.Domain == domain {
			b, err := Resolve(key)
			if err != nil {
				return Branded{}, false
			}
			return b, true
		}
	}
	return Branded{}, false
}

// StatusLabel maps a venture status to its display label.
func StatusLabel(st ventures.Status) string {
	switch st {
	case ventures.StatusActive:
		return "Active"
	case ventures.StatusPipeline:
		return "In Pipeline"
	}
	return string(st)
}

// ContrastFor reports contrast data for a venture: its style's primary
// color as foreground over the shared dark background.
func ContrastFor(ventureKey string) (ContrastInfo, error) {
	b, err := Resolve(ventureKey)
	if err != nil {
		return ContrastInfo{}, err
	}
	return ContrastInfo{
		StyleName:  b.Style.Name,
		Ratio:      b.Style.ContrastRatio,
		Standard:   styles.StandardLabel,
		Foreground: b.Style.Primary,
		Background: DarkBackground,
	}, nil
}
