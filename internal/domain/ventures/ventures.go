// Package ventures holds the brand entity table for the umbrella
// organization: one record per venture, each referencing a shared style
// key from the styles package.
//
// The table is split into the "Top-3" (status active, currently built and
// deployed) and the "Second-7" (status pipeline, future candidates).
// Like the style table it is authored at compile time and never mutated.
package ventures

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNotFound is returned when a venture key is not in the table.
var ErrNotFound = errors.New("venture not found")

// Status tags a venture as currently live or still in the pipeline.
type Status string

const (
	StatusActive   Status = "active"
	StatusPipeline Status = "pipeline"
)

// LetterCase positions a logo initial.
type LetterCase string

const (
	CaseUpper LetterCase = "uppercase"
	CaseLower LetterCase = "lowercase"
)

// Logo describes the generated lettermark: a single initial and whether
// the wordmark keeps it upper- or lowercase.
type Logo struct {
	Letter string     `json:"letter"`
	Case   LetterCase `json:"case"`
}

// Typography names the heading and body fonts. Free text, resolved by
// the site generator against its own font registry.
type Typography struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Venture is one brand entity. Style references a key in the styles
// package; that reference is authored alongside the table and checked by
// `brandkit check` rather than at lookup time.
type Venture struct {
	Name        string     `json:"name"`
	Domain      string     `json:"domain"`
	Style       string     `json:"style"`
	Logo        Logo       `json:"logo"`
	Fonts       Typography `json:"fonts"`
	Status      Status     `json:"status"`
	Description string     `json:"description"`
}

// Keyed is a venture record tagged with its table key.
type Keyed struct {
	Key string `json:"key"`
	Venture
}

// nameCollator orders display names the way a site index would: letters
// compare at primary strength, so case never splits the alphabet.
var nameCollator = collate.New(language.Und, collate.Loose)

// Get returns the venture for key. Unknown keys return ErrNotFound.
func Get(key string) (Venture, error) {
	v, ok := table[key]
	if !ok {
		return Venture{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return v, nil
}

// Keys returns every venture key in table order.
func Keys() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// IsValidKey reports whether s is one of the declared venture keys.
// It is the membership check behind external inputs such as the build
// tool's venture selector.
func IsValidKey(s string) bool {
	_, ok := table[s]
	return ok
}

// Active returns the active ventures in table order.
func Active() []Keyed {
	return byStatus(StatusActive)
}

// Pipeline returns the pipeline ventures in table order.
func Pipeline() []Keyed {
	return byStatus(StatusPipeline)
}

func byStatus(st Status) []Keyed {
	var out []Keyed
	for _, key := range order {
		if v := table[key]; v.Status == st {
			out = append(out, Keyed{Key: key, Venture: v})
		}
	}
	return out
}

// All returns every venture, active entries before pipeline entries, each
// status group ordered by display name under locale-aware collation.
func All() []Keyed {
	out := make([]Keyed, 0, len(order))
	for _, key := range order {
		out = append(out, Keyed{Key: key, Venture: table[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Status != out[j].Status {
			return out[i].Status == StatusActive
		}
		return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
