package registry

import (
	"errors"
	"fmt"

	"github.com/holdco/brandkit/internal/domain/styles"
	"github.com/holdco/brandkit/internal/domain/ventures"
)

// Verify checks the logical invariants the tables are authored under:
// every venture's style reference resolves, every style carries a known
// category, and every venture carries a known status. Returns nil when
// the tables are consistent, otherwise an error aggregating every
// violation found.
func Verify() error {
	return verify(ventures.Keys(), ventures.Get, styles.Keys(), styles.Get)
}

// verify runs the invariant checks against injected lookups so tests can
// drive the failure paths with broken fixture tables.
func verify(
	ventureKeys []string,
	ventureByKey func(string) (ventures.Venture, error),
	styleKeys []string,
	styleByKey func(string) (styles.Style, error),
) error {
	var errs []error

	for _, key := range ventureKeys {
		v, err := ventureByKey(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := styleByKey(v.Style); err != nil {
			errs = append(errs, fmt.Errorf("venture %q references unknown style %q", key, v.Style))
		}
		switch v.Status {
		case ventures.StatusActive, ventures.StatusPipeline:
		default:
			errs = append(errs, fmt.Errorf("venture %q has unknown status %q", key, v.Status))
		}
	}

	for _, key := range styleKeys {
		s, err := styleByKey(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		switch s.Category {
		case styles.CategoryPrimary, styles.CategorySecondary:
		default:
			errs = append(errs, fmt.Errorf("style %q has unknown category %q", key, s.Category))
		}
	}

	return errors.Join(errs...)
}
