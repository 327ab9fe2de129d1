// Package filter selects the visible subset of the catalog.
package filter

import (
	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/textx"
)

// Spec holds the five filter dimensions. A zero value is a wildcard.
type Spec struct {
	Category string
	Theme1   string
	Theme2   string
	Month    int
	Year     int
}

// Apply returns the entries matching every set dimension, in input order.
func (s Spec) Apply(entries []models.Entry) []models.Entry {
	out := []models.Entry{}
	for _, e := range entries {
		if s.Category != "" && e.Category != s.Category {
			continue
		}
		if s.Theme1 != "" && e.Theme1 != s.Theme1 {
			continue
		}
		if s.Theme2 != "" && e.Theme2 != s.Theme2 {
			continue
		}
		if s.Month != 0 && e.Month != s.Month {
			continue
		}
		if s.Year != 0 && e.Year != s.Year {
			continue
		}
		out = append(out, e)
	}
	return out
}

// IsZero reports whether every dimension is a wildcard.
func (s Spec) IsZero() bool {
	return s == Spec{}
}

// Themes returns the distinct non-empty theme1 and theme2 values.
func Themes(entries []models.Entry) (theme1, theme2 []string) {
	return distinct(entries, func(e models.Entry) string { return e.Theme1 }),
		distinct(entries, func(e models.Entry) string { return e.Theme2 })
}

func distinct(entries []models.Entry, field func(models.Entry) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range entries {
		v := field(e)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	textx.SortFrench(out)
	return out
}
