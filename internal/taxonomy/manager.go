// Package taxonomy manages the two controlled vocabularies entries refer
// to: the year set and the category universe.
//
// The category universe is derived on every read as
// base ∪ extras ∪ categories referenced by entries, so a category stays
// valid while it is in use even after it leaves the extra set.
//
// Add is a no-op for values already present. Rename always cascades to
// the entries referencing the old value and does not check whether the
// new value already exists. Delete is refused while any entry references
// the value. Blank input (year 0, category empty after trimming) is
// ignored by every mutation.
package taxonomy

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/state"
	"github.com/dmitrijs2005/grandboard/internal/textx"
)

type Manager struct {
	state  *state.Store
	logger logging.Logger
}

func NewManager(st *state.Store, logger logging.Logger) *Manager {
	return &Manager{state: st, logger: logger}
}

// Years returns the year set sorted ascending.
func (m *Manager) Years() []int {
	ys := m.state.Years()
	slices.Sort(ys)
	return ys
}

func (m *Manager) AddYear(ctx context.Context, y int) error {
	if y <= 0 {
		return nil
	}
	ys := m.state.Years()
	if slices.Contains(ys, y) {
		return nil
	}
	ys = append(ys, y)
	slices.Sort(ys)
	return m.state.SetYears(ctx, ys)
}

// RenameYear replaces oldY with newY in the set and moves every entry
// dated oldY to newY.
func (m *Manager) RenameYear(ctx context.Context, oldY, newY int) error {
	if oldY <= 0 || newY <= 0 {
		return nil
	}
	ys := m.state.Years()
	for i := range ys {
		if ys[i] == oldY {
			ys[i] = newY
		}
	}
	if err := m.state.SetYears(ctx, ys); err != nil {
		return err
	}

	n, err := m.state.MutateEntries(ctx, func(e *models.Entry) bool {
		if e.Year != oldY {
			return false
		}
		e.Year = newY
		return true
	})
	m.logger.Info(ctx, "year renamed", "from", oldY, "to", newY, "entries", n)
	return err
}

func (m *Manager) DeleteYear(ctx context.Context, y int) error {
	if y <= 0 {
		return nil
	}
	for _, e := range m.state.Entries() {
		if e.Year == y {
			return common.ErrVocabularyInUse
		}
	}
	ys := slices.DeleteFunc(m.state.Years(), func(v int) bool { return v == y })
	return m.state.SetYears(ctx, ys)
}

// Categories returns the category universe in French collation order.
func (m *Manager) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(c string) {
		if c == "" {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range common.BaseCategories {
		add(c)
	}
	for _, c := range m.state.ExtraCategories() {
		add(c)
	}
	for _, e := range m.state.Entries() {
		add(e.Category)
	}

	textx.SortFrench(out)
	return out
}

// Deletable returns the universe minus the base categories.
func (m *Manager) Deletable() []string {
	return slices.DeleteFunc(m.Categories(), common.IsBaseCategory)
}

// IsCategory reports whether c belongs to the category universe.
func (m *Manager) IsCategory(c string) bool {
	if c == "" {
		return false
	}
	if common.IsBaseCategory(c) || slices.Contains(m.state.ExtraCategories(), c) {
		return true
	}
	for _, e := range m.state.Entries() {
		if e.Category == c {
			return true
		}
	}
	return false
}

func (m *Manager) AddCategory(ctx context.Context, c string) error {
	c = strings.TrimSpace(c)
	if c == "" || common.IsBaseCategory(c) {
		return nil
	}
	extras := m.state.ExtraCategories()
	if slices.Contains(extras, c) {
		return nil
	}
	return m.state.SetExtraCategories(ctx, append(extras, c))
}

// RenameCategory maps oldC to newC in the extra set and moves every entry
// filed under oldC to newC.
func (m *Manager) RenameCategory(ctx context.Context, oldC, newC string) error {
	oldC, newC = strings.TrimSpace(oldC), strings.TrimSpace(newC)
	if oldC == "" || newC == "" {
		return nil
	}
	if common.IsBaseCategory(oldC) {
		return common.ErrBaseCategory
	}

	extras := m.state.ExtraCategories()
	for i := range extras {
		if extras[i] == oldC {
			extras[i] = newC
		}
	}
	if err := m.state.SetExtraCategories(ctx, extras); err != nil {
		return err
	}

	n, err := m.state.MutateEntries(ctx, func(e *models.Entry) bool {
		if e.Category != oldC {
			return false
		}
		e.Category = newC
		return true
	})
	m.logger.Info(ctx, "category renamed", "from", oldC, "to", newC, "entries", n)
	return err
}

func (m *Manager) DeleteCategory(ctx context.Context, c string) error {
	c = strings.TrimSpace(c)
	if c == "" {
		return nil
	}
	if common.IsBaseCategory(c) {
		return common.ErrBaseCategory
	}
	for _, e := range m.state.Entries() {
		if e.Category == c {
			return common.ErrVocabularyInUse
		}
	}
	extras := slices.DeleteFunc(m.state.ExtraCategories(), func(v string) bool { return v == c })
	return m.state.SetExtraCategories(ctx, extras)
}

// EnsureYearsFrom adds now and every year referenced by entries to the
// year set.
func (m *Manager) EnsureYearsFrom(ctx context.Context, now int, entries []models.Entry) error {
	ys := m.state.Years()
	changed := false
	push := func(y int) {
		if y > 0 && !slices.Contains(ys, y) {
			ys = append(ys, y)
			changed = true
		}
	}
	push(now)
	for _, e := range entries {
		push(e.Year)
	}
	if !changed {
		return nil
	}
	slices.Sort(ys)
	return m.state.SetYears(ctx, ys)
}
