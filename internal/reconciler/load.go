package reconciler

import (
	"context"

	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/remote/entries"
)

// LoadAll reloads the collection from the remote store and installs it
// locally. When the remote store fails, the cached collection is returned
// unchanged and no error is reported. Either way the year set ends up
// holding the current year and every year an entry uses.
func (r *Reconciler) LoadAll(ctx context.Context) []models.Entry {
	start := r.now()
	currentYear := start.Year()

	rows, err := r.remote.FetchAll(ctx)
	r.metrics.RecordOperation("load", err, r.now().Sub(start))
	if err != nil {
		r.metrics.RecordDegradedRead()
		r.logger.Error(ctx, "remote load failed, serving cached entries", "error", err)
		cached := r.state.Entries()
		r.ensureYears(ctx, currentYear, cached)
		return cached
	}

	result := make([]models.Entry, 0, len(rows))
	for _, row := range rows {
		result = append(result, fromRow(row, currentYear))
	}

	if err := r.state.ReplaceEntries(ctx, result); err != nil {
		r.logger.Warn(ctx, "could not cache entries", "error", err)
	}
	r.ensureYears(ctx, currentYear, result)

	r.logger.Debug(ctx, "entries loaded", "count", len(result))
	return models.Clone(result)
}

func (r *Reconciler) ensureYears(ctx context.Context, currentYear int, es []models.Entry) {
	if err := r.taxonomy.EnsureYearsFrom(ctx, currentYear, es); err != nil {
		r.logger.Warn(ctx, "could not cache years", "error", err)
	}
}

// fromRow applies defaults: month 1, the current year, empty strings.
func fromRow(row entries.Row, currentYear int) models.Entry {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	num := func(p *int, def int) int {
		if p == nil || *p == 0 {
			return def
		}
		return *p
	}

	return models.Entry{
		ID:          row.ID,
		Title:       str(row.Title),
		Category:    str(row.Category),
		Theme1:      str(row.Theme1),
		Theme2:      str(row.Theme2),
		Description: str(row.Description),
		Link:        str(row.Link),
		Month:       num(row.Month, 1),
		Year:        num(row.Year, currentYear),
		ImageURL:    str(row.ImageURL),
		ImagePath:   str(row.ImagePath),
	}
}
