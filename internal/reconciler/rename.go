package reconciler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/models"
)

// RenameYear renames oldY to newY and commits every entry the cascade
// moved. A commit failure wraps common.ErrRemoteWrite and leaves the moved
// entries pending.
func (r *Reconciler) RenameYear(ctx context.Context, oldY, newY int) (err error) {
	if oldY <= 0 || newY <= 0 {
		return nil
	}
	start := r.now()
	defer func() {
		r.metrics.RecordOperation("rename_year", err, r.now().Sub(start))
	}()

	ids := r.idsWhere(func(e models.Entry) bool { return e.Year == oldY })
	if err := r.taxonomy.RenameYear(ctx, oldY, newY); err != nil {
		return err
	}
	return r.commitMoved(ctx, ids)
}

// RenameCategory renames oldC to newC and commits every entry the cascade
// moved, like RenameYear.
func (r *Reconciler) RenameCategory(ctx context.Context, oldC, newC string) (err error) {
	oldC, newC = strings.TrimSpace(oldC), strings.TrimSpace(newC)
	if oldC == "" || newC == "" {
		return nil
	}
	start := r.now()
	defer func() {
		r.metrics.RecordOperation("rename_category", err, r.now().Sub(start))
	}()

	ids := r.idsWhere(func(e models.Entry) bool { return e.Category == oldC })
	if err := r.taxonomy.RenameCategory(ctx, oldC, newC); err != nil {
		return err
	}
	return r.commitMoved(ctx, ids)
}

func (r *Reconciler) idsWhere(match func(models.Entry) bool) []string {
	var ids []string
	for _, e := range r.state.Entries() {
		if match(e) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// commitMoved upserts each entry in ids and reloads when all succeeded.
func (r *Reconciler) commitMoved(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	r.notifyLocalChange(ctx)

	var errs []error
	for _, id := range ids {
		e, ok := r.state.Entry(id)
		if !ok {
			continue
		}
		if err := r.remote.Upsert(ctx, e); err != nil {
			r.logger.Error(ctx, "remote upsert failed", "entry_id", id, "error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", common.ErrRemoteWrite, errors.Join(errs...))
	}

	r.LoadAll(ctx)
	return nil
}
