package reconciler

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/grandboard/internal/common"
)

// Delete removes the entry locally, then remotely, then removes its image
// (best effort) and reloads. A remote failure is returned wrapping
// common.ErrRemoteWrite; the local removal stands. An id unknown locally
// is still deleted remotely, since the cache may be stale.
func (r *Reconciler) Delete(ctx context.Context, id string) (err error) {
	start := r.now()
	log := r.logger.With("op", "delete", "entry_id", id)
	defer func() {
		r.metrics.RecordOperation("delete", err, r.now().Sub(start))
	}()

	removed, ok, perr := r.state.RemoveEntry(ctx, id)
	if perr != nil {
		log.Warn(ctx, "could not cache entries", "error", perr)
	}
	if ok {
		r.notifyLocalChange(ctx)
	} else {
		log.Info(ctx, "entry not in local state, deleting remotely")
	}

	if err := r.remote.Delete(ctx, id); err != nil {
		log.Error(ctx, "remote delete failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrRemoteWrite, err)
	}

	if removed.ImagePath != "" {
		if err := r.remote.Remove(ctx, removed.ImagePath); err != nil {
			log.Warn(ctx, "image removal failed", "path", removed.ImagePath, "error", err)
		}
	}

	r.LoadAll(ctx)
	return nil
}
