package reconciler

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/grandboard/internal/common"
	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/remote/images"
)

// saveJob is threaded through the save stages.
type saveJob struct {
	draft      models.Draft
	existingID string

	id       string
	previous *models.Entry
	entry    models.Entry
	log      logging.Logger
}

type stage struct {
	name string
	run  func(ctx context.Context, j *saveJob) error
}

func (r *Reconciler) saveStages() []stage {
	return []stage{
		{"validate", r.validate},
		{"identify", r.identify},
		{"build", r.build},
		{"ensureYear", r.ensureYear},
		{"upload", r.upload},
		{"applyLocal", r.applyLocal},
		{"commit", r.commit},
		{"resync", r.resync},
	}
}

// Save creates the entry (existingID empty) or replaces the entry with
// existingID. On a commit failure the returned entry is the one applied
// locally, alongside an error wrapping common.ErrRemoteWrite.
func (r *Reconciler) Save(ctx context.Context, draft models.Draft, existingID string) (models.Entry, error) {
	start := r.now()
	j := &saveJob{draft: draft.Normalize(), existingID: existingID, log: r.logger.With("op", "save")}

	var err error
	for _, s := range r.saveStages() {
		if err = s.run(ctx, j); err != nil {
			j.log.Error(ctx, "save failed", "stage", s.name, "entry_id", j.id, "error", err)
			break
		}
	}
	r.metrics.RecordOperation("save", err, r.now().Sub(start))
	return j.entry, err
}

func (r *Reconciler) validate(_ context.Context, j *saveJob) error {
	d := j.draft
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("month %d: %w", d.Month, common.ErrInvalidMonth)
	}
	if d.Year <= 0 {
		return fmt.Errorf("year %d: %w", d.Year, common.ErrInvalidYear)
	}
	if !r.taxonomy.IsCategory(d.Category) {
		return fmt.Errorf("%q: %w", d.Category, common.ErrUnknownCategory)
	}
	return nil
}

func (r *Reconciler) identify(_ context.Context, j *saveJob) error {
	j.id = j.existingID
	if j.id == "" {
		j.id = r.newID()
	}
	if prev, ok := r.state.Entry(j.id); ok {
		j.previous = &prev
	}
	j.log = j.log.With("entry_id", j.id)
	return nil
}

func (r *Reconciler) build(_ context.Context, j *saveJob) error {
	j.entry = j.draft.Entry(j.id)
	// An untouched image URL keeps pointing at the object uploaded earlier.
	if j.previous != nil && j.draft.Image == nil &&
		j.previous.ImagePath != "" && j.previous.ImageURL == j.entry.ImageURL {
		j.entry.ImagePath = j.previous.ImagePath
	}
	return nil
}

func (r *Reconciler) ensureYear(ctx context.Context, j *saveJob) error {
	if err := r.taxonomy.AddYear(ctx, j.entry.Year); err != nil {
		j.log.Warn(ctx, "could not cache years", "error", err)
	}
	return nil
}

func (r *Reconciler) upload(ctx context.Context, j *saveJob) error {
	img := j.draft.Image
	if img == nil || img.Body == nil {
		return nil
	}

	path := images.ObjectPath(j.id, img.Name, r.now())
	url, err := r.remote.Upload(ctx, path, img.Body, img.ContentType)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrImageUpload, err)
	}

	j.entry.ImageURL = url
	j.entry.ImagePath = path
	j.log.Info(ctx, "image uploaded", "path", path)
	return nil
}

func (r *Reconciler) applyLocal(ctx context.Context, j *saveJob) error {
	if err := r.state.UpsertEntry(ctx, j.entry); err != nil {
		j.log.Warn(ctx, "could not cache entries", "error", err)
	}
	r.notifyLocalChange(ctx)
	return nil
}

func (r *Reconciler) commit(ctx context.Context, j *saveJob) error {
	if err := r.remote.Upsert(ctx, j.entry); err != nil {
		return fmt.Errorf("%w: %w", common.ErrRemoteWrite, err)
	}
	return nil
}

func (r *Reconciler) resync(ctx context.Context, j *saveJob) error {
	r.LoadAll(ctx)
	if e, ok := r.state.Entry(j.id); ok {
		j.entry = e
	}
	return nil
}
