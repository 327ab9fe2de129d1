package reconciler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/grandboard/internal/logging"
	"github.com/dmitrijs2005/grandboard/internal/models"
	"github.com/dmitrijs2005/grandboard/internal/remote"
	"github.com/dmitrijs2005/grandboard/internal/state"
	"github.com/dmitrijs2005/grandboard/internal/taxonomy"
)

// Recorder receives operation outcomes. *metrics.SyncMetrics implements it.
type Recorder interface {
	RecordOperation(operation string, err error, d time.Duration)
	RecordDegradedRead()
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, error, time.Duration) {}
func (nopRecorder) RecordDegradedRead()                          {}

// LocalChangeFunc is called with the full collection right after an
// optimistic local mutation, before the remote commit.
type LocalChangeFunc func(ctx context.Context, entries []models.Entry)

// Reconciler keeps the local state in step with the remote store. Reads
// go to the remote store first and fall back to the cache; writes apply
// locally first and then commit remotely.
type Reconciler struct {
	remote   remote.Store
	state    *state.Store
	taxonomy *taxonomy.Manager
	logger   logging.Logger
	metrics  Recorder

	now           func() time.Time
	newID         func() string
	onLocalChange LocalChangeFunc
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithMetrics records every operation and degraded read on m.
func WithMetrics(m Recorder) Option {
	return func(r *Reconciler) { r.metrics = m }
}

// WithClock replaces time.Now, used for durations, the current year and
// image object names.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) { r.now = now }
}

// WithIDGenerator replaces uuid.NewString for new entry ids.
func WithIDGenerator(fn func() string) Option {
	return func(r *Reconciler) { r.newID = fn }
}

// WithLocalChangeHook sets the function called after each optimistic
// local mutation.
func WithLocalChangeHook(fn LocalChangeFunc) Option {
	return func(r *Reconciler) { r.onLocalChange = fn }
}

// New returns a Reconciler over rs and st. Without options it records
// nothing, uses the wall clock and generates UUID ids.
func New(rs remote.Store, st *state.Store, tm *taxonomy.Manager, logger logging.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		remote:   rs,
		state:    st,
		taxonomy: tm,
		logger:   logger,
		metrics:  nopRecorder{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pending returns ids changed locally and not yet confirmed by a reload.
func (r *Reconciler) Pending() []string {
	return r.state.Pending()
}

// Entries returns the current local collection without contacting the
// remote store.
func (r *Reconciler) Entries() []models.Entry {
	return r.state.Entries()
}

func (r *Reconciler) notifyLocalChange(ctx context.Context) {
	if r.onLocalChange != nil {
		r.onLocalChange(ctx, r.state.Entries())
	}
}
