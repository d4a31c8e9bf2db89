package service

import (
	"context"
	"time"

	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// Reconciler removes orphaned media objects left behind when the store was
// unavailable during a delete or a rollback.
type Reconciler struct {
	store       oss.MediaStore
	maxAttempts int
	batchSize   int
}

func NewReconciler(store oss.MediaStore, maxAttempts, batchSize int) *Reconciler {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Reconciler{store: store, maxAttempts: maxAttempts, batchSize: batchSize}
}

// Sweep makes one pass over the pending orphans and reports how many objects
// were removed.
func (r *Reconciler) Sweep(ctx context.Context) (int, error) {
	orphans, err := db.PendingOrphans(ctx, r.maxAttempts, r.batchSize)
	if err != nil {
		return 0, errors.WithMessage(err, "load pending orphans failed")
	}
	if len(orphans) == 0 {
		return 0, nil
	}
	removed := removeOrphans(ctx, r.store, orphans)
	hlog.CtxInfof(ctx, "media reconcile: %d/%d orphans removed", removed, len(orphans))
	return removed, nil
}

// Run sweeps every interval until ctx is done.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Sweep(ctx); err != nil {
				hlog.CtxErrorf(ctx, "media reconcile failed: %v", err)
			}
		}
	}
}
