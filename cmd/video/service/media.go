package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func newOrphan(bucket, key, reason string) *model.MediaOrphan {
	return &model.MediaOrphan{
		ID:        utils.NextID(),
		Bucket:    bucket,
		ObjectKey: key,
		Reason:    reason,
	}
}

// discard removes an object nobody references any more. When the store
// refuses, the object is recorded as an orphan for the reconciler.
func discard(ctx context.Context, store oss.MediaStore, bucket, key, reason string) {
	if key == "" {
		return
	}
	err := store.Remove(ctx, bucket, key)
	if err == nil {
		return
	}
	hlog.CtxWarnf(ctx, "remove %s/%s failed, recording orphan: %v", bucket, key, err)
	orphan := newOrphan(bucket, key, reason)
	orphan.Attempts = 1
	orphan.LastError = err.Error()
	if err = db.InsertOrphans(ctx, []*model.MediaOrphan{orphan}); err != nil {
		hlog.CtxErrorf(ctx, "record orphan %s/%s failed, object leaked: %v", bucket, key, err)
	}
}

// removeOrphans tries each already recorded orphan once, dropping the record
// on success and counting the failure otherwise.
func removeOrphans(ctx context.Context, store oss.MediaStore, orphans []*model.MediaOrphan) (removed int) {
	for _, o := range orphans {
		if err := store.Remove(ctx, o.Bucket, o.ObjectKey); err != nil {
			hlog.CtxWarnf(ctx, "remove orphan %s/%s failed: %v", o.Bucket, o.ObjectKey, err)
			if err = db.MarkOrphanFailed(ctx, o.ID, err.Error()); err != nil {
				hlog.CtxErrorf(ctx, "mark orphan %d failed: %v", o.ID, err)
			}
			continue
		}
		if err := db.DeleteOrphan(ctx, o.ID); err != nil {
			hlog.CtxErrorf(ctx, "drop orphan record %d failed: %v", o.ID, err)
			continue
		}
		removed++
	}
	return removed
}
