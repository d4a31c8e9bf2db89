package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertOrphans records objects that still have to be removed from the store.
// An object already recorded is left as it is.
func InsertOrphans(ctx context.Context, orphans []*model.MediaOrphan) error {
	return insertOrphans(DB.WithContext(ctx), orphans)
}

func insertOrphans(tx *gorm.DB, orphans []*model.MediaOrphan) error {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(orphans).Error; err != nil {
		return errors.Wrap(err, "insert media orphans")
	}
	return nil
}

func DeleteOrphan(ctx context.Context, orphanId int64) error {
	if err := DB.WithContext(ctx).Where("id = ?", orphanId).Delete(&model.MediaOrphan{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteOrphan failed, id:%d", orphanId)
	}
	return nil
}

// MarkOrphanFailed counts one more failed removal.
func MarkOrphanFailed(ctx context.Context, orphanId int64, cause string) error {
	err := DB.WithContext(ctx).Model(&model.MediaOrphan{}).
		Where("id = ?", orphanId).
		Updates(map[string]interface{}{
			"attempts":   gorm.Expr("attempts + ?", 1),
			"last_error": cause,
		}).Error
	if err != nil {
		return errors.Wrapf(err, "MarkOrphanFailed failed, id:%d", orphanId)
	}
	return nil
}

// PendingOrphans returns up to limit orphans that have been tried fewer than
// maxAttempts times, least tried first.
func PendingOrphans(ctx context.Context, maxAttempts, limit int) ([]*model.MediaOrphan, error) {
	orphans := make([]*model.MediaOrphan, 0)
	err := DB.WithContext(ctx).
		Where("attempts < ?", maxAttempts).
		Order("attempts ASC").
		Order("id ASC").
		Limit(limit).
		Find(&orphans).Error
	if err != nil {
		return nil, errors.Wrap(err, "PendingOrphans failed")
	}
	return orphans, nil
}
