package db

import (
	"context"

	"VidTube.com/cmd/model"
)

func isLiked(ctx context.Context, targetType string, targetId, userId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ? AND liked_by = ?", targetType, targetId, userId).
		Count(&count).Error
	return count > 0, err
}

func countLikes(ctx context.Context, targetType string, targetId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetId).
		Count(&count).Error
	return count, err
}
