package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateLike is a no-op when the user already likes the target.
func CreateLike(ctx context.Context, targetType string, targetId, userId int64) error {
	like := &model.Like{
		ID:         utils.NextID(),
		TargetType: targetType,
		TargetID:   targetId,
		LikedBy:    userId,
	}
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
		return errors.Wrapf(err, "CreateLike failed, %s:%d user_id:%d", targetType, targetId, userId)
	}
	return nil
}

// DeleteLike reports whether a like was removed.
func DeleteLike(ctx context.Context, targetType string, targetId, userId int64) (bool, error) {
	res := DB.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND liked_by = ?", targetType, targetId, userId).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "DeleteLike failed, %s:%d user_id:%d", targetType, targetId, userId)
	}
	return res.RowsAffected > 0, nil
}

// ListLikedVideos pages the videos a user liked, most recent like first.
// Videos the user can no longer see are skipped.
func ListLikedVideos(ctx context.Context, userId int64, page query.PageRequest) ([]*model.LikedVideo, int64, error) {
	base := func() *gorm.DB {
		return DB.WithContext(ctx).Model(&model.Like{}).
			Joins("JOIN videos ON videos.id = likes.target_id").
			Joins("JOIN users ON users.id = videos.owner_id").
			Where("likes.target_type = ? AND likes.liked_by = ?", constants.LikeTargetVideo, userId).
			Where("(videos.is_published = ? OR videos.owner_id = ?)", true, userId)
	}
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListLikedVideos count failed, user_id:%d", userId)
	}
	items := make([]*model.LikedVideo, 0)
	if total == 0 {
		return items, 0, nil
	}

	var likes []*model.Like
	err := base().Select("likes.*").
		Order("likes.created_at DESC").
		Order("likes.id DESC").
		Scopes(page.Scope).
		Find(&likes).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListLikedVideos failed, user_id:%d", userId)
	}
	if len(likes) == 0 {
		return items, total, nil
	}

	ids := make([]int64, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.TargetID)
	}
	var videos []*model.Video
	if err = DB.WithContext(ctx).Preload("Owner").Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrap(err, "load liked videos failed")
	}
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.ID] = v
	}
	for _, l := range likes {
		if v, ok := byId[l.TargetID]; ok {
			items = append(items, &model.LikedVideo{LikedAt: l.CreatedAt, Video: v})
		}
	}
	return items, total, nil
}
