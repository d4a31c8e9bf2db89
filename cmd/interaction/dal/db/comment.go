package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListComments pages the comments of one video, newest first, each with its
// author's profile.
func ListComments(ctx context.Context, videoId int64, page query.PageRequest) ([]*model.Comment, int64, error) {
	base := func() *gorm.DB {
		return DB.WithContext(ctx).Model(&model.Comment{}).
			Joins("JOIN users ON users.id = comments.owner_id").
			Where("comments.video_id = ?", videoId)
	}
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListComments count failed, video_id:%d", videoId)
	}
	comments := make([]*model.Comment, 0)
	if total == 0 {
		return comments, 0, nil
	}
	err := base().Select("comments.*").
		Preload("Owner").
		Order("comments.created_at DESC").
		Order("comments.id DESC").
		Scopes(page.Scope).
		Find(&comments).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListComments failed, video_id:%d", videoId)
	}
	return comments, total, nil
}

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed, video_id:%d", comment.VideoID)
	}
	return nil
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Where("id = ?", commentId).Take(&comment).Error; err != nil {
		return nil, errors.Wrapf(err, "GetComment failed, comment_id:%d", commentId)
	}
	return &comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentId).
		Update("content", content).Error
	if err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed, comment_id:%d", commentId)
	}
	return nil
}

// DeleteComment removes the comment and the likes on it.
func DeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", constants.LikeTargetComment, commentId).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrapf(err, "delete likes of comment %d", commentId)
		}
		if err := tx.Where("id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrapf(err, "delete comment %d", commentId)
		}
		return nil
	})
}
