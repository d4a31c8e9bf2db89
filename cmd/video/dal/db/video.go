package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SortFields are the orderings a video listing accepts.
var SortFields = query.SortFields{
	"createdAt": "videos.created_at",
	"updatedAt": "videos.updated_at",
	"views":     "videos.views",
	"duration":  "videos.duration",
	"title":     "videos.title",
}

const (
	DefaultSortField = "createdAt"
	TieBreaker       = "videos.id"
)

// VideoFilter selects a page of videos. Zero OwnerId means any owner.
type VideoFilter struct {
	Text     string
	OwnerId  int64
	ViewerId int64
	Sort     query.Sort
	Page     query.PageRequest
}

// ListVideos returns the videos visible to the viewer (published, or owned by
// the viewer), each with its owner's profile. Videos whose owner no longer
// exists are left out.
func ListVideos(ctx context.Context, f VideoFilter) ([]*model.Video, int64, error) {
	base := func() *gorm.DB {
		db := DB.WithContext(ctx).Model(&model.Video{}).
			Joins("JOIN users ON users.id = videos.owner_id").
			Where("(videos.is_published = ? OR videos.owner_id = ?)", true, f.ViewerId)
		if f.Text != "" {
			db = db.Where("LOWER(videos.title) LIKE ? ESCAPE '"+query.LikeEscape+"'", query.ContainsPattern(f.Text))
		}
		if f.OwnerId > 0 {
			db = db.Where("videos.owner_id = ?", f.OwnerId)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideos count failed")
	}
	videos := make([]*model.Video, 0)
	if total == 0 {
		return videos, 0, nil
	}
	err := base().Select("videos.*").
		Preload("Owner").
		Scopes(f.Sort.Scope, f.Page.Scope).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ListVideos failed")
	}
	return videos, total, nil
}

// ListOwnerVideos is every video of one channel, unpublished included, newest
// first.
func ListOwnerVideos(ctx context.Context, ownerId int64, page query.PageRequest) ([]*model.Video, int64, error) {
	base := func() *gorm.DB {
		return DB.WithContext(ctx).Model(&model.Video{}).Where("videos.owner_id = ?", ownerId)
	}
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListOwnerVideos count failed, owner_id:%d", ownerId)
	}
	videos := make([]*model.Video, 0)
	if total == 0 {
		return videos, 0, nil
	}
	err := base().Preload("Owner").
		Order("videos.created_at DESC").
		Order("videos.id DESC").
		Scopes(page.Scope).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListOwnerVideos failed, owner_id:%d", ownerId)
	}
	return videos, total, nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("id = ?", videoId).Take(&video).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideo failed, video_id:%d", videoId)
	}
	return &video, nil
}

// GetVideoWithOwner loads the video and its owner's profile.
func GetVideoWithOwner(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Preload("Owner").Where("id = ?", videoId).Take(&video).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoWithOwner failed, video_id:%d", videoId)
	}
	return &video, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed, video_id:%d", video.ID)
	}
	return nil
}

// IncrementViews bumps the view counter in place so concurrent readers never
// lose an update.
func IncrementViews(ctx context.Context, videoId int64) error {
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return errors.Wrapf(err, "IncrementViews failed, video_id:%d", videoId)
	}
	return nil
}

// UpdateVideo writes the given columns. Keys are column names.
func UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", videoId).
		Updates(updates).Error
	if err != nil {
		return errors.Wrapf(err, "UpdateVideo failed, video_id:%d", videoId)
	}
	return nil
}

func SetPublished(ctx context.Context, videoId int64, published bool) error {
	return UpdateVideo(ctx, videoId, map[string]interface{}{"is_published": published})
}

// DeleteVideoCascade removes the video together with its comments and every
// like on the video or on those comments, and records orphans for the media
// objects, all in one transaction.
func DeleteVideoCascade(ctx context.Context, video *model.Video, orphans []*model.MediaOrphan) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIds := tx.Model(&model.Comment{}).Select("id").Where("video_id = ?", video.ID)
		if err := tx.Where("target_type = ? AND target_id IN (?)", constants.LikeTargetComment, commentIds).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete comment likes")
		}
		if err := tx.Where("target_type = ? AND target_id = ?", constants.LikeTargetVideo, video.ID).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete video likes")
		}
		if err := tx.Where("video_id = ?", video.ID).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrap(err, "delete comments")
		}
		res := tx.Where("id = ?", video.ID).Delete(&model.Video{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete video")
		}
		if res.RowsAffected == 0 {
			return errors.Wrapf(gorm.ErrRecordNotFound, "video %d already deleted", video.ID)
		}
		if len(orphans) > 0 {
			if err := insertOrphans(tx, orphans); err != nil {
				return err
			}
		}
		return nil
	})
}

func CountVideos(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("owner_id = ?", ownerId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountVideos failed, owner_id:%d", ownerId)
	}
	return count, nil
}

func SumViews(ctx context.Context, ownerId int64) (int64, error) {
	var total int64
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COALESCE(SUM(views), 0)").
		Where("owner_id = ?", ownerId).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrapf(err, "SumViews failed, owner_id:%d", ownerId)
	}
	return total, nil
}

// CountLikesOnOwnerVideos counts likes on every video the owner has.
func CountLikesOnOwnerVideos(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_type = ? AND videos.owner_id = ?", constants.LikeTargetVideo, ownerId).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountLikesOnOwnerVideos failed, owner_id:%d", ownerId)
	}
	return count, nil
}
