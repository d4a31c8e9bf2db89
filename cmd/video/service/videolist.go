package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoListRequest struct {
	ViewerId int64
	OwnerId  int64
	Text     string
	SortBy   string
	SortType string
	Page     query.PageRequest
}

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

func (v *VideoListService) VideoList(req *VideoListRequest) (*query.Page[*model.Video], error) {
	sort, err := query.ParseSort(req.SortBy, req.SortType, db.SortFields, db.DefaultSortField, db.TieBreaker)
	if err != nil {
		return nil, err
	}
	videos, total, err := db.ListVideos(v.ctx, db.VideoFilter{
		Text:     req.Text,
		OwnerId:  req.OwnerId,
		ViewerId: req.ViewerId,
		Sort:     sort,
		Page:     req.Page,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideos failed")
	}
	return query.NewPage(videos, total, req.Page), nil
}

// VideoInfo returns one video and counts the view.
func (v *VideoListService) VideoInfo(videoId, viewerId int64) (*model.Video, error) {
	video, err := db.GetVideoWithOwner(v.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, VideoNotFoundErr
		}
		return nil, err
	}
	if !video.VisibleTo(viewerId) {
		return nil, VideoNotFoundErr
	}
	if err = db.IncrementViews(v.ctx, videoId); err != nil {
		return nil, errors.WithMessage(err, "dao.IncrementViews failed")
	}
	video.Views++
	return video, nil
}
