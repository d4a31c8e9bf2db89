package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/oss"
	"github.com/pkg/errors"
)

// UpdateRequest changes the fields that are non-nil / non-empty.
type UpdateRequest struct {
	VideoId              int64
	RequesterId          int64
	Title                *string
	Description          *string
	ThumbnailPath        string
	ThumbnailContentType string
}

type VideoUpdateService struct {
	ctx  context.Context
	deps Deps
}

func NewVideoUpdateService(ctx context.Context, deps Deps) *VideoUpdateService {
	return &VideoUpdateService{ctx: ctx, deps: deps}
}

// Update edits title/description and optionally swaps the thumbnail: the new
// one is uploaded, the record updated, then the old object discarded.
func (service *VideoUpdateService) Update(req *UpdateRequest) (*model.Video, error) {
	if req.Title == nil && req.Description == nil && req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("Nothing to update: provide title, description or thumbnail")
	}
	updates := make(map[string]interface{})
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errno.ParamErr.WithMessage("Title cannot be empty")
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.ThumbnailPath != "" && !IsImageContentType(req.ThumbnailContentType) {
		return nil, errno.ParamErr.WithMessage("thumbnail must be an image")
	}

	video, err := LoadVideo(service.ctx, req.VideoId)
	if err != nil {
		return nil, err
	}
	if err = guard.AuthorizeWith(req.RequesterId, video, VideoForbiddenMsg); err != nil {
		return nil, err
	}

	var newThumb *oss.Object
	if req.ThumbnailPath != "" {
		newThumb, err = service.deps.Store.Upload(service.ctx, oss.KindImage, req.ThumbnailPath, req.ThumbnailContentType)
		if err != nil {
			return nil, errors.WithMessage(err, "upload thumbnail failed")
		}
		updates["thumbnail"] = newThumb.URL
		updates["thumbnail_key"] = newThumb.Key
	}

	if err = db.UpdateVideo(service.ctx, video.ID, updates); err != nil {
		if newThumb != nil {
			discard(service.ctx, service.deps.Store, newThumb.Bucket, newThumb.Key, "update failed")
		}
		return nil, errors.WithMessage(err, "dao.UpdateVideo failed")
	}
	if newThumb != nil {
		discard(service.ctx, service.deps.Store, constants.PictureBucket, video.ThumbnailKey, "thumbnail replaced")
	}

	updated, err := db.GetVideoWithOwner(service.ctx, video.ID)
	if err != nil {
		return nil, errors.WithMessage(err, "reload video failed")
	}
	return updated, nil
}

// TogglePublish flips isPublished and returns the new value.
func (service *VideoUpdateService) TogglePublish(videoId, requesterId int64) (bool, error) {
	video, err := LoadVideo(service.ctx, videoId)
	if err != nil {
		return false, err
	}
	if err = guard.AuthorizeWith(requesterId, video, VideoForbiddenMsg); err != nil {
		return false, err
	}
	published := !video.IsPublished
	if err = db.SetPublished(service.ctx, video.ID, published); err != nil {
		return false, errors.WithMessage(err, "dao.SetPublished failed")
	}
	return published, nil
}
