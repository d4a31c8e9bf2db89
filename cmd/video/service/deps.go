package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Deps are the collaborators every video service needs.
type Deps struct {
	Store     oss.MediaStore
	Prober    utils.DurationProber
	Publisher mq.Publisher
}

var (
	VideoNotFoundErr  = errno.NotFoundErr.WithMessage("Video not found")
	VideoForbiddenMsg = "You are not allowed to modify this video"
)

// LoadVideo fetches a video, turning a missing row into VideoNotFoundErr.
func LoadVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	video, err := db.GetVideo(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, VideoNotFoundErr
		}
		return nil, err
	}
	return video, nil
}

// LoadVisibleVideo is LoadVideo that also hides other users' unpublished
// videos.
func LoadVisibleVideo(ctx context.Context, videoId, viewerId int64) (*model.Video, error) {
	video, err := LoadVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(viewerId) {
		return nil, VideoNotFoundErr
	}
	return video, nil
}
