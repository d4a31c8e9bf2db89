package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/mq"
	"github.com/pkg/errors"
)

type VideoDeleteService struct {
	ctx  context.Context
	deps Deps
}

func NewVideoDeleteService(ctx context.Context, deps Deps) *VideoDeleteService {
	return &VideoDeleteService{ctx: ctx, deps: deps}
}

// Delete removes the video with its comments and likes, recording both media
// objects as orphans in the same transaction, then removes the objects. A
// removal that fails stays recorded and the reconciler retries it; the
// request itself still succeeds.
func (service *VideoDeleteService) Delete(videoId, requesterId int64) error {
	video, err := LoadVideo(service.ctx, videoId)
	if err != nil {
		return err
	}
	if err = guard.AuthorizeWith(requesterId, video, VideoForbiddenMsg); err != nil {
		return err
	}

	orphans := make([]*model.MediaOrphan, 0, 2)
	if video.VideoFileKey != "" {
		orphans = append(orphans, newOrphan(constants.VideoBucket, video.VideoFileKey, "video deleted"))
	}
	if video.ThumbnailKey != "" {
		orphans = append(orphans, newOrphan(constants.PictureBucket, video.ThumbnailKey, "video deleted"))
	}
	if err = db.DeleteVideoCascade(service.ctx, video, orphans); err != nil {
		return errors.WithMessage(err, "dao.DeleteVideoCascade failed")
	}

	removeOrphans(service.ctx, service.deps.Store, orphans)

	mq.Emit(service.ctx, service.deps.Publisher, mq.NewEvent(mq.VideoDeleted, requesterId,
		mq.VideoPayload{VideoID: video.ID, OwnerID: video.OwnerID}))
	return nil
}
