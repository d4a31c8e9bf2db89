package service

import (
	"context"
	"fmt"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	videoservice "VidTube.com/cmd/video/service"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/toggle"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LikeActionService struct {
	ctx  context.Context
	deps Deps
}

func NewLikeActionService(ctx context.Context, deps Deps) *LikeActionService {
	return &LikeActionService{ctx: ctx, deps: deps}
}

func likeKey(targetType string, targetId, userId int64) string {
	return fmt.Sprintf("like:%s:%d:%d", targetType, targetId, userId)
}

// ToggleVideoLike likes the video, or unlikes it when already liked.
func (service *LikeActionService) ToggleVideoLike(videoId, userId int64) (toggle.State, error) {
	if _, err := videoservice.LoadVisibleVideo(service.ctx, videoId, userId); err != nil {
		return 0, err
	}
	return service.toggle(constants.LikeTargetVideo, videoId, userId)
}

func (service *LikeActionService) ToggleCommentLike(commentId, userId int64) (toggle.State, error) {
	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, CommentNotFoundErr
		}
		return 0, err
	}
	// a comment is only as visible as the video it sits under
	if _, err = videoservice.LoadVisibleVideo(service.ctx, comment.VideoID, userId); err != nil {
		return 0, err
	}
	return service.toggle(constants.LikeTargetComment, commentId, userId)
}

func (service *LikeActionService) toggle(targetType string, targetId, userId int64) (toggle.State, error) {
	state, err := toggle.Toggle(service.ctx, service.deps.Locker, likeKey(targetType, targetId, userId), toggle.Ops{
		Remove: func(ctx context.Context) (bool, error) {
			return db.DeleteLike(ctx, targetType, targetId, userId)
		},
		Create: func(ctx context.Context) error {
			return db.CreateLike(ctx, targetType, targetId, userId)
		},
	})
	if err != nil {
		return 0, err
	}

	eventType := mq.LikeAdded
	if state == toggle.Removed {
		eventType = mq.LikeRemoved
	}
	mq.Emit(service.ctx, service.deps.Publisher, mq.NewEvent(eventType, userId,
		mq.LikePayload{TargetType: targetType, TargetID: targetId}))
	return state, nil
}

func (service *LikeActionService) LikedVideos(userId int64, page query.PageRequest) (*query.Page[*model.LikedVideo], error) {
	items, total, err := db.ListLikedVideos(service.ctx, userId, page)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListLikedVideos failed")
	}
	return query.NewPage(items, total, page), nil
}
