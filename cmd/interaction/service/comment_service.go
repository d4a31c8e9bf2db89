package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	videoservice "VidTube.com/cmd/video/service"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentService struct {
	ctx  context.Context
	deps Deps
}

func NewCommentService(ctx context.Context, deps Deps) *CommentService {
	return &CommentService{ctx: ctx, deps: deps}
}

// validateCommentContent trims content and checks it is non-empty and within
// MaxCommentLength characters.
func validateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.ParamErr.WithMessage("Comment content is required")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return "", errno.ParamErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return content, nil
}

func (service *CommentService) loadComment(commentId int64) (*model.Comment, error) {
	comment, err := db.GetComment(service.ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, CommentNotFoundErr
		}
		return nil, err
	}
	return comment, nil
}

func (service *CommentService) ListComments(videoId, viewerId int64, page query.PageRequest) (*query.Page[*model.Comment], error) {
	if _, err := videoservice.LoadVisibleVideo(service.ctx, videoId, viewerId); err != nil {
		return nil, err
	}
	comments, total, err := db.ListComments(service.ctx, videoId, page)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListComments failed")
	}
	return query.NewPage(comments, total, page), nil
}

func (service *CommentService) CreateComment(videoId, userId int64, content string) (*model.Comment, error) {
	content, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}
	if _, err = videoservice.LoadVisibleVideo(service.ctx, videoId, userId); err != nil {
		return nil, err
	}
	comment := &model.Comment{
		ID:      utils.NextID(),
		Content: content,
		VideoID: videoId,
		OwnerID: userId,
	}
	if err = db.CreateComment(service.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	mq.Emit(service.ctx, service.deps.Publisher, mq.NewEvent(mq.CommentCreated, userId,
		mq.CommentPayload{CommentID: comment.ID, VideoID: videoId}))
	return comment, nil
}

func (service *CommentService) UpdateComment(commentId, userId int64, content string) (*model.Comment, error) {
	content, err := validateCommentContent(content)
	if err != nil {
		return nil, err
	}
	comment, err := service.loadComment(commentId)
	if err != nil {
		return nil, err
	}
	if err = guard.AuthorizeWith(userId, comment, "You are not allowed to update this comment"); err != nil {
		return nil, err
	}
	if err = db.UpdateCommentContent(service.ctx, commentId, content); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateCommentContent failed")
	}
	return service.loadComment(commentId)
}

func (service *CommentService) DeleteComment(commentId, userId int64) error {
	comment, err := service.loadComment(commentId)
	if err != nil {
		return err
	}
	if err = guard.AuthorizeWith(userId, comment, "You are not allowed to delete this comment"); err != nil {
		return err
	}
	if err = db.DeleteComment(service.ctx, commentId); err != nil {
		return errors.WithMessage(err, "dao.DeleteComment failed")
	}
	mq.Emit(service.ctx, service.deps.Publisher, mq.NewEvent(mq.CommentDeleted, userId,
		mq.CommentPayload{CommentID: commentId, VideoID: comment.VideoID}))
	return nil
}
