package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// PublishRequest carries the already saved upload files.
type PublishRequest struct {
	OwnerId              int64
	Title                string
	Description          string
	VideoPath            string
	VideoContentType     string
	ThumbnailPath        string
	ThumbnailContentType string
}

type VideoUploadService struct {
	ctx  context.Context
	deps Deps
}

func NewVideoUploadService(ctx context.Context, deps Deps) *VideoUploadService {
	return &VideoUploadService{ctx: ctx, deps: deps}
}

func IsVideoContentType(ct string) bool {
	return strings.HasPrefix(strings.ToLower(ct), "video/")
}

func IsImageContentType(ct string) bool {
	return strings.HasPrefix(strings.ToLower(ct), "image/")
}

// Publish probes and uploads both files and stores the video. Objects uploaded
// before a later step fails are discarded again.
func (service *VideoUploadService) Publish(req *PublishRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errno.ParamErr.WithMessage("Title is required")
	}
	if req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("Both videoFile and thumbnail are required.")
	}
	if !IsVideoContentType(req.VideoContentType) {
		return nil, errno.ParamErr.WithMessage("videoFile must be a video")
	}
	if !IsImageContentType(req.ThumbnailContentType) {
		return nil, errno.ParamErr.WithMessage("thumbnail must be an image")
	}

	duration, err := service.deps.Prober.Duration(service.ctx, req.VideoPath)
	if err != nil {
		hlog.CtxWarnf(service.ctx, "probe %s failed: %v", req.VideoPath, err)
		return nil, errno.ParamErr.WithMessage("Unable to read the video duration")
	}

	videoObj, err := service.deps.Store.Upload(service.ctx, oss.KindVideo, req.VideoPath, req.VideoContentType)
	if err != nil {
		return nil, errors.WithMessage(err, "upload video file failed")
	}
	thumbObj, err := service.deps.Store.Upload(service.ctx, oss.KindImage, req.ThumbnailPath, req.ThumbnailContentType)
	if err != nil {
		discard(service.ctx, service.deps.Store, videoObj.Bucket, videoObj.Key, "publish failed")
		return nil, errors.WithMessage(err, "upload thumbnail failed")
	}

	video := &model.Video{
		ID:           utils.NextID(),
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		VideoFile:    videoObj.URL,
		VideoFileKey: videoObj.Key,
		Thumbnail:    thumbObj.URL,
		ThumbnailKey: thumbObj.Key,
		Duration:     duration,
		IsPublished:  true,
		OwnerID:      req.OwnerId,
	}
	if err = db.InsertVideo(service.ctx, video); err != nil {
		discard(service.ctx, service.deps.Store, videoObj.Bucket, videoObj.Key, "publish failed")
		discard(service.ctx, service.deps.Store, thumbObj.Bucket, thumbObj.Key, "publish failed")
		return nil, errors.WithMessage(err, "dao.InsertVideo failed")
	}

	mq.Emit(service.ctx, service.deps.Publisher, mq.NewEvent(mq.VideoPublished, req.OwnerId,
		mq.VideoPayload{VideoID: video.ID, OwnerID: video.OwnerID, Title: video.Title}))
	return video, nil
}
