package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
)

// PublishVideo POST /videos (multipart: videoFile, thumbnail, title, description)
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	videoFile, err := saveUpload(c, "videoFile")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	thumbnail, err := saveUpload(c, "thumbnail")
	defer cleanup(ctx, videoFile, thumbnail)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	if videoFile == nil || thumbnail == nil {
		response.SendError(ctx, c, errno.ParamErr.WithMessage("Both videoFile and thumbnail are required."))
		return
	}

	video, err := service.NewVideoUploadService(ctx, deps).Publish(&service.PublishRequest{
		OwnerId:              auth.UserID(c),
		Title:                string(c.FormValue("title")),
		Description:          string(c.FormValue("description")),
		VideoPath:            videoFile.Path,
		VideoContentType:     videoFile.ContentType,
		ThumbnailPath:        thumbnail.Path,
		ThumbnailContentType: thumbnail.ContentType,
	})
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusCreated, "Video published successfully", video)
}
