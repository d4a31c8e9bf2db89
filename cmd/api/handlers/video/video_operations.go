package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// UpdateVideo PATCH /videos/:videoId (JSON, or multipart with an optional thumbnail)
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseID(c.Param("videoId"), "Invalid video ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var param UpdateVideoParam
	if err = c.Bind(&param); err != nil {
		response.SendError(ctx, c, errno.ParamErr.WithMessage("Invalid request body"))
		return
	}
	thumbnail, err := saveUpload(c, "thumbnail")
	defer cleanup(ctx, thumbnail)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}

	req := &service.UpdateRequest{
		VideoId:     videoId,
		RequesterId: auth.UserID(c),
		Title:       param.Title,
		Description: param.Description,
	}
	if thumbnail != nil {
		req.ThumbnailPath = thumbnail.Path
		req.ThumbnailContentType = thumbnail.ContentType
	}
	video, err := service.NewVideoUpdateService(ctx, deps).Update(req)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Video updated successfully", video)
}

// DeleteVideo DELETE /videos/:videoId
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseID(c.Param("videoId"), "Invalid video ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	if err = service.NewVideoDeleteService(ctx, deps).Delete(videoId, auth.UserID(c)); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Video deleted successfully.", nil)
}

type PublishState struct {
	IsPublished bool `json:"isPublished"`
}

// TogglePublish PATCH /videos/:videoId/publish
func TogglePublish(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseID(c.Param("videoId"), "Invalid video ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	published, err := service.NewVideoUpdateService(ctx, deps).TogglePublish(videoId, auth.UserID(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Publish status toggled successfully", PublishState{IsPublished: published})
}
