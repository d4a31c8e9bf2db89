package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// VideoList GET /videos
func VideoList(ctx context.Context, c *app.RequestContext) {
	var param VideoListParam
	if err := c.Bind(&param); err != nil {
		response.SendError(ctx, c, errno.ParamErr.WithMessage("Invalid query parameters"))
		return
	}
	ownerId, _, err := utils.ParseOptionalID(param.UserId, "Invalid user ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	page, err := service.NewVideoListService(ctx).VideoList(&service.VideoListRequest{
		ViewerId: auth.UserID(c),
		OwnerId:  ownerId,
		Text:     param.Query,
		SortBy:   param.SortBy,
		SortType: param.SortType,
		Page:     query.ParsePageRequest(param.Page, param.Limit),
	})
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Videos fetched successfully", page)
}

// VideoInfo GET /videos/:videoId
func VideoInfo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseID(c.Param("videoId"), "Invalid video ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	video, err := service.NewVideoListService(ctx).VideoInfo(videoId, auth.UserID(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Video fetched successfully", video)
}
