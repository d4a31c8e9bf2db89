package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// ListComment GET /comments/:videoId
func ListComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseID(c.Param("videoId"), "Invalid video ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	page, err := service.NewCommentService(ctx, deps).ListComments(videoId, auth.UserID(c), pageOf(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Comments fetched successfully", page)
}
