package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateComment POST /comments/:videoId
func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseID(c.Param("videoId"), "Invalid video ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var param CommentParam
	if err = c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind comment body: %v", err)
		response.SendError(ctx, c, errno.ParamErr.WithMessage("Invalid request body"))
		return
	}
	comment, err := service.NewCommentService(ctx, deps).CreateComment(videoId, auth.UserID(c), param.Content)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusCreated, "Comment added successfully", comment)
}
