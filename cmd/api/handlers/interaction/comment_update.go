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
)

// UpdateComment PATCH /comments/:commentId
func UpdateComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ParseID(c.Param("commentId"), "Invalid comment ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	var param CommentParam
	if err = c.Bind(&param); err != nil {
		response.SendError(ctx, c, errno.ParamErr.WithMessage("Invalid request body"))
		return
	}
	comment, err := service.NewCommentService(ctx, deps).UpdateComment(commentId, auth.UserID(c), param.Content)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Comment updated successfully", comment)
}
