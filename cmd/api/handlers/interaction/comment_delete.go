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

// DeleteComment DELETE /comments/:commentId
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ParseID(c.Param("commentId"), "Invalid comment ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	if err = service.NewCommentService(ctx, deps).DeleteComment(commentId, auth.UserID(c)); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Comment deleted successfully", nil)
}
