package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/toggle"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// LikeState is the body of a like toggle response.
type LikeState struct {
	IsLiked bool `json:"isLiked"`
}

func sendToggle(c *app.RequestContext, state toggle.State, liked, unliked string) {
	if state == toggle.Added {
		response.SendResponse(c, http.StatusCreated, liked, LikeState{IsLiked: true})
		return
	}
	response.SendResponse(c, http.StatusOK, unliked, LikeState{IsLiked: false})
}

// ToggleVideoLike POST /likes/toggle/v/:videoId
func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ParseID(c.Param("videoId"), "Invalid video ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	state, err := service.NewLikeActionService(ctx, deps).ToggleVideoLike(videoId, auth.UserID(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	sendToggle(c, state, "Liked video", "Unliked video")
}

// ToggleCommentLike POST /likes/toggle/c/:commentId
func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	commentId, err := utils.ParseID(c.Param("commentId"), "Invalid comment ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	state, err := service.NewLikeActionService(ctx, deps).ToggleCommentLike(commentId, auth.UserID(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	sendToggle(c, state, "Liked comment", "Unliked comment")
}

// LikedVideos GET /likes/videos
func LikedVideos(ctx context.Context, c *app.RequestContext) {
	page, err := service.NewLikeActionService(ctx, deps).LikedVideos(auth.UserID(c), pageOf(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Liked videos fetched", page)
}
