package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/dashboard/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
)

// ChannelStats GET /dashboard/stats
func ChannelStats(ctx context.Context, c *app.RequestContext) {
	stats, err := service.NewDashboardService(ctx).ChannelStats(auth.UserID(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Channel stats fetched successfully", stats)
}

// ChannelVideos GET /dashboard/videos
func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	page := query.ParsePageRequest(c.Query("page"), c.Query("limit"))
	videos, err := service.NewDashboardService(ctx).ChannelVideos(auth.UserID(c), page)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Channel videos fetched successfully", videos)
}
