package main

import (
	dashboard "VidTube.com/cmd/api/handlers/dashboard"
	interaction "VidTube.com/cmd/api/handlers/interaction"
	relation "VidTube.com/cmd/api/handlers/relation"
	system "VidTube.com/cmd/api/handlers/system"
	video "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/middleware"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/jwt"
)

// register registers all routers.
func register(r *server.Hertz, mw *jwt.HertzJWTMiddleware) {
	r.GET("/health", system.Health)

	v1 := r.Group(constants.APIPrefix, authfunc.Auth(mw)...)
	toggle := middleware.FlowControl(middleware.ToggleResource)

	comments := v1.Group("/comments")
	comments.GET("/:videoId", interaction.ListComment)
	comments.POST("/:videoId", interaction.CreateComment)
	comments.PATCH("/:commentId", interaction.UpdateComment)
	comments.DELETE("/:commentId", interaction.DeleteComment)

	likes := v1.Group("/likes")
	likes.POST("/toggle/v/:videoId", toggle, interaction.ToggleVideoLike)
	likes.POST("/toggle/c/:commentId", toggle, interaction.ToggleCommentLike)
	likes.GET("/videos", interaction.LikedVideos)

	subscriptions := v1.Group("/subscriptions")
	subscriptions.POST("/toggle/:channelId", toggle, relation.ToggleSubscription)
	subscriptions.GET("/channel/:channelId/subscribers", relation.ChannelSubscribers)
	subscriptions.GET("/user/:subscriberId", relation.SubscribedChannels)

	videos := v1.Group("/videos")
	videos.GET("", video.VideoList)
	videos.POST("", video.PublishVideo)
	videos.GET("/:videoId", video.VideoInfo)
	videos.PATCH("/:videoId", video.UpdateVideo)
	videos.DELETE("/:videoId", video.DeleteVideo)
	videos.PATCH("/:videoId/publish", video.TogglePublish)

	stats := v1.Group("/dashboard")
	stats.GET("/stats", dashboard.ChannelStats)
	stats.GET("/videos", dashboard.ChannelVideos)
}
