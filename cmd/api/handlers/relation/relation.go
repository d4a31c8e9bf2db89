package handlers

import (
	"context"
	"net/http"

	"VidTube.com/cmd/relation/service"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/toggle"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

var deps service.Deps

func Init(d service.Deps) {
	deps = d
}

type SubscriptionState struct {
	IsSubscribed bool `json:"isSubscribed"`
}

// ToggleSubscription POST /subscriptions/toggle/:channelId
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ParseID(c.Param("channelId"), "Invalid channel ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	state, err := service.NewRelationService(ctx, deps).ToggleSubscription(channelId, auth.UserID(c))
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	if state == toggle.Added {
		response.SendResponse(c, http.StatusCreated, "Subscribed successfully", SubscriptionState{IsSubscribed: true})
		return
	}
	response.SendResponse(c, http.StatusOK, "Unsubscribed successfully", SubscriptionState{IsSubscribed: false})
}

// ChannelSubscribers GET /subscriptions/channel/:channelId/subscribers
func ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ParseID(c.Param("channelId"), "Invalid channel ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	page := query.ParsePageRequest(c.Query("page"), c.Query("limit"))
	list, err := service.NewRelationService(ctx, deps).Subscribers(channelId, page)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Subscribers fetched successfully", list)
}

// SubscribedChannels GET /subscriptions/user/:subscriberId
func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberId, err := utils.ParseID(c.Param("subscriberId"), "Invalid subscriber ID")
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	page := query.ParsePageRequest(c.Query("page"), c.Query("limit"))
	list, err := service.NewRelationService(ctx, deps).SubscribedChannels(subscriberId, page)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, "Subscribed channels fetched successfully", list)
}
