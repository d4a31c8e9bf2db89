package service

import (
	"context"
	"fmt"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/toggle"
	"github.com/pkg/errors"
)

type Deps struct {
	Locker    lock.Locker
	Publisher mq.Publisher
}

var (
	SelfSubscribeErr   = errno.ParamErr.WithMessage("You cannot subscribe to your own channel")
	ChannelNotFoundErr = errno.NotFoundErr.WithMessage("Channel not found")
	UserNotFoundErr    = errno.NotFoundErr.WithMessage("User not found")
)

type RelationService struct {
	ctx  context.Context
	deps Deps
}

func NewRelationService(ctx context.Context, deps Deps) *RelationService {
	return &RelationService{ctx: ctx, deps: deps}
}

func subscriptionKey(channelId, subscriberId int64) string {
	return fmt.Sprintf("subscription:%d:%d", channelId, subscriberId)
}

func (service *RelationService) ensureUser(userId int64, notFound error) error {
	ok, err := userdb.UserExists(service.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "dao.UserExists failed")
	}
	if !ok {
		return notFound
	}
	return nil
}

// ToggleSubscription subscribes the requester to the channel, or unsubscribes
// when already subscribed.
func (service *RelationService) ToggleSubscription(channelId, subscriberId int64) (toggle.State, error) {
	if channelId == subscriberId {
		return 0, SelfSubscribeErr
	}
	if err := service.ensureUser(channelId, ChannelNotFoundErr); err != nil {
		return 0, err
	}
	state, err := toggle.Toggle(service.ctx, service.deps.Locker, subscriptionKey(channelId, subscriberId), toggle.Ops{
		Remove: func(ctx context.Context) (bool, error) {
			return db.DeleteSubscription(ctx, channelId, subscriberId)
		},
		Create: func(ctx context.Context) error {
			return db.CreateSubscription(ctx, channelId, subscriberId)
		},
	})
	if err != nil {
		return 0, err
	}

	eventType := mq.SubscriptionAdded
	if state == toggle.Removed {
		eventType = mq.SubscriptionRemoved
	}
	mq.Emit(service.ctx, service.deps.Publisher, mq.NewEvent(eventType, subscriberId,
		mq.SubscriptionPayload{ChannelID: channelId}))
	return state, nil
}

func (service *RelationService) Subscribers(channelId int64, page query.PageRequest) (*query.Page[*model.Subscription], error) {
	if err := service.ensureUser(channelId, ChannelNotFoundErr); err != nil {
		return nil, err
	}
	list, total, err := db.ListSubscribers(service.ctx, channelId, page)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscribers failed")
	}
	return query.NewPage(list, total, page), nil
}

func (service *RelationService) SubscribedChannels(subscriberId int64, page query.PageRequest) (*query.Page[*model.Subscription], error) {
	if err := service.ensureUser(subscriberId, UserNotFoundErr); err != nil {
		return nil, err
	}
	list, total, err := db.ListSubscribedChannels(service.ctx, subscriberId, page)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscribedChannels failed")
	}
	return query.NewPage(list, total, page), nil
}
