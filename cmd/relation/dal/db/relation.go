package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateSubscription is a no-op when the pair already exists.
func CreateSubscription(ctx context.Context, channelId, subscriberId int64) error {
	sub := &model.Subscription{
		ID:           utils.NextID(),
		ChannelID:    channelId,
		SubscriberID: subscriberId,
	}
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub).Error; err != nil {
		return errors.Wrapf(err, "CreateSubscription failed, channel_id:%d subscriber_id:%d", channelId, subscriberId)
	}
	return nil
}

// DeleteSubscription reports whether a subscription was removed.
func DeleteSubscription(ctx context.Context, channelId, subscriberId int64) (bool, error) {
	res := DB.WithContext(ctx).
		Where("channel_id = ? AND subscriber_id = ?", channelId, subscriberId).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "DeleteSubscription failed, channel_id:%d subscriber_id:%d", channelId, subscriberId)
	}
	return res.RowsAffected > 0, nil
}

func CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribers failed, channel_id:%d", channelId)
	}
	return count, nil
}

// 频道的粉丝列表，最新关注的在前
func ListSubscribers(ctx context.Context, channelId int64, page query.PageRequest) ([]*model.Subscription, int64, error) {
	base := func() *gorm.DB {
		return DB.WithContext(ctx).Model(&model.Subscription{}).
			Joins("JOIN users ON users.id = subscriptions.subscriber_id").
			Where("subscriptions.channel_id = ?", channelId)
	}
	return listSubscriptions(base, "Subscriber", page)
}

// 用户关注的频道列表
func ListSubscribedChannels(ctx context.Context, subscriberId int64, page query.PageRequest) ([]*model.Subscription, int64, error) {
	base := func() *gorm.DB {
		return DB.WithContext(ctx).Model(&model.Subscription{}).
			Joins("JOIN users ON users.id = subscriptions.channel_id").
			Where("subscriptions.subscriber_id = ?", subscriberId)
	}
	return listSubscriptions(base, "Channel", page)
}

func listSubscriptions(base func() *gorm.DB, preload string, page query.PageRequest) ([]*model.Subscription, int64, error) {
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count subscriptions failed")
	}
	list := make([]*model.Subscription, 0)
	if total == 0 {
		return list, 0, nil
	}
	err := base().Select("subscriptions.*").
		Preload(preload).
		Order("subscriptions.created_at DESC").
		Order("subscriptions.id DESC").
		Scopes(page.Scope).
		Find(&list).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list subscriptions failed")
	}
	return list, total, nil
}
