package db

import (
	"context"

	"VidTube.com/cmd/model"
)

func isSubscribed(ctx context.Context, channelId, subscriberId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ? AND subscriber_id = ?", channelId, subscriberId).
		Count(&count).Error
	return count > 0, err
}
