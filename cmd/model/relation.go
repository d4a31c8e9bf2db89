package model

import "time"

// Subscription exists while SubscriberID follows the channel ChannelID.
type Subscription struct {
	ID           int64        `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	ChannelID    int64        `gorm:"not null;uniqueIndex:idx_subscription_pair,priority:1" json:"channelId,string"`
	SubscriberID int64        `gorm:"not null;uniqueIndex:idx_subscription_pair,priority:2;index" json:"subscriberId,string"`
	Channel      *UserProfile `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
	Subscriber   *UserProfile `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}
