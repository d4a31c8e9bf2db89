package model

import "time"

type Comment struct {
	ID        int64        `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Content   string       `gorm:"type:text;not null" json:"content"`
	VideoID   int64        `gorm:"not null;index:idx_comment_video_created,priority:1" json:"videoId,string"`
	OwnerID   int64        `gorm:"not null;index" json:"ownerId,string"`
	Owner     *UserProfile `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt time.Time    `gorm:"index:idx_comment_video_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (c *Comment) OwnerRef() int64 {
	return c.OwnerID
}

// Like exists while LikedBy likes the target. (TargetType, TargetID, LikedBy)
// is its identity, so one row can only ever point at one kind of target.
type Like struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	TargetType string    `gorm:"size:16;not null;uniqueIndex:idx_like_identity,priority:1" json:"targetType"`
	TargetID   int64     `gorm:"not null;uniqueIndex:idx_like_identity,priority:2" json:"targetId,string"`
	LikedBy    int64     `gorm:"not null;uniqueIndex:idx_like_identity,priority:3;index" json:"likedBy,string"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LikedVideo is one row of a user's liked-videos listing.
type LikedVideo struct {
	LikedAt time.Time `json:"likedAt"`
	Video   *Video    `json:"video"`
}
