package model

import "time"

type Video struct {
	ID           int64        `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	VideoFile    string       `gorm:"size:512;not null" json:"videoFile"`
	VideoFileKey string       `gorm:"size:255;not null" json:"-"`
	Thumbnail    string       `gorm:"size:512;not null" json:"thumbnail"`
	ThumbnailKey string       `gorm:"size:255;not null" json:"-"`
	Duration     float64      `gorm:"not null" json:"duration"`
	IsPublished  bool         `gorm:"not null;index" json:"isPublished"`
	OwnerID      int64        `gorm:"not null;index" json:"ownerId,string"`
	Owner        *UserProfile `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Views        int64        `gorm:"not null" json:"views"`
	CreatedAt    time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (v *Video) OwnerRef() int64 {
	return v.OwnerID
}

// VisibleTo reports whether viewer may see the video at all.
func (v *Video) VisibleTo(viewer int64) bool {
	return v.IsPublished || v.OwnerID == viewer
}
