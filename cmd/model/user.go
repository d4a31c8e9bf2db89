package model

import "time"

// User is owned by the upstream identity service; this service only reads it.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Username  string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	FullName  string    `gorm:"size:128" json:"fullName"`
	Avatar    string    `gorm:"size:512" json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProfile is the public projection of a User joined into listings.
type UserProfile struct {
	ID       int64  `gorm:"primaryKey" json:"id,string"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

func (UserProfile) TableName() string {
	return "users"
}
