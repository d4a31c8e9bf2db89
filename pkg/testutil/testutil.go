// Package testutil opens throwaway databases and seeds rows for tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/utils"
	"gorm.io/gorm"
)

// NewDB opens a migrated sqlite database in the test's temp dir.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vidtube.db")
	db, err := database.Open(database.DriverSqlite, path+"?_busy_timeout=5000")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func SeedUser(t testing.TB, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       utils.NextID(),
		Username: username,
		Email:    username + "@vidtube.test",
		FullName: username,
		Avatar:   "http://media.test/picture/avatar/" + username + ".png",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

// VideoOption tweaks a seeded video.
type VideoOption func(v *model.Video)

func Unpublished() VideoOption {
	return func(v *model.Video) { v.IsPublished = false }
}

func WithViews(n int64) VideoOption {
	return func(v *model.Video) { v.Views = n }
}

func CreatedAt(ts time.Time) VideoOption {
	return func(v *model.Video) { v.CreatedAt = ts }
}

func SeedVideo(t testing.TB, db *gorm.DB, owner int64, title string, opts ...VideoOption) *model.Video {
	t.Helper()
	id := utils.NextID()
	v := &model.Video{
		ID:           id,
		Title:        title,
		Description:  "about " + title,
		VideoFile:    "http://media.test/video/video/" + title + ".mp4",
		VideoFileKey: "video/" + title + ".mp4",
		Thumbnail:    "http://media.test/picture/image/" + title + ".png",
		ThumbnailKey: "image/" + title + ".png",
		Duration:     12.5,
		IsPublished:  true,
		OwnerID:      owner,
	}
	for _, opt := range opts {
		opt(v)
	}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed video %s: %v", title, err)
	}
	return v
}

func SeedComment(t testing.TB, db *gorm.DB, videoID, owner int64, content string) *model.Comment {
	t.Helper()
	c := &model.Comment{ID: utils.NextID(), Content: content, VideoID: videoID, OwnerID: owner}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return c
}

func SeedLike(t testing.TB, db *gorm.DB, targetType string, targetID, user int64) *model.Like {
	t.Helper()
	l := &model.Like{ID: utils.NextID(), TargetType: targetType, TargetID: targetID, LikedBy: user}
	if err := db.Create(l).Error; err != nil {
		t.Fatalf("seed like: %v", err)
	}
	return l
}

func SeedSubscription(t testing.TB, db *gorm.DB, channel, subscriber int64) *model.Subscription {
	t.Helper()
	s := &model.Subscription{ID: utils.NextID(), ChannelID: channel, SubscriberID: subscriber}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed subscription: %v", err)
	}
	return s
}
