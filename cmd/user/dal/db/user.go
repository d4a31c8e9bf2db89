package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

func UserExists(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "UserExists failed, user_id:%d", userId)
	}
	return count > 0, nil
}

// Ping checks the connection behind DB.
func Ping(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
