package service

import (
	"context"

	"VidTube.com/cmd/model"
	relationdb "VidTube.com/cmd/relation/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/query"
	"github.com/pkg/errors"
)

// ChannelStats is the rollup shown on a channel's dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
}

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// ChannelStats counts the channel's videos, subscribers, views across its
// videos and likes received on its videos.
func (service *DashboardService) ChannelStats(channelId int64) (*ChannelStats, error) {
	var (
		stats ChannelStats
		err   error
	)
	if stats.TotalVideos, err = videodb.CountVideos(service.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideos failed")
	}
	if stats.TotalSubscribers, err = relationdb.CountSubscribers(service.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}
	if stats.TotalViews, err = videodb.SumViews(service.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.SumViews failed")
	}
	if stats.TotalLikes, err = videodb.CountLikesOnOwnerVideos(service.ctx, channelId); err != nil {
		return nil, errors.WithMessage(err, "dao.CountLikesOnOwnerVideos failed")
	}
	return &stats, nil
}

// ChannelVideos pages every video of the channel, drafts included.
func (service *DashboardService) ChannelVideos(channelId int64, page query.PageRequest) (*query.Page[*model.Video], error) {
	videos, total, err := videodb.ListOwnerVideos(service.ctx, channelId, page)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListOwnerVideos failed")
	}
	return query.NewPage(videos, total, page), nil
}
