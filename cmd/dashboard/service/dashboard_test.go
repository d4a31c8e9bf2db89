package service

import (
	"context"
	"testing"

	relationdb "VidTube.com/cmd/relation/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/testutil"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
)

func TestChannelStats(t *testing.T) {
	conn := testutil.NewDB(t)
	videodb.Init(conn)
	relationdb.Init(conn)
	alice := testutil.SeedUser(t, conn, "alice")
	bob := testutil.SeedUser(t, conn, "bob")
	carol := testutil.SeedUser(t, conn, "carol")
	v := testutil.SeedVideo(t, conn, alice.ID, "one", testutil.WithViews(7))
	testutil.SeedVideo(t, conn, alice.ID, "two", testutil.WithViews(3), testutil.Unpublished())
	testutil.SeedLike(t, conn, constants.LikeTargetVideo, v.ID, bob.ID)
	testutil.SeedLike(t, conn, constants.LikeTargetVideo, v.ID, carol.ID)
	testutil.SeedSubscription(t, conn, alice.ID, bob.ID)

	svc := NewDashboardService(context.Background())
	stats, err := svc.ChannelStats(alice.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, ChannelStats{TotalVideos: 2, TotalSubscribers: 1, TotalViews: 10, TotalLikes: 2}, *stats)

	empty, err := svc.ChannelStats(carol.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, ChannelStats{}, *empty)

	page, err := svc.ChannelVideos(alice.ID, query.NewPageRequest(1, 1))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), page.TotalItems)
	assert.DeepEqual(t, int64(2), page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.DeepEqual(t, "two", page.Items[0].Title)
}
