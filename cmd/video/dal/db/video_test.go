package db

import (
	"context"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/testutil"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
)

func setup(t *testing.T) {
	Init(testutil.NewDB(t))
}

func defaultFilter(viewer int64) VideoFilter {
	sort, _ := query.ParseSort("", "", SortFields, DefaultSortField, TieBreaker)
	return VideoFilter{ViewerId: viewer, Sort: sort, Page: query.NewPageRequest(1, 10)}
}

func titles(videos []*model.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.Title)
	}
	return out
}

func TestListVideosVisibility(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.SeedUser(t, DB, "alice")
	bob := testutil.SeedUser(t, DB, "bob")
	base := time.Now().Add(-time.Hour)
	testutil.SeedVideo(t, DB, alice.ID, "public", testutil.CreatedAt(base))
	testutil.SeedVideo(t, DB, alice.ID, "draft", testutil.Unpublished(), testutil.CreatedAt(base.Add(time.Minute)))

	videos, total, err := ListVideos(ctx, defaultFilter(bob.ID))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(1), total)
	assert.DeepEqual(t, []string{"public"}, titles(videos))
	assert.DeepEqual(t, "alice", videos[0].Owner.Username)

	videos, total, err = ListVideos(ctx, defaultFilter(alice.ID))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), total)
	assert.DeepEqual(t, []string{"draft", "public"}, titles(videos))
}

func TestListVideosDropsOrphanedOwners(t *testing.T) {
	setup(t)
	alice := testutil.SeedUser(t, DB, "alice")
	testutil.SeedVideo(t, DB, alice.ID, "kept")
	testutil.SeedVideo(t, DB, utils.NextID(), "ghost")

	videos, total, err := ListVideos(context.Background(), defaultFilter(alice.ID))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(1), total)
	assert.DeepEqual(t, []string{"kept"}, titles(videos))
}

func TestListVideosTextFilter(t *testing.T) {
	setup(t)
	alice := testutil.SeedUser(t, DB, "alice")
	testutil.SeedVideo(t, DB, alice.ID, "Learning Go")
	testutil.SeedVideo(t, DB, alice.ID, "go_fast 100%")
	testutil.SeedVideo(t, DB, alice.ID, "Cooking")

	f := defaultFilter(alice.ID)
	f.Text = "GO"
	_, total, err := ListVideos(context.Background(), f)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), total)

	// metacharacters are literal
	f.Text = "100%"
	videos, _, err := ListVideos(context.Background(), f)
	assert.Nil(t, err)
	assert.DeepEqual(t, []string{"go_fast 100%"}, titles(videos))

	f.Text = "o_f"
	videos, _, err = ListVideos(context.Background(), f)
	assert.Nil(t, err)
	assert.DeepEqual(t, []string{"go_fast 100%"}, titles(videos))
}

func TestListVideosSortAndPaging(t *testing.T) {
	setup(t)
	alice := testutil.SeedUser(t, DB, "alice")
	bob := testutil.SeedUser(t, DB, "bob")
	testutil.SeedVideo(t, DB, alice.ID, "a", testutil.WithViews(5))
	testutil.SeedVideo(t, DB, alice.ID, "b", testutil.WithViews(50))
	testutil.SeedVideo(t, DB, alice.ID, "c", testutil.WithViews(500))
	testutil.SeedVideo(t, DB, bob.ID, "d", testutil.WithViews(1))

	f := defaultFilter(alice.ID)
	f.Sort, _ = query.ParseSort("views", "asc", SortFields, DefaultSortField, TieBreaker)
	f.OwnerId = alice.ID
	f.Page = query.NewPageRequest(1, 2)
	videos, total, err := ListVideos(context.Background(), f)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(3), total)
	assert.DeepEqual(t, []string{"a", "b"}, titles(videos))

	f.Page = query.NewPageRequest(2, 2)
	videos, _, err = ListVideos(context.Background(), f)
	assert.Nil(t, err)
	assert.DeepEqual(t, []string{"c"}, titles(videos))

	f.Page = query.NewPageRequest(3, 2)
	videos, total, err = ListVideos(context.Background(), f)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(3), total)
	assert.DeepEqual(t, 0, len(videos))
}

func TestIncrementViewsAndPublish(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.SeedUser(t, DB, "alice")
	v := testutil.SeedVideo(t, DB, alice.ID, "clip")

	assert.Nil(t, IncrementViews(ctx, v.ID))
	assert.Nil(t, IncrementViews(ctx, v.ID))
	assert.Nil(t, SetPublished(ctx, v.ID, false))

	got, err := GetVideoWithOwner(ctx, v.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), got.Views)
	assert.False(t, got.IsPublished)
	assert.DeepEqual(t, alice.ID, got.Owner.ID)

	_, err = GetVideo(ctx, utils.NextID())
	assert.NotNil(t, err)
}

func TestDeleteVideoCascade(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.SeedUser(t, DB, "alice")
	bob := testutil.SeedUser(t, DB, "bob")
	v := testutil.SeedVideo(t, DB, alice.ID, "doomed")
	other := testutil.SeedVideo(t, DB, alice.ID, "survivor")
	c := testutil.SeedComment(t, DB, v.ID, bob.ID, "bye")
	keep := testutil.SeedComment(t, DB, other.ID, bob.ID, "still here")
	testutil.SeedLike(t, DB, constants.LikeTargetVideo, v.ID, bob.ID)
	testutil.SeedLike(t, DB, constants.LikeTargetComment, c.ID, alice.ID)
	testutil.SeedLike(t, DB, constants.LikeTargetComment, keep.ID, alice.ID)
	testutil.SeedLike(t, DB, constants.LikeTargetVideo, other.ID, bob.ID)

	orphans := []*model.MediaOrphan{
		{ID: utils.NextID(), Bucket: constants.VideoBucket, ObjectKey: v.VideoFileKey, Reason: "video deleted"},
		{ID: utils.NextID(), Bucket: constants.PictureBucket, ObjectKey: v.ThumbnailKey, Reason: "video deleted"},
	}
	assert.Nil(t, DeleteVideoCascade(ctx, v, orphans))

	var count int64
	DB.Model(&model.Video{}).Count(&count)
	assert.DeepEqual(t, int64(1), count)
	DB.Model(&model.Comment{}).Count(&count)
	assert.DeepEqual(t, int64(1), count)
	DB.Model(&model.Like{}).Count(&count)
	assert.DeepEqual(t, int64(2), count)

	pending, err := PendingOrphans(ctx, 10, 100)
	assert.Nil(t, err)
	assert.DeepEqual(t, 2, len(pending))

	// second delete finds nothing and must not record orphans again
	assert.NotNil(t, DeleteVideoCascade(ctx, v, []*model.MediaOrphan{{ID: utils.NextID(), Bucket: "video", ObjectKey: "x"}}))
	pending, _ = PendingOrphans(ctx, 10, 100)
	assert.DeepEqual(t, 2, len(pending))
}

func TestOrphanBookkeeping(t *testing.T) {
	setup(t)
	ctx := context.Background()
	o := &model.MediaOrphan{ID: utils.NextID(), Bucket: "video", ObjectKey: "video/a.mp4", Reason: "test"}
	assert.Nil(t, InsertOrphans(ctx, []*model.MediaOrphan{o}))
	// same object again is ignored
	assert.Nil(t, InsertOrphans(ctx, []*model.MediaOrphan{{ID: utils.NextID(), Bucket: "video", ObjectKey: "video/a.mp4", Reason: "test"}}))

	assert.Nil(t, MarkOrphanFailed(ctx, o.ID, "boom"))
	assert.Nil(t, MarkOrphanFailed(ctx, o.ID, "boom again"))
	pending, err := PendingOrphans(ctx, 10, 100)
	assert.Nil(t, err)
	assert.DeepEqual(t, 1, len(pending))
	assert.DeepEqual(t, 2, pending[0].Attempts)
	assert.DeepEqual(t, "boom again", pending[0].LastError)

	pending, err = PendingOrphans(ctx, 2, 100)
	assert.Nil(t, err)
	assert.DeepEqual(t, 0, len(pending))

	assert.Nil(t, DeleteOrphan(ctx, o.ID))
	pending, _ = PendingOrphans(ctx, 10, 100)
	assert.DeepEqual(t, 0, len(pending))
}

func TestChannelStats(t *testing.T) {
	setup(t)
	ctx := context.Background()
	alice := testutil.SeedUser(t, DB, "alice")
	bob := testutil.SeedUser(t, DB, "bob")
	v1 := testutil.SeedVideo(t, DB, alice.ID, "one", testutil.WithViews(10))
	testutil.SeedVideo(t, DB, alice.ID, "two", testutil.WithViews(5), testutil.Unpublished())
	bobs := testutil.SeedVideo(t, DB, bob.ID, "bobs", testutil.WithViews(99))
	testutil.SeedLike(t, DB, constants.LikeTargetVideo, v1.ID, bob.ID)
	testutil.SeedLike(t, DB, constants.LikeTargetVideo, v1.ID, alice.ID)
	// alice liking someone else's video does not count for her channel
	testutil.SeedLike(t, DB, constants.LikeTargetVideo, bobs.ID, alice.ID)

	n, err := CountVideos(ctx, alice.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), n)
	n, err = SumViews(ctx, alice.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(15), n)
	n, err = CountLikesOnOwnerVideos(ctx, alice.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), n)

	n, err = SumViews(ctx, utils.NextID())
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(0), n)

	videos, total, err := ListOwnerVideos(ctx, alice.ID, query.NewPageRequest(1, 10))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), total)
	assert.DeepEqual(t, 2, len(videos))
}
