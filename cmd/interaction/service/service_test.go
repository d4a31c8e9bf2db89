package service

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/query"
	"VidTube.com/pkg/testutil"
	"VidTube.com/pkg/toggle"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
)

type fixture struct {
	ctx    context.Context
	deps   Deps
	events *mq.Recorder
	alice  *model.User
	bob    *model.User
	video  *model.Video
}

func newFixture(t *testing.T) *fixture {
	conn := testutil.NewDB(t)
	db.Init(conn)
	videodb.Init(conn)
	f := &fixture{ctx: context.Background(), events: &mq.Recorder{}}
	f.deps = Deps{Locker: lock.NewLocalLocker(), Publisher: f.events}
	f.alice = testutil.SeedUser(t, conn, "alice")
	f.bob = testutil.SeedUser(t, conn, "bob")
	f.video = testutil.SeedVideo(t, conn, f.alice.ID, "clip")
	return f
}

func errOf(err error) errno.ErrNo {
	return errno.ConvertErr(err)
}

func (f *fixture) likes(t *testing.T, targetType string, targetId int64) int64 {
	var n int64
	assert.Nil(t, db.DB.WithContext(f.ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetId).
		Count(&n).Error)
	return n
}

func (f *fixture) likedBy(t *testing.T, targetType string, targetId, userId int64) bool {
	var n int64
	assert.Nil(t, db.DB.WithContext(f.ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ? AND liked_by = ?", targetType, targetId, userId).
		Count(&n).Error)
	return n > 0
}

func TestCommentOwnershipScenario(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.ctx, f.deps)

	comment, err := svc.CreateComment(f.video.ID, f.alice.ID, "nice!")
	assert.Nil(t, err)
	assert.DeepEqual(t, "nice!", comment.Content)

	err = svc.DeleteComment(comment.ID, f.bob.ID)
	assert.DeepEqual(t, http.StatusForbidden, errOf(err).StatusCode)
	assert.DeepEqual(t, "You are not allowed to delete this comment", errOf(err).ErrMsg)
	page, err := svc.ListComments(f.video.ID, f.bob.ID, query.NewPageRequest(1, 10))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(1), page.TotalItems)

	assert.Nil(t, svc.DeleteComment(comment.ID, f.alice.ID))
	page, err = svc.ListComments(f.video.ID, f.bob.ID, query.NewPageRequest(1, 10))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(0), page.TotalItems)
	assert.DeepEqual(t, 0, len(page.Items))

	assert.DeepEqual(t, []string{mq.CommentCreated, mq.CommentDeleted}, f.events.Types())
}

func TestCommentValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.ctx, f.deps)

	_, err := svc.CreateComment(f.video.ID, f.bob.ID, "   ")
	assert.DeepEqual(t, http.StatusBadRequest, errOf(err).StatusCode)
	assert.DeepEqual(t, "Comment content is required", errOf(err).ErrMsg)

	_, err = svc.CreateComment(f.video.ID, f.bob.ID, strings.Repeat("é", constants.MaxCommentLength+1))
	assert.DeepEqual(t, http.StatusBadRequest, errOf(err).StatusCode)

	c, err := svc.CreateComment(f.video.ID, f.bob.ID, strings.Repeat("é", constants.MaxCommentLength))
	assert.Nil(t, err)
	assert.DeepEqual(t, constants.MaxCommentLength, len([]rune(c.Content)))

	_, err = svc.CreateComment(f.video.ID+1, f.bob.ID, "hello")
	assert.DeepEqual(t, http.StatusNotFound, errOf(err).StatusCode)
	assert.DeepEqual(t, "Video not found", errOf(err).ErrMsg)

	draft := testutil.SeedVideo(t, db.DB, f.alice.ID, "draft", testutil.Unpublished())
	_, err = svc.CreateComment(draft.ID, f.bob.ID, "sneaky")
	assert.DeepEqual(t, http.StatusNotFound, errOf(err).StatusCode)
	_, err = svc.ListComments(draft.ID, f.bob.ID, query.NewPageRequest(1, 10))
	assert.DeepEqual(t, http.StatusNotFound, errOf(err).StatusCode)
}

func TestUpdateComment(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.ctx, f.deps)
	c := testutil.SeedComment(t, db.DB, f.video.ID, f.bob.ID, "frist")

	_, err := svc.UpdateComment(c.ID, f.alice.ID, "first")
	assert.DeepEqual(t, http.StatusForbidden, errOf(err).StatusCode)
	assert.DeepEqual(t, "You are not allowed to update this comment", errOf(err).ErrMsg)

	_, err = svc.UpdateComment(c.ID+1, f.bob.ID, "first")
	assert.DeepEqual(t, "Comment not found", errOf(err).ErrMsg)

	_, err = svc.UpdateComment(c.ID, f.bob.ID, "")
	assert.DeepEqual(t, http.StatusBadRequest, errOf(err).StatusCode)

	updated, err := svc.UpdateComment(c.ID, f.bob.ID, " first ")
	assert.Nil(t, err)
	assert.DeepEqual(t, "first", updated.Content)
}

func TestToggleVideoLike(t *testing.T) {
	f := newFixture(t)
	svc := NewLikeActionService(f.ctx, f.deps)

	state, err := svc.ToggleVideoLike(f.video.ID, f.bob.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, toggle.Added, state)
	assert.DeepEqual(t, int64(1), f.likes(t, constants.LikeTargetVideo, f.video.ID))

	page, err := svc.LikedVideos(f.bob.ID, query.NewPageRequest(1, 10))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(1), page.TotalItems)
	assert.DeepEqual(t, f.video.ID, page.Items[0].Video.ID)

	state, err = svc.ToggleVideoLike(f.video.ID, f.bob.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, toggle.Removed, state)
	assert.DeepEqual(t, int64(0), f.likes(t, constants.LikeTargetVideo, f.video.ID))

	assert.DeepEqual(t, []string{mq.LikeAdded, mq.LikeRemoved}, f.events.Types())

	_, err = svc.ToggleVideoLike(f.video.ID+1, f.bob.ID)
	assert.DeepEqual(t, http.StatusNotFound, errOf(err).StatusCode)
}

func TestToggleCommentLike(t *testing.T) {
	f := newFixture(t)
	svc := NewLikeActionService(f.ctx, f.deps)
	c := testutil.SeedComment(t, db.DB, f.video.ID, f.alice.ID, "hi")

	state, err := svc.ToggleCommentLike(c.ID, f.bob.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, toggle.Added, state)
	assert.True(t, f.likedBy(t, constants.LikeTargetComment, c.ID, f.bob.ID))
	// the video itself is not liked
	assert.False(t, f.likedBy(t, constants.LikeTargetVideo, f.video.ID, f.bob.ID))

	_, err = svc.ToggleCommentLike(c.ID+1, f.bob.ID)
	assert.DeepEqual(t, "Comment not found", errOf(err).ErrMsg)
}

func TestToggleCommentLikeOnDraftVideo(t *testing.T) {
	f := newFixture(t)
	svc := NewLikeActionService(f.ctx, f.deps)
	draft := testutil.SeedVideo(t, db.DB, f.alice.ID, "draft", testutil.Unpublished())
	c := testutil.SeedComment(t, db.DB, draft.ID, f.alice.ID, "wip")

	_, err := svc.ToggleCommentLike(c.ID, f.bob.ID)
	assert.DeepEqual(t, http.StatusNotFound, errOf(err).StatusCode)
	assert.False(t, f.likedBy(t, constants.LikeTargetComment, c.ID, f.bob.ID))
	assert.DeepEqual(t, 0, len(f.events.Types()))

	state, err := svc.ToggleCommentLike(c.ID, f.alice.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, toggle.Added, state)
	assert.DeepEqual(t, int64(1), f.likes(t, constants.LikeTargetComment, c.ID))
}

func TestConcurrentTogglesStayConsistent(t *testing.T) {
	f := newFixture(t)
	svc := NewLikeActionService(f.ctx, f.deps)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		added   int
		removed int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state, err := svc.ToggleVideoLike(f.video.ID, f.bob.ID)
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			if state == toggle.Added {
				added++
			} else {
				removed++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.DeepEqual(t, 10, added)
	assert.DeepEqual(t, 10, removed)
	assert.DeepEqual(t, int64(0), f.likes(t, constants.LikeTargetVideo, f.video.ID))
}
