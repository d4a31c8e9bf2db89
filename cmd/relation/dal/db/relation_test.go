package db

import (
	"context"
	"testing"

	"VidTube.com/pkg/query"
	"VidTube.com/pkg/testutil"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
)

func TestSubscriptionCreateDelete(t *testing.T) {
	Init(testutil.NewDB(t))
	ctx := context.Background()
	alice := testutil.SeedUser(t, DB, "alice")
	bob := testutil.SeedUser(t, DB, "bob")

	assert.Nil(t, CreateSubscription(ctx, alice.ID, bob.ID))
	assert.Nil(t, CreateSubscription(ctx, alice.ID, bob.ID))
	n, err := CountSubscribers(ctx, alice.ID)
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(1), n)

	ok, err := isSubscribed(ctx, bob.ID, alice.ID)
	assert.Nil(t, err)
	assert.False(t, ok)

	removed, err := DeleteSubscription(ctx, alice.ID, bob.ID)
	assert.Nil(t, err)
	assert.True(t, removed)
	removed, err = DeleteSubscription(ctx, alice.ID, bob.ID)
	assert.Nil(t, err)
	assert.False(t, removed)
}

func TestListSubscribersAndChannels(t *testing.T) {
	Init(testutil.NewDB(t))
	ctx := context.Background()
	alice := testutil.SeedUser(t, DB, "alice")
	bob := testutil.SeedUser(t, DB, "bob")
	carol := testutil.SeedUser(t, DB, "carol")
	testutil.SeedSubscription(t, DB, alice.ID, bob.ID)
	testutil.SeedSubscription(t, DB, alice.ID, carol.ID)
	testutil.SeedSubscription(t, DB, carol.ID, bob.ID)

	subs, total, err := ListSubscribers(ctx, alice.ID, query.NewPageRequest(1, 10))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), total)
	assert.DeepEqual(t, "carol", subs[0].Subscriber.Username)
	assert.DeepEqual(t, "bob", subs[1].Subscriber.Username)
	assert.True(t, subs[0].Channel == nil)

	channels, total, err := ListSubscribedChannels(ctx, bob.ID, query.NewPageRequest(1, 1))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(2), total)
	assert.DeepEqual(t, 1, len(channels))
	assert.DeepEqual(t, "carol", channels[0].Channel.Username)

	none, total, err := ListSubscribers(ctx, bob.ID, query.NewPageRequest(1, 10))
	assert.Nil(t, err)
	assert.DeepEqual(t, int64(0), total)
	assert.DeepEqual(t, 0, len(none))
}
