package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/pkg/errno"
)

func TestGetChannelProfile(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	channel := registerTestUser(t, "channel", "x12345678")
	fan := registerTestUser(t, "fan", "x12345678")

	_, err := db.ToggleSubscription(ctx, fan.UserID, channel.UserID)
	require.NoError(t, err)
	_, err = db.ToggleSubscription(ctx, channel.UserID, fan.UserID)
	require.NoError(t, err)

	profile, err := NewChannelProfileService(ctx).GetChannelProfile("channel", fan.UserID)
	require.NoError(t, err)
	assert.Equal(t, channel.UserID, profile.UserID)
	assert.Equal(t, int64(1), profile.SubscriberCount)
	assert.Equal(t, int64(1), profile.SubscribedTo)
	assert.True(t, profile.IsSubscribed)

	anonymous, err := NewChannelProfileService(ctx).GetChannelProfile("channel", 0)
	require.NoError(t, err)
	assert.False(t, anonymous.IsSubscribed)

	_, err = NewChannelProfileService(ctx).GetChannelProfile("missing", 0)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}
