package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/pkg/errno"
)

func TestGetVideoHidesDraftsFromOthers(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "alice")
	stranger := newTestUser(t, "bob")
	draft := newTestVideo(t, owner.UserID, "draft", false)

	_, err := NewVideoDetailService(ctx).GetVideo(draft.VideoID, stranger.UserID)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	view, err := NewVideoDetailService(ctx).GetVideo(draft.VideoID, owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, draft.VideoID, view.VideoID)
	assert.False(t, view.IsPublished)
}

func TestGetVideoRecordsSideEffects(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "carol")
	viewer := newTestUser(t, "dora")
	video := newTestVideo(t, owner.UserID, "watched", true)

	view, err := NewVideoDetailService(ctx).GetVideo(video.VideoID, viewer.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.Views)

	// The counter bump and history write run off the request path.
	require.Eventually(t, func() bool {
		stored, err := db.GetVideo(context.Background(), video.VideoID)
		if err != nil || stored.VisitCount != 1 {
			return false
		}
		count, err := db.GetWatchHistoryCount(context.Background(), viewer.UserID, video.VideoID)
		return err == nil && count == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGetVideoOwnerViewHasNoSideEffects(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "erin")
	video := newTestVideo(t, owner.UserID, "own", true)

	view, err := NewVideoDetailService(ctx).GetVideo(video.VideoID, owner.UserID)
	require.NoError(t, err)
	assert.Zero(t, view.Views)

	count, err := db.GetWatchHistoryCount(ctx, owner.UserID, video.VideoID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetVideoMissing(t *testing.T) {
	setupTestDB(t)
	_, err := NewVideoDetailService(context.Background()).GetVideo(12345, 0)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}
