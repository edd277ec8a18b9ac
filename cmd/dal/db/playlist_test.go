package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/utils"
)

func newTestPlaylist(t *testing.T, userID int64, name string) *model.Playlist {
	t.Helper()
	playlist := &model.Playlist{
		PlaylistID:  utils.GenerateID(),
		UserID:      userID,
		Name:        name,
		Description: "about " + name,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, CreatePlaylist(context.Background(), playlist))
	return playlist
}

func TestPlaylistNameExistsCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "alice")
	playlist := newTestPlaylist(t, owner.UserID, "Chill Mix")

	taken, err := PlaylistNameExists(ctx, "chill mix", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = PlaylistNameExists(ctx, "CHILL MIX", playlist.PlaylistID)
	require.NoError(t, err)
	assert.False(t, taken, "a rename keeping the same name must not conflict with itself")

	taken, err = PlaylistNameExists(ctx, "other", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAddVideoToPlaylistPositionsAndDuplicates(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "bob")
	playlist := newTestPlaylist(t, owner.UserID, "Watch later")
	first := newTestVideo(t, owner.UserID, "first", true, time.Now())
	second := newTestVideo(t, owner.UserID, "second", true, time.Now())

	added, err := AddVideoToPlaylist(ctx, playlist.PlaylistID, first.VideoID)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = AddVideoToPlaylist(ctx, playlist.PlaylistID, second.VideoID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = AddVideoToPlaylist(ctx, playlist.PlaylistID, first.VideoID)
	require.NoError(t, err)
	assert.False(t, added, "duplicate add must be suppressed")

	count, err := GetPlaylistVideoCount(ctx, playlist.PlaylistID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var entries []model.PlaylistVideo
	require.NoError(t, DB.Where("playlist_id = ?", playlist.PlaylistID).Order("position ASC").Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.Equal(t, first.VideoID, entries[0].VideoID)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, second.VideoID, entries[1].VideoID)
	assert.Equal(t, 2, entries[1].Position)
}

func TestListPlaylistVideosOrderAndPublishFilter(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "carol")
	playlist := newTestPlaylist(t, owner.UserID, "Ordered")

	second := newTestVideo(t, owner.UserID, "second", true, time.Now())
	first := newTestVideo(t, owner.UserID, "first", true, time.Now())
	draft := newTestVideo(t, owner.UserID, "draft", false, time.Now())

	for _, videoID := range []int64{first.VideoID, second.VideoID, draft.VideoID} {
		_, err := AddVideoToPlaylist(ctx, playlist.PlaylistID, videoID)
		require.NoError(t, err)
	}

	videos, err := ListPlaylistVideos(ctx, playlist.PlaylistID, 0)
	require.NoError(t, err)
	require.Len(t, videos, 2, "unpublished entries stay hidden")
	assert.Equal(t, first.VideoID, videos[0].VideoID)
	assert.Equal(t, second.VideoID, videos[1].VideoID)
}

func TestDeletePlaylistRemovesMemberships(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "dora")
	playlist := newTestPlaylist(t, owner.UserID, "Doomed")
	video := newTestVideo(t, owner.UserID, "kept", true, time.Now())

	_, err := AddVideoToPlaylist(ctx, playlist.PlaylistID, video.VideoID)
	require.NoError(t, err)

	require.NoError(t, DeletePlaylist(ctx, playlist.PlaylistID))

	var memberships int64
	require.NoError(t, DB.Model(&model.PlaylistVideo{}).Count(&memberships).Error)
	assert.Zero(t, memberships)

	// The video itself stays.
	_, err = GetVideo(ctx, video.VideoID)
	assert.NoError(t, err)
}
