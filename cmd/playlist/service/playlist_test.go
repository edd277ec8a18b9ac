package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/utils"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// One shared in-memory database per test; a second connection would see
	// an empty schema.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))
	db.DB = gdb
}

func newTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		UserID:    utils.GenerateID(),
		UserName:  username,
		FullName:  username + " full",
		Email:     username + "@example.com",
		Password:  "hashed",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.DB.Create(user).Error)
	return user
}

func newTestVideo(t *testing.T, ownerID int64, title string, published bool, visits int64) *model.Video {
	t.Helper()
	video := &model.Video{
		VideoID:     utils.GenerateID(),
		UserID:      ownerID,
		Title:       title,
		Description: "about " + title,
		VisitCount:  visits,
		IsPublished: published,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, db.DB.Create(video).Error)
	return video
}

func TestCreatePlaylistNameConflict(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "alice")
	other := newTestUser(t, "bob")
	svc := NewPlaylistService(ctx)

	_, err := svc.CreatePlaylist(owner.UserID, "Chill Mix", "calm stuff")
	require.NoError(t, err)

	// The name is platform-wide unique, case-insensitively, even across owners.
	_, err = svc.CreatePlaylist(other.UserID, "chill mix", "also calm")
	require.Error(t, err)
	assert.EqualValues(t, errno.ConflictErrCode, errno.ConvertErr(err).ErrCode)

	_, err = svc.CreatePlaylist(owner.UserID, "   ", "missing name")
	require.Error(t, err)
	assert.EqualValues(t, errno.RequestErrCode, errno.ConvertErr(err).ErrCode)
}

func TestUpdatePlaylistRename(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "carol")
	stranger := newTestUser(t, "dora")
	svc := NewPlaylistService(ctx)

	first, err := svc.CreatePlaylist(owner.UserID, "First", "d")
	require.NoError(t, err)
	_, err = svc.CreatePlaylist(owner.UserID, "Second", "d")
	require.NoError(t, err)

	_, err = svc.UpdatePlaylist(first.PlaylistID, stranger.UserID, "Renamed", "")
	require.Error(t, err)
	assert.EqualValues(t, errno.RequestErrCode, errno.ConvertErr(err).ErrCode)

	_, err = svc.UpdatePlaylist(first.PlaylistID, owner.UserID, "second", "")
	require.Error(t, err)
	assert.EqualValues(t, errno.ConflictErrCode, errno.ConvertErr(err).ErrCode)

	renamed, err := svc.UpdatePlaylist(first.PlaylistID, owner.UserID, "FIRST", "")
	require.NoError(t, err)
	assert.Equal(t, "FIRST", renamed.Name, "renaming to the same name in a different case is allowed")
}

func TestPlaylistVideoMembership(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "erin")
	stranger := newTestUser(t, "frank")
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(owner.UserID, "Mix", "d")
	require.NoError(t, err)
	video := newTestVideo(t, owner.UserID, "clip", true, 7)

	_, err = svc.AddVideo(playlist.PlaylistID, video.VideoID, stranger.UserID)
	require.Error(t, err)
	assert.EqualValues(t, errno.RequestErrCode, errno.ConvertErr(err).ErrCode)

	added, err := svc.AddVideo(playlist.PlaylistID, video.VideoID, owner.UserID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.AddVideo(playlist.PlaylistID, video.VideoID, owner.UserID)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = svc.AddVideo(playlist.PlaylistID, 42, owner.UserID)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)

	require.NoError(t, svc.RemoveVideo(playlist.PlaylistID, video.VideoID, owner.UserID))
	count, err := db.GetPlaylistVideoCount(ctx, playlist.PlaylistID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetPlaylistAggregates(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "grace")
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(owner.UserID, "Totals", "d")
	require.NoError(t, err)
	first := newTestVideo(t, owner.UserID, "first", true, 10)
	second := newTestVideo(t, owner.UserID, "second", true, 5)
	for _, videoID := range []int64{first.VideoID, second.VideoID} {
		_, err := svc.AddVideo(playlist.PlaylistID, videoID, owner.UserID)
		require.NoError(t, err)
	}

	view, err := svc.GetPlaylist(playlist.PlaylistID, 0)
	require.NoError(t, err)
	assert.Equal(t, "grace", view.Owner.UserName)
	assert.Equal(t, int64(2), view.VideoCount)
	assert.Equal(t, int64(15), view.TotalViews)
	require.Len(t, view.Videos, 2)
	assert.Equal(t, first.VideoID, view.Videos[0].VideoID)

	_, err = svc.GetPlaylist(999, 0)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}

func TestListUserPlaylists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "henry")
	svc := NewPlaylistService(ctx)

	playlist, err := svc.CreatePlaylist(owner.UserID, "Counted", "d")
	require.NoError(t, err)
	video := newTestVideo(t, owner.UserID, "clip", true, 0)
	_, err = svc.AddVideo(playlist.PlaylistID, video.VideoID, owner.UserID)
	require.NoError(t, err)

	views, err := svc.ListUserPlaylists(owner.UserID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].VideoCount)
	assert.Equal(t, "henry", views[0].Owner.UserName)
}
