package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidora/vidora/cmd/model"
)

func TestListVideosPagination(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "alice")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 12; i++ {
		newTestVideo(t, owner.UserID, "video", true, base.Add(time.Duration(i)*time.Minute))
	}

	list, total, err := ListVideos(ctx, &VideoQueryParams{PageNum: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, list, 5)

	list, total, err = ListVideos(ctx, &VideoQueryParams{PageNum: 3, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, list, 2)
}

func TestListVideosExcludesUnpublished(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "bob")

	newTestVideo(t, owner.UserID, "public", true, time.Now())
	newTestVideo(t, owner.UserID, "draft", false, time.Now())

	list, total, err := ListVideos(ctx, &VideoQueryParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "public", list[0].Title)
}

func TestListVideosKeywordAndOwnerFilter(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := newTestUser(t, "alice")
	bob := newTestUser(t, "bob")

	newTestVideo(t, alice.UserID, "Cooking pasta", true, time.Now())
	newTestVideo(t, alice.UserID, "Gardening", true, time.Now())
	newTestVideo(t, bob.UserID, "Pasta history", true, time.Now())

	list, total, err := ListVideos(ctx, &VideoQueryParams{Keyword: "pasta"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	list, total, err = ListVideos(ctx, &VideoQueryParams{Keyword: "pasta", OwnerID: alice.UserID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Cooking pasta", list[0].Title)
	assert.Equal(t, "alice", list[0].OwnerName)
}

func TestListVideosSorting(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "carol")

	v1 := newTestVideo(t, owner.UserID, "first", true, time.Now().Add(-2*time.Minute))
	v2 := newTestVideo(t, owner.UserID, "second", true, time.Now().Add(-time.Minute))
	require.NoError(t, DB.Model(&model.Video{}).Where("video_id = ?", v1.VideoID).
		Update("visit_count", 10).Error)

	list, _, err := ListVideos(ctx, &VideoQueryParams{SortBy: "createdAt", SortType: "desc"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, v2.VideoID, list[0].VideoID)

	list, _, err = ListVideos(ctx, &VideoQueryParams{SortBy: "views", SortType: "desc"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, v1.VideoID, list[0].VideoID)
}

func TestGetVideoStatsFlags(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "dora")
	viewer := newTestUser(t, "erin")
	video := newTestVideo(t, owner.UserID, "flagged", true, time.Now())

	liked, err := ToggleVideoLike(ctx, viewer.UserID, video.VideoID)
	require.NoError(t, err)
	require.True(t, liked)
	subscribed, err := ToggleSubscription(ctx, viewer.UserID, owner.UserID)
	require.NoError(t, err)
	require.True(t, subscribed)

	stats, err := GetVideoStats(ctx, video.VideoID, viewer.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.LikeCount)
	assert.NotZero(t, stats.IsLiked)
	assert.Equal(t, int64(1), stats.OwnerSubscribers)
	assert.NotZero(t, stats.IsSubscribed)

	anonymous, err := GetVideoStats(ctx, video.VideoID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), anonymous.LikeCount)
	assert.Zero(t, anonymous.IsLiked)
	assert.Zero(t, anonymous.IsSubscribed)
}

func TestIncrVisitCount(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "frank")
	video := newTestVideo(t, owner.UserID, "counted", true, time.Now())

	require.NoError(t, IncrVisitCount(ctx, video.VideoID))
	require.NoError(t, IncrVisitCount(ctx, video.VideoID))

	got, err := GetVideo(ctx, video.VideoID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.VisitCount)
}

func TestDeleteVideoCascade(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "grace")
	fan := newTestUser(t, "henry")
	video := newTestVideo(t, owner.UserID, "doomed", true, time.Now())
	comment := newTestComment(t, fan.UserID, video.VideoID, "nice", time.Now())

	_, err := ToggleVideoLike(ctx, fan.UserID, video.VideoID)
	require.NoError(t, err)
	_, err = ToggleCommentLike(ctx, owner.UserID, comment.CommentID)
	require.NoError(t, err)
	require.NoError(t, UpsertWatchHistory(ctx, fan.UserID, video.VideoID))

	playlist := &model.Playlist{PlaylistID: 1, UserID: owner.UserID, Name: "mine", Description: "d"}
	require.NoError(t, DB.Create(playlist).Error)
	_, err = AddVideoToPlaylist(ctx, playlist.PlaylistID, video.VideoID)
	require.NoError(t, err)

	require.NoError(t, DeleteVideoCascade(ctx, video.VideoID))

	for _, target := range []interface{}{
		&model.Video{}, &model.Comment{}, &model.Like{}, &model.PlaylistVideo{}, &model.WatchHistory{},
	} {
		var count int64
		require.NoError(t, DB.Model(target).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestListLikedVideos(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	owner := newTestUser(t, "iris")
	fan := newTestUser(t, "jack")

	liked := newTestVideo(t, owner.UserID, "liked", true, time.Now())
	newTestVideo(t, owner.UserID, "ignored", true, time.Now())
	draft := newTestVideo(t, owner.UserID, "draft", false, time.Now())

	for _, videoID := range []int64{liked.VideoID, draft.VideoID} {
		on, err := ToggleVideoLike(ctx, fan.UserID, videoID)
		require.NoError(t, err)
		require.True(t, on)
	}

	list, total, err := ListLikedVideos(ctx, fan.UserID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, liked.VideoID, list[0].VideoID)
	assert.NotZero(t, list[0].IsLiked)
}
