package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/utils"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed, name: %s", playlist.Name)
	}
	return nil
}

func GetPlaylist(ctx context.Context, playlistID int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistID).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

// PlaylistNameExists checks name uniqueness case-insensitively, optionally
// excluding one playlist (for renames). Check-then-act, not race-proof.
func PlaylistNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	q := DB.WithContext(ctx).Model(&model.Playlist{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("playlist_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "PlaylistNameExists failed")
	}
	return count > 0, nil
}

func UpdatePlaylist(ctx context.Context, playlistID int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistID).
		Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed, playlistId: %d", playlistID)
	}
	return nil
}

// DeletePlaylist removes the playlist and its memberships.
func DeletePlaylist(ctx context.Context, playlistID int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistID).Delete(&model.Playlist{}).Error
	})
}

func ListUserPlaylists(ctx context.Context, userID int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&playlists).Error; err != nil {
		return nil, errors.Wrap(err, "ListUserPlaylists failed")
	}
	return playlists, nil
}

// AddVideoToPlaylist appends the video at the next position; a duplicate add
// is suppressed by the unique pair index and reported as false.
func AddVideoToPlaylist(ctx context.Context, playlistID, videoID int64) (bool, error) {
	var maxPos int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), 0)").Scan(&maxPos).Error; err != nil {
		return false, errors.Wrap(err, "AddVideoToPlaylist position failed")
	}
	entry := &model.PlaylistVideo{
		PlaylistVideoID: utils.GenerateID(),
		PlaylistID:      playlistID,
		VideoID:         videoID,
		Position:        int(maxPos) + 1,
		CreatedAt:       time.Now(),
	}
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "AddVideoToPlaylist insert failed")
	}
	return res.RowsAffected > 0, nil
}

func RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrap(err, "RemoveVideoFromPlaylist failed")
	}
	return nil
}

// ListPlaylistVideos returns the published videos of a playlist in position
// order with their standard annotations.
func ListPlaylistVideos(ctx context.Context, playlistID, viewer int64) ([]*VideoWithStats, error) {
	list := make([]*VideoWithStats, 0)
	if err := DB.WithContext(ctx).Table("videos").
		Select(videoStatsSelect, viewer, viewer).
		Joins("JOIN users ON users.user_id = videos.user_id").
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.video_id").
		Where("playlist_videos.playlist_id = ? AND videos.is_published = ?", playlistID, true).
		Order("playlist_videos.position ASC").
		Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListPlaylistVideos failed")
	}
	return list, nil
}

func GetPlaylistVideoCount(ctx context.Context, playlistID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetPlaylistVideoCount failed")
	}
	return count, nil
}
