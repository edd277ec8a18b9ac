package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/utils"
)

// UpsertWatchHistory records that the user watched the video. Re-watching
// only refreshes the timestamp; the unique pair index keeps one row per
// (user, video).
func UpsertWatchHistory(ctx context.Context, userID, videoID int64) error {
	entry := &model.WatchHistory{
		WatchHistoryID: utils.GenerateID(),
		UserID:         userID,
		VideoID:        videoID,
		WatchedAt:      time.Now(),
	}
	err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"watched_at": entry.WatchedAt}),
	}).Create(entry).Error
	if err != nil {
		return errors.Wrapf(err, "UpsertWatchHistory failed, userId: %d, videoId: %d", userID, videoID)
	}
	return nil
}

// ListWatchHistory returns the watched videos most recent first with their
// standard annotations.
func ListWatchHistory(ctx context.Context, userID int64) ([]*VideoWithStats, error) {
	list := make([]*VideoWithStats, 0)
	if err := DB.WithContext(ctx).Table("videos").
		Select(videoStatsSelect, userID, userID).
		Joins("JOIN users ON users.user_id = videos.user_id").
		Joins("JOIN watch_histories ON watch_histories.video_id = videos.video_id").
		Where("watch_histories.user_id = ?", userID).
		Order("watch_histories.watched_at DESC").
		Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListWatchHistory failed")
	}
	return list, nil
}

func GetWatchHistoryCount(ctx context.Context, userID, videoID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetWatchHistoryCount failed")
	}
	return count, nil
}
