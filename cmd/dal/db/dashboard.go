package db

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vidora/vidora/cmd/model"
)

// GetChannelStats aggregates a channel's totals: subscribers of the channel,
// likes and views summed over the channel's videos, and the video count.
func GetChannelStats(ctx context.Context, channelID int64) (*model.ChannelStats, error) {
	stats := &model.ChannelStats{}

	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, errors.Wrap(err, "GetChannelStats subscribers failed")
	}
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("video_id IN (?)", DB.Model(&model.Video{}).Select("video_id").Where("user_id = ?", channelID)).
		Count(&stats.TotalLikes).Error; err != nil {
		return nil, errors.Wrap(err, "GetChannelStats likes failed")
	}
	var totalViews *int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", channelID).Select("SUM(visit_count)").Scan(&totalViews).Error; err != nil {
		return nil, errors.Wrap(err, "GetChannelStats views failed")
	}
	if totalViews != nil {
		stats.TotalViews = *totalViews
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", channelID).Count(&stats.TotalVideos).Error; err != nil {
		return nil, errors.Wrap(err, "GetChannelStats videos failed")
	}
	return stats, nil
}

// ChannelVideo is a dashboard row: the channel owner's video with its like
// count, including unpublished videos.
type ChannelVideo struct {
	model.Video `gorm:"embedded"`
	LikeCount   int64 `gorm:"column:like_count" json:"likeCount"`
}

func ListChannelVideos(ctx context.Context, channelID int64) ([]*ChannelVideo, error) {
	list := make([]*ChannelVideo, 0)
	if err := DB.WithContext(ctx).Table("videos").
		Select(`videos.*, (SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.video_id) AS like_count`).
		Where("videos.user_id = ?", channelID).
		Order("videos.created_at DESC").
		Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListChannelVideos failed")
	}
	return list, nil
}
