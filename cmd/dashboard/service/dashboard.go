package service

import (
	"context"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// GetChannelStats aggregates the channel totals for the owner's dashboard.
func (s *DashboardService) GetChannelStats(channelID int64) (*model.ChannelStats, error) {
	stats, err := db.GetChannelStats(s.ctx, channelID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return stats, nil
}

// ListChannelVideos returns every video the channel owns, published or not.
func (s *DashboardService) ListChannelVideos(channelID int64) ([]*db.ChannelVideo, error) {
	videos, err := db.ListChannelVideos(s.ctx, channelID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return videos, nil
}
