package service

import (
	"context"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
)

type WatchHistoryService struct {
	ctx context.Context
}

func NewWatchHistoryService(ctx context.Context) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx}
}

// GetWatchHistory returns the user's watched videos, most recent first.
func (s *WatchHistoryService) GetWatchHistory(userID int64) ([]*model.VideoView, error) {
	rows, err := db.ListWatchHistory(s.ctx, userID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	views := make([]*model.VideoView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}
	return views, nil
}
