package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/oss"
)

type DeleteVideoService struct {
	ctx   context.Context
	store oss.Storage
}

func NewDeleteVideoService(ctx context.Context, store oss.Storage) *DeleteVideoService {
	return &DeleteVideoService{ctx: ctx, store: store}
}

// DeleteVideo removes the video and everything hanging off it: likes,
// comments and their likes, playlist memberships and watch history, all in
// one transaction. Stored objects are evicted afterwards, best effort.
func (s *DeleteVideoService) DeleteVideo(videoID, userID int64) error {
	video, err := db.GetVideo(s.ctx, videoID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errno.NotFoundErr.WithMessage("Video does not exist")
		}
		return errno.MysqlErr
	}
	if video.UserID != userID {
		return errno.PermissionErr.WithMessage("Only the owner can delete this video")
	}

	if err := db.DeleteVideoCascade(s.ctx, videoID); err != nil {
		return errno.MysqlErr
	}

	if err := s.store.Remove(s.ctx, video.VideoKey, oss.KindVideo); err != nil {
		hlog.Warnf("failed to remove video object %s: %v", video.VideoKey, err)
	}
	if err := s.store.Remove(s.ctx, video.CoverKey, oss.KindImage); err != nil {
		hlog.Warnf("failed to remove thumbnail object %s: %v", video.CoverKey, err)
	}
	return nil
}
