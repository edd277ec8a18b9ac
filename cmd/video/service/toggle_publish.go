package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
)

type TogglePublishService struct {
	ctx context.Context
}

func NewTogglePublishService(ctx context.Context) *TogglePublishService {
	return &TogglePublishService{ctx: ctx}
}

// TogglePublish flips the publish flag. Only the owner may toggle.
func (s *TogglePublishService) TogglePublish(videoID, userID int64) (*model.Video, error) {
	video, err := db.GetVideo(s.ctx, videoID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("Video does not exist")
		}
		return nil, errno.MysqlErr
	}
	if video.UserID != userID {
		return nil, errno.PermissionErr.WithMessage("Only the owner can toggle publish state")
	}

	updates := map[string]interface{}{
		"is_published": !video.IsPublished,
		"updated_at":   time.Now(),
	}
	if err := db.UpdateVideo(s.ctx, videoID, updates); err != nil {
		return nil, errno.MysqlErr
	}
	video.IsPublished = !video.IsPublished
	return video, nil
}
