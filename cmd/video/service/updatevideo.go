package service

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/oss"
)

type UpdateVideoService struct {
	ctx   context.Context
	store oss.Storage
}

func NewUpdateVideoService(ctx context.Context, store oss.Storage) *UpdateVideoService {
	return &UpdateVideoService{ctx: ctx, store: store}
}

type UpdateVideoRequest struct {
	VideoID       int64
	UserID        int64
	Title         string
	Description   string
	ThumbnailPath string
}

// UpdateVideo patches the title, description and optionally the thumbnail.
// Only the owner may update a video. A replaced thumbnail evicts the old
// object after the record is saved.
func (s *UpdateVideoService) UpdateVideo(req *UpdateVideoRequest) (*model.Video, error) {
	video, err := db.GetVideo(s.ctx, req.VideoID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("Video does not exist")
		}
		return nil, errno.MysqlErr
	}
	if video.UserID != req.UserID {
		return nil, errno.PermissionErr.WithMessage("Only the owner can update this video")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if title := strings.TrimSpace(req.Title); title != "" {
		updates["title"] = title
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		updates["description"] = description
	}

	oldCoverKey := ""
	if req.ThumbnailPath != "" {
		upload, err := s.store.Upload(s.ctx, req.ThumbnailPath, oss.KindImage)
		if err != nil {
			return nil, errno.RequestErr.WithMessage("Thumbnail upload failed")
		}
		updates["cover_url"] = upload.URL
		updates["cover_key"] = upload.ObjectKey
		oldCoverKey = video.CoverKey
	}

	if err := db.UpdateVideo(s.ctx, req.VideoID, updates); err != nil {
		return nil, errno.MysqlErr
	}
	if oldCoverKey != "" {
		if err := s.store.Remove(s.ctx, oldCoverKey, oss.KindImage); err != nil {
			hlog.Warnf("failed to remove replaced thumbnail %s: %v", oldCoverKey, err)
		}
	}

	updated, err := db.GetVideo(s.ctx, req.VideoID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return updated, nil
}
