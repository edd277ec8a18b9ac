package service

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/oss"
)

type UpdateAvatarService struct {
	ctx   context.Context
	store oss.Storage
}

func NewUpdateAvatarService(ctx context.Context, store oss.Storage) *UpdateAvatarService {
	return &UpdateAvatarService{ctx: ctx, store: store}
}

// UpdateAvatar uploads the new image and removes the replaced object after
// the record is updated.
func (s *UpdateAvatarService) UpdateAvatar(userID int64, localPath string) (*model.User, error) {
	user, err := db.GetUserByID(s.ctx, userID)
	if err != nil {
		return nil, errno.MysqlErr
	}

	uploaded, err := s.store.Upload(s.ctx, localPath, oss.KindImage)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Avatar upload failed")
	}

	if err := db.UpdateUser(s.ctx, userID, map[string]interface{}{
		"avatar_url": uploaded.URL,
		"avatar_key": uploaded.ObjectKey,
		"updated_at": time.Now(),
	}); err != nil {
		return nil, errno.MysqlErr
	}

	if user.AvatarKey != "" {
		if err := s.store.Remove(s.ctx, user.AvatarKey, oss.KindImage); err != nil {
			hlog.Warnf("failed to remove old avatar %s: %v", user.AvatarKey, err)
		}
	}
	return db.GetUserByID(s.ctx, userID)
}

// UpdateCoverImage mirrors UpdateAvatar for the channel cover.
func (s *UpdateAvatarService) UpdateCoverImage(userID int64, localPath string) (*model.User, error) {
	user, err := db.GetUserByID(s.ctx, userID)
	if err != nil {
		return nil, errno.MysqlErr
	}

	uploaded, err := s.store.Upload(s.ctx, localPath, oss.KindImage)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Cover image upload failed")
	}

	if err := db.UpdateUser(s.ctx, userID, map[string]interface{}{
		"cover_url":  uploaded.URL,
		"cover_key":  uploaded.ObjectKey,
		"updated_at": time.Now(),
	}); err != nil {
		return nil, errno.MysqlErr
	}

	if user.CoverKey != "" {
		if err := s.store.Remove(s.ctx, user.CoverKey, oss.KindImage); err != nil {
			hlog.Warnf("failed to remove old cover %s: %v", user.CoverKey, err)
		}
	}
	return db.GetUserByID(s.ctx, userID)
}
