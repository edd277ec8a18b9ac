package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/pkg/errno"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// ToggleVideoLike flips the user's like on a video and reports the resulting
// state.
func (s *LikeService) ToggleVideoLike(userID, videoID int64) (bool, error) {
	exists, err := db.CheckVideoExistByID(s.ctx, videoID)
	if err != nil {
		return false, errno.MysqlErr
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage("Video does not exist")
	}
	liked, err := db.ToggleVideoLike(s.ctx, userID, videoID)
	if err != nil {
		return false, errno.MysqlErr
	}
	return liked, nil
}

// ToggleCommentLike flips the user's like on a comment and reports the
// resulting state.
func (s *LikeService) ToggleCommentLike(userID, commentID int64) (bool, error) {
	if _, err := db.GetCommentInfo(s.ctx, commentID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, errno.NotFoundErr.WithMessage("Comment does not exist")
		}
		return false, errno.MysqlErr
	}
	liked, err := db.ToggleCommentLike(s.ctx, userID, commentID)
	if err != nil {
		return false, errno.MysqlErr
	}
	return liked, nil
}
