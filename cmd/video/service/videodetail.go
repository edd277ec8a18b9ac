package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/constants"
	"github.com/vidora/vidora/pkg/errno"
)

type VideoDetailService struct {
	ctx context.Context
}

func NewVideoDetailService(ctx context.Context) *VideoDetailService {
	return &VideoDetailService{ctx: ctx}
}

// GetVideo returns a single video with owner profile, counts and a comment
// preview. Unpublished videos are only visible to their owner. A successful
// read by someone other than the owner bumps the view counter and records
// watch history off the request path.
func (s *VideoDetailService) GetVideo(videoID, viewer int64) (*model.VideoView, error) {
	row, err := db.GetVideoStats(s.ctx, videoID, viewer)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("Video does not exist")
		}
		return nil, errno.MysqlErr
	}
	if !row.IsPublished && row.UserID != viewer {
		return nil, errno.NotFoundErr.WithMessage("Video does not exist")
	}

	previews, err := db.GetCommentPreviews(s.ctx, []int64{videoID}, constants.CommentPreviewSize)
	if err != nil {
		return nil, errno.MysqlErr
	}
	view := row.ToView()
	for _, comment := range previews[videoID] {
		view.Comments = append(view.Comments, *comment.ToView())
	}

	if viewer != 0 && viewer != row.UserID {
		// Best effort; the read itself does not depend on these.
		go func() {
			if err := db.IncrVisitCount(context.Background(), videoID); err != nil {
				hlog.Warnf("failed to bump views for video %d: %v", videoID, err)
			}
		}()
		go func() {
			if err := db.UpsertWatchHistory(context.Background(), viewer, videoID); err != nil {
				hlog.Warnf("failed to record watch history for user %d: %v", viewer, err)
			}
		}()
		view.Views++
	}
	return view, nil
}
