package service

import (
	"context"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/constants"
	"github.com/vidora/vidora/pkg/errno"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// ListVideos returns one page of published videos. Each entry carries the
// owner profile, the derived counts and the newest few comments.
func (s *VideoListService) ListVideos(params *db.VideoQueryParams) (*model.VideoPage, error) {
	rows, total, err := db.ListVideos(s.ctx, params)
	if err != nil {
		return nil, errno.MysqlErr
	}

	videoIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		videoIDs = append(videoIDs, row.VideoID)
	}
	previews, err := db.GetCommentPreviews(s.ctx, videoIDs, constants.CommentPreviewSize)
	if err != nil {
		return nil, errno.MysqlErr
	}

	views := make([]*model.VideoView, 0, len(rows))
	for _, row := range rows {
		view := row.ToView()
		for _, comment := range previews[row.VideoID] {
			view.Comments = append(view.Comments, *comment.ToView())
		}
		views = append(views, view)
	}

	return &model.VideoPage{
		Videos:  views,
		Total:   total,
		Page:    params.PageNum,
		Limit:   params.PageSize,
		HasMore: params.PageNum*params.PageSize < total,
	}, nil
}

// ListLikedVideos pages through the published videos the user has liked.
func (s *VideoListService) ListLikedVideos(viewer, pageNum, pageSize int64) (*model.VideoPage, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	rows, total, err := db.ListLikedVideos(s.ctx, viewer, pageNum, pageSize)
	if err != nil {
		return nil, errno.MysqlErr
	}
	views := make([]*model.VideoView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}
	return &model.VideoPage{
		Videos:  views,
		Total:   total,
		Page:    pageNum,
		Limit:   pageSize,
		HasMore: pageNum*pageSize < total,
	}, nil
}
