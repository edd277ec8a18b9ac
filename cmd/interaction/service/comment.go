package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/constants"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CreateComment adds a comment to an existing video.
func (s *CommentService) CreateComment(userID, videoID int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.RequestErr.WithMessage("Comment content is required")
	}
	exists, err := db.CheckVideoExistByID(s.ctx, videoID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("Video does not exist")
	}

	comment := &model.Comment{
		CommentID: utils.GenerateID(),
		UserID:    userID,
		VideoID:   videoID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errno.MysqlErr
	}
	return comment, nil
}

// UpdateComment rewrites the content. Only the author may update.
func (s *CommentService) UpdateComment(userID, commentID int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.RequestErr.WithMessage("Comment content is required")
	}
	comment, err := db.GetCommentInfo(s.ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("Comment does not exist")
		}
		return nil, errno.MysqlErr
	}
	if comment.UserID != userID {
		return nil, errno.PermissionErr.WithMessage("Only the author can update this comment")
	}
	if err := db.UpdateCommentContent(s.ctx, commentID, content); err != nil {
		return nil, errno.MysqlErr
	}
	comment.Content = content
	return comment, nil
}

// DeleteComment removes the comment and its likes. Only the author may
// delete.
func (s *CommentService) DeleteComment(userID, commentID int64) error {
	comment, err := db.GetCommentInfo(s.ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errno.NotFoundErr.WithMessage("Comment does not exist")
		}
		return errno.MysqlErr
	}
	if comment.UserID != userID {
		return errno.PermissionErr.WithMessage("Only the author can delete this comment")
	}
	if err := db.DeleteComment(s.ctx, commentID); err != nil {
		return errno.MysqlErr
	}
	return nil
}

// ListVideoComments pages through a video's comments, newest first.
func (s *CommentService) ListVideoComments(videoID, viewer, pageNum, pageSize int64) (*model.CommentPage, error) {
	exists, err := db.CheckVideoExistByID(s.ctx, videoID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("Video does not exist")
	}
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	rows, total, err := db.ListVideoComments(s.ctx, videoID, viewer, pageNum, pageSize)
	if err != nil {
		return nil, errno.MysqlErr
	}
	comments := make([]*model.CommentView, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.ToView())
	}
	return &model.CommentPage{
		Comments: comments,
		Total:    total,
		Page:     pageNum,
		Limit:    pageSize,
	}, nil
}
