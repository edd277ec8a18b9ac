package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/constants"
	"github.com/vidora/vidora/pkg/utils"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed, videoId: %d", comment.VideoID)
	}
	return nil
}

func GetCommentInfo(ctx context.Context, commentID int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentID).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func UpdateCommentContent(ctx context.Context, commentID int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentID).
		Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed, commentId: %d", commentID)
	}
	return nil
}

// DeleteComment removes the comment together with its likes.
func DeleteComment(ctx context.Context, commentID int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("comment_id = ?", commentID).Delete(&model.Comment{}).Error
	})
}

func GetVideoCommentCount(ctx context.Context, videoID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetVideoCommentCount failed")
	}
	return count, nil
}

// CommentWithStats is a comment row annotated with the commenter profile and
// its like aggregation.
type CommentWithStats struct {
	model.Comment `gorm:"embedded"`
	OwnerName     string `gorm:"column:owner_name"`
	OwnerFullName string `gorm:"column:owner_full_name"`
	OwnerAvatar   string `gorm:"column:owner_avatar"`
	LikeCount     int64  `gorm:"column:like_count"`
	IsLiked       int64  `gorm:"column:is_liked"`
}

const commentStatsSelect = `comments.*,
	users.user_name AS owner_name,
	users.full_name AS owner_full_name,
	users.avatar_url AS owner_avatar,
	(SELECT COUNT(*) FROM likes WHERE likes.comment_id = comments.comment_id) AS like_count,
	CASE WHEN EXISTS (SELECT 1 FROM likes WHERE likes.comment_id = comments.comment_id AND likes.user_id = ?) THEN 1 ELSE 0 END AS is_liked`

// ListVideoComments pages through a video's comments newest first, each
// annotated with commenter profile and like aggregation.
func ListVideoComments(ctx context.Context, videoID, viewer, pageNum, pageSize int64) ([]*CommentWithStats, int64, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	var total int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoID).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideoComments count failed")
	}

	list := make([]*CommentWithStats, 0, pageSize)
	if err := DB.WithContext(ctx).Table("comments").
		Select(commentStatsSelect, viewer).
		Joins("JOIN users ON users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC, comments.comment_id DESC").
		Limit(int(pageSize)).
		Offset(int((pageNum - 1) * pageSize)).
		Scan(&list).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideoComments query failed")
	}
	return list, total, nil
}

// GetCommentPreviews fetches the newest comments per video for the listing
// annotation, one bounded query per video.
func GetCommentPreviews(ctx context.Context, videoIDs []int64, perVideo int) (map[int64][]*CommentWithStats, error) {
	previews := make(map[int64][]*CommentWithStats, len(videoIDs))
	for _, videoID := range videoIDs {
		list := make([]*CommentWithStats, 0, perVideo)
		if err := DB.WithContext(ctx).Table("comments").
			Select(commentStatsSelect, 0).
			Joins("JOIN users ON users.user_id = comments.user_id").
			Where("comments.video_id = ?", videoID).
			Order("comments.created_at DESC, comments.comment_id DESC").
			Limit(perVideo).
			Scan(&list).Error; err != nil {
			return nil, errors.Wrap(err, "GetCommentPreviews failed")
		}
		previews[videoID] = list
	}
	return previews, nil
}

// ToggleVideoLike inserts the like when absent or removes it when present,
// returning whether the like is active afterwards. The insert tolerates the
// unique index conflict, so two concurrent toggles cannot produce duplicates.
func ToggleVideoLike(ctx context.Context, userID, videoID int64) (bool, error) {
	like := &model.Like{
		LikeID:    utils.GenerateID(),
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	}
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "ToggleVideoLike insert failed")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	if err := DB.WithContext(ctx).Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.Like{}).Error; err != nil {
		return false, errors.Wrap(err, "ToggleVideoLike delete failed")
	}
	return false, nil
}

// ToggleCommentLike mirrors ToggleVideoLike for comment targets.
func ToggleCommentLike(ctx context.Context, userID, commentID int64) (bool, error) {
	like := &model.Like{
		LikeID:    utils.GenerateID(),
		UserID:    userID,
		CommentID: commentID,
		CreatedAt: time.Now(),
	}
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "ToggleCommentLike insert failed")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	if err := DB.WithContext(ctx).Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.Like{}).Error; err != nil {
		return false, errors.Wrap(err, "ToggleCommentLike delete failed")
	}
	return false, nil
}

func GetVideoLikeCount(ctx context.Context, videoID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetVideoLikeCount failed")
	}
	return count, nil
}

func GetCommentLikeCount(ctx context.Context, commentID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetCommentLikeCount failed")
	}
	return count, nil
}
