package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/constants"
)

// VideoQueryParams parameterizes the paginated video listing. Viewer is the
// requesting identity and may be zero, in which case the membership flags
// come back false.
type VideoQueryParams struct {
	Keyword  string
	OwnerID  int64
	SortBy   string
	SortType string
	PageNum  int64
	PageSize int64
	Viewer   int64
}

// VideoWithStats is a video row annotated with its owner profile and the
// derived counts and membership flags. Counts are computed from the joined
// associations on every read.
type VideoWithStats struct {
	model.Video      `gorm:"embedded"`
	OwnerName        string `gorm:"column:owner_name"`
	OwnerFullName    string `gorm:"column:owner_full_name"`
	OwnerAvatar      string `gorm:"column:owner_avatar"`
	OwnerSubscribers int64  `gorm:"column:owner_subscribers"`
	IsSubscribed     int64  `gorm:"column:is_subscribed"`
	LikeCount        int64  `gorm:"column:like_count"`
	IsLiked          int64  `gorm:"column:is_liked"`
}

const videoStatsSelect = `videos.*,
	users.user_name AS owner_name,
	users.full_name AS owner_full_name,
	users.avatar_url AS owner_avatar,
	(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.channel_id = videos.user_id) AS owner_subscribers,
	CASE WHEN EXISTS (SELECT 1 FROM subscriptions WHERE subscriptions.channel_id = videos.user_id AND subscriptions.user_id = ?) THEN 1 ELSE 0 END AS is_subscribed,
	(SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.video_id) AS like_count,
	CASE WHEN EXISTS (SELECT 1 FROM likes WHERE likes.video_id = videos.video_id AND likes.user_id = ?) THEN 1 ELSE 0 END AS is_liked`

var videoSortColumns = map[string]string{
	"createdAt": "videos.created_at",
	"views":     "videos.visit_count",
	"duration":  "videos.duration",
	"title":     "videos.title",
}

// ListVideos returns one page of published videos with their annotations and
// the total number of matches.
func ListVideos(ctx context.Context, p *VideoQueryParams) ([]*VideoWithStats, int64, error) {
	if p.PageNum <= 0 {
		p.PageNum = constants.DefaultPageNum
	}
	if p.PageSize <= 0 || p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.DefaultPageSize
	}

	base := DB.WithContext(ctx).Table("videos").Where("videos.is_published = ?", true)
	if p.Keyword != "" {
		base = base.Where("LOWER(videos.title) LIKE ?", "%"+strings.ToLower(p.Keyword)+"%")
	}
	if p.OwnerID != 0 {
		base = base.Where("videos.user_id = ?", p.OwnerID)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideos count failed")
	}

	order := videoSortColumns["createdAt"]
	if col, ok := videoSortColumns[p.SortBy]; ok {
		order = col
	}
	if strings.EqualFold(p.SortType, "asc") {
		order += " ASC"
	} else {
		order += " DESC"
	}

	list := make([]*VideoWithStats, 0, p.PageSize)
	if err := base.
		Select(videoStatsSelect, p.Viewer, p.Viewer).
		Joins("JOIN users ON users.user_id = videos.user_id").
		Order(order).
		Limit(int(p.PageSize)).
		Offset(int((p.PageNum - 1) * p.PageSize)).
		Scan(&list).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListVideos query failed")
	}
	return list, total, nil
}

// GetVideoStats returns a single video annotated with its owner profile and
// derived fields, regardless of publish state.
func GetVideoStats(ctx context.Context, videoID, viewer int64) (*VideoWithStats, error) {
	var video VideoWithStats
	err := DB.WithContext(ctx).Table("videos").
		Select(videoStatsSelect, viewer, viewer).
		Joins("JOIN users ON users.user_id = videos.user_id").
		Where("videos.video_id = ?", videoID).
		Take(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// ListLikedVideos pages through the published videos the viewer has liked,
// most recently liked first.
func ListLikedVideos(ctx context.Context, viewer, pageNum, pageSize int64) ([]*VideoWithStats, int64, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	base := DB.WithContext(ctx).Table("videos").
		Joins("JOIN likes ON likes.video_id = videos.video_id AND likes.user_id = ?", viewer).
		Where("videos.is_published = ?", true).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListLikedVideos count failed")
	}

	list := make([]*VideoWithStats, 0, pageSize)
	if err := base.
		Select(videoStatsSelect, viewer, viewer).
		Joins("JOIN users ON users.user_id = videos.user_id").
		Order("likes.created_at DESC").
		Limit(int(pageSize)).
		Offset(int((pageNum - 1) * pageSize)).
		Scan(&list).Error; err != nil {
		return nil, 0, errors.Wrap(err, "ListLikedVideos query failed")
	}
	return list, total, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed, videoId: %d", video.VideoID)
	}
	return nil
}

func GetVideo(ctx context.Context, videoID int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoID).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func CheckVideoExistByID(ctx context.Context, videoID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "CheckVideoExistByID failed")
	}
	return count > 0, nil
}

func UpdateVideo(ctx context.Context, videoID int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoID).
		Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed, videoId: %d", videoID)
	}
	return nil
}

// IncrVisitCount bumps the view counter by one atomically in the database.
func IncrVisitCount(ctx context.Context, videoID int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoID).
		Update("visit_count", gorm.Expr("visit_count + ?", 1)).Error; err != nil {
		return errors.Wrapf(err, "IncrVisitCount failed, videoId: %d", videoID)
	}
	return nil
}

// DeleteVideoCascade removes the video together with its likes, comments,
// comment likes, playlist memberships and watch history rows in one
// transaction, so a partial failure rolls everything back.
func DeleteVideoCascade(ctx context.Context, videoID int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIDs := make([]int64, 0)
		if err := tx.Model(&model.Comment{}).Where("video_id = ?", videoID).
			Pluck("comment_id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.WatchHistory{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", videoID).Delete(&model.Video{}).Error
	})
}
