package service

import (
	"context"
	"strings"
	"time"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/oss"
	"github.com/vidora/vidora/pkg/utils"
)

type PublishVideoService struct {
	ctx   context.Context
	store oss.Storage
}

func NewPublishVideoService(ctx context.Context, store oss.Storage) *PublishVideoService {
	return &PublishVideoService{ctx: ctx, store: store}
}

// PublishVideoRequest carries the staged upload paths together with the
// metadata from the multipart form.
type PublishVideoRequest struct {
	UserID        int64
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// PublishVideo uploads the video and its thumbnail to object storage, probes
// the duration and creates the record. New videos start unpublished.
func (s *PublishVideoService) PublishVideo(req *PublishVideoRequest) (*model.Video, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		return nil, errno.RequestErr.WithMessage("Title and description are required")
	}
	if req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, errno.RequestErr.WithMessage("Video file and thumbnail are required")
	}

	videoUpload, err := s.store.Upload(s.ctx, req.VideoPath, oss.KindVideo)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Video upload failed")
	}
	thumbUpload, err := s.store.Upload(s.ctx, req.ThumbnailPath, oss.KindImage)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Thumbnail upload failed")
	}

	video := &model.Video{
		VideoID:     utils.GenerateID(),
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    videoUpload.URL,
		VideoKey:    videoUpload.ObjectKey,
		CoverURL:    thumbUpload.URL,
		CoverKey:    thumbUpload.ObjectKey,
		Duration:    videoUpload.Duration,
		IsPublished: false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		return nil, errno.MysqlErr
	}
	return video, nil
}
