package db

import (
	"github.com/vidora/vidora/cmd/model"
)

func (v *VideoWithStats) ToView() *model.VideoView {
	return &model.VideoView{
		VideoID:      v.VideoID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.CoverURL,
		Duration:     v.Duration,
		Views:        v.VisitCount,
		IsPublished:  v.IsPublished,
		CreatedAt:    v.CreatedAt,
		Owner: model.VideoOwner{
			UserProfile: model.UserProfile{
				UserID:    v.UserID,
				UserName:  v.OwnerName,
				FullName:  v.OwnerFullName,
				AvatarURL: v.OwnerAvatar,
			},
			SubscriberCount: v.OwnerSubscribers,
			IsSubscribed:    v.IsSubscribed != 0,
		},
		LikeCount: v.LikeCount,
		IsLiked:   v.IsLiked != 0,
	}
}

func (c *CommentWithStats) ToView() *model.CommentView {
	return &model.CommentView{
		CommentID: c.CommentID,
		VideoID:   c.VideoID,
		Content:   c.Content,
		Owner: model.UserProfile{
			UserID:    c.UserID,
			UserName:  c.OwnerName,
			FullName:  c.OwnerFullName,
			AvatarURL: c.OwnerAvatar,
		},
		LikeCount: c.LikeCount,
		IsLiked:   c.IsLiked != 0,
		CreatedAt: c.CreatedAt,
	}
}

func (s *SubscriberWithStats) ToView() *model.SubscriberView {
	return &model.SubscriberView{
		UserProfile: model.UserProfile{
			UserID:    s.UserID,
			UserName:  s.UserName,
			FullName:  s.FullName,
			AvatarURL: s.AvatarURL,
		},
		SubscriberCount:  s.SubscriberCount,
		IsSubscribedBack: s.IsSubscribedBack != 0,
	}
}
