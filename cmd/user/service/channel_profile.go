package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
)

type ChannelProfileService struct {
	ctx context.Context
}

func NewChannelProfileService(ctx context.Context) *ChannelProfileService {
	return &ChannelProfileService{ctx: ctx}
}

// GetChannelProfile resolves a channel by username and annotates it with its
// subscription aggregates relative to the viewer.
func (s *ChannelProfileService) GetChannelProfile(username string, viewer int64) (*model.ChannelProfile, error) {
	user, err := db.GetUserByName(s.ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
		}
		return nil, errno.MysqlErr
	}

	subscriberCount, err := db.GetSubscriberCount(s.ctx, user.UserID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	subscribedTo, err := db.GetSubscribedToCount(s.ctx, user.UserID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	isSubscribed := false
	if viewer != 0 {
		isSubscribed, err = db.IsSubscribed(s.ctx, viewer, user.UserID)
		if err != nil {
			return nil, errno.MysqlErr
		}
	}

	return &model.ChannelProfile{
		UserProfile: model.UserProfile{
			UserID:    user.UserID,
			UserName:  user.UserName,
			FullName:  user.FullName,
			AvatarURL: user.AvatarURL,
		},
		CoverURL:        user.CoverURL,
		SubscriberCount: subscriberCount,
		SubscribedTo:    subscribedTo,
		IsSubscribed:    isSubscribed,
	}, nil
}
