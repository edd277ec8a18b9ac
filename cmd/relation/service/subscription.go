package service

import (
	"context"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
)

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// ToggleSubscription flips the user's subscription to a channel and reports
// the resulting state. Subscribing to yourself is rejected.
func (s *SubscriptionService) ToggleSubscription(userID, channelID int64) (bool, error) {
	if userID == channelID {
		return false, errno.RequestErr.WithMessage("You cannot subscribe to your own channel")
	}
	exists, err := db.CheckUserExistByID(s.ctx, channelID)
	if err != nil {
		return false, errno.MysqlErr
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage("Channel does not exist")
	}
	subscribed, err := db.ToggleSubscription(s.ctx, userID, channelID)
	if err != nil {
		return false, errno.MysqlErr
	}
	return subscribed, nil
}

// ListSubscribers returns the channel's subscribers, each annotated with
// whether the channel subscribes back.
func (s *SubscriptionService) ListSubscribers(channelID int64) ([]*model.SubscriberView, error) {
	exists, err := db.CheckUserExistByID(s.ctx, channelID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
	}
	rows, err := db.ListChannelSubscribers(s.ctx, channelID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	views := make([]*model.SubscriberView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}
	return views, nil
}

// ListSubscribedChannels returns the channels the user subscribes to.
func (s *SubscriptionService) ListSubscribedChannels(subscriberID int64) ([]*model.SubscriberView, error) {
	exists, err := db.CheckUserExistByID(s.ctx, subscriberID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("User does not exist")
	}
	rows, err := db.ListSubscribedChannels(s.ctx, subscriberID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	views := make([]*model.SubscriberView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.ToView())
	}
	return views, nil
}
