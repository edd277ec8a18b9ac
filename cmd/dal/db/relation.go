package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"

	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/utils"
)

// ToggleSubscription subscribes the user to the channel when no row exists,
// otherwise unsubscribes. Same conflict-tolerant scheme as the like toggles.
func ToggleSubscription(ctx context.Context, userID, channelID int64) (bool, error) {
	sub := &model.Subscription{
		SubscriptionID: utils.GenerateID(),
		UserID:         userID,
		ChannelID:      channelID,
		CreatedAt:      time.Now(),
	}
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "ToggleSubscription insert failed")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	if err := DB.WithContext(ctx).Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&model.Subscription{}).Error; err != nil {
		return false, errors.Wrap(err, "ToggleSubscription delete failed")
	}
	return false, nil
}

func GetSubscriberCount(ctx context.Context, channelID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetSubscriberCount failed")
	}
	return count, nil
}

func GetSubscribedToCount(ctx context.Context, userID int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetSubscribedToCount failed")
	}
	return count, nil
}

func IsSubscribed(ctx context.Context, userID, channelID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("user_id = ? AND channel_id = ?", userID, channelID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "IsSubscribed failed")
	}
	return count > 0, nil
}

// SubscriberWithStats is a subscriber profile annotated with that user's own
// subscriber count and whether the channel follows them back.
type SubscriberWithStats struct {
	UserID           int64  `gorm:"column:user_id"`
	UserName         string `gorm:"column:user_name"`
	FullName         string `gorm:"column:full_name"`
	AvatarURL        string `gorm:"column:avatar_url"`
	SubscriberCount  int64  `gorm:"column:subscriber_count"`
	IsSubscribedBack int64  `gorm:"column:is_subscribed_back"`
}

// ListChannelSubscribers joins subscription rows with subscriber profiles for
// a channel, computing the mutual-subscription flag against the channel id.
func ListChannelSubscribers(ctx context.Context, channelID int64) ([]*SubscriberWithStats, error) {
	list := make([]*SubscriberWithStats, 0)
	if err := DB.WithContext(ctx).Table("subscriptions").
		Select(`users.user_id,
			users.user_name,
			users.full_name,
			users.avatar_url,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = users.user_id) AS subscriber_count,
			CASE WHEN EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = ? AND s.channel_id = users.user_id) THEN 1 ELSE 0 END AS is_subscribed_back`,
			channelID).
		Joins("JOIN users ON users.user_id = subscriptions.user_id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC").
		Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListChannelSubscribers failed")
	}
	return list, nil
}

// ListSubscribedChannels returns the channel profiles a subscriber follows,
// each with its subscriber count.
func ListSubscribedChannels(ctx context.Context, subscriberID int64) ([]*SubscriberWithStats, error) {
	list := make([]*SubscriberWithStats, 0)
	if err := DB.WithContext(ctx).Table("subscriptions").
		Select(`users.user_id,
			users.user_name,
			users.full_name,
			users.avatar_url,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = users.user_id) AS subscriber_count,
			0 AS is_subscribed_back`).
		Joins("JOIN users ON users.user_id = subscriptions.channel_id").
		Where("subscriptions.user_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "ListSubscribedChannels failed")
	}
	return list, nil
}
