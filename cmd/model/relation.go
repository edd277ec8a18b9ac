package model

import "time"

// Subscription marks user_id as a subscriber of channel_id. A channel is any
// user; presence of a row denotes an active subscription.
type Subscription struct {
	SubscriptionID int64     `gorm:"column:subscription_id;primaryKey" json:"subscriptionId"`
	UserID         int64     `gorm:"column:user_id;uniqueIndex:idx_sub_pair" json:"subscriberId"`
	ChannelID      int64     `gorm:"column:channel_id;uniqueIndex:idx_sub_pair;index" json:"channelId"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
