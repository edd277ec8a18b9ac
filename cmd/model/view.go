package model

import "time"

// View types are the joined, derived shapes returned by read endpoints.
// Count fields are always computed from the associations, never stored.

type UserProfile struct {
	UserID    int64  `json:"userId"`
	UserName  string `json:"username"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
}

type ChannelProfile struct {
	UserProfile
	CoverURL        string `json:"coverUrl"`
	SubscriberCount int64  `json:"subscriberCount"`
	SubscribedTo    int64  `json:"subscribedToCount"`
	IsSubscribed    bool   `json:"isSubscribed"`
}

type VideoOwner struct {
	UserProfile
	SubscriberCount int64 `json:"subscriberCount"`
	IsSubscribed    bool  `json:"isSubscribed"`
}

type CommentView struct {
	CommentID int64       `json:"commentId"`
	VideoID   int64       `json:"videoId"`
	Content   string      `json:"content"`
	Owner     UserProfile `json:"owner"`
	LikeCount int64       `json:"likeCount"`
	IsLiked   bool        `json:"isLiked"`
	CreatedAt time.Time   `json:"createdAt"`
}

type VideoView struct {
	VideoID      int64         `json:"videoId"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	VideoURL     string        `json:"videoUrl"`
	ThumbnailURL string        `json:"thumbnailUrl"`
	Duration     float64       `json:"duration"`
	Views        int64         `json:"views"`
	IsPublished  bool          `json:"isPublished"`
	CreatedAt    time.Time     `json:"createdAt"`
	Owner        VideoOwner    `json:"owner"`
	LikeCount    int64         `json:"likeCount"`
	IsLiked      bool          `json:"isLiked"`
	Comments     []CommentView `json:"comments,omitempty"`
}

type VideoPage struct {
	Videos   []*VideoView `json:"videos"`
	Total    int64        `json:"total"`
	Page     int64        `json:"page"`
	Limit    int64        `json:"limit"`
	HasMore  bool         `json:"hasMore"`
}

type CommentPage struct {
	Comments []*CommentView `json:"comments"`
	Total    int64          `json:"total"`
	Page     int64          `json:"page"`
	Limit    int64          `json:"limit"`
}

type SubscriberView struct {
	UserProfile
	SubscriberCount  int64 `json:"subscriberCount"`
	IsSubscribedBack bool  `json:"isSubscribedBack"`
}

type PlaylistView struct {
	PlaylistID  int64        `json:"playlistId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Owner       UserProfile  `json:"owner"`
	Videos      []*VideoView `json:"videos,omitempty"`
	VideoCount  int64        `json:"videoCount"`
	TotalViews  int64        `json:"totalViews"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type ChannelStats struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalViews       int64 `json:"totalViews"`
	TotalVideos      int64 `json:"totalVideos"`
}
