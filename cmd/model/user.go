package model

import "time"

type User struct {
	UserID    int64     `gorm:"column:user_id;primaryKey" json:"userId"`
	UserName  string    `gorm:"column:user_name;size:64;uniqueIndex" json:"username"`
	FullName  string    `gorm:"column:full_name;size:128" json:"fullName"`
	Email     string    `gorm:"column:email;size:128;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:128" json:"-"`
	AvatarURL string    `gorm:"column:avatar_url;size:512" json:"avatarUrl"`
	AvatarKey string    `gorm:"column:avatar_key;size:256" json:"-"`
	CoverURL  string    `gorm:"column:cover_url;size:512" json:"coverUrl"`
	CoverKey  string    `gorm:"column:cover_key;size:256" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// WatchHistory records which videos a user has viewed. The unique index keeps
// a video at most once per user regardless of how many times it was watched.
type WatchHistory struct {
	WatchHistoryID int64     `gorm:"column:watch_history_id;primaryKey" json:"-"`
	UserID         int64     `gorm:"column:user_id;uniqueIndex:idx_watch_user_video" json:"userId"`
	VideoID        int64     `gorm:"column:video_id;uniqueIndex:idx_watch_user_video" json:"videoId"`
	WatchedAt      time.Time `gorm:"column:watched_at" json:"watchedAt"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
