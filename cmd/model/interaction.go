package model

import "time"

type Comment struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey" json:"commentId"`
	UserID    int64     `gorm:"column:user_id;index" json:"ownerId"`
	VideoID   int64     `gorm:"column:video_id;index" json:"videoId"`
	Content   string    `gorm:"column:content;size:512" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// Like targets exactly one of a video or a comment; the unused target column
// stays zero. The composite unique index backs the toggle semantics: a second
// insert for the same (user, target) pair is rejected by the database.
type Like struct {
	LikeID    int64     `gorm:"column:like_id;primaryKey" json:"likeId"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_like_target" json:"likedBy"`
	VideoID   int64     `gorm:"column:video_id;uniqueIndex:idx_like_target;index" json:"videoId,omitempty"`
	CommentID int64     `gorm:"column:comment_id;uniqueIndex:idx_like_target;index" json:"commentId,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
