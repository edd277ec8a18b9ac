package model

import "time"

type Video struct {
	VideoID     int64     `gorm:"column:video_id;primaryKey" json:"videoId"`
	UserID      int64     `gorm:"column:user_id;index" json:"ownerId"`
	Title       string    `gorm:"column:title;size:256" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	VideoURL    string    `gorm:"column:video_url;size:512" json:"videoUrl"`
	VideoKey    string    `gorm:"column:video_key;size:256" json:"-"`
	CoverURL    string    `gorm:"column:cover_url;size:512" json:"thumbnailUrl"`
	CoverKey    string    `gorm:"column:cover_key;size:256" json:"-"`
	Duration    float64   `gorm:"column:duration" json:"duration"`
	VisitCount  int64     `gorm:"column:visit_count" json:"views"`
	IsPublished bool      `gorm:"column:is_published" json:"isPublished"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}
