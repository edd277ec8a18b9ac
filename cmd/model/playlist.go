package model

import "time"

type Playlist struct {
	PlaylistID  int64     `gorm:"column:playlist_id;primaryKey" json:"playlistId"`
	UserID      int64     `gorm:"column:user_id;index" json:"ownerId"`
	Name        string    `gorm:"column:name;size:128;index" json:"name"`
	Description string    `gorm:"column:description;size:512" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo is the ordered membership of a video in a playlist. The
// unique pair suppresses duplicate adds.
type PlaylistVideo struct {
	PlaylistVideoID int64     `gorm:"column:playlist_video_id;primaryKey" json:"-"`
	PlaylistID      int64     `gorm:"column:playlist_id;uniqueIndex:idx_playlist_video" json:"playlistId"`
	VideoID         int64     `gorm:"column:video_id;uniqueIndex:idx_playlist_video;index" json:"videoId"`
	Position        int       `gorm:"column:position" json:"position"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
