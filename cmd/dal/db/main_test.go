package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/utils"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// One shared in-memory database per test; a second connection would see
	// an empty schema.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(gdb))
	DB = gdb
}

func newTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		UserID:    utils.GenerateID(),
		UserName:  username,
		FullName:  username + " full",
		Email:     username + "@example.com",
		Password:  "hashed",
		AvatarURL: "http://storage/" + username + ".png",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, DB.Create(user).Error)
	return user
}

func newTestVideo(t *testing.T, ownerID int64, title string, published bool, createdAt time.Time) *model.Video {
	t.Helper()
	video := &model.Video{
		VideoID:     utils.GenerateID(),
		UserID:      ownerID,
		Title:       title,
		Description: "about " + title,
		VideoURL:    "http://storage/" + title + ".mp4",
		CoverURL:    "http://storage/" + title + ".png",
		Duration:    42,
		IsPublished: published,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, DB.Create(video).Error)
	return video
}

func newTestComment(t *testing.T, userID, videoID int64, content string, createdAt time.Time) *model.Comment {
	t.Helper()
	comment := &model.Comment{
		CommentID: utils.GenerateID(),
		UserID:    userID,
		VideoID:   videoID,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, DB.Create(comment).Error)
	return comment
}
