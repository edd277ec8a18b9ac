package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/oss"
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
	require.NoError(t, db.Migrate(gdb))
	db.DB = gdb
}

// fakeStorage records upload and remove calls instead of talking to minio.
type fakeStorage struct {
	uploads    int
	removed    []string
	failUpload bool
	duration   float64
}

func (f *fakeStorage) Upload(ctx context.Context, localPath string, kind oss.Kind) (*oss.UploadResult, error) {
	if f.failUpload {
		return nil, fmt.Errorf("upload refused")
	}
	f.uploads++
	result := &oss.UploadResult{
		URL:       "http://storage/" + string(kind) + fmt.Sprintf("/%d", f.uploads),
		ObjectKey: fmt.Sprintf("%s/%d", kind, f.uploads),
	}
	if kind == oss.KindVideo {
		result.Duration = f.duration
	}
	return result, nil
}

func (f *fakeStorage) Remove(ctx context.Context, objectKey string, kind oss.Kind) error {
	f.removed = append(f.removed, objectKey)
	return nil
}

func newTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		UserID:    utils.GenerateID(),
		UserName:  username,
		FullName:  username + " full",
		Email:     username + "@example.com",
		Password:  "hashed",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.DB.Create(user).Error)
	return user
}

func newTestVideo(t *testing.T, ownerID int64, title string, published bool) *model.Video {
	t.Helper()
	video := &model.Video{
		VideoID:     utils.GenerateID(),
		UserID:      ownerID,
		Title:       title,
		Description: "about " + title,
		VideoKey:    "video/" + title,
		CoverKey:    "image/" + title,
		IsPublished: published,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, db.DB.Create(video).Error)
	return video
}
