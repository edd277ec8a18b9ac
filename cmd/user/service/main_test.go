package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/oss"
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
	uploads []string
	removed []string
}

func (f *fakeStorage) Upload(ctx context.Context, localPath string, kind oss.Kind) (*oss.UploadResult, error) {
	f.uploads = append(f.uploads, localPath)
	key := fmt.Sprintf("%s/%d", kind, len(f.uploads))
	return &oss.UploadResult{URL: "http://storage/" + key, ObjectKey: key}, nil
}

func (f *fakeStorage) Remove(ctx context.Context, objectKey string, kind oss.Kind) error {
	f.removed = append(f.removed, objectKey)
	return nil
}

func registerTestUser(t *testing.T, username, password string) *model.User {
	t.Helper()
	user, err := NewCreateUserService(context.Background(), &fakeStorage{}).CreateUser(&CreateUserRequest{
		UserName:   username,
		FullName:   username + " full",
		Email:      username + "@example.com",
		Password:   password,
		AvatarPath: "/tmp/avatar.png",
	})
	require.NoError(t, err)
	return user
}
