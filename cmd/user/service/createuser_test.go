package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidora/vidora/pkg/errno"
)

func TestCreateUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	store := &fakeStorage{}

	user, err := NewCreateUserService(ctx, store).CreateUser(&CreateUserRequest{
		UserName:   " alice ",
		FullName:   "Alice",
		Email:      "alice@example.com",
		Password:   "secret123",
		AvatarPath: "/tmp/avatar.png",
		CoverPath:  "/tmp/cover.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")
	assert.NotEmpty(t, user.AvatarURL)
	assert.NotEmpty(t, user.CoverURL)
	assert.Len(t, store.uploads, 2)
}

func TestCreateUserRequiresFields(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := NewCreateUserService(ctx, &fakeStorage{}).CreateUser(&CreateUserRequest{
		UserName: "bob",
		Email:    "bob@example.com",
		Password: "x",
	})
	require.Error(t, err)
	assert.EqualValues(t, errno.RequestErrCode, errno.ConvertErr(err).ErrCode)

	_, err = NewCreateUserService(ctx, &fakeStorage{}).CreateUser(&CreateUserRequest{
		UserName: "bob",
		FullName: "Bob",
		Email:    "bob@example.com",
		Password: "x",
	})
	require.Error(t, err)
	assert.Contains(t, errno.ConvertErr(err).ErrMsg, "Avatar")
}

func TestCreateUserDuplicate(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	registerTestUser(t, "carol", "secret123")

	_, err := NewCreateUserService(ctx, &fakeStorage{}).CreateUser(&CreateUserRequest{
		UserName:   "carol",
		FullName:   "Another Carol",
		Email:      "other@example.com",
		Password:   "x",
		AvatarPath: "/tmp/avatar.png",
	})
	require.Error(t, err)
	assert.EqualValues(t, errno.ConflictErrCode, errno.ConvertErr(err).ErrCode)

	_, err = NewCreateUserService(ctx, &fakeStorage{}).CreateUser(&CreateUserRequest{
		UserName:   "other",
		FullName:   "Other",
		Email:      "carol@example.com",
		Password:   "x",
		AvatarPath: "/tmp/avatar.png",
	})
	require.Error(t, err)
	assert.EqualValues(t, errno.ConflictErrCode, errno.ConvertErr(err).ErrCode)
}

func TestLogin(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := registerTestUser(t, "dora", "secret123")

	byName, err := NewLoginUserService(ctx).Login("dora", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byName.UserID)

	byEmail, err := NewLoginUserService(ctx).Login("dora@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byEmail.UserID)

	_, err = NewLoginUserService(ctx).Login("dora", "wrong")
	require.Error(t, err)
	assert.EqualValues(t, errno.AuthorizationErrCode, errno.ConvertErr(err).ErrCode)

	_, err = NewLoginUserService(ctx).Login("nobody", "secret123")
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}

func TestChangePassword(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := registerTestUser(t, "erin", "old-secret")

	err := NewChangePasswordService(ctx).ChangePassword(user.UserID, "wrong", "new-secret")
	require.Error(t, err)
	assert.EqualValues(t, errno.RequestErrCode, errno.ConvertErr(err).ErrCode)

	require.NoError(t, NewChangePasswordService(ctx).ChangePassword(user.UserID, "old-secret", "new-secret"))

	_, err = NewLoginUserService(ctx).Login("erin", "old-secret")
	assert.Error(t, err)
	_, err = NewLoginUserService(ctx).Login("erin", "new-secret")
	assert.NoError(t, err)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	registerTestUser(t, "frank", "x12345678")
	grace := registerTestUser(t, "grace", "x12345678")

	_, err := NewUpdateUserService(ctx).UpdateProfile(grace.UserID, "", "frank@example.com")
	require.Error(t, err)
	assert.EqualValues(t, errno.ConflictErrCode, errno.ConvertErr(err).ErrCode)

	updated, err := NewUpdateUserService(ctx).UpdateProfile(grace.UserID, "Grace Renamed", "grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Grace Renamed", updated.FullName)
	assert.Equal(t, "grace@example.com", updated.Email)
}

func TestUpdateAvatarEvictsOldObject(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := registerTestUser(t, "henry", "x12345678")
	store := &fakeStorage{}

	updated, err := NewUpdateAvatarService(ctx, store).UpdateAvatar(user.UserID, "/tmp/new.png")
	require.NoError(t, err)
	assert.NotEqual(t, user.AvatarURL, updated.AvatarURL)
	assert.Contains(t, store.removed, user.AvatarKey)
}
