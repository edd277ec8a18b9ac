package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUserExists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	newTestUser(t, "alice")

	exists, err := CheckUserExists(ctx, "alice", "nobody@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = CheckUserExists(ctx, "nobody", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = CheckUserExists(ctx, "nobody", "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetUserByLogin(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, "bob")

	byName, err := GetUserByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byName.UserID)

	byEmail, err := GetUserByLogin(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byEmail.UserID)

	_, err = GetUserByLogin(ctx, "unknown")
	assert.Error(t, err)
}

func TestUpdateUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := newTestUser(t, "carol")

	require.NoError(t, UpdateUser(ctx, user.UserID, map[string]interface{}{
		"full_name": "Carol Renamed",
		"email":     "renamed@example.com",
	}))

	got, err := GetUserByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Carol Renamed", got.FullName)
	assert.Equal(t, "renamed@example.com", got.Email)
	assert.Equal(t, "carol", got.UserName, "username is immutable through profile updates")
}

func TestGetUserProfiles(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := newTestUser(t, "alice")
	bob := newTestUser(t, "bob")

	profiles, err := GetUserProfiles(ctx, []int64{alice.UserID, bob.UserID, 999})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "alice", profiles[alice.UserID].UserName)
	assert.Equal(t, "bob", profiles[bob.UserID].UserName)
}
