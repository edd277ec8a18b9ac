package db

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vidora/vidora/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed, username: %s", user.UserName)
	}
	return nil
}

func GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByLogin resolves either a username or an email.
func GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? OR email = ?", login, login).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? OR email = ?", username, email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "CheckUserExists failed")
	}
	return count > 0, nil
}

func CheckUserExistByID(ctx context.Context, userID int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "CheckUserExistByID failed")
	}
	return count > 0, nil
}

func UpdateUser(ctx context.Context, userID int64, updates map[string]interface{}) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).
		Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateUser failed, userId: %d", userID)
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).
		Update("password", hashedPassword).Error; err != nil {
		return errors.Wrapf(err, "UpdateUserPassword failed, userId: %d", userID)
	}
	return nil
}

func GetUserProfiles(ctx context.Context, userIDs []int64) (map[int64]*model.User, error) {
	users := make([]*model.User, 0, len(userIDs))
	if len(userIDs) == 0 {
		return map[int64]*model.User{}, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "GetUserProfiles failed")
	}
	byID := make(map[int64]*model.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}
	return byID, nil
}
