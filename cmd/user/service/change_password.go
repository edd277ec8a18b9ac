package service

import (
	"context"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/utils"
)

type ChangePasswordService struct {
	ctx context.Context
}

func NewChangePasswordService(ctx context.Context) *ChangePasswordService {
	return &ChangePasswordService{ctx: ctx}
}

func (s *ChangePasswordService) ChangePassword(userID int64, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return errno.RequestErr.WithMessage("Old and new password are required")
	}

	user, err := db.GetUserByID(s.ctx, userID)
	if err != nil {
		return errno.MysqlErr
	}
	if !utils.VerifyPassword(oldPassword, user.Password) {
		return errno.RequestErr.WithMessage("Invalid old password")
	}

	hashed, err := utils.Crypt(newPassword)
	if err != nil {
		return errno.ServiceErr
	}
	if err := db.UpdateUserPassword(s.ctx, userID, hashed); err != nil {
		return errno.MysqlErr
	}
	return nil
}
