package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (s *GetUserInfoService) GetUserInfo(userID int64) (*model.User, error) {
	user, err := db.GetUserByID(s.ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("User not found")
		}
		return nil, errno.MysqlErr
	}
	return user, nil
}
