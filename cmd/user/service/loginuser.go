package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// Login accepts a username or email plus password and returns the matching
// user when the credentials verify.
func (s *LoginUserService) Login(login, password string) (*model.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, errno.RequestErr.WithMessage("Username or email and password are required")
	}

	user, err := db.GetUserByLogin(s.ctx, login)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("User does not exist")
		}
		return nil, errno.MysqlErr
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthorizationErr.WithMessage("Invalid user credentials")
	}
	return user, nil
}
