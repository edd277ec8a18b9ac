package service

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/oss"
	"github.com/vidora/vidora/pkg/utils"
)

type CreateUserService struct {
	ctx   context.Context
	store oss.Storage
}

func NewCreateUserService(ctx context.Context, store oss.Storage) *CreateUserService {
	return &CreateUserService{ctx: ctx, store: store}
}

type CreateUserRequest struct {
	UserName   string
	FullName   string
	Email      string
	Password   string
	AvatarPath string
	CoverPath  string
}

func (s *CreateUserService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if req.UserName == "" || req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, errno.RequestErr.WithMessage("All fields are required")
	}
	if req.AvatarPath == "" {
		return nil, errno.RequestErr.WithMessage("Avatar file is required")
	}

	exists, err := db.CheckUserExists(s.ctx, req.UserName, req.Email)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if exists {
		return nil, errno.ConflictErr.WithMessage("User with this username or email already exists")
	}

	avatar, err := s.store.Upload(s.ctx, req.AvatarPath, oss.KindImage)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Avatar upload failed")
	}

	var coverURL, coverKey string
	if req.CoverPath != "" {
		cover, err := s.store.Upload(s.ctx, req.CoverPath, oss.KindImage)
		if err != nil {
			return nil, errno.RequestErr.WithMessage("Cover image upload failed")
		}
		coverURL, coverKey = cover.URL, cover.ObjectKey
	}

	hashedPassword, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errno.ServiceErr
	}

	user := &model.User{
		UserID:    utils.GenerateID(),
		UserName:  req.UserName,
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashedPassword,
		AvatarURL: avatar.URL,
		AvatarKey: avatar.ObjectKey,
		CoverURL:  coverURL,
		CoverKey:  coverKey,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.CreateUser(s.ctx, user); err != nil {
		hlog.Errorf("create user failed: %v", err)
		return nil, errno.MysqlErr
	}
	return user, nil
}
