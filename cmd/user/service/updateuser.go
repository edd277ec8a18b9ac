package service

import (
	"context"
	"strings"
	"time"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

// UpdateProfile applies a partial update of fullName and email.
func (s *UpdateUserService) UpdateProfile(userID int64, fullName, email string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" && email == "" {
		return nil, errno.RequestErr.WithMessage("At least one field is required")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if fullName != "" {
		updates["full_name"] = fullName
	}
	if email != "" {
		exists, err := db.CheckUserExists(s.ctx, "", email)
		if err != nil {
			return nil, errno.MysqlErr
		}
		current, err := db.GetUserByID(s.ctx, userID)
		if err != nil {
			return nil, errno.MysqlErr
		}
		if exists && current.Email != email {
			return nil, errno.ConflictErr.WithMessage("Email already in use")
		}
		updates["email"] = email
	}

	if err := db.UpdateUser(s.ctx, userID, updates); err != nil {
		return nil, errno.MysqlErr
	}
	return db.GetUserByID(s.ctx, userID)
}
