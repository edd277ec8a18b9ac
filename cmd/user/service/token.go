package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/vidora/vidora/cmd/user/infras/redis"
	"github.com/vidora/vidora/pkg/constants"
	"github.com/vidora/vidora/pkg/errno"
)

type TokenService struct {
	ctx context.Context
}

func NewTokenService(ctx context.Context) *TokenService {
	return &TokenService{ctx: ctx}
}

// RecordRefreshToken remembers the active refresh token for the user. A
// redis outage is logged but does not fail the login.
func (s *TokenService) RecordRefreshToken(userID int64, token string) {
	if err := redis.RecordRefreshToken(s.ctx, userID, token, constants.RefreshTokenExpire); err != nil {
		hlog.Warnf("failed to record refresh token for user %d: %v", userID, err)
	}
}

// VerifyRefreshToken checks the presented token against the recorded one;
// a rotated or revoked token no longer matches.
func (s *TokenService) VerifyRefreshToken(userID int64, token string) error {
	stored, err := redis.GetRefreshToken(s.ctx, userID)
	if err != nil {
		return errno.AuthorizationErr.WithMessage("refresh token is expired or revoked")
	}
	if stored != token {
		return errno.AuthorizationErr.WithMessage("refresh token does not match")
	}
	return nil
}

// RevokeRefreshToken drops the recorded token on logout.
func (s *TokenService) RevokeRefreshToken(userID int64) {
	if err := redis.DelRefreshToken(s.ctx, userID); err != nil {
		hlog.Warnf("failed to revoke refresh token for user %d: %v", userID, err)
	}
}
