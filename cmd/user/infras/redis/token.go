package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	goredis "github.com/redis/go-redis/v9"
)

func refreshTokenKey(userID int64) string {
	return "refresh_token:" + strconv.FormatInt(userID, 10)
}

// RecordRefreshToken stores the user's active refresh token so logout and
// rotation can invalidate it.
func RecordRefreshToken(ctx context.Context, userID int64, token string, expiration time.Duration) error {
	if redisDB == nil {
		return goredis.ErrClosed
	}
	if err := redisDB.Set(ctx, refreshTokenKey(userID), token, expiration).Err(); err != nil {
		hlog.Info("Redis set refresh token failed : ", err)
		return err
	}
	return nil
}

func GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	if redisDB == nil {
		return "", goredis.ErrClosed
	}
	token, err := redisDB.Get(ctx, refreshTokenKey(userID)).Result()
	if err != nil {
		hlog.Info("Redis get refresh token failed : ", err)
		return "", err
	}
	return token, nil
}

func DelRefreshToken(ctx context.Context, userID int64) error {
	if redisDB == nil {
		return goredis.ErrClosed
	}
	if err := redisDB.Del(ctx, refreshTokenKey(userID)).Err(); err != nil {
		hlog.Info("Redis delete refresh token failed : ", err)
		return err
	}
	return nil
}
