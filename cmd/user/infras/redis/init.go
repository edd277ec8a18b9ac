package redis

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	goredis "github.com/redis/go-redis/v9"

	"github.com/vidora/vidora/config"
)

var redisDB *goredis.Client

func Load() {
	redisDB = goredis.NewClient(&goredis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	pong, err := redisDB.Ping(context.Background()).Result()
	if err != nil {
		hlog.Info("Could not connect to redis : ", err)
		return
	}
	hlog.Info("Connected to redis : ", pong)
}

// Ping reports whether redis is reachable, for the healthcheck.
func Ping(ctx context.Context) error {
	if redisDB == nil {
		return goredis.ErrClosed
	}
	return redisDB.Ping(ctx).Err()
}
