package main

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"

	"github.com/vidora/vidora/cmd/api/router"
	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/user/infras/redis"
	"github.com/vidora/vidora/config"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/jwt"
	"github.com/vidora/vidora/pkg/oss"
	"github.com/vidora/vidora/pkg/response"
	"github.com/vidora/vidora/pkg/utils"
)

func Init() {
	config.Init()
	db.Init()
	redis.Load()
	oss.InitMinio()
	utils.InitSnowflake(1, 1)
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Init()

	h := server.Default(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithMaxRequestBodySize(512*1024*1024),
	)

	corsOrigins := config.ConfigInfo.Server.CorsOrigins
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"http://localhost:3000"}
	}
	h.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Refresh-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h.NoRoute(func(ctx context.Context, c *app.RequestContext) {
		response.SendResponse(c, errno.NotFoundErr.WithMessage("Route not found"), nil)
	})

	router.Register(h)
	hlog.Infof("server listening on %s", config.ConfigInfo.Server.Addr)
	h.Spin()
}
