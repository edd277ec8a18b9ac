package dashboard

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/dashboard/service"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/jwt"
	"github.com/vidora/vidora/pkg/response"
)

// GetChannelStats reports the authenticated user's channel totals.
func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	stats, err := service.NewDashboardService(ctx).GetChannelStats(userID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, stats, "Channel stats fetched successfully")
}

// ListChannelVideos lists every video of the authenticated user, published
// or not.
func ListChannelVideos(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewDashboardService(ctx).ListChannelVideos(userID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, videos, "Channel videos fetched successfully")
}
