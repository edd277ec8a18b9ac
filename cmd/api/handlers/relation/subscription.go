package relation

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/relation/service"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/jwt"
	"github.com/vidora/vidora/pkg/response"
)

func parseID(c *app.RequestContext, name, what string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.RequestErr.WithMessage("Invalid " + what + " id")
	}
	return id, nil
}

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channelID, err := parseID(c, "channelId", "channel")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscribed, err := service.NewSubscriptionService(ctx).ToggleSubscription(userID, channelID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, map[string]interface{}{"isSubscribed": subscribed}, "Subscription toggled successfully")
}

// ListSubscribedChannels returns the channels the given subscriber follows.
func ListSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberID, err := parseID(c, "channelId", "subscriber")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channels, err := service.NewSubscriptionService(ctx).ListSubscribedChannels(subscriberID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, channels, "Subscribed channels fetched successfully")
}

// ListSubscribers returns the subscribers of the given channel with a mutual
// subscription flag.
func ListSubscribers(ctx context.Context, c *app.RequestContext) {
	channelID, err := parseID(c, "subscriberId", "channel")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscribers, err := service.NewSubscriptionService(ctx).ListSubscribers(channelID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, subscribers, "Subscribers fetched successfully")
}
