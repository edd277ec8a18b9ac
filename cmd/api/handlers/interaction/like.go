package interaction

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/interaction/service"
	videoservice "github.com/vidora/vidora/cmd/video/service"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/jwt"
	"github.com/vidora/vidora/pkg/response"
)

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoID, err := parseID(c, "videoId", "video")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	liked, err := service.NewLikeService(ctx).ToggleVideoLike(userID, videoID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, map[string]interface{}{"isLiked": liked}, "Like toggled successfully")
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	commentID, err := parseID(c, "commentId", "comment")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	liked, err := service.NewLikeService(ctx).ToggleCommentLike(userID, commentID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, map[string]interface{}{"isLiked": liked}, "Like toggled successfully")
}

type ListLikedVideosRequest struct {
	Page  int64 `query:"page"`
	Limit int64 `query:"limit"`
}

func ListLikedVideos(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req ListLikedVideosRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	page, err := videoservice.NewVideoListService(ctx).ListLikedVideos(userID, req.Page, req.Limit)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, page, "Liked videos fetched successfully")
}
