package interaction

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/interaction/service"
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

type ListCommentsRequest struct {
	Page  int64 `query:"page"`
	Limit int64 `query:"limit"`
}

// ListComments is readable anonymously.
func ListComments(ctx context.Context, c *app.RequestContext) {
	videoID, err := parseID(c, "videoId", "video")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req ListCommentsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	page, err := service.NewCommentService(ctx).ListVideoComments(videoID, jwt.GetOptionalUserID(ctx, c), req.Page, req.Limit)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, page, "Comments fetched successfully")
}

type CommentContentRequest struct {
	Content string `form:"content" json:"content"`
}

func CreateComment(ctx context.Context, c *app.RequestContext) {
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
	var req CommentContentRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).CreateComment(userID, videoID, req.Content)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, comment, "Comment added successfully")
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
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
	var req CommentContentRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(userID, commentID, req.Content)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, comment, "Comment updated successfully")
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewCommentService(ctx).DeleteComment(userID, commentID); err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, nil, "Comment deleted successfully")
}
