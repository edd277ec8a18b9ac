package video

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/video/service"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/jwt"
	"github.com/vidora/vidora/pkg/oss"
	"github.com/vidora/vidora/pkg/response"
	"github.com/vidora/vidora/pkg/utils"
)

func parseVideoID(c *app.RequestContext) (int64, error) {
	videoID, err := strconv.ParseInt(c.Param("videoId"), 10, 64)
	if err != nil || videoID <= 0 {
		return 0, errno.RequestErr.WithMessage("Invalid video id")
	}
	return videoID, nil
}

type ListVideosRequest struct {
	Query    string `query:"query"`
	UserID   int64  `query:"userId"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
}

// ListVideos is readable anonymously.
func ListVideos(ctx context.Context, c *app.RequestContext) {
	var req ListVideosRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	page, err := service.NewVideoListService(ctx).ListVideos(&db.VideoQueryParams{
		Keyword:  req.Query,
		OwnerID:  req.UserID,
		SortBy:   req.SortBy,
		SortType: req.SortType,
		PageNum:  req.Page,
		PageSize: req.Limit,
		Viewer:   jwt.GetOptionalUserID(ctx, c),
	})
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, page, "Videos fetched successfully")
}

type PublishVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req PublishVideoRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	videoPath, err := utils.StageUpload(c, "videoFile")
	if err != nil {
		response.SendResponse(c, errno.ServiceErr.WithMessage("Failed to stage video upload"), nil)
		return
	}
	thumbnailPath, err := utils.StageUpload(c, "thumbnail")
	if err != nil {
		response.SendResponse(c, errno.ServiceErr.WithMessage("Failed to stage thumbnail upload"), nil)
		return
	}

	video, err := service.NewPublishVideoService(ctx, oss.DefaultStorage).PublishVideo(&service.PublishVideoRequest{
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, video, "Video published successfully")
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoID, err := parseVideoID(c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	view, err := service.NewVideoDetailService(ctx).GetVideo(videoID, jwt.GetOptionalUserID(ctx, c))
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, view, "Video fetched successfully")
}

type UpdateVideoRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoID, err := parseVideoID(c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req UpdateVideoRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	thumbnailPath, err := utils.StageUpload(c, "thumbnail")
	if err != nil {
		response.SendResponse(c, errno.ServiceErr.WithMessage("Failed to stage thumbnail upload"), nil)
		return
	}

	video, err := service.NewUpdateVideoService(ctx, oss.DefaultStorage).UpdateVideo(&service.UpdateVideoRequest{
		VideoID:       videoID,
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, video, "Video updated successfully")
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoID, err := parseVideoID(c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewDeleteVideoService(ctx, oss.DefaultStorage).DeleteVideo(videoID, userID); err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, nil, "Video deleted successfully")
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoID, err := parseVideoID(c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewTogglePublishService(ctx).TogglePublish(videoID, userID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, video, "Publish state toggled successfully")
}
