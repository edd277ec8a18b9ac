package playlist

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/playlist/service"
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

type PlaylistRequest struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req PlaylistRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(userID, req.Name, req.Description)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, playlist, "Playlist created successfully")
}

// GetPlaylist is readable anonymously.
func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistID, err := parseID(c, "playlistId", "playlist")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	view, err := service.NewPlaylistService(ctx).GetPlaylist(playlistID, jwt.GetOptionalUserID(ctx, c))
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, view, "Playlist fetched successfully")
}

func ListUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userID, err := parseID(c, "userId", "user")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).ListUserPlaylists(userID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, playlists, "Playlists fetched successfully")
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistID, err := parseID(c, "playlistId", "playlist")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req PlaylistRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(playlistID, userID, req.Name, req.Description)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, playlist, "Playlist updated successfully")
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistID, err := parseID(c, "playlistId", "playlist")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(playlistID, userID); err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, nil, "Playlist deleted successfully")
}

func AddVideo(ctx context.Context, c *app.RequestContext) {
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
	playlistID, err := parseID(c, "playlistId", "playlist")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	added, err := service.NewPlaylistService(ctx).AddVideo(playlistID, videoID, userID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	message := "Video added to playlist"
	if !added {
		message = "Video is already in the playlist"
	}
	response.SendSuccess(c, map[string]interface{}{"added": added}, message)
}

func RemoveVideo(ctx context.Context, c *app.RequestContext) {
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
	playlistID, err := parseID(c, "playlistId", "playlist")
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).RemoveVideo(playlistID, videoID, userID); err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, nil, "Video removed from playlist")
}
