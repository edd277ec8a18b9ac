package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/vidora/vidora/cmd/api/handlers/dashboard"
	"github.com/vidora/vidora/cmd/api/handlers/health"
	"github.com/vidora/vidora/cmd/api/handlers/interaction"
	"github.com/vidora/vidora/cmd/api/handlers/playlist"
	"github.com/vidora/vidora/cmd/api/handlers/relation"
	"github.com/vidora/vidora/cmd/api/handlers/user"
	"github.com/vidora/vidora/cmd/api/handlers/video"
	"github.com/vidora/vidora/pkg/jwt"
)

// Register wires every route group. Anonymous reads run without middleware
// and resolve the viewer from the token when one is attached; everything
// that writes sits behind the access token middleware.
func Register(h *server.Hertz) {
	v1 := h.Group("/api/v1")
	auth := jwt.AccessTokenJwtMiddleware.MiddlewareFunc()

	users := v1.Group("/users")
	{
		users.POST("/register", user.Register)
		users.POST("/login", user.Login)
		users.POST("/refresh-token", user.RefreshToken)
		users.GET("/channel/:username", user.GetChannelProfile)

		authed := users.Group("", auth)
		authed.POST("/logout", user.Logout)
		authed.POST("/change-password", user.ChangePassword)
		authed.GET("/get-user", user.GetCurrentUser)
		authed.PATCH("/update-profile", user.UpdateProfile)
		authed.PATCH("/update-avatar", user.UpdateAvatar)
		authed.PATCH("/update-coverImage", user.UpdateCoverImage)
		authed.GET("/history", user.GetWatchHistory)
	}

	videos := v1.Group("/videos")
	{
		videos.GET("/", video.ListVideos)
		videos.GET("/:videoId", video.GetVideo)

		authed := videos.Group("", auth)
		authed.POST("/", video.PublishVideo)
		authed.PATCH("/:videoId", video.UpdateVideo)
		authed.DELETE("/:videoId", video.DeleteVideo)
		authed.PATCH("/toggle/publish/:videoId", video.TogglePublish)
	}

	comments := v1.Group("/comments")
	{
		comments.GET("/:videoId", interaction.ListComments)

		authed := comments.Group("", auth)
		authed.POST("/:videoId", interaction.CreateComment)
		authed.PATCH("/c/:commentId", interaction.UpdateComment)
		authed.DELETE("/c/:commentId", interaction.DeleteComment)
	}

	likes := v1.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", interaction.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", interaction.ToggleCommentLike)
		likes.GET("/videos", interaction.ListLikedVideos)
	}

	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.GET("/channel/:channelId", relation.ListSubscribedChannels)
		subscriptions.GET("/user/:subscriberId", relation.ListSubscribers)

		authed := subscriptions.Group("", auth)
		authed.POST("/channel/:channelId", relation.ToggleSubscription)
	}

	playlists := v1.Group("/playlist")
	{
		playlists.GET("/:playlistId", playlist.GetPlaylist)
		playlists.GET("/user/:userId", playlist.ListUserPlaylists)

		authed := playlists.Group("", auth)
		authed.POST("/", playlist.CreatePlaylist)
		authed.PATCH("/:playlistId", playlist.UpdatePlaylist)
		authed.DELETE("/:playlistId", playlist.DeletePlaylist)
		authed.PATCH("/add/:videoId/:playlistId", playlist.AddVideo)
		authed.PATCH("/remove/:videoId/:playlistId", playlist.RemoveVideo)
	}

	dash := v1.Group("/dashboard", auth)
	{
		dash.GET("/stats", dashboard.GetChannelStats)
		dash.GET("/videos", dashboard.ListChannelVideos)
	}

	v1.GET("/healthcheck", health.Healthcheck)
}
