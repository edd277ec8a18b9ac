package user

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/cmd/user/service"
	"github.com/vidora/vidora/pkg/constants"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/jwt"
	"github.com/vidora/vidora/pkg/oss"
	"github.com/vidora/vidora/pkg/response"
	"github.com/vidora/vidora/pkg/utils"
)

type RegisterRequest struct {
	UserName string `form:"username" json:"username"`
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Register creates an account from a multipart form. The avatar file is
// required, the cover image optional.
func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	avatarPath, err := utils.StageUpload(c, "avatar")
	if err != nil {
		response.SendResponse(c, errno.ServiceErr.WithMessage("Failed to stage avatar upload"), nil)
		return
	}
	coverPath, err := utils.StageUpload(c, "coverImage")
	if err != nil {
		response.SendResponse(c, errno.ServiceErr.WithMessage("Failed to stage cover upload"), nil)
		return
	}

	user, err := service.NewCreateUserService(ctx, oss.DefaultStorage).CreateUser(&service.CreateUserRequest{
		UserName:   req.UserName,
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		AvatarPath: avatarPath,
		CoverPath:  coverPath,
	})
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, user, "User registered successfully")
}

type LoginRequest struct {
	Login    string `form:"login" json:"login"`
	Password string `form:"password" json:"password"`
}

// Login verifies the credentials, issues an access and a refresh token and
// records the refresh token server-side.
func Login(ctx context.Context, c *app.RequestContext) {
	var req LoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	user, err := service.NewLoginUserService(ctx).Login(req.Login, req.Password)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	c.Set(constants.IdentityKey, user.UserID)
	jwt.AccessTokenJwtMiddleware.LoginHandler(ctx, c)
	jwt.RefreshTokenJwtMiddleware.LoginHandler(ctx, c)
	accessToken := c.GetString("Access-Token")
	refreshToken := c.GetString("Refresh-Token")
	service.NewTokenService(ctx).RecordRefreshToken(user.UserID, refreshToken)

	response.SendSuccess(c, map[string]interface{}{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "User logged in successfully")
}

// Logout drops the recorded refresh token, so the presented pair cannot be
// rotated again.
func Logout(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	service.NewTokenService(ctx).RevokeRefreshToken(userID)
	response.SendSuccess(c, nil, "User logged out successfully")
}

// RefreshToken rotates the token pair when the presented refresh token
// matches the recorded one.
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetRefreshTokenUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	presented := strings.TrimPrefix(strings.TrimSpace(string(c.GetHeader("Refresh-Token"))), "Bearer ")
	tokenService := service.NewTokenService(ctx)
	if err := tokenService.VerifyRefreshToken(userID, presented); err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	c.Set(constants.IdentityKey, userID)
	jwt.AccessTokenJwtMiddleware.LoginHandler(ctx, c)
	jwt.RefreshTokenJwtMiddleware.LoginHandler(ctx, c)
	accessToken := c.GetString("Access-Token")
	refreshToken := c.GetString("Refresh-Token")
	tokenService.RecordRefreshToken(userID, refreshToken)

	response.SendSuccess(c, map[string]interface{}{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "Tokens refreshed successfully")
}

type ChangePasswordRequest struct {
	OldPassword string `form:"oldPassword" json:"oldPassword"`
	NewPassword string `form:"newPassword" json:"newPassword"`
}

func ChangePassword(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req ChangePasswordRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	if err := service.NewChangePasswordService(ctx).ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, nil, "Password changed successfully")
}

// GetCurrentUser returns the authenticated user's own record.
func GetCurrentUser(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewGetUserInfoService(ctx).GetUserInfo(userID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, user, "User fetched successfully")
}

type UpdateProfileRequest struct {
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email"`
}

func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var req UpdateProfileRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.SendResponse(c, errno.ErrBind, nil)
		return
	}
	user, err := service.NewUpdateUserService(ctx).UpdateProfile(userID, req.FullName, req.Email)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, user, "Profile updated successfully")
}

func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	localPath, err := utils.StageUpload(c, "avatar")
	if err != nil || localPath == "" {
		response.SendResponse(c, errno.RequestErr.WithMessage("Avatar file is required"), nil)
		return
	}
	user, err := service.NewUpdateAvatarService(ctx, oss.DefaultStorage).UpdateAvatar(userID, localPath)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, user, "Avatar updated successfully")
}

func UpdateCoverImage(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	localPath, err := utils.StageUpload(c, "coverImage")
	if err != nil || localPath == "" {
		response.SendResponse(c, errno.RequestErr.WithMessage("Cover image file is required"), nil)
		return
	}
	user, err := service.NewUpdateAvatarService(ctx, oss.DefaultStorage).UpdateCoverImage(userID, localPath)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, user, "Cover image updated successfully")
}

// GetChannelProfile is readable anonymously; the subscription flag is only
// meaningful when a valid access token is attached.
func GetChannelProfile(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	if username == "" {
		response.SendResponse(c, errno.RequestErr.WithMessage("Username is required"), nil)
		return
	}
	viewer := jwt.GetOptionalUserID(ctx, c)
	profile, err := service.NewChannelProfileService(ctx).GetChannelProfile(username, viewer)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, profile, "Channel fetched successfully")
}

func GetWatchHistory(ctx context.Context, c *app.RequestContext) {
	userID, err := jwt.GetUserID(ctx, c)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewWatchHistoryService(ctx).GetWatchHistory(userID)
	if err != nil {
		response.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	response.SendSuccess(c, videos, "Watch history fetched successfully")
}
