package jwt

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"

	"github.com/vidora/vidora/config"
	"github.com/vidora/vidora/pkg/constants"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/response"
)

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

// The user id travels as a string claim; JSON numbers lose precision on
// snowflake-sized ints.
func payloadFunc(data interface{}) jwt.MapClaims {
	if userID, ok := data.(int64); ok {
		return jwt.MapClaims{constants.IdentityKey: strconv.FormatInt(userID, 10)}
	}
	return jwt.MapClaims{}
}

// authenticator picks up the user id placed on the request context by the
// login flow after the credentials were verified.
func authenticator(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	if v, exists := c.Get(constants.IdentityKey); exists {
		if userID, ok := v.(int64); ok {
			return userID, nil
		}
	}
	return nil, jwt.ErrMissingLoginValues
}

func unauthorized(ctx context.Context, c *app.RequestContext, code int, message string) {
	response.SendResponse(c, errno.AuthorizationErr.WithMessage(message), nil)
}

func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidora",
		Key:           []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:       constants.AccessTokenExpire,
		MaxRefresh:    constants.AccessTokenExpire,
		IdentityKey:   constants.IdentityKey,
		PayloadFunc:   payloadFunc,
		Authenticator: authenticator,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Access-Token", token)
		},
		Unauthorized:  unauthorized,
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
	})
	if err != nil {
		panic(err)
	}
}

func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidora-refresh",
		Key:           []byte(config.ConfigInfo.Jwt.RefreshSecret),
		Timeout:       constants.RefreshTokenExpire,
		MaxRefresh:    constants.RefreshTokenExpire,
		IdentityKey:   constants.IdentityKey,
		PayloadFunc:   payloadFunc,
		Authenticator: authenticator,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Refresh-Token", token)
		},
		Unauthorized:  unauthorized,
		TokenLookup:   "header: Refresh-Token, query: refresh_token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
	})
	if err != nil {
		panic(err)
	}
}

// GetUserID extracts the authenticated identity. It expects the access token
// middleware to have run on the route.
func GetUserID(ctx context.Context, c *app.RequestContext) (int64, error) {
	claims := jwt.ExtractClaims(ctx, c)
	userID, ok := parseIdentity(claims)
	if !ok {
		return 0, errno.AuthorizationErr
	}
	return userID, nil
}

// GetOptionalUserID parses the access token when one is present. Anonymous
// requests yield zero, which turns all membership flags false downstream.
func GetOptionalUserID(ctx context.Context, c *app.RequestContext) int64 {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return 0
	}
	userID, _ := parseIdentity(claims)
	return userID
}

// GetRefreshTokenUserID validates the presented refresh token and returns
// the identity it carries.
func GetRefreshTokenUserID(ctx context.Context, c *app.RequestContext) (int64, error) {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return 0, errno.AuthorizationErr.WithMessage("invalid refresh token")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return 0, errno.AuthorizationErr.WithMessage("refresh token expired")
	}
	userID, ok := parseIdentity(claims)
	if !ok {
		return 0, errno.AuthorizationErr.WithMessage("invalid refresh token")
	}
	return userID, nil
}

func parseIdentity(claims jwt.MapClaims) (int64, bool) {
	v, exists := claims[constants.IdentityKey]
	if !exists {
		return 0, false
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseInt(s, 10, 64)
	if err != nil || userID == 0 {
		return 0, false
	}
	return userID, true
}
