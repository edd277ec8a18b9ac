package constants

import "time"

const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Number of newest comments attached to each item of a video listing.
	CommentPreviewSize = 3

	MaxTitleLength   = 256
	MaxCommentLength = 500

	IdentityKey = "user_id"

	AccessTokenExpire  = 15 * time.Minute
	RefreshTokenExpire = 7 * 24 * time.Hour

	// Local staging directory for multipart uploads before they are pushed
	// to object storage.
	TempUploadDir = "./public/temp"
)
