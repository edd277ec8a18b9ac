package utils

import (
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/vidora/vidora/pkg/constants"
)

// StageUpload copies the named multipart file into the local temp directory
// and returns its path. An absent field yields an empty path, not an error.
func StageUpload(c *app.RequestContext, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	if err := os.MkdirAll(constants.TempUploadDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(constants.TempUploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
