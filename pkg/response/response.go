package response

import (
	"github.com/cloudwego/hertz/pkg/app"

	"github.com/vidora/vidora/pkg/errno"
)

// Response is the uniform envelope shared by every endpoint. StatusCode is
// mirrored in the HTTP status of the reply.
type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
}

// SendResponse packs err and data into the envelope. A nil err means success.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	e := errno.ConvertErr(err)
	if e.ErrCode == errno.SuccessCode {
		SendSuccess(c, data, e.ErrMsg)
		return
	}
	c.JSON(int(e.ErrCode), Response{
		StatusCode: e.ErrCode,
		Message:    e.ErrMsg,
		Success:    false,
		Errors:     []string{e.ErrMsg},
	})
}

func SendSuccess(c *app.RequestContext, data interface{}, message string) {
	c.JSON(errno.SuccessCode, Response{
		StatusCode: errno.SuccessCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}
