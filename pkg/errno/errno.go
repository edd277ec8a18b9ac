package errno

import (
	"errors"
	"fmt"
)

// ErrNo carries the HTTP status code surfaced to the client together with a
// human readable message. The code is mirrored in both the response header
// and the envelope body.
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success = NewErrNo(SuccessCode, "Success")

	RequestErr       = NewErrNo(RequestErrCode, "Bad request")
	ErrBind          = NewErrNo(RequestErrCode, "Failed to bind request params")
	AuthorizationErr = NewErrNo(AuthorizationErrCode, "Authorization failed")
	// Ownership mismatches report 400 rather than 403; the API contract
	// predates this implementation and clients depend on it.
	PermissionErr = NewErrNo(RequestErrCode, "You are not allowed to access this resource")
	NotFoundErr   = NewErrNo(NotFoundErrCode, "Resource not found")
	ConflictErr   = NewErrNo(ConflictErrCode, "Resource already exists")

	ServiceErr = NewErrNo(ServiceErrCode, "Service internal error")
	MysqlErr   = NewErrNo(ServiceErrCode, "Database operation failed")
	RedisErr   = NewErrNo(ServiceErrCode, "Redis operation failed")
	OssErr     = NewErrNo(ServiceErrCode, "Object storage operation failed")
)

const (
	SuccessCode          = 200
	RequestErrCode       = 400
	AuthorizationErrCode = 401
	NotFoundErrCode      = 404
	ConflictErrCode      = 409
	ServiceErrCode       = 500
)

// ConvertErr converts any error into ErrNo. Unknown errors become a
// ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	return ServiceErr.WithMessage(err.Error())
}
