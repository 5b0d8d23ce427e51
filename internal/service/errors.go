package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrIDMismatch        = errors.New("路径 ID 与请求体 ID 不一致")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserExist         = errors.New("用户名或邮箱已被注册")
	ErrPasswordIncorrect = errors.New("用户名或密码错误")
	ErrUnauthorized      = errors.New("未登录或登录已失效")
	ErrForbidden         = errors.New("无权操作该资源")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrMessageNotFound   = errors.New("私信不存在")
	ErrUserHasRole       = errors.New("用户已拥有此角色")
	ErrUserNotInRole     = errors.New("用户未拥有此角色")
	ErrConflict          = errors.New("数据已被并发修改，请重试")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrIDMismatch:        BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserExist:         BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrUnauthorized:      Unauthorized,
	ErrForbidden:         Forbidden,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrMessageNotFound:   NotFound,
	ErrUserHasRole:       BadRequest,
	ErrUserNotInRole:     BadRequest,
	ErrConflict:          Conflict,
	ErrFileNotSupported:  BadRequest,
	UnExpectedError:      InternalServerError,
}
