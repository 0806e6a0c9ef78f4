package service

import (
	"Agrilink/internal/pkg/apiclient"
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrNotAuthenticated = errors.New("未登录")
	ErrFileTooLarge     = errors.New("文件过大")
	ErrFileNotSupported = errors.New("不支持的文件类型")
	ErrFollowSelf       = errors.New("用户不能关注自己")
	ErrFollowPending    = errors.New("关注请求处理中")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrNotAuthenticated: Unauthorized,
	ErrFileTooLarge:     BadRequest,
	ErrFileNotSupported: BadRequest,
	ErrFollowSelf:       BadRequest,
	ErrFollowPending:    Conflict,
	UnExpectedError:     InternalServerError,
}

// RequestError 网络或接口失败
type RequestError = apiclient.RequestError

// ValidationError 参数校验失败
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("字段 [%s] 校验失败，规则 [%s]", e.Field, e.Rule)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrParamInvalid
}

// NotFoundError 本地或服务端找不到目标
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v 不存在", e.Entity, e.Key)
}

// DegradedSuccess the operation was applied locally although the server call
// behind it failed. Callers may treat it as success.
type DegradedSuccess struct {
	Op    string
	Cause error
}

func (e *DegradedSuccess) Error() string {
	return fmt.Sprintf("%s applied locally: %v", e.Op, e.Cause)
}

func (e *DegradedSuccess) Unwrap() error {
	return e.Cause
}

// IsDegraded reports whether err only signals a degraded success.
func IsDegraded(err error) bool {
	var d *DegradedSuccess
	return errors.As(err, &d)
}

// Code 错误码
func Code(err error) int {
	if err == nil {
		return 0
	}
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code
		}
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return NotFound
	}
	var re *RequestError
	if errors.As(err, &re) && re.Status != 0 {
		return re.Status
	}
	return InternalServerError
}

// errorMessage is what a slice records: the server's message for API
// failures, the error text otherwise.
func errorMessage(err error) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return err.Error()
}
