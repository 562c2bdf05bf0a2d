package xerror

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/metric"
)

type Error struct {
	code  int    // 错误码
	msg   string // 用户可读的错误消息
	cause error  // 原始错误（导致此错误的根本原因）
}

// Code 返回错误码
func (e *Error) Code() int {
	return e.code
}

// Message 返回错误消息
func (e *Error) Message() string {
	return e.msg
}

// Cause 返回原始错误
func (e *Error) Cause() error {
	return e.cause
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code: %d, msg: %s, cause: %v", e.code, e.msg, e.cause)
	}
	return fmt.Sprintf("code: %d, msg: %s", e.code, e.msg)
}

// Unwrap 实现错误链支持
func (e *Error) Unwrap() error {
	return e.cause
}

var errorMetric = metric.NewCounterVec(&metric.CounterVecOpts{
	Namespace: "error",
	Subsystem: "code",
	Name:      "total",
	Help:      "How many error raised, partitioned by error code and critical flag.",
	Labels:    []string{"code", "msg", "critical"},
})

func New(code int, err error, useErrMsg ...bool) *Error {
	if err == nil {
		err = errors.New("error not set")
	}

	ce := &Error{code: code, cause: err}

	if len(useErrMsg) > 0 && useErrMsg[0] {
		ce.msg = err.Error()
		return ce
	}

	if v, ok := ErrMsgs[code]; ok {
		ce.msg = v
	} else {
		ce.msg = err.Error()
	}

	return ce
}

func Newf(code int, format string, args ...any) *Error {
	return New(code, fmt.Errorf(format, args...))
}

func RaiseCtx(ctx context.Context, code int, err error, args ...interface{}) *Error {
	ce := New(code, err)

	if err != nil {
		logx.WithContext(ctx).WithCallerSkip(1).Errorf("%s, args: %+v", ce, args)
	}
	count(ce)

	return ce
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternalError.
func CodeOf(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.code
	}
	return CodeInternalError
}

// Is reports whether err carries the given code.
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

func count(ce *Error) {
	errorMetric.Inc(strconv.Itoa(ce.code), ce.msg, strconv.FormatBool(ce.code >= CodeInternalError))
}
