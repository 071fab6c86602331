package service

import "errors"

var (
	// ErrValidationFailed 表单校验失败，具体信息见 ValidationError
	ErrValidationFailed = errors.New("表单校验失败")
	// ErrAuthFailed 用户名或密码错误
	ErrAuthFailed = errors.New("用户名或密码错误")
	// ErrConfirmationRequired 删除前需要确认
	ErrConfirmationRequired = errors.New("删除操作需要确认")
)

// ValidationError 面向用户的校验错误信息
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is 使 errors.Is(err, ErrValidationFailed) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
