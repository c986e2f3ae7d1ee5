package service

import "errors"

// 错误类别，handler 边界据此映射状态码
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrBusinessRule = errors.New("business rule violated")
)

// Error 业务错误，携带给调用方的完整消息
type Error struct {
	kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// NotFoundError 实体不存在（或不属于当前租户）
func NotFoundError(message string) *Error {
	return &Error{kind: ErrNotFound, Message: message}
}

// ValidationError 字段校验/唯一约束失败，Field 标明出错字段
func ValidationError(field, message string) *Error {
	return &Error{kind: ErrValidation, Field: field, Message: message}
}

// RuleError 业务规则违反（面积超额、删除被引用产品等）
func RuleError(message string) *Error {
	return &Error{kind: ErrBusinessRule, Message: message}
}
