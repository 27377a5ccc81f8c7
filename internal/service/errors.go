package service

import "errors"

var (
	// ErrInvalidInput 必填字段缺失或为空，调用方修正后重试
	ErrInvalidInput = errors.New("invalid input")
	// ErrBanned 身份在封禁名单里，入口处直接拒绝
	ErrBanned = errors.New("identity banned")
)
