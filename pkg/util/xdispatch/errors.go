package xdispatch

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrMultipleMatches 表示输入中出现了多个已注册的键，路由歧义。
	ErrMultipleMatches = errors.New("xdispatch: multiple matching keys")

	// ErrNoHandler 表示没有键匹配且未设置兜底处理函数。
	ErrNoHandler = errors.New("xdispatch: no handler resolved")
)
