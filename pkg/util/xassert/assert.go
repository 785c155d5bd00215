package xassert

import (
	"errors"
	"fmt"
)

// ErrAssertion 是所有断言失败错误的基底，支持 errors.Is 判断。
var ErrAssertion = errors.New("xassert: assertion failed")

// That 在 cond 不成立时返回包装 [ErrAssertion] 的错误，附带格式化消息；
// 成立时返回 nil。format 为空时返回 [ErrAssertion] 本身。
func That(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	if format == "" {
		return ErrAssertion
	}
	return fmt.Errorf("%w: %s", ErrAssertion, fmt.Sprintf(format, args...))
}

// Ensure 在 cond 成立时原样返回 v，否则返回零值与断言错误。
// 用于在取值处内联前置条件校验。
func Ensure[T any](v T, cond bool, format string, args ...any) (T, error) {
	if err := That(cond, format, args...); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Must 在 err 非 nil 时 panic，否则返回 v。
// 仅用于失败即程序 bug 的场合（如 init 期解析常量）。
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
