package xnum

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrZeroModulus 表示模数为 0。
	ErrZeroModulus = errors.New("xnum: zero modulus")

	// ErrNonPositivePeriod 表示对齐周期不为正。
	ErrNonPositivePeriod = errors.New("xnum: non-positive period")
)
