package xpromise

import "errors"

// ErrNilFunc 表示计算函数为 nil。
var ErrNilFunc = errors.New("xpromise: nil function")
