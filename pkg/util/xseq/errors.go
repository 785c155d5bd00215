package xseq

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrZeroStep 表示步长为 0 的退化数列。
	ErrZeroStep = errors.New("xseq: zero step")

	// ErrEmptySeq 表示需要非空序列的操作收到了空序列。
	ErrEmptySeq = errors.New("xseq: empty sequence")
)
