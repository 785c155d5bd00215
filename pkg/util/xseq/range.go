package xseq

import "iter"

// Integer 约束 Range 系列支持的整型。
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range 返回半开区间 [start, stop) 上步长为 1 的迭代器。
// stop <= start 时返回空迭代器。
func Range[T Integer](start, stop T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; v < stop; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// RangeStep 返回从 start 出发、步长为 step 的迭代器。
//
// step > 0 时升序迭代，条件 v < stop；step < 0 时降序迭代，条件 v > stop。
// 边界方向与步长符号不符（如 stop < start 且 step > 0）时返回空迭代器，
// 不视为错误。step == 0 返回 [ErrZeroStep]。
//
// 终点越过类型极值附近时可能回绕，调用方需保证 stop 可由
// start + k*step 越过而不溢出。
func RangeStep[T Integer](start, stop, step T) (iter.Seq[T], error) {
	if step == 0 {
		return nil, ErrZeroStep
	}

	ascending := step > 0
	return func(yield func(T) bool) {
		if ascending {
			for v := start; v < stop; v += step {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := start; v > stop; v += step {
			if !yield(v) {
				return
			}
		}
	}, nil
}
