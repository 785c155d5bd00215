package xsearch

import "cmp"

// LowerBound 返回 xs 中第一个不小于 x 的下标。
// 所有元素都小于 x 时返回 len(xs)，空切片返回 0。
// xs 必须已升序排序。
func LowerBound[T cmp.Ordered](xs []T, x T) int {
	return search(len(xs), func(i int) bool { return xs[i] < x })
}

// UpperBound 返回 xs 中第一个严格大于 x 的下标。
// 所有元素都不大于 x 时返回 len(xs)，空切片返回 0。
// xs 必须已升序排序。
func UpperBound[T cmp.Ordered](xs []T, x T) int {
	return search(len(xs), func(i int) bool { return xs[i] <= x })
}

// LowerBoundFunc 按 key(元素) 与 x 比较，返回第一个 key 不小于 x 的下标。
// xs 必须已按 key 升序排序。key 对每个被探测的元素恰好调用一次。
func LowerBoundFunc[T any, K cmp.Ordered](xs []T, x K, key func(T) K) int {
	return search(len(xs), func(i int) bool { return key(xs[i]) < x })
}

// UpperBoundFunc 按 key(元素) 与 x 比较，返回第一个 key 严格大于 x 的下标。
// xs 必须已按 key 升序排序。
func UpperBoundFunc[T any, K cmp.Ordered](xs []T, x K, key func(T) K) int {
	return search(len(xs), func(i int) bool { return key(xs[i]) <= x })
}

// search 在 [0, n) 半开区间上二分。
// advance(i) 为真表示目标位置在 i 右侧，窗口前移。
func search(n int, advance func(int) bool) int {
	lo, hi := 0, n
	for lo < hi {
		// 无符号移位求中点，lo+hi 不会因溢出变负
		mid := int(uint(lo+hi) >> 1)
		if advance(mid) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
