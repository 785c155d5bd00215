package xseq

import (
	"cmp"
	"iter"
)

// MaxBy 返回序列中 key 最大的元素。多个元素并列最大时返回最先出现者。
// 空序列返回 [ErrEmptySeq]。
func MaxBy[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	var best T
	var bestKey K
	found := false

	for v := range seq {
		k := key(v)
		if !found || k > bestKey {
			best, bestKey = v, k
			found = true
		}
	}
	if !found {
		var zero T
		return zero, ErrEmptySeq
	}
	return best, nil
}
