package xseq

import "iter"

// Enumerate 为序列附加从 0 开始的下标。
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Map 返回对每个元素应用 fn 后的序列。
// fn 在迭代时惰性调用，每次 range 重新执行。
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Zip 并行迭代两个序列，产出元素对，止于较短一方。
// b 侧通过 [iter.Pull] 拉取，提前终止时同样会被正确释放。
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b)
		defer stop()

		for av := range a {
			bv, ok := next()
			if !ok {
				return
			}
			if !yield(av, bv) {
				return
			}
		}
	}
}

// ToMap 将键值序列收集为 map。重复键后出现者覆盖先出现者。
// 空序列返回空 map（非 nil）。
func ToMap[K comparable, V any](pairs iter.Seq2[K, V]) map[K]V {
	out := make(map[K]V)
	for k, v := range pairs {
		out[k] = v
	}
	return out
}
