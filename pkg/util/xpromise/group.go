package xpromise

import "golang.org/x/sync/singleflight"

// Group 按 key 去重并发计算：执行中的同 key 调用合流到同一次执行，
// 所有调用方共享结果。零值即可使用。
//
// 与 [Promise] 不同，Group 不缓存已完成的结果；执行结束后同 key 的
// 新调用会重新执行。
type Group[T any] struct {
	sf singleflight.Group
}

// NewGroup 创建 Group。与直接声明零值等价，便于显式初始化。
func NewGroup[T any]() *Group[T] {
	return &Group[T]{}
}

// Do 执行 fn 并返回结果。同 key 的并发调用只有一个真正执行，
// 其余等待并共享结果，shared 为 true 表示结果被多个调用方共享。
// fn 为 nil 时返回 [ErrNilFunc]。
func (g *Group[T]) Do(key string, fn func() (T, error)) (val T, shared bool, err error) {
	var zero T
	if fn == nil {
		return zero, false, ErrNilFunc
	}

	v, err, shared := g.sf.Do(key, func() (any, error) {
		return fn()
	})
	if err != nil {
		return zero, shared, err
	}
	// fn 正常返回时 v 必为 T；nil 接口值（如 T 为指针类型且 fn 返回 nil）
	// 断言失败则落回零值
	t, _ := v.(T)
	return t, shared, nil
}

// Forget 丢弃 key 的执行中状态，后续同 key 调用将重新执行。
func (g *Group[T]) Forget(key string) {
	g.sf.Forget(key)
}
