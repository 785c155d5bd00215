package xpromise

import "context"

// Promise 是一次性异步结果。零值不可用，使用 [New] 创建。
type Promise[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// New 在新 goroutine 中执行 fn，返回可等待其结果的 Promise。
// fn 恰好执行一次，结果缓存。fn 为 nil 时返回已携带 [ErrNilFunc] 的
// 已完成 Promise。
func New[T any](fn func() (T, error)) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}
	if fn == nil {
		p.err = ErrNilFunc
		close(p.done)
		return p
	}

	go func() {
		defer close(p.done)
		p.val, p.err = fn()
	}()
	return p
}

// Resolved 返回已携带固定结果的 Promise，不启动 goroutine。
func Resolved[T any](val T, err error) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{}), val: val, err: err}
	close(p.done)
	return p
}

// Wait 阻塞直到计算完成或 ctx 结束。
// ctx 先结束时返回 ctx.Err()，底层计算不受影响，仍可被再次 Wait。
func (p *Promise[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done 返回计算完成时关闭的 channel，便于在 select 中组合。
// channel 关闭后调用 [Promise.Wait] 不再阻塞。
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}
