package xdispatch

import "fmt"

// Handler 处理被分发的输入，返回结果。
// 处理函数应为纯函数；其副作用由调用方负责。
type Handler[V, R any] func(map[string]V) R

// Mux 是键控分发器。零值不可用，使用 [New] 创建。
type Mux[V, R any] struct {
	keys     []string
	handlers map[string]Handler[V, R]
	fallback Handler[V, R]
}

// New 创建空的分发器。
func New[V, R any]() *Mux[V, R] {
	return &Mux[V, R]{handlers: make(map[string]Handler[V, R])}
}

// Handle 登记 key 对应的处理函数，返回 m 以便链式调用。
// 重复登记同一 key 时替换处理函数，保留原注册位置。
// nil 处理函数被忽略。
func (m *Mux[V, R]) Handle(key string, h Handler[V, R]) *Mux[V, R] {
	if h == nil {
		return m
	}
	if _, ok := m.handlers[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.handlers[key] = h
	return m
}

// Default 设置无键匹配时的兜底处理函数，返回 m 以便链式调用。
// nil 等价于未设置。
func (m *Mux[V, R]) Default(h Handler[V, R]) *Mux[V, R] {
	m.fallback = h
	return m
}

// Keys 返回已登记键的注册顺序副本。
func (m *Mux[V, R]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Dispatch 按注册顺序扫描已登记的键，在 input 中恰好存在一个时调用其处理
// 函数并返回结果。
//
// 多个键匹配返回 [ErrMultipleMatches]（含冲突键名），无键匹配时调用
// Default 处理函数，两者皆无返回 [ErrNoHandler]。匹配校验先于任何处理
// 函数调用完成，失败路径不产生副作用。
func (m *Mux[V, R]) Dispatch(input map[string]V) (R, error) {
	var zero R

	matched := ""
	found := false
	for _, k := range m.keys {
		if _, ok := input[k]; !ok {
			continue
		}
		if found {
			return zero, fmt.Errorf("%w: %q and %q", ErrMultipleMatches, matched, k)
		}
		matched, found = k, true
	}

	if found {
		return m.handlers[matched](input), nil
	}
	if m.fallback == nil {
		return zero, ErrNoHandler
	}
	return m.fallback(input), nil
}
