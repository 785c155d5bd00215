// Package xdispatch 提供键控分发器：按输入中出现的键选择唯一处理函数。
//
// # 功能概览
//
//   - [New]: 创建分发器 [Mux]
//   - [Mux.Handle]: 按注册顺序登记键与处理函数
//   - [Mux.Default]: 设置无键匹配时的兜底处理函数
//   - [Mux.Dispatch]: 校验唯一匹配并调用选中的处理函数
//
// # 匹配规则
//
// Dispatch 按 Handle 的注册顺序扫描全部已登记的键，输入 map 中存在的键即为
// 匹配。匹配是一次显式的完整校验：
//
//   - 恰好一个键匹配 → 调用对应处理函数
//   - 多个键匹配 → 返回 [ErrMultipleMatches]，不调用任何处理函数
//   - 无键匹配 → 调用 Default 处理函数；未设置 Default 时返回 [ErrNoHandler]
//
// Go 的 map 成员关系即"自有键"判断，不存在继承键的歧义。输入形状已知时
// 应优先用带标签的联合类型建模，本包面向形状不定的自由格式输入
// （如配置片段、事件载荷）。
//
// # 快速示例
//
//	mux := xdispatch.New[any, string]().
//	    Handle("file", func(m map[string]any) string { return "file sink" }).
//	    Handle("http", func(m map[string]any) string { return "http sink" }).
//	    Default(func(m map[string]any) string { return "null sink" })
//
//	out, err := mux.Dispatch(map[string]any{"http": "..."})
//	// out == "http sink"
//
// Mux 构建完成后只读，Dispatch 可从多个 goroutine 并发调用；
// Handle/Default 与 Dispatch 并发调用不安全。
package xdispatch
