// Package xassert 提供前置条件断言工具。
//
// # 功能概览
//
//   - [That]: 条件不成立时返回包装 [ErrAssertion] 的错误
//   - [Ensure]: 条件成立时原样返回值，便于在表达式中内联校验
//   - [Must]: err 非 nil 时 panic，用于 init 期或测试中"不可能失败"的调用
//
// 错误同步返回给调用方，本包不记录、不恢复。[That] 与 [Ensure] 面向
// 可恢复的输入校验；[Must] 仅用于程序错误——失败即 bug 的场合。
//
//	cfg, err := xassert.Ensure(cfg, cfg.Workers > 0, "workers = %d, want > 0", cfg.Workers)
package xassert
