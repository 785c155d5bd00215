// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xassert: 断言工具，前置条件校验、错误返回与 Must 风格 panic
//   - xdispatch: 键控分发器，按注册顺序做唯一键匹配路由
//   - xhash: 哈希封装，SHA-256 十六进制摘要与 XXH64 快速哈希
//   - xnum: 数值工具，向下取整求余、周期对齐、指数曲线
//   - xpromise: 一次性异步结果，Promise 与按 key 去重的 Group
//   - xsearch: 泛型二分查找，lower bound / upper bound 插入点定位
//   - xseq: 惰性序列工具，基于 iter.Seq 的 Range/Zip/Enumerate/Map
//
// 设计原则：
//   - 纯函数优先，不持有共享状态
//   - 错误同步返回给调用方，不在库内记录或恢复
//   - 泛型保证编译期类型安全，避免 interface{} 断言
package util
