// Package xpromise 提供一次性异步结果封装。
//
// # 功能概览
//
//   - [New]: 启动一次后台计算，返回可等待的 [Promise]
//   - [Promise.Wait]: 带 context 的阻塞等待，结果缓存后续等待立即返回
//   - [NewGroup] / [Group.Do]: 按 key 去重的并发计算，同 key 并发调用只执行一次
//
// # 语义说明
//
// Promise 是单赋值的：计算函数恰好执行一次，结果（值或错误）缓存，任意数量
// 的等待方共享同一结果。Wait 的 context 取消只放弃本次等待，不中断底层计算
// ——计算仍会完成并对后续等待方可见。需要可取消的计算应在计算函数内部自行
// 接收 context。
//
// Group 基于 [golang.org/x/sync/singleflight]：执行中的同 key 调用合流到
// 同一次执行；执行结束后同 key 再次调用会重新执行（与 Promise 的永久缓存
// 不同）。
//
// # 快速示例
//
//	p := xpromise.New(func() (string, error) {
//	    return expensiveDigest(payload), nil
//	})
//	// ... 其他工作 ...
//	digest, err := p.Wait(ctx)
package xpromise
