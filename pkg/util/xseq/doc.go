// Package xseq 提供基于 [iter.Seq] 的惰性序列工具。
//
// # 功能概览
//
//   - [Range] / [RangeStep]: 等差数列迭代器，支持步长与降序
//   - [Enumerate]: 附加从 0 开始的下标
//   - [Map]: 逐元素变换
//   - [Zip]: 两序列并行迭代，止于较短一方
//   - [ToMap]: 收集键值序列为 map
//   - [MaxBy]: 按 key 提取函数求最大元素
//
// 所有返回的序列均可重复 range：每次 range 从头重新生成，互不影响。
// 序列本身不持有状态，但 [Map]、[Zip] 等包装的上游序列若有副作用，
// 副作用会在每次迭代时重放。
//
// # 快速示例
//
//	for i, v := range xseq.Enumerate(xseq.Range(10, 13)) {
//	    fmt.Println(i, v) // 0 10, 1 11, 2 12
//	}
//
//	squares := xseq.ToMap(xseq.Zip(
//	    xseq.Range(1, 4),
//	    xseq.Map(xseq.Range(1, 4), func(v int) int { return v * v }),
//	))
//	// map[1:1 2:4 3:9]
//
// # 平台要求
//
// 使用 Go 1.23+ 的 [iter.Seq] / [iter.Seq2] 迭代器特性。
package xseq
