// Package xsearch 提供泛型二分查找，定位有序切片中的插入点。
//
// # 功能概览
//
//   - [LowerBound]: 第一个不小于目标值的位置（插入点左界）
//   - [UpperBound]: 第一个严格大于目标值的位置（插入点右界）
//   - [LowerBoundFunc] / [UpperBoundFunc]: 通过 key 提取函数比较的变体
//
// 两种策略共享同一个 [0, n) 半开区间二分实现，仅推进判据不同
// （LowerBound 用 <，UpperBound 用 <=）。
//
// # 不变量
//
// 对任意按 key 升序排列的切片 xs 和目标 x：
//
//	LowerBound(xs, x) <= UpperBound(xs, x)
//
// 且半开区间 [LowerBound, UpperBound) 恰好覆盖所有等于 x 的下标。
// 等值元素的相对位置不受影响——查找不修改输入。
//
// # 快速示例
//
//	xs := []int{1, 3, 3, 5}
//	xsearch.LowerBound(xs, 3)  // 1
//	xsearch.UpperBound(xs, 3)  // 3
//	xsearch.LowerBound(xs, 4)  // 3
//
// 输入必须已按比较 key 升序排序，乱序输入的结果未定义。
// 空切片对任意目标返回 0。无错误路径，无副作用。
package xsearch
