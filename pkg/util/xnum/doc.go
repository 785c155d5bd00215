// Package xnum 提供数值工具函数。
//
// # 功能概览
//
//   - [Mod]: 向下取整求余，结果符号跟随模数（Python 风格）
//   - [AlignDown]: 按周期与偏移向下对齐，如时间戳按天分桶
//   - [Exponential]: 构造指数曲线 f(n) = initial * ratio^n
//
// # 快速示例
//
//	xnum.Mod(-7, 3)              // 2, nil（Go 内建 % 给 -1）
//	xnum.AlignDown(1736953200, 86400, 4*3600) // 当天 04:00 边界
//	backoff := xnum.Exponential(100, 2)
//	backoff(3)                   // 800
package xnum
