package xnum

import "math"

// Signed 约束本包支持的有符号整型。
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Mod 返回向下取整除法意义下的余数，结果符号与 m 一致且绝对值小于 |m|。
// Go 内建 % 为截断除法（余数符号跟随被除数），两者对负数行为不同：
//
//	-7 % 3        // -1
//	Mod(-7, 3)    // 2
//
// m == 0 返回 [ErrZeroModulus]。
func Mod[T Signed](a, m T) (T, error) {
	if m == 0 {
		return 0, ErrZeroModulus
	}
	r := a % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r, nil
}

// AlignDown 返回不大于 v 的最大 offset + k*period（k 为整数）。
// 用于把连续值对齐到周期边界，如时间戳按天（period=86400）分桶，
// offset 表示边界相对零点的平移。period <= 0 返回 [ErrNonPositivePeriod]。
//
// 对负的 v 同样成立（向下取整语义，与 [Mod] 一致）。
func AlignDown[T Signed](v, period, offset T) (T, error) {
	if period <= 0 {
		return 0, ErrNonPositivePeriod
	}
	r, err := Mod(v-offset, period)
	if err != nil {
		return 0, err
	}
	return v - r, nil
}

// Exponential 返回指数曲线 f(n) = initial * ratio^n。
// 常用于构造退避间隔或衰减权重序列。
func Exponential(initial, ratio float64) func(n int) float64 {
	return func(n int) float64 {
		return initial * math.Pow(ratio, float64(n))
	}
}
