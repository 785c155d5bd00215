package xseq

import "testing"

func FuzzRangeStep(f *testing.F) {
	f.Add(0, 10, 1)
	f.Add(10, 0, -1)
	f.Add(0, 0, 1)
	f.Add(-5, 5, 3)
	f.Add(5, -5, -3)

	f.Fuzz(func(t *testing.T, start, stop, step int) {
		// 限制范围避免超长迭代与计数算式溢出
		const lim = 1 << 12
		if start < -lim || start > lim || stop < -lim || stop > lim {
			t.Skip()
		}
		if step < -lim || step > lim {
			t.Skip()
		}

		seq, err := RangeStep(start, stop, step)
		if step == 0 {
			if err == nil {
				t.Fatal("step=0 should fail")
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prev := 0
		count := 0
		for v := range seq {
			// 所有元素落在 [start, stop) 或 (stop, start] 内
			if step > 0 && (v < start || v >= stop) {
				t.Fatalf("value %d outside [%d, %d)", v, start, stop)
			}
			if step < 0 && (v > start || v <= stop) {
				t.Fatalf("value %d outside (%d, %d]", v, stop, start)
			}
			// 严格单调，相邻差为 step
			if count > 0 && v-prev != step {
				t.Fatalf("stride %d, want %d", v-prev, step)
			}
			prev = v
			count++
		}

		// 元素个数与解析解一致
		want := 0
		if step > 0 && stop > start {
			want = (stop - start + step - 1) / step
		}
		if step < 0 && stop < start {
			want = (start - stop + (-step) - 1) / (-step)
		}
		if count != want {
			t.Fatalf("count=%d, want %d (start=%d stop=%d step=%d)", count, want, start, stop, step)
		}
	})
}
