// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow_test

import (
	"testing"

	"code.hybscloud.com/flow"
)

const benchN = 1 << 12

func benchSource() []int {
	s := make([]int, benchN)
	for i := range s {
		s[i] = i
	}
	return s
}

func BenchmarkSlurpMap(b *testing.B) {
	s := benchSource()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := flow.Slurp(flow.Map(func(x int) int { return x * 2 }, flow.FromSlice(s)))
		if v.Len() != benchN {
			b.Fatal("short output")
		}
	}
}

func BenchmarkFoldlSum(b *testing.B) {
	s := benchSource()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flow.Foldl(func(acc, x int) int { return acc + x }, 0, flow.FromSlice(s))
	}
}

func BenchmarkConnect(b *testing.B) {
	s := benchSource()
	dst := make([]int, benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if n := flow.Connect(flow.FromSlice(s), flow.CoSlice(dst)); n != benchN {
			b.Fatal("short transfer")
		}
	}
}

func BenchmarkUnflow(b *testing.B) {
	s := benchSource()
	dst := make([]int, benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, err := flow.Unflow(flow.FromSlice(s), dst)
		if err != nil || n != benchN {
			b.Fatal("short transfer")
		}
	}
}

func BenchmarkExecDrain(b *testing.B) {
	s := benchSource()
	dst := make([]int, benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := flow.NewPipe(flow.FromSlice(s), flow.CoSlice(dst))
		if n := flow.Exec(flow.DrainEff(p)); n != benchN {
			b.Fatal("short drain")
		}
	}
}

func BenchmarkExecExprDrain(b *testing.B) {
	s := benchSource()
	dst := make([]int, benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := flow.NewPipe(flow.FromSlice(s), flow.CoSlice(dst))
		if n := flow.ExecExpr(flow.DrainExpr(p)); n != benchN {
			b.Fatal("short drain")
		}
	}
}

func BenchmarkRunTee(b *testing.B) {
	s := benchSource()
	da := make([]int, benchN)
	db := make([]int, benchN)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fa, fb := flow.Tee(flow.FromSlice(s))
		na, nb := flow.Run(
			flow.DrainEff(flow.NewPipe(fa, flow.CoSlice(da))),
			flow.DrainEff(flow.NewPipe(fb, flow.CoSlice(db))),
		)
		if na != benchN || nb != benchN {
			b.Fatal("short drain")
		}
	}
}

func BenchmarkZipWith(b *testing.B) {
	s := benchSource()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		total := flow.Foldl(func(acc, x int) int { return acc + x }, 0,
			flow.ZipWith(func(x, y int) int { return x + y },
				flow.FromSlice(s), flow.FromSlice(s)))
		if total == 0 && benchN > 1 {
			b.Fatal("empty zip")
		}
	}
}
