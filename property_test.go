// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/flow"
)

func TestPropertySliceRoundTrip(t *testing.T) {
	f := func(s []int) bool {
		out := flow.Slurp(flow.FromSlice(s)).Slice()
		return equalSlices(s, out)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyMapComposition(t *testing.T) {
	// Mapping g after f over one flow equals mapping their composition.
	double := func(v int) int { return v * 2 }
	inc := func(v int) int { return v + 1 }
	f := func(s []int) bool {
		chained := flow.Slurp(flow.Map(inc, flow.Map(double, flow.FromSlice(s)))).Slice()
		composed := flow.Slurp(flow.Map(func(v int) int { return inc(double(v)) }, flow.FromSlice(s))).Slice()
		return equalSlices(chained, composed)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyFilterSubsequence(t *testing.T) {
	pred := func(v int) bool { return v%3 != 0 }
	f := func(s []int) bool {
		out := flow.Slurp(flow.Filter(pred, flow.FromSlice(s))).Slice()
		// Every kept element satisfies the predicate and appears in the
		// source order.
		i := 0
		for _, v := range out {
			if !pred(v) {
				return false
			}
			for i < len(s) && s[i] != v {
				i++
			}
			if i == len(s) {
				return false
			}
			i++
		}
		// No satisfying element was dropped.
		kept := 0
		for _, v := range s {
			if pred(v) {
				kept++
			}
		}
		return kept == len(out)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyZipLengthAndOrder(t *testing.T) {
	f := func(a, b []int) bool {
		out := flow.Slurp(flow.Zip(flow.FromSlice(a), flow.FromSlice(b))).Slice()
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		if len(out) != n {
			return false
		}
		for i, p := range out {
			if p.Fst != a[i] || p.Snd != b[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyFoldlMatchesLoop(t *testing.T) {
	f := func(s []int) bool {
		got := flow.Foldl(func(acc, v int) int { return acc + v }, 0, flow.FromSlice(s))
		want := 0
		for _, v := range s {
			want += v
		}
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyAppendsConcatenation(t *testing.T) {
	f := func(a, b, c []int) bool {
		out := flow.Slurp(flow.Appends(
			flow.FromSlice(a), flow.FromSlice(b), flow.FromSlice(c),
		)).Slice()
		want := make([]int, 0, len(a)+len(b)+len(c))
		want = append(want, a...)
		want = append(want, b...)
		want = append(want, c...)
		return equalSlices(want, out)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyResumableAtAnyCut(t *testing.T) {
	// Draining k elements one at a time, then the rest in batches,
	// yields the same sequence as a single drain. The cut point must
	// not be observable downstream.
	f := func(s []int, cut uint8) bool {
		k := int(cut)
		if k > len(s) {
			k = len(s)
		}
		fl := flow.Map(func(v int) int { return v ^ 0x55 }, flow.FromSlice(s))
		fl.Start()
		out := make([]int, 0, len(s))
		for i := 0; i < k; i++ {
			r := fl.Step1()
			if r.Kind != flow.StepYield {
				return false
			}
			out = append(out, r.Value)
		}
		out = append(out, drainRest(t, fl)...)
		want := flow.Slurp(flow.Map(func(v int) int { return v ^ 0x55 }, flow.FromSlice(s))).Slice()
		return equalSlices(want, out)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyRelayRandomInterleaving(t *testing.T) {
	// A tiny relay under a randomized push/pull schedule: whatever the
	// interleaving, the pull side observes exactly the pushed sequence.
	f := func(s []int, sched []bool) bool {
		co, fl := flow.Relay[int](2)
		co.Start()
		fl.Start()
		next := 0
		var out []int
		for _, push := range sched {
			if push && next < len(s) {
				if snk := co.Push1(s[next]); snk.Kind == flow.SnackAccepted {
					next++
				}
				continue
			}
			if r := fl.Step1(); r.Kind == flow.StepYield {
				out = append(out, r.Value)
			}
		}
		for next < len(s) {
			if snk := co.Push1(s[next]); snk.Kind == flow.SnackAccepted {
				next++
				continue
			}
			if r := fl.Step1(); r.Kind == flow.StepYield {
				out = append(out, r.Value)
			}
		}
		co.Close()
		out = append(out, drainRest(t, fl)...)
		return equalSlices(s, out)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyConnectMatchesSlurp(t *testing.T) {
	f := func(s []int) bool {
		v := flow.VecOf[int]()
		moved := flow.Connect(flow.FromSlice(s), flow.CoVec(v))
		return moved == len(s) && equalSlices(s, v.Slice())
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
