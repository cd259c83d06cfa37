// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow_test

import (
	"testing"

	"code.hybscloud.com/flow"
)

func TestFoldlSum(t *testing.T) {
	f := flow.EnumFromN(1, 100)
	got := flow.Foldl(func(acc, n int) int { return acc + n }, 0, f)
	if got != 5050 {
		t.Fatalf("Foldl got %d, want 5050", got)
	}
}

func TestFoldlOrderSensitive(t *testing.T) {
	f := flow.FromSlice([]string{"a", "b", "c"})
	got := flow.Foldl(func(acc, s string) string { return acc + s }, "", f)
	if got != "abc" {
		t.Fatalf("Foldl got %q, want %q", got, "abc")
	}
}

func TestFoldsSegmented(t *testing.T) {
	lens := flow.FromSlice([]int{2, 0, 3})
	elems := flow.FromSlice([]int{1, 2, 3, 4, 5})
	f := flow.Folds(func(acc, n int) int { return acc + n }, 0, lens, elems)
	if f.Size() != flow.Exact(3) {
		t.Fatalf("Size got %v, want Exact(3)", f.Size())
	}
	got := drainAll(t, f)
	if !equalSlices([]int{3, 0, 12}, got) {
		t.Fatalf("Folds got %v", got)
	}
}

func TestSums(t *testing.T) {
	lens := flow.FromSlice([]int{1, 3})
	elems := flow.FromSlice([]float64{0.5, 1, 2, 3})
	got := drainAll(t, flow.Sums(lens, elems))
	if !equalSlices([]float64{0.5, 6}, got) {
		t.Fatalf("Sums got %v", got)
	}
}

func TestFoldsShortElementsPanics(t *testing.T) {
	lens := flow.FromSlice([]int{3})
	elems := flow.FromSlice([]int{1, 2})
	f := flow.Folds(func(acc, n int) int { return acc + n }, 0, lens, elems)
	mustPanic(t, "ended inside a segment", func() { drainAll(t, f) })
}

func TestFoldsLeftoverElementsPanics(t *testing.T) {
	// A length flow with Unknown size ends by reporting Done, which
	// triggers the end-of-stream element check.
	lens := flow.Replicate(flow.FromSlice([]flow.Rep[int]{{Count: 1, Value: 2}}))
	elems := flow.FromSlice([]int{1, 2, 3})
	f := flow.Folds(func(acc, n int) int { return acc + n }, 0, lens, elems)
	mustPanic(t, "elements remain after last segment", func() { drainAll(t, f) })
}

func TestFoldsHoldsAtPullUntilLeftoverVerdict(t *testing.T) {
	// After the last segment the element flow is not ready: the result
	// must report Pull, not Done, so late leftovers are still caught.
	co, elems := flow.Relay[int](4)
	co.Start()
	co.Push1(1)
	co.Push1(2)
	lens := flow.Replicate(flow.FromSlice([]flow.Rep[int]{{Count: 1, Value: 2}}))
	f := flow.Folds(func(acc, n int) int { return acc + n }, 0, lens, elems)
	f.Start()

	if r := f.Step1(); r.Kind != flow.StepYield || r.Value != 3 {
		t.Fatalf("first segment got %+v", r)
	}
	if r := f.Step1(); r.Kind != flow.StepPull {
		t.Fatalf("unverified tail got kind %d, want Pull", r.Kind)
	}
	co.Push1(3)
	mustPanic(t, "elements remain after last segment", func() { f.Step1() })
}
