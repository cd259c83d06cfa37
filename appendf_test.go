// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow_test

import (
	"testing"

	"code.hybscloud.com/flow"
)

func TestAppendsExactSizes(t *testing.T) {
	f := flow.Appends(
		flow.FromSlice([]int{1, 2}),
		flow.FromSlice([]int{}),
		flow.FromSlice([]int{3, 4, 5}),
	)
	if f.Size() != flow.Exact(5) {
		t.Fatalf("Size got %v, want Exact(5)", f.Size())
	}
	got := drainAll(t, f)
	if !equalSlices([]int{1, 2, 3, 4, 5}, got) {
		t.Fatalf("Appends got %v", got)
	}
}

func TestAppendsUnknownWhenAnyUnbounded(t *testing.T) {
	f := flow.Appends(
		flow.FromSlice([]int{1, 2}),
		flow.Filter(func(n int) bool { return n > 0 }, flow.FromSlice([]int{3, -1, 4})),
	)
	if f.Size() != flow.Unknown {
		t.Fatalf("Size got %v, want Unknown", f.Size())
	}
	got := drainAll(t, f)
	if !equalSlices([]int{1, 2, 3, 4}, got) {
		t.Fatalf("Appends got %v", got)
	}
}

func TestAppendsEmpty(t *testing.T) {
	f := flow.Appends[int]()
	if f.Size() != flow.Exact(0) {
		t.Fatalf("Size got %v, want Exact(0)", f.Size())
	}
	if got := drainAll(t, f); len(got) != 0 {
		t.Fatalf("empty Appends got %v", got)
	}
}

func TestAppendsBatchCrossesBoundary(t *testing.T) {
	f := flow.Appends(
		flow.FromSlice([]int{1, 2, 3}),
		flow.FromSlice([]int{4, 5}),
	)
	f.Start()
	r := f.Step8()
	if r.Kind != flow.StepYield || r.Count != 3 {
		t.Fatalf("first batch got kind %d count %d, want 3 from first sub-flow", r.Kind, r.Count)
	}
	r = f.Step8()
	if r.Kind != flow.StepYield || r.Count != 2 {
		t.Fatalf("second batch got kind %d count %d", r.Kind, r.Count)
	}
	if r = f.Step8(); r.Kind != flow.StepDone {
		t.Fatalf("final batch got kind %d, want Done", r.Kind)
	}
}
