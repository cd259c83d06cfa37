// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Gather yields src[index] for each index pulled from idx. An
// out-of-range index is a defect, never silently clamped. Size follows
// the index flow.
func Gather[T any](src Store[T], idx *Flow[int]) *Flow[T] {
	start := func() {
		idx.Start()
	}
	step1 := func() Step1[T] {
		r := idx.Step1()
		if r.Kind != StepYield {
			return Step1[T]{Kind: r.Kind}
		}
		return Step1[T]{Kind: StepYield, Value: src.At(r.Value)}
	}
	step8 := func() Step8[T] {
		r := idx.Step8()
		out := Step8[T]{Kind: r.Kind, Count: r.Count}
		for k := 0; k < r.Count; k++ {
			out.Values[k] = src.At(r.Values[k])
		}
		return out
	}
	return newFlow(idx.Size(), start, step1, step8)
}
