// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Appends concatenates sub-flows end-to-end, advancing to the next
// sub-flow exactly when the previous reports Done. The result size is
// the sum of the sub-flow sizes when all are Exact, else Unknown.
func Appends[T any](subs ...*Flow[T]) *Flow[T] {
	size := Exact(0)
	for _, s := range subs {
		size = addSize(size, s.Size())
	}
	i := 0
	start := func() {
		for _, s := range subs {
			s.Start()
		}
	}
	step1 := func() Step1[T] {
		for i < len(subs) {
			r := subs[i].Step1()
			if r.Kind != StepDone {
				return r
			}
			i++
		}
		return Step1[T]{Kind: StepDone}
	}
	step8 := func() Step8[T] {
		for i < len(subs) {
			r := subs[i].Step8()
			if r.Kind != StepDone {
				return r
			}
			i++
		}
		return Step8[T]{Kind: StepDone}
	}
	return newFlow(size, start, step1, step8)
}
