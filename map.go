// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Map applies a pure element transform on the pull side. Size is
// preserved exactly.
func Map[A, B any](f func(A) B, in *Flow[A]) *Flow[B] {
	start := func() {
		in.Start()
	}
	step1 := func() Step1[B] {
		r := in.Step1()
		if r.Kind != StepYield {
			return Step1[B]{Kind: r.Kind}
		}
		return Step1[B]{Kind: StepYield, Value: f(r.Value)}
	}
	step8 := func() Step8[B] {
		r := in.Step8()
		out := Step8[B]{Kind: r.Kind, Count: r.Count}
		for k := 0; k < r.Count; k++ {
			out.Values[k] = f(r.Values[k])
		}
		return out
	}
	return newFlow(in.Size(), start, step1, step8)
}

// MapCo applies a pure element transform on the push side: elements
// offered to the returned sink reach out transformed.
func MapCo[A, B any](f func(A) B, out *CoFlow[B]) *CoFlow[A] {
	start := func() {
		out.ensureStart()
	}
	push1 := func(v A) Snack1 {
		return out.Push1(f(v))
	}
	push8 := func(vs *[8]A, n int) Snack8 {
		var tmp [8]B
		for k := 0; k < n; k++ {
			tmp[k] = f(vs[k])
		}
		return out.Push8(&tmp, n)
	}
	closeFn := func() {
		out.Close()
	}
	return newCoFlow(start, push1, push8, closeFn)
}
