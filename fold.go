// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import "code.hybscloud.com/iox"

// Foldl drains the whole flow, accumulating with f from z. Retries
// Pull with adaptive backoff (iox.Backoff).
func Foldl[A, B any](f func(B, A) B, z B, in *Flow[A]) B {
	in.ensureStart()
	acc := z
	var bo iox.Backoff
	for {
		r := in.Step8()
		switch r.Kind {
		case StepYield:
			for k := 0; k < r.Count; k++ {
				acc = f(acc, r.Values[k])
			}
			bo.Reset()
		case StepDone:
			return acc
		case StepPull:
			bo.Wait()
		}
	}
}

// Folds reduces the element flow segment-wise: the i-th output is the
// fold of the next lens[i] elements. The sum of segment lengths must
// equal the elements the flow produces; the element flow ending inside
// a segment, or elements remaining after the last segment, is a defect
// reported when detected. The trailing-elements check holds the result
// at Pull while the element flow is not ready, so Done is only
// reported once the leftover verdict is in.
func Folds[A, B any](f func(B, A) B, z B, lens *Flow[int], in *Flow[A]) *Flow[B] {
	var acc B
	remaining := 0
	inSeg := false
	start := func() {
		lens.Start()
		in.Start()
	}
	step1 := func() Step1[B] {
		if !inSeg {
			l := lens.Step1()
			switch l.Kind {
			case StepDone:
				// End of the segments: verify against the element flow.
				// A not-ready element source defers the verdict rather
				// than declaring Done over possible leftovers.
				switch in.Step1().Kind {
				case StepYield:
					panic("flow: elements remain after last segment")
				case StepPull:
					return Step1[B]{Kind: StepPull}
				}
				return Step1[B]{Kind: StepDone}
			case StepPull:
				return Step1[B]{Kind: StepPull}
			}
			if l.Value < 0 {
				panic("flow: negative segment length")
			}
			remaining = l.Value
			acc = z
			inSeg = true
		}
		for remaining > 0 {
			r := in.Step1()
			switch r.Kind {
			case StepDone:
				panic("flow: element flow ended inside a segment")
			case StepPull:
				return Step1[B]{Kind: StepPull}
			}
			acc = f(acc, r.Value)
			remaining--
		}
		inSeg = false
		return Step1[B]{Kind: StepYield, Value: acc}
	}
	return newFlow(lens.Size(), start, step1, nil)
}

// Sums is Folds with addition: one sum per segment.
func Sums[N Numeric](lens *Flow[int], in *Flow[N]) *Flow[N] {
	return Folds(func(acc, x N) N { return acc + x }, N(0), lens, in)
}
