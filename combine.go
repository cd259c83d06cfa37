// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Combine2 interleaves two flows under control of a selector: each
// selector tag names the source of the next element, true selecting
// left. The selector governs the result size; a named source reporting
// Done while the selector expects more is a defect.
func Combine2[T any](sel *Flow[bool], left, right *Flow[T]) *Flow[T] {
	haveTag := false
	tag := false
	start := func() {
		sel.Start()
		left.Start()
		right.Start()
	}
	step1 := func() Step1[T] {
		if !haveTag {
			s := sel.Step1()
			if s.Kind != StepYield {
				return Step1[T]{Kind: s.Kind}
			}
			tag = s.Value
			haveTag = true
		}
		src := right
		if tag {
			src = left
		}
		r := src.Step1()
		switch r.Kind {
		case StepDone:
			panic("flow: combine source exhausted before selector")
		case StepPull:
			return Step1[T]{Kind: StepPull}
		}
		haveTag = false
		return r
	}
	return newFlow(sel.Size(), start, step1, nil)
}

// Combines2 is the segmented variant of Combine2: parallel selector
// and length flows describe runs, each run pulling lens[i] contiguous
// elements from the source sel[i] names. The selector flow governs
// termination; lengths or sources running out early is a defect.
func Combines2[T any](sel *Flow[bool], lens *Flow[int], left, right *Flow[T]) *Flow[T] {
	haveTag := false
	tag := false
	remaining := 0
	inSeg := false
	start := func() {
		sel.Start()
		lens.Start()
		left.Start()
		right.Start()
	}
	step1 := func() Step1[T] {
		for {
			if !inSeg {
				if !haveTag {
					s := sel.Step1()
					if s.Kind != StepYield {
						return Step1[T]{Kind: s.Kind}
					}
					tag = s.Value
					haveTag = true
				}
				l := lens.Step1()
				switch l.Kind {
				case StepDone:
					panic("flow: segment lengths exhausted before selectors")
				case StepPull:
					return Step1[T]{Kind: StepPull}
				}
				if l.Value < 0 {
					panic("flow: negative segment length")
				}
				remaining = l.Value
				haveTag = false
				inSeg = true
			}
			if remaining == 0 {
				inSeg = false
				continue
			}
			src := right
			if tag {
				src = left
			}
			r := src.Step1()
			switch r.Kind {
			case StepDone:
				panic("flow: combine source exhausted before selector")
			case StepPull:
				return Step1[T]{Kind: StepPull}
			}
			remaining--
			return r
		}
	}
	return newFlow(Unknown, start, step1, nil)
}
