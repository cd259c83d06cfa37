// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Pair is an element pair produced by Zip and consumed by PackByTag.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// ZipWith combines two flows pairwise with f. The smaller bound
// governs the result size; as soon as either input reports Done, the
// zip reports Done.
func ZipWith[A, B, C any](f func(A, B) C, a *Flow[A], b *Flow[B]) *Flow[C] {
	var la A
	haveA := false
	start := func() {
		a.Start()
		b.Start()
	}
	step1 := func() Step1[C] {
		if !haveA {
			r := a.Step1()
			if r.Kind != StepYield {
				return Step1[C]{Kind: r.Kind}
			}
			la = r.Value
			haveA = true
		}
		r := b.Step1()
		if r.Kind != StepYield {
			return Step1[C]{Kind: r.Kind}
		}
		haveA = false
		return Step1[C]{Kind: StepYield, Value: f(la, r.Value)}
	}
	return newFlow(minSize(a.Size(), b.Size()), start, step1, nil)
}

// Zip combines two flows into a flow of pairs.
func Zip[A, B any](a *Flow[A], b *Flow[B]) *Flow[Pair[A, B]] {
	return ZipWith(func(x A, y B) Pair[A, B] {
		return Pair[A, B]{Fst: x, Snd: y}
	}, a, b)
}

// ZipLeftWith combines two flows pairwise with f, with the left flow's
// length authoritative: the caller guarantees the right flow is at
// least as long, and the right flow running out early is a defect.
func ZipLeftWith[A, B, C any](f func(A, B) C, a *Flow[A], b *Flow[B]) *Flow[C] {
	var la A
	haveA := false
	start := func() {
		a.Start()
		b.Start()
	}
	step1 := func() Step1[C] {
		if !haveA {
			r := a.Step1()
			if r.Kind != StepYield {
				return Step1[C]{Kind: r.Kind}
			}
			la = r.Value
			haveA = true
		}
		r := b.Step1()
		switch r.Kind {
		case StepDone:
			panic("flow: right flow exhausted before left")
		case StepPull:
			return Step1[C]{Kind: StepPull}
		}
		haveA = false
		return Step1[C]{Kind: StepYield, Value: f(la, r.Value)}
	}
	return newFlow(a.Size(), start, step1, nil)
}

// ZipLeft combines two flows into pairs with the left length
// authoritative.
func ZipLeft[A, B any](a *Flow[A], b *Flow[B]) *Flow[Pair[A, B]] {
	return ZipLeftWith(func(x A, y B) Pair[A, B] {
		return Pair[A, B]{Fst: x, Snd: y}
	}, a, b)
}
