// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Filter emits only elements satisfying p, preserving order. The
// result size degrades to Max of the upstream bound: the true count is
// unknown until fully drained.
func Filter[T any](p func(T) bool, in *Flow[T]) *Flow[T] {
	start := func() {
		in.Start()
	}
	step1 := func() Step1[T] {
		for {
			r := in.Step1()
			if r.Kind != StepYield || p(r.Value) {
				return r
			}
		}
	}
	return newFlow(weaken(in.Size()), start, step1, nil)
}

// PackByFlag emits the elements of in whose companion flag is true.
// Flags and elements advance pairwise; whichever flow ends first ends
// the pack.
func PackByFlag[T any](flags *Flow[bool], in *Flow[T]) *Flow[T] {
	haveFlag := false
	flag := false
	start := func() {
		flags.Start()
		in.Start()
	}
	step1 := func() Step1[T] {
		for {
			if !haveFlag {
				f := flags.Step1()
				if f.Kind != StepYield {
					return Step1[T]{Kind: f.Kind}
				}
				flag = f.Value
				haveFlag = true
			}
			r := in.Step1()
			if r.Kind != StepYield {
				return r
			}
			haveFlag = false
			if flag {
				return r
			}
		}
	}
	return newFlow(weaken(minSize(flags.Size(), in.Size())), start, step1, nil)
}

// PackByTag emits the payloads of tagged pairs whose tag equals tag.
func PackByTag[T any](tag bool, in *Flow[Pair[bool, T]]) *Flow[T] {
	start := func() {
		in.Start()
	}
	step1 := func() Step1[T] {
		for {
			r := in.Step1()
			if r.Kind != StepYield {
				return Step1[T]{Kind: r.Kind}
			}
			if r.Value.Fst == tag {
				return Step1[T]{Kind: StepYield, Value: r.Value.Snd}
			}
		}
	}
	return newFlow(weaken(in.Size()), start, step1, nil)
}
