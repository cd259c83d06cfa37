// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// Numeric constrains the element types of arithmetic flows.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Generate produces a flow of exactly n elements from an index
// function. Pure and allocation-free per step.
func Generate[T any](n int, f func(int) T) *Flow[T] {
	if n < 0 {
		panic("flow: negative length")
	}
	i := 0
	step1 := func() Step1[T] {
		v := f(i)
		i++
		return Step1[T]{Kind: StepYield, Value: v}
	}
	step8 := func() Step8[T] {
		m := n - i
		if m > 8 {
			m = 8
		}
		var out Step8[T]
		for k := 0; k < m; k++ {
			out.Values[k] = f(i)
			i++
		}
		out.Kind = StepYield
		out.Count = m
		return out
	}
	return newFlow(Exact(n), nil, step1, step8)
}

// EnumFromN produces the arithmetic sequence start, start+1, ... of
// exactly n elements.
func EnumFromN[N Numeric](start N, n int) *Flow[N] {
	return Generate(n, func(i int) N {
		return start + N(i)
	})
}

// Rep is one replication segment: Value emitted Count times.
type Rep[T any] struct {
	Count int
	Value T
}

// Replicate emits each segment's value Count times, in segment order.
// A zero count is valid and contributes no elements. The result size is
// Unknown: the sum of counts is not known up front.
func Replicate[T any](reps *Flow[Rep[T]]) *Flow[T] {
	var cur T
	remaining := 0
	start := func() {
		reps.Start()
	}
	step1 := func() Step1[T] {
		for remaining == 0 {
			r := reps.Step1()
			if r.Kind != StepYield {
				return Step1[T]{Kind: r.Kind}
			}
			if r.Value.Count < 0 {
				panic("flow: negative replicate count")
			}
			cur = r.Value.Value
			remaining = r.Value.Count
		}
		remaining--
		return Step1[T]{Kind: StepYield, Value: cur}
	}
	return newFlow(Unknown, start, step1, nil)
}

// ReplicatesDirect is Replicate over parallel counts and values flows:
// the i-th value is emitted counts[i] times. The counts flow is
// authoritative for termination; values running out while a count is
// pending is a defect.
func ReplicatesDirect[T any](counts *Flow[int], values *Flow[T]) *Flow[T] {
	var cur T
	remaining := 0
	pending := 0
	havePending := false
	start := func() {
		counts.Start()
		values.Start()
	}
	step1 := func() Step1[T] {
		for remaining == 0 {
			if !havePending {
				c := counts.Step1()
				if c.Kind != StepYield {
					return Step1[T]{Kind: c.Kind}
				}
				if c.Value < 0 {
					panic("flow: negative replicate count")
				}
				pending = c.Value
				havePending = true
			}
			v := values.Step1()
			switch v.Kind {
			case StepDone:
				panic("flow: values exhausted before counts")
			case StepPull:
				return Step1[T]{Kind: StepPull}
			}
			cur = v.Value
			remaining = pending
			havePending = false
		}
		remaining--
		return Step1[T]{Kind: StepYield, Value: cur}
	}
	return newFlow(Unknown, start, step1, nil)
}
