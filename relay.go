// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import "code.hybscloud.com/lfq"

// relayCore holds the bounded transport between a relay's push side
// and pull side in a single allocation.
type relayCore[T any] struct {
	q        lfq.SPSC[T]
	pending  int
	capacity int
	closed   bool
}

// Relay couples a CoFlow to a Flow over one bounded buffer: elements
// pushed into the returned sink come out of the returned flow in
// order. The sink reports Pull while the buffer is full, the flow
// reports Pull while it is empty, and the flow reports Done once the
// sink is closed and the buffer drained. Relays reconcile flow/coflow
// pairs whose production and consumption rates differ transiently.
func Relay[T any](capacity int) (*CoFlow[T], *Flow[T]) {
	if capacity < 1 {
		panic("flow: relay capacity must be positive")
	}
	core := &relayCore[T]{capacity: capacity}
	// lfq.SPSC requires a physical capacity of at least 2; the logical
	// bound is enforced by the pending counter above, so oversizing the
	// queue does not change relay behavior.
	core.q.Init(max(capacity, 2))

	push1 := func(v T) Snack1 {
		if core.pending >= core.capacity {
			return Snack1{Kind: SnackPull}
		}
		if err := core.q.Enqueue(&v); err != nil {
			return Snack1{Kind: SnackPull}
		}
		core.pending++
		return Snack1{Kind: SnackAccepted}
	}
	closeFn := func() {
		core.closed = true
	}
	co := newCoFlow(nil, push1, nil, closeFn)

	step1 := func() Step1[T] {
		if core.pending > 0 {
			v, err := core.q.Dequeue()
			if err != nil {
				panic("flow: relay buffer underflow")
			}
			core.pending--
			return Step1[T]{Kind: StepYield, Value: v}
		}
		if core.closed {
			return Step1[T]{Kind: StepDone}
		}
		return Step1[T]{Kind: StepPull}
	}
	f := newFlow(Unknown, nil, step1, nil)
	return co, f
}
