// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import "code.hybscloud.com/lfq"

// dupCapacity bounds how far one side of a duplicate may run ahead of
// the other: one full batch. Both consumers must keep pace; a side
// falling permanently behind holds the other at Pull.
const dupCapacity = 8

// teeShared is the state both halves of a Tee share: the upstream
// cursor plus a bounded lookahead buffer per half holding elements the
// other half pulled past.
type teeShared[T any] struct {
	src     *Flow[T]
	ahead   [2]lfq.SPSC[T]
	pending [2]int
	started bool
	srcDone bool
}

// Tee shares one upstream flow between two consumers: every upstream
// element is observed by both halves, in order. The shared cursor
// advances with the leading half; the lagging half reads from the
// lookahead buffer. When the lag reaches dupCapacity the leading half
// sees Pull until the other catches up.
//
// Tee is the single sanctioned way to alias a flow's state.
func Tee[T any](src *Flow[T]) (*Flow[T], *Flow[T]) {
	sh := &teeShared[T]{src: src}
	sh.ahead[0].Init(dupCapacity)
	sh.ahead[1].Init(dupCapacity)
	return teeHalf(sh, 0), teeHalf(sh, 1)
}

func teeHalf[T any](sh *teeShared[T], i int) *Flow[T] {
	other := 1 - i
	start := func() {
		if !sh.started {
			sh.started = true
			sh.src.Start()
		}
	}
	step1 := func() Step1[T] {
		if sh.pending[i] > 0 {
			v, err := sh.ahead[i].Dequeue()
			if err != nil {
				panic("flow: tee lookahead underflow")
			}
			sh.pending[i]--
			return Step1[T]{Kind: StepYield, Value: v}
		}
		if sh.srcDone {
			return Step1[T]{Kind: StepDone}
		}
		if sh.pending[other] >= dupCapacity {
			return Step1[T]{Kind: StepPull}
		}
		r := sh.src.Step1()
		switch r.Kind {
		case StepYield:
			v := r.Value
			if err := sh.ahead[other].Enqueue(&v); err != nil {
				panic("flow: tee lookahead overflow")
			}
			sh.pending[other]++
		case StepDone:
			sh.srcDone = true
		}
		return r
	}
	return newFlow(sh.src.Size(), start, step1, nil)
}

// dupSink is one fan-out target of DupCo: the sink plus the bounded
// backlog of elements accepted by the duplicate but not yet by the
// sink, with a one-slot head for re-offering after Pull.
type dupSink[T any] struct {
	co      *CoFlow[T]
	backlog lfq.SPSC[T]
	pending int
	head    T
	hasHead bool
}

// flush delivers as much backlog as the sink will take now.
func (d *dupSink[T]) flush() {
	d.co.ensureStart()
	for !d.co.Done() {
		if !d.hasHead {
			if d.pending == 0 {
				return
			}
			v, err := d.backlog.Dequeue()
			if err != nil {
				panic("flow: dup backlog underflow")
			}
			d.pending--
			d.head = v
			d.hasHead = true
		}
		s := d.co.Push1(d.head)
		switch s.Kind {
		case SnackAccepted:
			d.hasHead = false
		case SnackPull:
			return
		case SnackDone:
			return
		}
	}
}

// buffered reports how many elements the sink still owes delivery.
func (d *dupSink[T]) buffered() int {
	n := d.pending
	if d.hasHead {
		n++
	}
	return n
}

func (d *dupSink[T]) put(v T) {
	if err := d.backlog.Enqueue(&v); err != nil {
		panic("flow: dup backlog overflow")
	}
	d.pending++
}

// DupCo duplicates a pushed stream into two sinks: while both sinks
// remain open, every accepted element reaches both a and b, in order.
// Buffering between the sinks is bounded; a sink falling permanently
// behind holds the duplicate at Pull. Either sink reporting Done ends
// the duplicate.
//
// Close delivers the remaining backlog to both sinks. A still-open
// sink that cannot take its backlog at close would lose accepted
// elements; that is a defect, never masked. Only a sink that already
// reported Done may strand backlog.
func DupCo[T any](a, b *CoFlow[T]) *CoFlow[T] {
	sinks := [2]*dupSink[T]{{co: a}, {co: b}}
	sinks[0].backlog.Init(dupCapacity)
	sinks[1].backlog.Init(dupCapacity)
	start := func() {
		a.ensureStart()
		b.ensureStart()
	}
	push1 := func(v T) Snack1 {
		for _, d := range sinks {
			d.flush()
			if d.co.Done() {
				return Snack1{Kind: SnackDone}
			}
		}
		for _, d := range sinks {
			if d.buffered() >= dupCapacity {
				return Snack1{Kind: SnackPull}
			}
		}
		for _, d := range sinks {
			d.put(v)
			d.flush()
		}
		return Snack1{Kind: SnackAccepted}
	}
	closeFn := func() {
		for _, d := range sinks {
			d.flush()
			if !d.co.Done() && d.buffered() > 0 {
				panic("flow: dup backlog undeliverable at close")
			}
			d.co.Close()
		}
	}
	return newCoFlow(start, push1, nil, closeFn)
}
