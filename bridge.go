// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrCapacity reports that the destination of Unflow is smaller than
// the number of elements the flow produced. It is returned before any
// out-of-bounds write occurs.
var ErrCapacity = errors.New("flow: destination capacity exceeded")

// FromStore wraps a finite random-access store as a flow of Exact size
// equal to the store's length. The store is read-only for the duration
// of the pipeline.
func FromStore[T any](src Store[T]) *Flow[T] {
	n := src.Len()
	i := 0
	step1 := func() Step1[T] {
		v := src.AtUnchecked(i)
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
			out.Values[k] = src.AtUnchecked(i)
			i++
		}
		out.Kind = StepYield
		out.Count = m
		return out
	}
	return newFlow(Exact(n), nil, step1, step8)
}

// FromSlice wraps a slice as a flow without copying.
func FromSlice[T any](s []T) *Flow[T] {
	return FromStore[T](VecFromSlice(s))
}

// Pipe couples a source flow to a sink with a one-batch holding slot
// for batches the sink accepted only partially. pump is the single
// non-blocking transfer step shared by Connect and the effect driver.
type Pipe[T any] struct {
	From *Flow[T]
	Into *CoFlow[T]

	hold     [8]T
	holdN    int
	moved    int
	finished bool
}

// NewPipe couples f to c. Neither side needs to be started; the first
// pump starts both.
func NewPipe[T any](f *Flow[T], c *CoFlow[T]) *Pipe[T] {
	return &Pipe[T]{From: f, Into: c}
}

// Moved returns the number of elements transferred so far.
func (p *Pipe[T]) Moved() int {
	return p.moved
}

// Finished reports whether either side has reported Done.
func (p *Pipe[T]) Finished() bool {
	return p.finished
}

// pump moves at most one batch from the flow into the sink.
// Non-blocking: returns iox.ErrWouldBlock when neither a held batch
// can be delivered nor a new one pulled. moved counts the elements
// transferred by this call.
func (p *Pipe[T]) pump() (moved int, finished bool, err error) {
	if p.finished {
		return 0, true, nil
	}
	p.From.ensureStart()
	p.Into.ensureStart()
	if p.Into.Done() {
		p.finished = true
		return 0, true, nil
	}
	if p.holdN == 0 {
		r := p.From.Step8()
		switch r.Kind {
		case StepDone:
			p.finished = true
			p.Into.Close()
			return 0, true, nil
		case StepPull:
			return 0, false, iox.ErrWouldBlock
		}
		p.hold = r.Values
		p.holdN = r.Count
	}
	s := p.Into.Push8(&p.hold, p.holdN)
	p.moved += s.Took
	switch s.Kind {
	case SnackAccepted:
		p.holdN = 0
		return s.Took, false, nil
	case SnackDone:
		p.finished = true
		return s.Took, true, nil
	}
	// SnackPull: keep the remainder of the batch for the next pump.
	copy(p.hold[:], p.hold[s.Took:p.holdN])
	p.holdN -= s.Took
	if s.Took == 0 {
		return 0, false, iox.ErrWouldBlock
	}
	return s.Took, false, nil
}

// Connect drains the flow into the coflow, one batch at a time, until
// either side reports Done. Blocks on transient backpressure via
// adaptive backoff (iox.Backoff). Returns the number of elements
// transferred.
func Connect[T any](f *Flow[T], c *CoFlow[T]) int {
	p := NewPipe(f, c)
	var bo iox.Backoff
	for {
		_, finished, err := p.pump()
		if finished {
			return p.moved
		}
		if err != nil {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
}

// Slurp drains the whole flow into freshly allocated storage, sized
// from the flow's declared Size and grown as needed when the size was
// only a bound. The result length is the exact element count produced.
func Slurp[T any](f *Flow[T]) *Vec[T] {
	f.ensureStart()
	var out []T
	if n, bounded := f.Size().Bound(); bounded {
		out = make([]T, 0, n)
	}
	var bo iox.Backoff
	for {
		r := f.Step8()
		switch r.Kind {
		case StepYield:
			out = append(out, r.Values[:r.Count]...)
			bo.Reset()
		case StepDone:
			return VecFromSlice(out)
		case StepPull:
			bo.Wait()
		}
	}
}

// Unflow drains the whole flow into caller-owned storage. It returns
// the element count produced, with ErrCapacity if dst cannot hold the
// output; the overflowing batch is not written.
func Unflow[T any](f *Flow[T], dst []T) (int, error) {
	f.ensureStart()
	n := 0
	var bo iox.Backoff
	for {
		r := f.Step8()
		switch r.Kind {
		case StepYield:
			if n+r.Count > len(dst) {
				return n, ErrCapacity
			}
			copy(dst[n:], r.Values[:r.Count])
			n += r.Count
			bo.Reset()
		case StepDone:
			return n, nil
		case StepPull:
			bo.Wait()
		}
	}
}
