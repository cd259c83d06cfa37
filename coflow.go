// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// SnackKind tags a Snack1/Snack8 result.
type SnackKind uint8

const (
	// SnackAccepted signals the offered element(s) were consumed and
	// the sink remains open.
	SnackAccepted SnackKind = iota
	// SnackDone signals the sink will accept no more. Terminal.
	SnackDone
	// SnackPull signals the sink cannot currently accept; the caller
	// must re-offer later. Used by bounded-buffer sinks.
	SnackPull
)

// Snack1 is the result of pushing a single element into a CoFlow.
type Snack1 struct {
	Kind SnackKind
}

// Snack8 is the batched push result. Took reports how many elements of
// the offered batch the sink consumed: all of them for SnackAccepted, a
// prefix (possibly empty) for SnackPull or SnackDone. The caller
// re-offers the remainder after SnackPull.
type Snack8 struct {
	Kind SnackKind
	Took int
}

// CoFlow is a push-based stream consumer, the dual of Flow. A producer
// offers it elements; the coflow reports acceptance, its own
// completion, or transient backpressure. Like Flow, all progress state
// lives inside the value.
type CoFlow[T any] struct {
	serial   Serial
	started  bool
	done     bool
	closed   bool
	accepted int

	start   func()
	push1   func(T) Snack1
	push8   func(*[8]T, int) Snack8
	closeFn func()
}

// newCoFlow constructs a sink stage. start, push8 and closeFn may be
// nil; batches are then split into single pushes and Close only marks
// the sink.
func newCoFlow[T any](start func(), push1 func(T) Snack1, push8 func(*[8]T, int) Snack8, closeFn func()) *CoFlow[T] {
	return &CoFlow[T]{
		serial:  nextSerial(),
		start:   start,
		push1:   push1,
		push8:   push8,
		closeFn: closeFn,
	}
}

// Serial returns the serial number assigned to this coflow.
func (c *CoFlow[T]) Serial() Serial {
	return c.serial
}

// Done reports whether the sink has signaled completion.
func (c *CoFlow[T]) Done() bool {
	return c.done
}

// Accepted returns the number of elements the sink has consumed.
func (c *CoFlow[T]) Accepted() int {
	return c.accepted
}

// Start initializes the coflow's state. It must be called exactly once,
// before the first push; drivers call it on the caller's behalf.
func (c *CoFlow[T]) Start() {
	if c.started {
		panic("flow: Start called twice")
	}
	c.started = true
	if c.start != nil {
		c.start()
	}
}

// ensureStart starts the coflow unless the caller already did.
func (c *CoFlow[T]) ensureStart() {
	if !c.started {
		c.Start()
	}
}

// Push1 offers one element to the sink. Pushing after the sink reported
// SnackDone, or after Close, is a defect.
func (c *CoFlow[T]) Push1(v T) Snack1 {
	if !c.started {
		panic("flow: push before Start")
	}
	if c.done || c.closed {
		panic("flow: push after done")
	}
	s := c.push1(v)
	switch s.Kind {
	case SnackAccepted:
		c.accepted++
	case SnackDone:
		c.done = true
	}
	return s
}

// Push8 offers a batch of n (1..8) elements, stored in vs[0:n].
func (c *CoFlow[T]) Push8(vs *[8]T, n int) Snack8 {
	if !c.started {
		panic("flow: push before Start")
	}
	if c.done || c.closed {
		panic("flow: push after done")
	}
	if n < 1 || n > 8 {
		panic("flow: batch count out of range")
	}
	var s Snack8
	if c.push8 != nil {
		s = c.push8(vs, n)
	} else {
		s = push8From1(c.push1, vs, n)
	}
	if s.Kind == SnackAccepted {
		s.Took = n
	}
	c.accepted += s.Took
	if s.Kind == SnackDone {
		c.done = true
	}
	return s
}

// push8From1 splits a batch into single pushes, stopping at the first
// Pull or Done with the count consumed so far.
func push8From1[T any](push1 func(T) Snack1, vs *[8]T, n int) Snack8 {
	for k := 0; k < n; k++ {
		s := push1(vs[k])
		if s.Kind != SnackAccepted {
			return Snack8{Kind: s.Kind, Took: k}
		}
	}
	return Snack8{Kind: SnackAccepted, Took: n}
}

// Close signals that the producer has no more elements for this sink.
// Sinks with buffered output propagate end-of-stream from here. Close
// is idempotent and legal at any point; drivers call it when the
// source flow reports Done.
func (c *CoFlow[T]) Close() {
	if c.closed || c.done {
		return
	}
	c.closed = true
	if c.closeFn != nil {
		c.closeFn()
	}
}

// CoVec returns a sink that appends every element to v. It never
// reports SnackDone.
func CoVec[T any](v *Vec[T]) *CoFlow[T] {
	push1 := func(x T) Snack1 {
		v.elems = append(v.elems, x)
		return Snack1{Kind: SnackAccepted}
	}
	push8 := func(vs *[8]T, n int) Snack8 {
		v.elems = append(v.elems, vs[:n]...)
		return Snack8{Kind: SnackAccepted, Took: n}
	}
	return newCoFlow(nil, push1, push8, nil)
}

// CoSlice returns a sink that writes elements into dst in order and
// reports SnackDone once dst is full. The element count is available
// via Accepted.
func CoSlice[T any](dst []T) *CoFlow[T] {
	i := 0
	push1 := func(x T) Snack1 {
		if i >= len(dst) {
			return Snack1{Kind: SnackDone}
		}
		dst[i] = x
		i++
		return Snack1{Kind: SnackAccepted}
	}
	push8 := func(vs *[8]T, n int) Snack8 {
		room := len(dst) - i
		if room >= n {
			copy(dst[i:], vs[:n])
			i += n
			return Snack8{Kind: SnackAccepted, Took: n}
		}
		copy(dst[i:], vs[:room])
		i += room
		return Snack8{Kind: SnackDone, Took: room}
	}
	return newCoFlow(nil, push1, push8, nil)
}
