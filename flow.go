// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

// StepKind tags a Step1/Step8 result.
type StepKind uint8

const (
	// StepYield carries one element (Step1) or a batch of 1..8 (Step8).
	StepYield StepKind = iota
	// StepDone signals end of stream. Terminal: further steps keep
	// returning StepDone.
	StepDone
	// StepPull signals no element is available this call; the caller
	// must retry later. Pull is a value, not an error.
	StepPull
)

// Step1 is the result of pulling a single element from a Flow.
// Exactly one variant holds per call.
type Step1[T any] struct {
	Kind  StepKind
	Value T
}

// Step8 is the batched pull result: 1..8 elements at once plus a fill
// count. Stages that cannot produce a contiguous batch degrade to
// single-element stepping internally but report through the same tags.
type Step8[T any] struct {
	Kind   StepKind
	Count  int
	Values [8]T
}

// Flow is a pull-based stream producer. All progress state lives inside
// the Flow value, never on a call stack: a driver may stop stepping
// after any element or batch and resume later with the identical
// subsequent sequence.
//
// A Flow has exactly one owner; two steps must never be issued
// concurrently. Tee is the single sanctioned sharing mechanism.
type Flow[T any] struct {
	size    Size
	serial  Serial
	pos     int
	started bool
	done    bool

	start func()
	step1 func() Step1[T]
	step8 func() Step8[T]
}

// newFlow constructs a flow stage. start propagates Start upstream and
// may be nil. step8 may be nil, in which case batches are assembled
// from single steps.
func newFlow[T any](size Size, start func(), step1 func() Step1[T], step8 func() Step8[T]) *Flow[T] {
	return &Flow[T]{
		size:   size,
		serial: nextSerial(),
		start:  start,
		step1:  step1,
		step8:  step8,
	}
}

// Size returns the declared cardinality bound of the flow.
func (f *Flow[T]) Size() Size {
	return f.size
}

// Serial returns the serial number assigned to this flow.
func (f *Flow[T]) Serial() Serial {
	return f.serial
}

// Done reports whether the flow has signaled completion.
func (f *Flow[T]) Done() bool {
	return f.done
}

// Start initializes the flow's state and propagates initialization
// upstream. It must be called exactly once, before the first step;
// drivers call it on the caller's behalf. Starting twice is a defect.
func (f *Flow[T]) Start() {
	if f.started {
		panic("flow: Start called twice")
	}
	f.started = true
	if f.start != nil {
		f.start()
	}
}

// ensureStart starts the flow unless the caller already did.
func (f *Flow[T]) ensureStart() {
	if !f.started {
		f.Start()
	}
}

// Step1 pulls the next element. Repeated calls after StepDone keep
// returning StepDone; calls before data is ready return StepPull.
// Reaching a declared Exact/Max bound is treated as end of stream.
func (f *Flow[T]) Step1() Step1[T] {
	if !f.started {
		panic("flow: step before Start")
	}
	if f.done {
		return Step1[T]{Kind: StepDone}
	}
	if n, bounded := f.size.Bound(); bounded && f.pos >= n {
		f.done = true
		return Step1[T]{Kind: StepDone}
	}
	r := f.step1()
	switch r.Kind {
	case StepYield:
		f.pos++
	case StepDone:
		if f.size.Kind == SizeExact && f.pos != f.size.N {
			panic("flow: exact size violated: " + f.size.String())
		}
		f.done = true
	}
	return r
}

// Step8 pulls the next batch of up to 8 elements. Tagging follows
// Step1; a yielded batch carries a fill count of 1..8.
func (f *Flow[T]) Step8() Step8[T] {
	if !f.started {
		panic("flow: step before Start")
	}
	if f.done {
		return Step8[T]{Kind: StepDone}
	}
	if n, bounded := f.size.Bound(); bounded && f.pos >= n {
		f.done = true
		return Step8[T]{Kind: StepDone}
	}
	var r Step8[T]
	if f.step8 != nil {
		r = f.step8()
	} else {
		r = step8From1(f.step1)
	}
	switch r.Kind {
	case StepYield:
		if r.Count < 1 || r.Count > 8 {
			panic("flow: batch count out of range")
		}
		f.pos += r.Count
		if n, bounded := f.size.Bound(); bounded && f.pos > n {
			panic("flow: size bound exceeded: " + f.size.String())
		}
	case StepDone:
		if f.size.Kind == SizeExact && f.pos != f.size.N {
			panic("flow: exact size violated: " + f.size.String())
		}
		f.done = true
	}
	return r
}

// step8From1 assembles a batch from single steps. A Done or Pull
// encountered after at least one element yields the partial batch;
// the boundary is re-observed on the next call.
func step8From1[T any](step1 func() Step1[T]) Step8[T] {
	var out Step8[T]
	for out.Count < 8 {
		r := step1()
		if r.Kind != StepYield {
			if out.Count == 0 {
				return Step8[T]{Kind: r.Kind}
			}
			out.Kind = StepYield
			return out
		}
		out.Values[out.Count] = r.Value
		out.Count++
	}
	out.Kind = StepYield
	return out
}

// FlowState is a snapshot of a flow's logical position, used to
// synchronize two or more flows pulling from a common upstream source.
type FlowState struct {
	Serial Serial
	Pos    int
	Size   Size
}

// State returns the flow's current progress snapshot.
func (f *Flow[T]) State() FlowState {
	return FlowState{Serial: f.serial, Pos: f.pos, Size: f.size}
}

// JoinStates merges the positions of two flows over a common upstream
// into a cursor barrier: the joined state sits at the lesser position,
// the point both consumers have reached. The sizes must be compatible
// (see JoinSizes); joining incompatible sizes is a defect.
func JoinStates(a, b FlowState) FlowState {
	size := JoinSizes(a.Size, b.Size)
	if b.Pos < a.Pos {
		return FlowState{Serial: b.Serial, Pos: b.Pos, Size: size}
	}
	return FlowState{Serial: a.Serial, Pos: a.Pos, Size: size}
}
