// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import (
	"code.hybscloud.com/kont"
)

// PumpResult reports the outcome of one batch transfer through a pipe.
type PumpResult struct {
	// Moved is the number of elements transferred by this pump.
	Moved int
	// Finished reports that either side of the pipe is Done.
	Finished bool
}

// Pump is the effect operation for advancing a pipe by one batch.
// Perform(Pump[T]{Pipe: p}) moves up to 8 elements from the pipe's
// flow into its coflow.
type Pump[T any] struct {
	kont.Phantom[PumpResult]
	Pipe *Pipe[T]
}

// pumpDispatcher is the structural interface for pipeline operations.
// DispatchPump is non-blocking: it returns iox.ErrWouldBlock when
// neither side of the pipe can make progress.
type pumpDispatcher interface {
	DispatchPump() (kont.Resumed, error)
}

// DispatchPump handles Pump on the pipe. Non-blocking: returns
// iox.ErrWouldBlock when the flow has no element ready and no held
// batch can be delivered.
func (p Pump[T]) DispatchPump() (kont.Resumed, error) {
	moved, finished, err := p.Pipe.pump()
	if err != nil {
		return nil, err
	}
	return PumpResult{Moved: moved, Finished: finished}, nil
}
