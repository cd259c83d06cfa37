// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// pumpHandler implements kont.Handler for pipeline effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch into
// blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type pumpHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (pumpHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(pumpDispatcher)
	if !ok {
		panic("flow: unhandled effect in pumpHandler")
	}
	return dispatchWait(pop), true
}

// dispatchWait blocks until DispatchPump succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff.
func dispatchWait(pop pumpDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := pop.DispatchPump()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world drain protocol to completion. Blocks on
// iox.ErrWouldBlock via adaptive backoff, without spawning goroutines
// or creating channels.
func Exec[R any](protocol kont.Eff[R]) R {
	return kont.Handle(protocol, pumpHandler[R]{})
}

// ExecExpr runs an Expr-world drain protocol to completion. Blocks on
// iox.ErrWouldBlock via adaptive backoff, without spawning goroutines
// or creating channels.
func ExecExpr[R any](protocol kont.Expr[R]) R {
	return kont.HandleExpr(protocol, pumpHandler[R]{})
}
