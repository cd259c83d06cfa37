// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run runs two Cont-world drain protocols to completion, interleaving
// them on the calling goroutine with adaptive backoff (iox.Backoff)
// when neither side can make progress. This is how coupled pipelines —
// the two branches of a Tee, or a Relay's producer and consumer — are
// driven without threads.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr runs two Expr-world drain protocols to completion,
// interleaving them on the calling goroutine with adaptive backoff
// when neither can make progress. Does not spawn goroutines or create
// channels.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	var popA pumpDispatcher
	if suspA != nil {
		popA = suspA.Op().(pumpDispatcher)
	}
	var popB pumpDispatcher
	if suspB != nil {
		popB = suspB.Op().(pumpDispatcher)
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := popA.DispatchPump()
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					popA = suspA.Op().(pumpDispatcher)
				}
				progress = true
			}
		}
		if suspB != nil {
			v, err := popB.DispatchPump()
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					popB = suspB.Op().(pumpDispatcher)
				}
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
