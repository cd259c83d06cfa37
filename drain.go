// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world drain protocol to Expr-world. The
// resulting Expr can be evaluated with ExecExpr, RunExpr, or stepped
// with Step and Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world drain protocol to Cont-world. The
// resulting Eff can be evaluated with Exec or Run.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// PumpBind pumps the pipe once and passes the result to f.
// Fuses Perform(Pump[T]{Pipe: p}) + Bind.
func PumpBind[T, B any](p *Pipe[T], f func(PumpResult) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Pump[T]{Pipe: p}), f)
}

func pumpBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(PumpResult) kont.Expr[B])
	result := f(current.(PumpResult))
	return kont.Erased(result.Value), result.Frame
}

// ExprPumpBind pumps the pipe once and passes the result to f.
// Fuses ExprPerform(Pump[T]{Pipe: p}) + ExprBind.
func ExprPumpBind[T, B any](p *Pipe[T], f func(PumpResult) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = pumpBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Pump[T]{Pipe: p}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// DrainEff returns a Cont-world protocol that pumps the pipe until
// either side reports Done, completing with the total number of
// elements moved.
func DrainEff[T any](p *Pipe[T]) kont.Eff[int] {
	return Loop(0, func(total int) kont.Eff[kont.Either[int, int]] {
		return PumpBind(p, func(r PumpResult) kont.Eff[kont.Either[int, int]] {
			if r.Finished {
				return kont.Pure(kont.Right[int, int](total + r.Moved))
			}
			return kont.Pure(kont.Left[int, int](total + r.Moved))
		})
	})
}

// DrainExpr returns an Expr-world protocol that pumps the pipe until
// either side reports Done, completing with the total number of
// elements moved.
func DrainExpr[T any](p *Pipe[T]) kont.Expr[int] {
	return ExprLoop(0, func(total int) kont.Expr[kont.Either[int, int]] {
		return ExprPumpBind(p, func(r PumpResult) kont.Expr[kont.Either[int, int]] {
			if r.Finished {
				return kont.ExprReturn(kont.Right[int, int](total + r.Moved))
			}
			return kont.ExprReturn(kont.Left[int, int](total + r.Moved))
		})
	})
}
