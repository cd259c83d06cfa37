// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package flow provides a sequential flow/coflow fusion engine for
// regular-array pipelines: multi-stage map/zip/filter/replicate/fold
// compositions that execute as one fused loop with no intermediate
// array materialized between stages.
//
// # Architecture
//
//   - Pull: [Flow] is a pull-based producer stepped with [Flow.Step1]
//     or the batched [Flow.Step8] (1..8 elements, SIMD-width). Results
//     are tagged Yield, Done, or Pull ("not ready, retry").
//   - Push: [CoFlow] is the dual push-based consumer; pushes report
//     Accepted, Done, or Pull (backpressure for bounded sinks).
//   - Suspend/resume: all progress state lives inside the Flow/CoFlow
//     value, never on a call stack. A driver may stop after any batch
//     and resume later with the identical subsequent sequence.
//   - Sizes: every flow declares a [Size] bound — Exact, Max, or
//     Unknown — enforced during stepping. Reaching a declared bound is
//     end of stream; exceeding it is a defect.
//
// # Operators
//
//   - Sources: [FromStore], [FromSlice], [Generate], [EnumFromN],
//     [Replicate], [ReplicatesDirect].
//   - Transforms: [Map], [MapCo], [Zip], [ZipWith], [ZipLeft],
//     [ZipLeftWith], [Appends], [Gather], [Filter], [PackByFlag],
//     [PackByTag], [Combine2], [Combines2].
//   - Reductions: [Foldl], [Folds], [Sums].
//   - Sharing: [Tee] fans a flow out to two consumers over a shared
//     cursor with bounded lookahead; [DupCo] fans a pushed stream out
//     to two sinks; [Relay] couples a coflow to a flow over a bounded
//     buffer via [code.hybscloud.com/lfq] SPSC queues.
//
// # Drivers
//
//   - Blocking: [Connect], [Slurp], [Unflow] drain a pipeline one
//     batch at a time, retrying transient Pull with adaptive backoff
//     ([code.hybscloud.com/iox.Backoff]).
//   - Effectful: a [Pipe] drain is expressible as an algebraic-effect
//     protocol on [code.hybscloud.com/kont] — [DrainEff]/[DrainExpr]
//     perform one [Pump] effect per batch. [Exec] runs a protocol to
//     completion; [Step] and [Advance] evaluate one effect at a time
//     for integration with external schedulers; [Run] interleaves two
//     coupled pipelines on one goroutine.
//
// # Error Handling
//
// Protocol defects — stepping before Start, pushing after Done,
// joining incompatible sizes, a Gather index out of range, segment
// length mismatches — are caller contract violations and panic.
// [Unflow] reports undersized destinations as [ErrCapacity]. Pull
// results are not errors: operations never block; the non-blocking
// dispatch boundary returns [code.hybscloud.com/iox.ErrWouldBlock].
//
// # Example
//
//	src := flow.FromSlice([]int{3, 1, 4, 1, 5, 9, 2, 6})
//	even := flow.Filter(func(n int) bool { return n%2 == 0 }, src)
//	out := flow.Slurp(even)
//	// out.Slice() == []int{4, 2, 6}
package flow
