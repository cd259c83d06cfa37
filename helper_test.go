// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/flow"
)

// pullLimit caps Pull retries in tests so a stuck pipeline fails the
// test instead of hanging it.
const pullLimit = 1 << 20

// drainAll starts f and pulls it to completion one element at a time.
func drainAll[T any](tb testing.TB, f *flow.Flow[T]) []T {
	tb.Helper()
	f.Start()
	return drainRest(tb, f)
}

// drainRest pulls an already-started flow to completion.
func drainRest[T any](tb testing.TB, f *flow.Flow[T]) []T {
	tb.Helper()
	var out []T
	pulls := 0
	for {
		r := f.Step1()
		switch r.Kind {
		case flow.StepYield:
			out = append(out, r.Value)
			pulls = 0
		case flow.StepDone:
			return out
		case flow.StepPull:
			pulls++
			if pulls > pullLimit {
				tb.Fatalf("flow stuck at Pull after %d elements", len(out))
			}
		}
	}
}

// mustPanic asserts that fn panics with a message containing want.
func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("expected string panic, got %T: %v", r, r)
		}
		if !strings.Contains(msg, want) {
			t.Fatalf("panic %q does not contain %q", msg, want)
		}
	}()
	fn()
}

// equalSlices reports element-wise equality, treating nil and empty as
// equal.
func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
