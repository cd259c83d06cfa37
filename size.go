// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flow

import "fmt"

// SizeKind tags a Size value.
type SizeKind uint8

const (
	// SizeExact declares that the stream yields exactly N elements.
	SizeExact SizeKind = iota
	// SizeMax declares that the stream yields at most N elements.
	SizeMax
	// SizeUnknown declares no cardinality bound.
	SizeUnknown
)

// Size is the declared cardinality bound of a stream.
// An Exact or Max bound, once stated, must never be violated by the
// actual yield count; Flow stepping enforces this.
type Size struct {
	Kind SizeKind
	N    int
}

// Exact declares a stream of exactly n elements.
func Exact(n int) Size {
	return Size{Kind: SizeExact, N: n}
}

// Max declares a stream of at most n elements.
func Max(n int) Size {
	return Size{Kind: SizeMax, N: n}
}

// Unknown declares a stream with no cardinality bound.
var Unknown = Size{Kind: SizeUnknown}

// Bound returns the yield-count bound and whether one is declared.
func (s Size) Bound() (int, bool) {
	switch s.Kind {
	case SizeExact, SizeMax:
		return s.N, true
	case SizeUnknown:
		return 0, false
	}
	panic("flow: invalid size kind")
}

// String returns the size in constructor notation.
func (s Size) String() string {
	switch s.Kind {
	case SizeExact:
		return fmt.Sprintf("Exact(%d)", s.N)
	case SizeMax:
		return fmt.Sprintf("Max(%d)", s.N)
	case SizeUnknown:
		return "Unknown"
	}
	panic("flow: invalid size kind")
}

// minSize is the size of a pairwise combination of two streams: the
// smaller bound governs. The result stays Exact only when both inputs
// are Exact with the same bound; otherwise a bound degrades to Max.
func minSize(a, b Size) Size {
	na, oka := a.Bound()
	nb, okb := b.Bound()
	switch {
	case oka && okb:
		if a.Kind == SizeExact && b.Kind == SizeExact && na == nb {
			return Exact(na)
		}
		return Max(min(na, nb))
	case oka:
		return Max(na)
	case okb:
		return Max(nb)
	}
	return Unknown
}

// addSize is the size of a concatenation: the sum when both are Exact,
// else Unknown.
func addSize(a, b Size) Size {
	if a.Kind == SizeExact && b.Kind == SizeExact {
		return Exact(a.N + b.N)
	}
	return Unknown
}

// weaken degrades a bound for selective emission: the true yield count
// is unknown until fully drained, so Exact becomes Max.
func weaken(s Size) Size {
	switch s.Kind {
	case SizeExact, SizeMax:
		return Max(s.N)
	case SizeUnknown:
		return Unknown
	}
	panic("flow: invalid size kind")
}

// JoinSizes checks that two streams sharing a common upstream source
// declare compatible sizes and returns the joined declaration.
// Compatible means equal bounds, or at least one side Unknown.
// Joining incompatible sizes is a composition-time defect.
func JoinSizes(a, b Size) Size {
	na, oka := a.Bound()
	nb, okb := b.Bound()
	switch {
	case !oka:
		return b
	case !okb:
		return a
	case na == nb:
		if a.Kind == SizeExact || b.Kind == SizeExact {
			return Exact(na)
		}
		return Max(na)
	}
	panic("flow: incompatible sizes " + a.String() + " and " + b.String())
}
