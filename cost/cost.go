// Package cost defines the tagged path-cost value used by the shortest-path
// engines: a finite integer, "unreachable" (+∞) or "unbounded" (−∞).
//
// Sentinels are explicit kinds rather than reserved integers, so an edge
// weight of math.MinInt64 or math.MaxInt64 is an ordinary finite value.
// Once an operand is a sentinel the result of an addition is that sentinel.
//
// Finite values are exact signed 128-bit integers. A path of fewer than 2^64
// int64 edges cannot leave that range, so an intermediate sum past the int64
// limits stays finite and later edges can bring it back. Only a finite sum
// beyond the 128-bit range is clamped, and it is clamped to the largest or
// smallest finite value, never to a sentinel.
//
// Ordering:
//
//	Unbounded < Finite(x) < Unreachable,  Finite(a) < Finite(b) iff a < b.
package cost

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// Kind classifies a Cost.
type Kind uint8

const (
	// KindFinite is an ordinary integer cost.
	KindFinite Kind = iota
	// KindUnreachable is +∞: no path from the source.
	KindUnreachable
	// KindUnbounded is −∞: on or downstream of a negative cycle.
	KindUnbounded
)

// Text literals used by String, MarshalText and UnmarshalText.
const (
	UnreachableText = "unreachable"
	UnboundedText   = "unbounded"
)

// ErrBadText is returned by UnmarshalText for input that is neither a
// decimal integer in the finite range nor one of the sentinel literals.
var ErrBadText = errors.New("cost: invalid cost text")

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "finite"
	case KindUnreachable:
		return UnreachableText
	case KindUnbounded:
		return UnboundedText
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cost is a path cost. The zero value is Finite(0).
//
// A finite value is stored as a two's-complement 128-bit integer split into
// a signed high word and an unsigned low word. Sentinels keep both words zero.
type Cost struct {
	kind Kind
	hi   int64
	lo   uint64
}

// Bounds of the finite range.
var (
	maxFinite = Cost{kind: KindFinite, hi: math.MaxInt64, lo: math.MaxUint64}
	minFinite = Cost{kind: KindFinite, hi: math.MinInt64}

	maxBig = maxFinite.big()
	minBig = minFinite.big()
)

// Finite returns a finite cost with value v.
func Finite(v int64) Cost { return Cost{kind: KindFinite, hi: v >> 63, lo: uint64(v)} }

// Unreachable returns the +∞ sentinel.
func Unreachable() Cost { return Cost{kind: KindUnreachable} }

// Unbounded returns the −∞ sentinel.
func Unbounded() Cost { return Cost{kind: KindUnbounded} }

// Kind reports the classification of c.
func (c Cost) Kind() Kind { return c.kind }

// IsFinite reports whether c carries an integer value.
func (c Cost) IsFinite() bool { return c.kind == KindFinite }

// IsUnreachable reports whether c is +∞.
func (c Cost) IsUnreachable() bool { return c.kind == KindUnreachable }

// IsUnbounded reports whether c is −∞.
func (c Cost) IsUnbounded() bool { return c.kind == KindUnbounded }

// Value returns the value of c and true when c is finite and fits in an
// int64. Sentinels and wider finite values return 0 and false; use BigInt
// for the latter.
func (c Cost) Value() (int64, bool) {
	if c.kind != KindFinite || c.hi != int64(c.lo)>>63 {
		return 0, false
	}
	return int64(c.lo), true
}

// BigInt returns the exact finite value of c, or nil and false for a
// sentinel.
func (c Cost) BigInt() (*big.Int, bool) {
	if c.kind != KindFinite {
		return nil, false
	}
	return c.big(), true
}

func (c Cost) big() *big.Int {
	x := big.NewInt(c.hi)
	x.Lsh(x, 64)
	return x.Add(x, new(big.Int).SetUint64(c.lo))
}

// fromBig converts x to a finite Cost, reporting false when x is outside
// the 128-bit range.
func fromBig(x *big.Int) (Cost, bool) {
	if x.IsInt64() {
		return Finite(x.Int64()), true
	}
	if x.Cmp(minBig) < 0 || x.Cmp(maxBig) > 0 {
		return Cost{}, false
	}
	lo := new(big.Int).And(x, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(x, 64).Int64()
	return Cost{kind: KindFinite, hi: hi, lo: lo}, true
}

// Sum returns c + w.
//
//	Sum(Unreachable, w) = Unreachable
//	Sum(Unbounded, w)   = Unbounded
//	Sum(Finite(a), w)   = Finite(a+w), exact
func Sum(c Cost, w int64) Cost {
	if c.kind != KindFinite {
		return c
	}
	return addFinite(c, Finite(w))
}

// Add returns a + b. A sentinel operand is absorbing; when both operands are
// sentinels the left one wins.
func Add(a, b Cost) Cost {
	if a.kind != KindFinite {
		return a
	}
	if b.kind != KindFinite {
		return b
	}
	return addFinite(a, b)
}

// addFinite adds two finite values in 128 bits, clamping at the finite
// bounds instead of wrapping.
func addFinite(a, b Cost) Cost {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi := a.hi + b.hi + int64(carry)
	// signed overflow: both operands share a sign that the result lacks
	if (a.hi < 0) == (b.hi < 0) && (hi < 0) != (a.hi < 0) {
		if a.hi < 0 {
			return minFinite
		}
		return maxFinite
	}
	return Cost{kind: KindFinite, hi: hi, lo: lo}
}

// rank places the kinds on the extended number line.
func (c Cost) rank() int {
	switch c.kind {
	case KindUnbounded:
		return -1
	case KindUnreachable:
		return 1
	default:
		return 0
	}
}

// Less reports whether a is strictly smaller than b.
func Less(a, b Cost) bool {
	ra, rb := a.rank(), b.rank()
	if ra != rb {
		return ra < rb
	}
	if ra != 0 {
		// equal sentinels
		return false
	}
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	return a.lo < b.lo
}

// Compare returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func Compare(a, b Cost) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b denote the same cost.
func Equal(a, b Cost) bool { return Compare(a, b) == 0 }

// String renders c as a decimal integer or a sentinel literal.
func (c Cost) String() string {
	switch c.kind {
	case KindFinite:
		if v, ok := c.Value(); ok {
			return strconv.FormatInt(v, 10)
		}
		return c.big().String()
	case KindUnreachable:
		return UnreachableText
	case KindUnbounded:
		return UnboundedText
	default:
		return fmt.Sprintf("Cost(kind=%d)", c.kind)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Cost) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the output of
// MarshalText; a leading '+' on finite values is tolerated.
func (c *Cost) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case UnreachableText:
		*c = Unreachable()
		return nil
	case UnboundedText:
		*c = Unbounded()
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*c = Finite(v)
		return nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadText, s)
	}
	v, ok := fromBig(x)
	if !ok {
		return fmt.Errorf("%w: %q out of range", ErrBadText, s)
	}
	*c = v
	return nil
}
