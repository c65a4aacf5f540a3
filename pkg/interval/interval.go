// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package interval

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrMissingPoint indicates a decimal string was presented for parsing which
// contains no decimal point, and hence whose scale cannot be determined.
var ErrMissingPoint = errors.New("decimal string has no decimal point")

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
	ten = big.NewInt(10)
)

// Interval represents the closed decimal interval
//
//	[lower / 10^precision, upper / 10^precision]
//
// where both bounds are exact (arbitrary precision) scaled integers.  Unlike a
// floating-point approximation, an interval always encloses the real number it
// stands for, and arithmetic on intervals preserves that enclosure.  Intervals
// are immutable: every operation returns a fresh interval.
type Interval struct {
	lower     big.Int
	upper     big.Int
	precision uint
}

// New creates an interval with the given scaled bounds.  This panics if the
// interval is empty (lower > upper) or the precision is zero, since both
// indicate a contract violation by the caller.
func New(lower big.Int, upper big.Int, precision uint) Interval {
	var (
		l big.Int
		u big.Int
	)
	// sanity checks
	if precision == 0 {
		panic("invalid precision")
	}

	if lower.Cmp(&upper) > 0 {
		panic("invalid interval")
	}
	//
	l.Set(&lower)
	u.Set(&upper)
	//
	return Interval{l, u, precision}
}

// FromString parses a decimal literal (e.g. "1.4142") into an interval whose
// precision is the number of fractional digits given, and whose width is one
// unit in the last place either side of the literal value.  This is how a
// truncated approximation with known, bounded uncertainty enters the system.
func FromString(s string) (Interval, error) {
	point := strings.IndexByte(s, '.')
	//
	if point < 0 {
		return Interval{}, fmt.Errorf("%w: %q", ErrMissingPoint, s)
	} else if point == len(s)-1 {
		return Interval{}, fmt.Errorf("no fractional digits in %q", s)
	}
	//
	return FromStringPrec(s, uint(len(s)-point-1))
}

// FromStringPrec parses a decimal literal into an interval at the given
// precision.  Fractional digits are zero padded (or truncated) to exactly
// precision digits; the resulting interval is one unit in the last place
// either side of that value, which absorbs any truncation error.
func FromStringPrec(s string, precision uint) (Interval, error) {
	var x big.Int
	//
	if precision == 0 {
		panic("invalid precision")
	}
	//
	point := strings.IndexByte(s, '.')
	if point < 0 {
		return Interval{}, fmt.Errorf("%w: %q", ErrMissingPoint, s)
	}
	//
	whole, frac := s[:point], s[point+1:]
	// Pad or truncate fractional digits to the requested scale.
	if uint(len(frac)) < precision {
		frac += strings.Repeat("0", int(precision)-len(frac))
	} else {
		frac = frac[:precision]
	}
	//
	if _, ok := x.SetString(whole+frac, 10); !ok {
		return Interval{}, fmt.Errorf("malformed decimal string %q", s)
	}
	//
	var (
		lower big.Int
		upper big.Int
	)
	//
	lower.Sub(&x, one)
	upper.Add(&x, one)
	//
	return Interval{lower, upper, precision}, nil
}

// FromInt creates the exact (zero width) interval for a given integer.
func FromInt(n big.Int, precision uint) Interval {
	var (
		lower big.Int
		upper big.Int
	)
	//
	if precision == 0 {
		panic("invalid precision")
	}
	//
	lower.Mul(&n, pow10(precision))
	upper.Set(&lower)
	//
	return Interval{lower, upper, precision}
}

// FromInt64 creates the exact (zero width) interval for a given integer.
func FromInt64(n int64, precision uint) Interval {
	return FromInt(*big.NewInt(n), precision)
}

// FromRat creates an interval guaranteed to contain the rational p/q, namely
// [(p*10^k - 1)/q, (p*10^k + 1)/q] with the lower bound rounded down and the
// upper bound rounded up.
func FromRat(r *big.Rat, precision uint) Interval {
	var (
		scaled big.Int
		lower  big.Int
		upper  big.Int
	)
	//
	if precision == 0 {
		panic("invalid precision")
	}
	//
	scaled.Mul(r.Num(), pow10(precision))
	// lower bound rounds towards negative infinity
	lower.Sub(&scaled, one)
	lower.Div(&lower, r.Denom())
	// upper bound rounds towards positive infinity
	upper.Add(&scaled, one)
	ceilDiv(&upper, &upper, r.Denom())
	//
	return Interval{lower, upper, precision}
}

// Lower returns the scaled lower bound of this interval.
func (p Interval) Lower() big.Int {
	var l big.Int
	l.Set(&p.lower)

	return l
}

// Upper returns the scaled upper bound of this interval.
func (p Interval) Upper() big.Int {
	var u big.Int
	u.Set(&p.upper)

	return u
}

// Precision returns the number of decimal digits of scale of this interval.
func (p Interval) Precision() uint {
	return p.precision
}

// IsPoint determines whether this interval contains exactly one value.
func (p Interval) IsPoint() bool {
	return p.lower.Cmp(&p.upper) == 0
}

// Equal compares two intervals exactly, bound for bound.
func (p Interval) Equal(q Interval) bool {
	return p.precision == q.precision && p.lower.Cmp(&q.lower) == 0 && p.upper.Cmp(&q.upper) == 0
}

// Contains checks whether a given rational lies within this interval.
func (p Interval) Contains(r *big.Rat) bool {
	var (
		scale big.Rat
		lower big.Rat
		upper big.Rat
	)
	//
	scale.SetInt(pow10(p.precision))
	lower.SetInt(&p.lower)
	lower.Quo(&lower, &scale)
	upper.SetInt(&p.upper)
	upper.Quo(&upper, &scale)
	//
	return lower.Cmp(r) <= 0 && upper.Cmp(r) >= 0
}

// Add two intervals together.  Both must share the same precision.
func (p Interval) Add(q Interval) Interval {
	var (
		lower big.Int
		upper big.Int
	)
	//
	p.checkAligned(q)
	//
	lower.Add(&p.lower, &q.lower)
	upper.Add(&p.upper, &q.upper)
	//
	return Interval{lower, upper, p.precision}
}

// Sub subtracts another interval from this.  Both must share the same
// precision.
func (p Interval) Sub(q Interval) Interval {
	return p.Add(q.Neg())
}

// Neg negates this interval.
func (p Interval) Neg() Interval {
	var (
		lower big.Int
		upper big.Int
	)
	//
	lower.Neg(&p.upper)
	upper.Neg(&p.lower)
	//
	return Interval{lower, upper, p.precision}
}

// Mul multiplies two intervals.  The bounds are the min/max of the four
// endpoint cross products, each rescaled back by a truncating (floor) division
// by 10^precision.  That division is the one place precision is spent, and
// rounding towards negative infinity on all four candidates keeps the result
// sound to within one unit in the last place.
func (p Interval) Mul(q Interval) Interval {
	var (
		scale = pow10(p.precision)
		lower big.Int
		upper big.Int
	)
	//
	p.checkAligned(q)
	//
	x1 := new(big.Int).Mul(&p.lower, &q.lower)
	x2 := new(big.Int).Mul(&p.lower, &q.upper)
	x3 := new(big.Int).Mul(&p.upper, &q.lower)
	x4 := new(big.Int).Mul(&p.upper, &q.upper)
	// Rescale, always rounding towards negative infinity.
	x1.Div(x1, scale)
	x2.Div(x2, scale)
	x3.Div(x3, scale)
	x4.Div(x4, scale)
	// Compute min / max
	lower.Set(minInt(x1, x2, x3, x4))
	upper.Set(maxInt(x1, x2, x3, x4))
	//
	return Interval{lower, upper, p.precision}
}

// Exp raises this interval to a fixed exponent by repeated multiplication,
// where the zeroth power is the exact interval for one.
func (p Interval) Exp(pow uint) Interval {
	result := FromInt64(1, p.precision)
	//
	for i := uint(0); i < pow; i++ {
		result = result.Mul(p)
	}
	//
	return result
}

// Simplify widens this interval to a coarser precision.  The lower bound
// rounds down and the upper bound rounds up, hence the result always contains
// every point the original contained.  This panics if asked to narrow (i.e.
// newPrecision exceeds the current precision).
func (p Interval) Simplify(newPrecision uint) Interval {
	var (
		lower big.Int
		upper big.Int
	)
	//
	if newPrecision == 0 || newPrecision > p.precision {
		panic("invalid precision")
	}
	//
	if newPrecision == p.precision {
		return p
	}
	//
	scale := pow10(p.precision - newPrecision)
	lower.Div(&p.lower, scale)
	ceilDiv(&upper, &p.upper, scale)
	//
	return Interval{lower, upper, newPrecision}
}

// Sign returns +1 if the entire interval is above zero, -1 if the entire
// interval is below zero, and 0 otherwise (i.e. the interval straddles or
// touches zero, so its sign is undetermined at this precision).
func (p Interval) Sign() int {
	switch {
	case p.upper.Sign() < 0:
		return -1
	case p.lower.Sign() > 0:
		return 1
	default:
		return 0
	}
}

// Floor returns the largest integer not exceeding the upper bound of this
// interval.  This is the integer truncation used for elements whose enclosing
// interval is already known to be narrow enough.
func (p Interval) Floor() *big.Int {
	return new(big.Int).Div(&p.upper, pow10(p.precision))
}

// Accuracy returns the number of represented digits which are actually
// trustworthy: the full precision for a point interval, otherwise the
// precision less the digit count of the interval's width.
func (p Interval) Accuracy() uint {
	var width big.Int
	//
	if p.IsPoint() {
		return p.precision
	}
	//
	width.Sub(&p.upper, &p.lower)
	digits := uint(len(width.Text(10)))
	//
	if digits >= p.precision {
		return 0
	}
	//
	return p.precision - digits
}

// Midpoint renders the midpoint of this interval as a decimal string.  This is
// for display only and plays no part in sign decisions.
func (p Interval) Midpoint() string {
	var mid big.Int
	//
	mid.Add(&p.lower, &p.upper)
	mid.Div(&mid, two)
	//
	return renderScaled(&mid, p.precision)
}

func (p Interval) String() string {
	return fmt.Sprintf("[%s, %s]", renderScaled(&p.lower, p.precision), renderScaled(&p.upper, p.precision))
}

func (p Interval) checkAligned(q Interval) {
	if p.precision != q.precision {
		panic("mismatched interval precision")
	}
}

func pow10(n uint) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// ceilDiv sets z to x divided by y (y > 0), rounding towards positive
// infinity.
func ceilDiv(z *big.Int, x *big.Int, y *big.Int) *big.Int {
	var r big.Int
	//
	z.QuoRem(x, y, &r)
	// QuoRem truncates towards zero, so a positive remainder means we cut
	// something off a positive quotient.
	if r.Sign() > 0 {
		z.Add(z, one)
	}
	//
	return z
}

// renderScaled formats a scaled integer x as the decimal x / 10^precision.
func renderScaled(x *big.Int, precision uint) string {
	var (
		digits = new(big.Int).Abs(x).Text(10)
		sign   = ""
	)
	//
	if x.Sign() < 0 {
		sign = "-"
	}
	// Ensure at least one digit before the point.
	if uint(len(digits)) <= precision {
		digits = strings.Repeat("0", int(precision)+1-len(digits)) + digits
	}
	//
	cut := len(digits) - int(precision)
	//
	return sign + digits[:cut] + "." + digits[cut:]
}

func minInt(xs ...*big.Int) *big.Int {
	m := xs[0]
	//
	for _, x := range xs[1:] {
		if x.Cmp(m) < 0 {
			m = x
		}
	}
	//
	return m
}

func maxInt(xs ...*big.Int) *big.Int {
	m := xs[0]
	//
	for _, x := range xs[1:] {
		if x.Cmp(m) > 0 {
			m = x
		}
	}
	//
	return m
}
