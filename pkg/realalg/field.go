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

// Package realalg represents real algebraic numbers exactly, as elements of a
// number field QQ[x]/<f(x)> together with a chosen real embedding of the
// generator.  Arithmetic is exact, and sign (hence equality and ordering)
// decisions are exact: the required decimal working precision is derived from
// a height bound on each element, so that a computed enclosure straddling zero
// proves the element is exactly zero.
package realalg

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-realalg/pkg/interval"
	"github.com/consensys/go-realalg/pkg/poly"
	"github.com/consensys/go-realalg/pkg/roots"
)

// ErrReducible indicates an attempt to construct a number field from a
// polynomial which is not irreducible over the rationals.
var ErrReducible = errors.New("polynomial is reducible")

// ErrNoRealRoot indicates an attempt to construct a number field with a real
// root index which selects no root (including the case of no real roots at
// all).
var ErrNoRealRoot = errors.New("no real root at the requested index")

// ErrDivisionByZero indicates division by an element whose exact value is
// zero.
var ErrDivisionByZero = errors.New("division by zero")

// RealNumberField represents the number field QQ(λ) = QQ[x]/<f(x)> for an
// irreducible rational polynomial f, with λ a chosen real root of f.  The
// field is immutable apart from an interior cache of interval approximations
// to the powers λ^0 .. λ^(degree-1), which is shared by every element of the
// field and only ever grows in precision.
type RealNumberField struct {
	coefficients []*big.Rat
	index        int
	polynomial   poly.Polynomial
	degree       uint
	// length is the height of the defining polynomial: the sum of log10 of
	// every coefficient's numerator and denominator (clamped below at zero).
	length float64
	// bound is the safety margin absorbing the rounding error accumulated by
	// raising the generator enclosure to its powers.
	bound uint

	// mu guards the escalating cache below, including the root's refinement
	// state.
	mu   sync.Mutex
	root *roots.Root
	// precision is the watermark: the largest precision served so far.
	precision uint
	// powers enclose λ^0 .. λ^(degree-1), at a working precision at least the
	// watermark.
	powers []interval.Interval
}

// NewField constructs the number field defined by the given polynomial
// coefficients (constant term first) and a real root index.  Negative indices
// count back from the largest root, so index -1 selects the largest real
// root.  This fails if the polynomial is reducible, or if the index selects no
// real root.
func NewField(coefficients []*big.Rat, index int) (*RealNumberField, error) {
	var (
		coeffs     = make([]*big.Rat, len(coefficients))
		length     float64
		polynomial = poly.New(coefficients...)
	)
	//
	for i, c := range coefficients {
		coeffs[i] = new(big.Rat).Set(c)
		length += logPlus(c.Num()) + logPlus(c.Denom())
	}
	//
	irreducible, err := polynomial.IsIrreducible()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReducible, err)
	} else if !irreducible {
		return nil, fmt.Errorf("%w: %s", ErrReducible, polynomial.String("x"))
	}
	//
	realRoots, err := roots.Isolate(polynomial)
	if err != nil {
		return nil, err
	}
	// Negative indices count back from the last root.
	resolved := index
	if resolved < 0 {
		resolved += len(realRoots)
	}
	//
	if resolved < 0 || resolved >= len(realRoots) {
		return nil, fmt.Errorf("%w: %s (index %d of %d real roots)",
			ErrNoRealRoot, polynomial.String("x"), index, len(realRoots))
	}
	//
	field := &RealNumberField{
		coefficients: coeffs,
		index:        index,
		polynomial:   polynomial,
		degree:       uint(polynomial.Degree()),
		length:       length,
		root:         realRoots[resolved],
	}
	//
	field.bound = powerDigitBound(field.root, field.degree)
	//
	return field, nil
}

// NewFieldFromInt64s constructs a number field from integer coefficients,
// constant term first.
func NewFieldFromInt64s(coefficients []int64, index int) (*RealNumberField, error) {
	coeffs := make([]*big.Rat, len(coefficients))
	//
	for i, c := range coefficients {
		coeffs[i] = new(big.Rat).SetInt64(c)
	}
	//
	return NewField(coeffs, index)
}

// Degree returns the algebraic degree of this field over the rationals.
func (f *RealNumberField) Degree() uint {
	return f.degree
}

// Length returns the height of the field's defining polynomial, which feeds
// the height of every element of the field.
func (f *RealNumberField) Length() float64 {
	return f.length
}

// DefiningPolynomial returns the irreducible polynomial defining this field.
func (f *RealNumberField) DefiningPolynomial() poly.Polynomial {
	return f.polynomial
}

// Generator returns λ, the chosen real root generating this field.
func (f *RealNumberField) Generator() *RealAlgebraic {
	return f.Element([]*big.Rat{new(big.Rat), big.NewRat(1, 1)})
}

// Element constructs the field element with the given coefficients over the
// powers λ^0, λ^1, ..., reducing modulo the defining polynomial as needed.
func (f *RealNumberField) Element(coefficients []*big.Rat) *RealAlgebraic {
	return newElement(f, poly.New(coefficients...).Mod(f.polynomial))
}

// Rational embeds a rational value into this field.
func (f *RealNumberField) Rational(r *big.Rat) *RealAlgebraic {
	return f.Element([]*big.Rat{r})
}

// Integer embeds an integer value into this field.
func (f *RealNumberField) Integer(n int64) *RealAlgebraic {
	return f.Rational(new(big.Rat).SetInt64(n))
}

// Zero returns the zero element of this field.
func (f *RealNumberField) Zero() *RealAlgebraic {
	return f.Integer(0)
}

// One returns the unit element of this field.
func (f *RealNumberField) One() *RealAlgebraic {
	return f.Integer(1)
}

// Intervals returns enclosures of λ^0 .. λ^(degree-1), each correct to at
// least the given precision.  Requests at or below the cache watermark are
// served by widening the cached enclosures; anything beyond escalates the
// whole cache, so that repeated sign queries across all elements of the field
// amortise the cost of approximating the root.  The watermark never shrinks.
func (f *RealNumberField) Intervals(precision uint) []interval.Interval {
	if precision == 0 {
		panic("invalid precision")
	}
	//
	f.mu.Lock()
	defer f.mu.Unlock()
	//
	if precision > f.precision {
		working := precision + f.degree*f.bound + 1
		//
		log.Debugf("escalating generator cache of %s to %d digits (working precision %d)",
			f.String(), precision, working)
		//
		base, err := interval.FromStringPrec(f.root.Decimal(working), working)
		if err != nil {
			panic(err) // unreachable: Decimal always carries a point
		}
		//
		powers := make([]interval.Interval, f.degree)
		for i := range powers {
			powers[i] = base.Exp(uint(i))
		}
		//
		f.powers = powers
		f.precision = precision
	}
	//
	result := make([]interval.Interval, f.degree)
	for i, p := range f.powers {
		result[i] = p.Simplify(precision)
	}
	//
	return result
}

func (f *RealNumberField) String() string {
	var buf strings.Builder
	//
	buf.WriteString("QQ[x]/<")
	buf.WriteString(f.polynomial.String("x"))
	buf.WriteString(">")
	//
	return buf.String()
}

// powerDigitBound sizes the per-field safety margin from the magnitude of the
// generator's early powers: the maximum decimal digit count of the integer
// part of |λ|^i for i below the degree.  A coarse enclosure suffices, since
// overestimating only costs a little extra working precision.
func powerDigitBound(root *roots.Root, degree uint) uint {
	// Refine to width at most one.
	for {
		lo, hi := root.Enclosure()
		//
		if new(big.Rat).Sub(hi, lo).Cmp(big.NewRat(1, 1)) <= 0 {
			break
		}
		//
		root.Refine()
	}
	//
	lo, hi := root.Enclosure()
	lo.Abs(lo)
	hi.Abs(hi)
	// magnitude of the generator
	mag := lo
	if hi.Cmp(lo) > 0 {
		mag = hi
	}
	//
	var (
		bound uint = 1
		acc        = big.NewRat(1, 1)
	)
	//
	for i := uint(0); i < degree; i++ {
		floor := new(big.Int).Div(acc.Num(), acc.Denom())
		digits := uint(len(floor.Text(10)))
		//
		if digits > bound {
			bound = digits
		}
		//
		acc.Mul(acc, mag)
	}
	//
	return bound
}

// logPlus returns (an upper bound on) log10 of |x|, clamped below at zero.
// The bit length bound avoids converting huge integers to floats; heights
// only ever size working precision upwards, so overestimating is the safe
// direction.
func logPlus(x *big.Int) float64 {
	if x.CmpAbs(bigOne) <= 0 {
		return 0
	}
	//
	return float64(x.BitLen()) * math.Log10(2)
}

var bigOne = big.NewInt(1)
