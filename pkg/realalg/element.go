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
package realalg

import (
	"math/big"

	"github.com/consensys/go-realalg/pkg/interval"
	"github.com/consensys/go-realalg/pkg/poly"
)

// RealAlgebraic represents an element of a real number field, as a reduced
// coefficient vector over the powers of the field generator.  Elements are
// immutable; all elements of one field share that field's escalating
// generator-power cache.
//
// The element's length is an upper bound on its algebraic height, and drives
// how much working precision a sign decision needs: a nonzero algebraic
// number of length ℓ cannot be smaller in absolute value than 10^(-cℓ) for an
// effective constant c, so evaluating at precision 2(⌊ℓ⌋+1) either separates
// the enclosure from zero or proves the element is exactly zero.  There is no
// indeterminate outcome.
type RealAlgebraic struct {
	field *RealNumberField
	// rep is the residue of the element's polynomial modulo the defining
	// polynomial, so deg(rep) < degree of the field.
	rep poly.Polynomial
	// length bounds the element's height, including the contribution of the
	// field generator's own height at each power.
	length float64
}

func newElement(field *RealNumberField, rep poly.Polynomial) *RealAlgebraic {
	var length float64
	//
	for i, c := range rep.Coefficients() {
		length += logPlus(c.Num()) + logPlus(c.Denom()) + float64(i)*field.length
	}
	//
	return &RealAlgebraic{field, rep, length}
}

// Field returns the number field this element belongs to.
func (a *RealAlgebraic) Field() *RealNumberField {
	return a.field
}

// Coefficients returns the reduced coefficient vector of this element over
// the powers λ^0, λ^1, ... of the field generator.
func (a *RealAlgebraic) Coefficients() []*big.Rat {
	return a.rep.Coefficients()
}

// Length returns this element's height bound.
func (a *RealAlgebraic) Length() float64 {
	return a.length
}

// Add two elements of the same field.
func (a *RealAlgebraic) Add(b *RealAlgebraic) *RealAlgebraic {
	a.checkField(b)
	return newElement(a.field, a.rep.Add(b.rep).Mod(a.field.polynomial))
}

// Sub subtracts another element of the same field from this.
func (a *RealAlgebraic) Sub(b *RealAlgebraic) *RealAlgebraic {
	a.checkField(b)
	return newElement(a.field, a.rep.Sub(b.rep).Mod(a.field.polynomial))
}

// Neg negates this element.
func (a *RealAlgebraic) Neg() *RealAlgebraic {
	return newElement(a.field, a.rep.Neg())
}

// Mul multiplies two elements of the same field.
func (a *RealAlgebraic) Mul(b *RealAlgebraic) *RealAlgebraic {
	a.checkField(b)
	return newElement(a.field, a.rep.MulMod(b.rep, a.field.polynomial))
}

// Div divides this element by another element of the same field.  Division by
// an element whose exact value is zero fails with ErrDivisionByZero.
func (a *RealAlgebraic) Div(b *RealAlgebraic) (*RealAlgebraic, error) {
	a.checkField(b)
	//
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	//
	inv, err := b.rep.InverseMod(a.field.polynomial)
	if err != nil {
		// unreachable: the modulus is irreducible and b is nonzero
		panic(err)
	}
	//
	return newElement(a.field, a.rep.MulMod(inv, a.field.polynomial)), nil
}

// AddRat adds a rational to this element.
func (a *RealAlgebraic) AddRat(r *big.Rat) *RealAlgebraic {
	return a.Add(a.field.Rational(r))
}

// SubRat subtracts a rational from this element.
func (a *RealAlgebraic) SubRat(r *big.Rat) *RealAlgebraic {
	return a.Sub(a.field.Rational(r))
}

// MulRat multiplies this element by a rational.
func (a *RealAlgebraic) MulRat(r *big.Rat) *RealAlgebraic {
	return a.Mul(a.field.Rational(r))
}

// DivRat divides this element by a rational, failing with ErrDivisionByZero
// on a zero divisor.
func (a *RealAlgebraic) DivRat(r *big.Rat) (*RealAlgebraic, error) {
	if r.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	//
	return a.MulRat(new(big.Rat).Inv(r)), nil
}

// Exp raises this element to an integer power.  Negative powers of the zero
// element fail with ErrDivisionByZero.
func (a *RealAlgebraic) Exp(pow int) (*RealAlgebraic, error) {
	if pow >= 0 {
		return newElement(a.field, a.rep.ExpMod(uint(pow), a.field.polynomial)), nil
	}
	//
	inv, err := a.field.One().Div(a)
	if err != nil {
		return nil, err
	}
	//
	return newElement(a.field, inv.rep.ExpMod(uint(-pow), a.field.polynomial)), nil
}

// ModInt returns the remainder of this element after subtracting the largest
// integer multiple of n not exceeding it, i.e. a - floor(a/n)*n.
func (a *RealAlgebraic) ModInt(n *big.Int) (*RealAlgebraic, error) {
	if n.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	//
	quotient, err := a.DivRat(new(big.Rat).SetInt(n))
	if err != nil {
		return nil, err
	}
	//
	multiple := new(big.Rat).SetInt(new(big.Int).Mul(quotient.Floor(), n))
	//
	return a.SubRat(multiple), nil
}

// ApproximateInterval returns an enclosure of this element correct to at
// least the given precision.  Internally the element is evaluated at a
// working precision inflated by the element's length, by combining the
// field's cached generator-power enclosures with exact coefficient
// enclosures, then narrowed back to the requested precision.
func (a *RealAlgebraic) ApproximateInterval(precision uint) interval.Interval {
	var (
		working = precision + uint(a.length) + 1
		powers  = a.field.Intervals(working)
		sum     = interval.FromInt64(0, working)
	)
	//
	for i, c := range a.rep.Coefficients() {
		coeff := interval.FromRat(c, working)
		sum = sum.Add(coeff.Mul(powers[i]))
	}
	//
	return sum.Simplify(precision)
}

// Sign returns the exact sign of this element: +1, -1, or 0.  The evaluation
// precision is twice the element's length bound (plus one), which guarantees
// the enclosure of a nonzero element cannot straddle zero; a zero result is
// therefore a proof of exact equality with zero.
func (a *RealAlgebraic) Sign() int {
	return a.ApproximateInterval(a.signPrecision()).Sign()
}

// IsZero determines whether this element is exactly zero.
func (a *RealAlgebraic) IsZero() bool {
	return a.Sign() == 0
}

// Cmp compares two elements of the same field exactly, returning -1, 0 or +1.
func (a *RealAlgebraic) Cmp(b *RealAlgebraic) int {
	return a.Sub(b).Sign()
}

// Equal determines whether two elements of the same field are exactly equal.
func (a *RealAlgebraic) Equal(b *RealAlgebraic) bool {
	return a.Cmp(b) == 0
}

// GreaterThan determines whether this element exceeds another, exactly.
func (a *RealAlgebraic) GreaterThan(b *RealAlgebraic) bool {
	return a.Cmp(b) > 0
}

// LessThan determines whether this element is below another, exactly.
func (a *RealAlgebraic) LessThan(b *RealAlgebraic) bool {
	return a.Cmp(b) < 0
}

// Floor returns the largest integer not exceeding this element, evaluated at
// sign precision so the enclosure is narrow enough to pin the integer down.
func (a *RealAlgebraic) Floor() *big.Int {
	return a.ApproximateInterval(a.signPrecision()).Floor()
}

// N renders a decimal approximation of this element to at least the given
// number of digits.  Purely presentational: sign decisions never consult it.
func (a *RealAlgebraic) N(precision uint) string {
	return a.ApproximateInterval(precision).Midpoint()
}

func (a *RealAlgebraic) String() string {
	return a.N(8)
}

// signPrecision is the decimal precision at which a sign decision on this
// element is guaranteed correct.
func (a *RealAlgebraic) signPrecision() uint {
	return 2 * (uint(a.length) + 1)
}

func (a *RealAlgebraic) checkField(b *RealAlgebraic) {
	if a.field != b.field {
		panic("elements of different fields")
	}
}
