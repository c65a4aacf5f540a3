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
package poly

import (
	"math/big"
	"strings"
)

// Polynomial represents a univariate polynomial with rational coefficients,
// stored densely with the constant term first.  The coefficient vector never
// carries trailing zeros, hence the zero polynomial has an empty vector and
// (by convention) degree -1.  Polynomials are immutable: every operation
// returns a fresh polynomial.
type Polynomial struct {
	coeffs []*big.Rat
}

// New constructs a polynomial from its coefficients, constant term first.  A
// nil coefficient is read as zero.
func New(coeffs ...*big.Rat) Polynomial {
	ncoeffs := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		if c == nil {
			ncoeffs[i] = new(big.Rat)
		} else {
			ncoeffs[i] = new(big.Rat).Set(c)
		}
	}
	//
	return Polynomial{trim(ncoeffs)}
}

// NewFromInt64s constructs a polynomial from integer coefficients, constant
// term first.
func NewFromInt64s(coeffs ...int64) Polynomial {
	ncoeffs := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i] = new(big.Rat).SetInt64(c)
	}
	//
	return Polynomial{trim(ncoeffs)}
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{nil}
}

// One returns the constant polynomial 1.
func One() Polynomial {
	return NewFromInt64s(1)
}

// X returns the identity polynomial x.
func X() Polynomial {
	return NewFromInt64s(0, 1)
}

// Degree returns the degree of this polynomial, where the zero polynomial has
// degree -1.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero determines whether this is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsConstant determines whether this polynomial has degree at most zero.
func (p Polynomial) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// Coefficient returns the ith coefficient of this polynomial, which is zero
// beyond its degree.
func (p Polynomial) Coefficient(i uint) *big.Rat {
	if i >= uint(len(p.coeffs)) {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(p.coeffs[i])
}

// Coefficients returns the coefficient vector of this polynomial, constant
// term first.
func (p Polynomial) Coefficients() []*big.Rat {
	coeffs := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Rat).Set(c)
	}
	//
	return coeffs
}

// LeadingCoefficient returns the coefficient of the highest power, or zero for
// the zero polynomial.
func (p Polynomial) LeadingCoefficient() *big.Rat {
	if len(p.coeffs) == 0 {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(p.coeffs[len(p.coeffs)-1])
}

// Equal compares two polynomials coefficient by coefficient.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	//
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// Add two polynomials together.
func (p Polynomial) Add(q Polynomial) Polynomial {
	coeffs := make([]*big.Rat, max(len(p.coeffs), len(q.coeffs)))
	//
	for i := range coeffs {
		coeffs[i] = new(big.Rat)
		//
		if i < len(p.coeffs) {
			coeffs[i].Add(coeffs[i], p.coeffs[i])
		}
		//
		if i < len(q.coeffs) {
			coeffs[i].Add(coeffs[i], q.coeffs[i])
		}
	}
	//
	return Polynomial{trim(coeffs)}
}

// Sub subtracts another polynomial from this.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Neg negates this polynomial.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Rat).Neg(c)
	}
	//
	return Polynomial{coeffs}
}

// Scale multiplies every coefficient of this polynomial by a rational.
func (p Polynomial) Scale(r *big.Rat) Polynomial {
	if r.Sign() == 0 {
		return Zero()
	}
	//
	coeffs := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Rat).Mul(c, r)
	}
	//
	return Polynomial{coeffs}
}

// Mul multiplies two polynomials using the schoolbook algorithm, which is
// entirely adequate for the degrees arising here.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	var tmp big.Rat
	//
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	//
	coeffs := make([]*big.Rat, len(p.coeffs)+len(q.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = new(big.Rat)
	}
	//
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			tmp.Mul(a, b)
			coeffs[i+j].Add(coeffs[i+j], &tmp)
		}
	}
	//
	return Polynomial{trim(coeffs)}
}

// Exp raises this polynomial to a given power by repeated squaring.
func (p Polynomial) Exp(pow uint) Polynomial {
	var (
		result = One()
		base   = p
	)
	//
	for pow != 0 {
		if pow&1 == 1 {
			result = result.Mul(base)
		}
		//
		pow >>= 1
		//
		if pow != 0 {
			base = base.Mul(base)
		}
	}
	//
	return result
}

// Derivative returns the formal derivative of this polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Zero()
	}
	//
	coeffs := make([]*big.Rat, len(p.coeffs)-1)
	//
	for i := 1; i < len(p.coeffs); i++ {
		coeffs[i-1] = new(big.Rat).Mul(p.coeffs[i], new(big.Rat).SetInt64(int64(i)))
	}
	//
	return Polynomial{trim(coeffs)}
}

// QuoRem divides this polynomial by a given divisor, returning the quotient
// and remainder where deg(remainder) < deg(divisor).  Division by the zero
// polynomial is a contract violation.
func (p Polynomial) QuoRem(d Polynomial) (Polynomial, Polynomial) {
	var tmp big.Rat
	//
	if d.IsZero() {
		panic("division by zero polynomial")
	}
	//
	if p.Degree() < d.Degree() {
		return Zero(), p
	}
	//
	var (
		rem  = p.Coefficients()
		quot = make([]*big.Rat, p.Degree()-d.Degree()+1)
		lead = d.coeffs[len(d.coeffs)-1]
	)
	//
	for i := range quot {
		quot[i] = new(big.Rat)
	}
	// Eliminate leading terms one at a time.
	for len(rem) >= len(d.coeffs) {
		var (
			shift = len(rem) - len(d.coeffs)
			t     = new(big.Rat).Quo(rem[len(rem)-1], lead)
		)
		//
		quot[shift].Set(t)
		//
		for j, c := range d.coeffs {
			tmp.Mul(t, c)
			rem[shift+j].Sub(rem[shift+j], &tmp)
		}
		// Leading term is now exactly zero.
		rem = trim(rem[:len(rem)-1])
	}
	//
	return Polynomial{trim(quot)}, Polynomial{rem}
}

// Quo returns the quotient of this polynomial by a given divisor, discarding
// the remainder.
func (p Polynomial) Quo(d Polynomial) Polynomial {
	q, _ := p.QuoRem(d)
	return q
}

// Mod reduces this polynomial modulo a given modulus.
func (p Polynomial) Mod(m Polynomial) Polynomial {
	_, r := p.QuoRem(m)
	return r
}

// MulMod multiplies two polynomials and reduces the product modulo a given
// modulus.
func (p Polynomial) MulMod(q Polynomial, m Polynomial) Polynomial {
	return p.Mul(q).Mod(m)
}

// ExpMod raises this polynomial to a given power modulo a given modulus.
func (p Polynomial) ExpMod(pow uint, m Polynomial) Polynomial {
	var (
		result = One().Mod(m)
		base   = p.Mod(m)
	)
	//
	for pow != 0 {
		if pow&1 == 1 {
			result = result.MulMod(base, m)
		}
		//
		pow >>= 1
		//
		if pow != 0 {
			base = base.MulMod(base, m)
		}
	}
	//
	return result
}

// Monic scales this polynomial so its leading coefficient is one.  The zero
// polynomial is returned unchanged.
func (p Polynomial) Monic() Polynomial {
	if p.IsZero() {
		return p
	}
	//
	return p.Scale(new(big.Rat).Inv(p.LeadingCoefficient()))
}

// Gcd computes the (monic) greatest common divisor of two polynomials via the
// Euclidean algorithm.
func (p Polynomial) Gcd(q Polynomial) Polynomial {
	a, b := p, q
	//
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	//
	return a.Monic()
}

// Eval evaluates this polynomial at a given rational point using Horner's
// scheme.
func (p Polynomial) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeffs[i])
	}
	//
	return acc
}

// SignAt returns the sign of this polynomial evaluated at a given rational
// point.
func (p Polynomial) SignAt(x *big.Rat) int {
	return p.Eval(x).Sign()
}

// String renders this polynomial in descending powers of the given variable.
// The variable is an explicit argument rather than package state, so callers
// in different contexts can format against different symbols.
func (p Polynomial) String(variable string) string {
	var buf strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		//
		if c.Sign() == 0 {
			continue
		}
		// Sign / separator
		if buf.Len() == 0 {
			if c.Sign() < 0 {
				buf.WriteString("-")
			}
		} else if c.Sign() < 0 {
			buf.WriteString(" - ")
		} else {
			buf.WriteString(" + ")
		}
		//
		abs := new(big.Rat).Abs(c)
		// Coefficient, omitting unit coefficients on proper powers
		if i == 0 || abs.Cmp(ratOne) != 0 {
			buf.WriteString(abs.RatString())
			//
			if i > 0 {
				buf.WriteString("*")
			}
		}
		// Power
		if i == 1 {
			buf.WriteString(variable)
		} else if i > 1 {
			buf.WriteString(variable)
			buf.WriteString("^")
			buf.WriteString(itoa(i))
		}
	}
	//
	return buf.String()
}

var ratOne = big.NewRat(1, 1)

func itoa(n int) string {
	return new(big.Int).SetInt64(int64(n)).Text(10)
}

// trim removes trailing zero coefficients, establishing the representation
// invariant.
func trim(coeffs []*big.Rat) []*big.Rat {
	i := len(coeffs)
	//
	for i > 0 && coeffs[i-1].Sign() == 0 {
		i--
	}
	//
	return coeffs[:i]
}
