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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Poly_Construction(t *testing.T) {
	// trailing zeros are trimmed
	p := NewFromInt64s(1, 2, 0, 0)
	assert.Equal(t, 1, p.Degree())
	//
	assert.Equal(t, -1, Zero().Degree())
	assert.True(t, Zero().IsZero())
	assert.Equal(t, 0, One().Degree())
	assert.Equal(t, 1, X().Degree())
}

func Test_Poly_RingIdentities(t *testing.T) {
	var (
		a = NewFromInt64s(1, -3, 0, 2)
		b = NewFromInt64s(-2, 1)
		c = NewFromInt64s(5, 0, -1, 1, 7)
	)
	// commutativity
	assert.True(t, a.Add(b).Equal(b.Add(a)))
	assert.True(t, a.Mul(b).Equal(b.Mul(a)))
	// distributivity
	assert.True(t, a.Add(b).Mul(c).Equal(a.Mul(c).Add(b.Mul(c))))
	// additive inverse
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, a.Add(a.Neg()).IsZero())
	// units
	assert.True(t, a.Mul(One()).Equal(a))
	assert.True(t, a.Mul(Zero()).IsZero())
}

func Test_Poly_MulDegrees(t *testing.T) {
	for i := int64(0); i < 5; i++ {
		for j := int64(0); j < 5; j++ {
			var (
				a = monomial(i)
				b = monomial(j)
			)
			//
			if d := a.Mul(b).Degree(); d != int(i+j) {
				t.Errorf("deg(x^%d * x^%d) == %d", i, j, d)
			}
		}
	}
}

func Test_Poly_Exp(t *testing.T) {
	// (x + 1)^4 == x^4 + 4x^3 + 6x^2 + 4x + 1
	p := NewFromInt64s(1, 1).Exp(4)
	assert.True(t, p.Equal(NewFromInt64s(1, 4, 6, 4, 1)))
	//
	assert.True(t, NewFromInt64s(0, 3).Exp(0).Equal(One()))
}

func Test_Poly_QuoRem(t *testing.T) {
	var (
		a = NewFromInt64s(2, -3, 1, 0, 5)
		d = NewFromInt64s(-1, 0, 2)
	)
	//
	q, r := a.QuoRem(d)
	// a == q*d + r with deg(r) < deg(d)
	assert.True(t, q.Mul(d).Add(r).Equal(a))
	assert.Less(t, r.Degree(), d.Degree())
	// exact division leaves no remainder
	q, r = a.Mul(d).QuoRem(d)
	assert.True(t, r.IsZero())
	assert.True(t, q.Equal(a))
}

func Test_Poly_DivisionByZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewFromInt64s(1, 1).QuoRem(Zero())
	})
}

func Test_Poly_Gcd(t *testing.T) {
	var (
		x1 = NewFromInt64s(-1, 1) // x - 1
		x2 = NewFromInt64s(-2, 1) // x - 2
		x3 = NewFromInt64s(-3, 1) // x - 3
	)
	//
	g := x1.Mul(x2).Gcd(x1.Mul(x3))
	assert.True(t, g.Equal(x1))
	// coprime polynomials have gcd one
	assert.True(t, x2.Gcd(x3).Equal(One()))
	// gcd is monic even when the inputs are not
	g = x1.Scale(big.NewRat(3, 1)).Gcd(x1.Mul(x2).Scale(big.NewRat(-7, 2)))
	assert.True(t, g.Equal(x1))
}

func Test_Poly_XGcd(t *testing.T) {
	var (
		a = NewFromInt64s(-2, 0, 1) // x^2 - 2
		b = NewFromInt64s(0, 1)     // x
	)
	//
	g, s, tt := a.XGcd(b)
	// Bezout identity
	assert.True(t, s.Mul(a).Add(tt.Mul(b)).Equal(g))
	assert.Equal(t, 0, g.Degree())
}

func Test_Poly_InverseMod(t *testing.T) {
	modulus := NewFromInt64s(-2, 0, 1) // x^2 - 2
	// inverse of x is x/2, since x * x/2 == x^2/2 == 1 (mod x^2 - 2)
	inv, err := X().InverseMod(modulus)
	require.NoError(t, err)
	//
	assert.True(t, X().MulMod(inv, modulus).Equal(One()))
	assert.True(t, inv.Equal(New(new(big.Rat), big.NewRat(1, 2))))
	// zero has no inverse
	_, err = Zero().InverseMod(modulus)
	assert.Error(t, err)
	// a shared factor blocks inversion
	_, err = NewFromInt64s(-1, 1).InverseMod(NewFromInt64s(1, -2, 1))
	assert.Error(t, err)
}

func Test_Poly_ExpMod(t *testing.T) {
	modulus := NewFromInt64s(-2, 0, 1) // x^2 - 2
	// x^2 == 2 (mod x^2 - 2)
	assert.True(t, X().ExpMod(2, modulus).Equal(NewFromInt64s(2)))
	// x^4 == 4
	assert.True(t, X().ExpMod(4, modulus).Equal(NewFromInt64s(4)))
	// x^5 == 4x
	assert.True(t, X().ExpMod(5, modulus).Equal(NewFromInt64s(0, 4)))
}

func Test_Poly_Derivative(t *testing.T) {
	// d/dx (x^3 - 3x + 7/2) == 3x^2 - 3
	p := New(big.NewRat(7, 2), big.NewRat(-3, 1), new(big.Rat), big.NewRat(1, 1))
	assert.True(t, p.Derivative().Equal(NewFromInt64s(-3, 0, 3)))
	//
	assert.True(t, NewFromInt64s(5).Derivative().IsZero())
}

func Test_Poly_Eval(t *testing.T) {
	p := NewFromInt64s(-2, 0, 1) // x^2 - 2
	//
	assert.Equal(t, -1, p.SignAt(big.NewRat(0, 1)))
	assert.Equal(t, -1, p.SignAt(big.NewRat(1, 1)))
	assert.Equal(t, 1, p.SignAt(big.NewRat(2, 1)))
	assert.Equal(t, "-2", p.Eval(new(big.Rat)).RatString())
	assert.Equal(t, "-7/4", p.Eval(big.NewRat(1, 2)).RatString())
}

func Test_Poly_RationalRoots(t *testing.T) {
	// (x - 1)(2x + 3) x
	p := NewFromInt64s(-1, 1).Mul(NewFromInt64s(3, 2)).Mul(X())
	roots := p.RationalRoots()
	//
	require.Len(t, roots, 3)
	assert.Equal(t, "-3/2", roots[0].RatString())
	assert.Equal(t, "0", roots[1].RatString())
	assert.Equal(t, "1", roots[2].RatString())
	// x^2 - 2 has no rational roots
	assert.Empty(t, NewFromInt64s(-2, 0, 1).RationalRoots())
}

func Test_Poly_String(t *testing.T) {
	assert.Equal(t, "x^2 - 2", NewFromInt64s(-2, 0, 1).String("x"))
	assert.Equal(t, "y^2 - 2", NewFromInt64s(-2, 0, 1).String("y"))
	assert.Equal(t, "0", Zero().String("x"))
	assert.Equal(t, "-x^3 + 1/2*x - 7", New(big.NewRat(-7, 1), big.NewRat(1, 2), new(big.Rat), big.NewRat(-1, 1)).String("x"))
	assert.Equal(t, "2*x", NewFromInt64s(0, 2).String("x"))
}

func monomial(degree int64) Polynomial {
	coeffs := make([]int64, degree+1)
	coeffs[degree] = 1
	//
	return NewFromInt64s(coeffs...)
}
