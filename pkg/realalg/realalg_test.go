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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-realalg/pkg/poly"
)

// sqrt2 to 40 fractional digits, for reference comparisons.
const sqrt2Digits = "1.4142135623730950488016887242096980785697"

// sqrt2Field constructs QQ(sqrt(2)) from x^2 - 2, choosing the positive root.
func sqrt2Field(t *testing.T) *RealNumberField {
	t.Helper()
	//
	field, err := NewFieldFromInt64s([]int64{-2, 0, 1}, -1)
	require.NoError(t, err)
	//
	return field
}

func Test_Field_Sqrt2(t *testing.T) {
	field := sqrt2Field(t)
	//
	assert.Equal(t, uint(2), field.Degree())
	assert.Equal(t, "QQ[x]/<x^2 - 2>", field.String())
	// generator squared is exactly the rational two
	var (
		lambda = field.Generator()
		square = lambda.Mul(lambda)
	)
	//
	assert.True(t, square.Equal(field.Integer(2)))
	assert.True(t, square.Sub(field.Integer(2)).IsZero())
}

func Test_Field_ReducibleRejected(t *testing.T) {
	_, err := NewFieldFromInt64s([]int64{-1, 0, 1}, -1)
	assert.ErrorIs(t, err, ErrReducible)
	// constants are rejected too
	_, err = NewFieldFromInt64s([]int64{7}, 0)
	assert.ErrorIs(t, err, ErrReducible)
}

func Test_Field_NoRealRootRejected(t *testing.T) {
	// x^2 + 1 is irreducible but has no real roots
	_, err := NewFieldFromInt64s([]int64{1, 0, 1}, -1)
	assert.ErrorIs(t, err, ErrNoRealRoot)
	// index out of range
	_, err = NewFieldFromInt64s([]int64{-2, 0, 1}, 2)
	assert.ErrorIs(t, err, ErrNoRealRoot)
	_, err = NewFieldFromInt64s([]int64{-2, 0, 1}, -3)
	assert.ErrorIs(t, err, ErrNoRealRoot)
}

func Test_Field_RootIndexSelection(t *testing.T) {
	// index 0 selects the smallest real root, -sqrt(2)
	field, err := NewFieldFromInt64s([]int64{-2, 0, 1}, 0)
	require.NoError(t, err)
	//
	assert.Equal(t, -1, field.Generator().Sign())
	// index -1 selects the largest
	assert.Equal(t, 1, sqrt2Field(t).Generator().Sign())
}

func Test_Field_IntervalsEscalation(t *testing.T) {
	var (
		field = sqrt2Field(t)
		sqrt2 = ratFromDecimal(t, sqrt2Digits)
	)
	// escalate, then come back down: the cache must serve every request with
	// a correct enclosure at exactly the requested precision
	for _, p := range []uint{5, 30, 10, 30, 5} {
		intervals := field.Intervals(p)
		require.Len(t, intervals, 2)
		//
		assert.Equal(t, p, intervals[0].Precision())
		assert.True(t, intervals[0].Contains(big.NewRat(1, 1)))
		assert.True(t, intervals[1].Contains(sqrt2))
	}
}

func Test_Field_IntervalsAccuracy(t *testing.T) {
	field := sqrt2Field(t)
	//
	for _, p := range []uint{3, 12, 24} {
		for _, ith := range field.Intervals(p) {
			// enclosures stay within a digit of the requested precision
			if acc := ith.Accuracy(); acc+1 < p {
				t.Errorf("accuracy %d below requested precision %d", acc, p)
			}
		}
	}
}

func Test_Field_ZeroPrecisionPanics(t *testing.T) {
	assert.Panics(t, func() {
		sqrt2Field(t).Intervals(0)
	})
}

func Test_Element_SignScenario(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
	)
	// lambda - 1 > 0
	assert.Equal(t, 1, lambda.SubRat(big.NewRat(1, 1)).Sign())
	// lambda^2 - 2 == 0, exactly
	square := lambda.Mul(lambda).SubRat(big.NewRat(2, 1))
	assert.Equal(t, 0, square.Sign())
	// lambda - 2 < 0
	assert.Equal(t, -1, lambda.SubRat(big.NewRat(2, 1)).Sign())
}

func Test_Element_DivisionByNearTwo(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
	)
	// lambda != 2, so 1/(lambda - 2) must succeed and be finite (negative)
	quotient, err := field.One().Div(lambda.SubRat(big.NewRat(2, 1)))
	require.NoError(t, err)
	//
	assert.Equal(t, -1, quotient.Sign())
	// 1/(sqrt(2) - 2) == -1.70710678...
	assertDecimalNear(t, "-1.70710678", quotient.N(8), 8)
}

func Test_Element_DivisionByZero(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
		zero   = lambda.Mul(lambda).SubRat(big.NewRat(2, 1))
	)
	// lambda^2 - 2 is exactly zero, however obfuscated its representation
	_, err := field.One().Div(zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = lambda.DivRat(new(big.Rat))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = zero.Exp(-1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = lambda.ModInt(big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func Test_Element_Arithmetic(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
	)
	// (1 + lambda)(1 - lambda) == 1 - lambda^2 == -1
	var (
		onePlus  = field.One().Add(lambda)
		oneMinus = field.One().Sub(lambda)
	)
	//
	assert.True(t, onePlus.Mul(oneMinus).Equal(field.Integer(-1)))
	// lambda / lambda == 1
	quotient, err := lambda.Div(lambda)
	require.NoError(t, err)
	assert.True(t, quotient.Equal(field.One()))
	// lambda^-2 == 1/2
	inv, err := lambda.Exp(-2)
	require.NoError(t, err)
	assert.True(t, inv.Equal(field.Rational(big.NewRat(1, 2))))
	// lambda^3 == 2*lambda
	cube, err := lambda.Exp(3)
	require.NoError(t, err)
	assert.True(t, cube.Equal(lambda.MulRat(big.NewRat(2, 1))))
}

func Test_Element_OrderingTotality(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
	)
	//
	elements := []*RealAlgebraic{
		lambda,
		lambda.AddRat(big.NewRat(1, 1)),
		lambda.Mul(lambda),
		field.Integer(2),
		field.Zero(),
	}
	// exactly one of <, ==, > holds for every pair
	for i, a := range elements {
		for j, b := range elements {
			var (
				eq = a.Equal(b)
				gt = a.GreaterThan(b)
				lt = a.LessThan(b)
			)
			//
			count := 0
			for _, v := range []bool{eq, gt, lt} {
				if v {
					count++
				}
			}
			//
			if count != 1 {
				t.Errorf("elements %d and %d: eq=%v gt=%v lt=%v", i, j, eq, gt, lt)
			}
		}
	}
	// lambda^2 == 2 exactly
	assert.True(t, elements[2].Equal(elements[3]))
	// transitivity along the sorted chain 0 < lambda < 2 == lambda^2 < lambda+1
	assert.True(t, elements[4].LessThan(elements[0]))
	assert.True(t, elements[0].LessThan(elements[3]))
	assert.True(t, elements[3].LessThan(elements[1]))
	assert.True(t, elements[4].LessThan(elements[1]))
}

func Test_Element_RationalRoundTrip(t *testing.T) {
	var (
		field   = sqrt2Field(t)
		epsilon = new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	)
	//
	samples := []*big.Rat{
		new(big.Rat),
		big.NewRat(1, 1),
		big.NewRat(-3, 7),
		big.NewRat(22, 7),
		big.NewRat(-355, 113),
		new(big.Rat).SetFrac64(123456789123456789, 987654321987654321),
	}
	//
	for _, r := range samples {
		var (
			rendered = field.Rational(r).N(20)
			parsed   = ratFromDecimal(t, rendered)
			diff     = new(big.Rat).Sub(parsed, r)
		)
		//
		if diff.Abs(diff).Cmp(epsilon) > 0 {
			t.Errorf("N(20) of %s == %s, off by more than 1e-18", r.RatString(), rendered)
		}
	}
}

func Test_Element_Floor(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
	)
	//
	assert.Equal(t, int64(1), lambda.Floor().Int64())
	assert.Equal(t, int64(-2), lambda.Neg().Floor().Int64())
	assert.Equal(t, int64(2), lambda.Mul(lambda).Floor().Int64())
	assert.Equal(t, int64(-7), field.Integer(-7).Floor().Int64())
}

func Test_Element_ModInt(t *testing.T) {
	field := sqrt2Field(t)
	//
	rem, err := field.Integer(7).ModInt(big.NewInt(3))
	require.NoError(t, err)
	assert.True(t, rem.Equal(field.One()))
	// lambda mod 2 == lambda, since floor(lambda/2) == 0
	lambda := field.Generator()
	rem, err = lambda.ModInt(big.NewInt(2))
	require.NoError(t, err)
	assert.True(t, rem.Equal(lambda))
}

func Test_Element_MinimalPolynomial(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
	)
	// the generator's minimal polynomial is the defining polynomial
	assert.True(t, lambda.MinimalPolynomial().Equal(poly.NewFromInt64s(-2, 0, 1)))
	assert.Equal(t, uint(2), lambda.AlgebraicDegree())
	// rationals have linear minimal polynomials
	five := field.Integer(5)
	assert.True(t, five.MinimalPolynomial().Equal(poly.NewFromInt64s(-5, 1)))
	assert.Equal(t, uint(1), five.AlgebraicDegree())
	// lambda^2 == 2 is rational as well
	assert.True(t, lambda.Mul(lambda).MinimalPolynomial().Equal(poly.NewFromInt64s(-2, 1)))
}

func Test_Element_GoldenRatio(t *testing.T) {
	field, err := NewFieldFromInt64s([]int64{-1, -1, 1}, -1)
	require.NoError(t, err)
	//
	phi := field.Generator()
	// phi^2 == phi + 1, exactly
	assert.True(t, phi.Mul(phi).Equal(phi.AddRat(big.NewRat(1, 1))))
	// phi == (1 + sqrt(5))/2 ~ 1.6180339887
	assertDecimalNear(t, "1.6180339887", phi.N(10), 10)
	// 1/phi == phi - 1
	inv, err := field.One().Div(phi)
	require.NoError(t, err)
	assert.True(t, inv.Equal(phi.SubRat(big.NewRat(1, 1))))
}

func Test_Element_CrossFieldPanics(t *testing.T) {
	a := sqrt2Field(t).Generator()
	//
	other, err := NewFieldFromInt64s([]int64{-3, 0, 1}, -1)
	require.NoError(t, err)
	//
	assert.Panics(t, func() {
		a.Add(other.Generator())
	})
}

func Test_Element_ApproximationConsistency(t *testing.T) {
	var (
		field  = sqrt2Field(t)
		lambda = field.Generator()
		sqrt2  = ratFromDecimal(t, sqrt2Digits)
	)
	// enclosures at any requested precision contain the true value
	for _, p := range []uint{1, 4, 16, 33} {
		enclosure := lambda.ApproximateInterval(p)
		//
		assert.Equal(t, p, enclosure.Precision())
		assert.True(t, enclosure.Contains(sqrt2), "precision %d", p)
	}
}

// assertDecimalNear checks two decimal strings agree to within a few units in
// the last of the given digits.  N renders the midpoint of an enclosure a
// couple of ulps wide, so exact string equality is not guaranteed.
func assertDecimalNear(t *testing.T, expected, actual string, digits uint) {
	t.Helper()
	//
	var (
		e   = ratFromDecimal(t, expected)
		a   = ratFromDecimal(t, actual)
		tol = new(big.Rat).SetFrac(big.NewInt(3), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	)
	//
	diff := new(big.Rat).Sub(e, a)
	//
	if diff.Abs(diff).Cmp(tol) > 0 {
		t.Errorf("%s and %s differ by more than three ulps at %d digits", expected, actual, digits)
	}
}

func ratFromDecimal(t *testing.T, s string) *big.Rat {
	t.Helper()
	//
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		t.Fatalf("invalid decimal literal %q", s)
	}
	//
	return r
}
