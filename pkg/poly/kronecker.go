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

import "math/big"

// kroneckerReducible determines whether a primitive integer polynomial has a
// proper factor, by Kronecker's method: any integer factor g of f satisfies
// g(t) | f(t) at every integer point t, so interpolating through all divisor
// tuples of sampled values enumerates every candidate factor of each degree up
// to deg(f)/2.  Exponential in the divisor counts, but exact; this only runs
// when the modular certificates in IsIrreducible were inconclusive.
func kroneckerReducible(ints []*big.Int) bool {
	var (
		n = len(ints) - 1
		f = fromIntegerCoefficients(ints)
	)
	//
	for d := 1; 2*d <= n; d++ {
		var (
			points []*big.Rat
			values []*big.Int
		)
		// Sample d+1 integer points with nonzero values.
		for t := 0; len(points) <= d; t++ {
			x := samplePoint(t)
			v := f.Eval(x)
			// An integer root is itself a proper factor here (n >= 2).
			if v.Sign() == 0 {
				return true
			}
			//
			points = append(points, x)
			values = append(values, new(big.Int).Set(v.Num()))
		}
		// Enumerate all signed divisor tuples.
		lists := make([][]*big.Int, len(values))
		for i, v := range values {
			lists[i] = signedDivisors(v)
		}
		//
		odometer := make([]int, len(lists))
		//
		for {
			tuple := make([]*big.Rat, len(lists))
			for i, j := range odometer {
				tuple[i] = new(big.Rat).SetInt(lists[i][j])
			}
			//
			g := interpolate(points, tuple)
			//
			if g.Degree() >= 1 && f.Mod(g).IsZero() {
				return true
			}
			// Advance the odometer.
			i := 0
			for ; i < len(odometer); i++ {
				odometer[i]++
				//
				if odometer[i] < len(lists[i]) {
					break
				}
				//
				odometer[i] = 0
			}
			//
			if i == len(odometer) {
				break
			}
		}
	}
	//
	return false
}

// samplePoint enumerates 0, 1, -1, 2, -2, ...
func samplePoint(i int) *big.Rat {
	var t int64
	//
	if i%2 == 1 {
		t = int64(i+1) / 2
	} else {
		t = -int64(i) / 2
	}
	//
	return new(big.Rat).SetInt64(t)
}

// signedDivisors returns all divisors of |v|, positive and negative.
func signedDivisors(v *big.Int) []*big.Int {
	var (
		positive = divisors(v)
		result   = make([]*big.Int, 0, 2*len(positive))
	)
	//
	for _, d := range positive {
		result = append(result, d, new(big.Int).Neg(d))
	}
	//
	return result
}

// interpolate computes the unique polynomial of degree at most len(points)-1
// passing through the given points, by Lagrange's formula.
func interpolate(points []*big.Rat, values []*big.Rat) Polynomial {
	result := Zero()
	//
	for j := range points {
		var (
			basis = One()
			denom = new(big.Rat).SetInt64(1)
		)
		//
		for k := range points {
			if k == j {
				continue
			}
			// (x - x_k)
			basis = basis.Mul(New(new(big.Rat).Neg(points[k]), big.NewRat(1, 1)))
			// (x_j - x_k)
			denom.Mul(denom, new(big.Rat).Sub(points[j], points[k]))
		}
		//
		scale := new(big.Rat).Quo(values[j], denom)
		result = result.Add(basis.Scale(scale))
	}
	//
	return result
}

// fromIntegerCoefficients lifts an integer coefficient vector back into a
// rational polynomial.
func fromIntegerCoefficients(ints []*big.Int) Polynomial {
	coeffs := make([]*big.Rat, len(ints))
	//
	for i, c := range ints {
		coeffs[i] = new(big.Rat).SetInt(c)
	}
	//
	return Polynomial{trim(coeffs)}
}
