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
	"sort"
)

// RationalRoots returns every rational root of this polynomial, in ascending
// order and without multiplicity.  By the rational root theorem, a root p/q
// in lowest terms of an integer polynomial must have p dividing the constant
// term and q dividing the leading coefficient, so the search space is the
// divisor pairs of those two (after clearing denominators).
func (p Polynomial) RationalRoots() []*big.Rat {
	var roots []*big.Rat
	//
	if p.Degree() < 1 {
		return nil
	}
	//
	ints := p.integerCoefficients()
	// Factor out powers of x first, so the constant term is nonzero.
	low := 0
	for ints[low].Sign() == 0 {
		low++
	}
	//
	if low > 0 {
		roots = append(roots, new(big.Rat))
		ints = ints[low:]
	}
	//
	if len(ints) < 2 {
		sortRats(roots)
		return roots
	}
	//
	var (
		numCandidates = divisors(ints[0])
		denCandidates = divisors(ints[len(ints)-1])
		seen          = make(map[string]bool)
	)
	//
	for _, n := range numCandidates {
		for _, d := range denCandidates {
			for _, sign := range []int64{1, -1} {
				cand := new(big.Rat).SetFrac(new(big.Int).Mul(n, big.NewInt(sign)), d)
				key := cand.RatString()
				//
				if seen[key] {
					continue
				}
				//
				seen[key] = true
				//
				if p.SignAt(cand) == 0 {
					roots = append(roots, cand)
				}
			}
		}
	}
	//
	sortRats(roots)
	//
	return roots
}

// integerCoefficients returns the primitive integer coefficient vector of this
// polynomial: denominators cleared and the content (gcd of all coefficients)
// divided out.
func (p Polynomial) integerCoefficients() []*big.Int {
	var lcm = big.NewInt(1)
	// Clear denominators.
	for _, c := range p.coeffs {
		var g big.Int
		//
		g.GCD(nil, nil, lcm, c.Denom())
		lcm.Div(lcm, &g)
		lcm.Mul(lcm, c.Denom())
	}
	//
	ints := make([]*big.Int, len(p.coeffs))
	content := new(big.Int)
	//
	for i, c := range p.coeffs {
		ints[i] = new(big.Int).Mul(c.Num(), lcm)
		ints[i].Div(ints[i], c.Denom())
		content.GCD(nil, nil, content, new(big.Int).Abs(ints[i]))
	}
	// Divide out the content.
	if content.Cmp(big.NewInt(1)) > 0 {
		for _, c := range ints {
			c.Div(c, content)
		}
	}
	//
	return ints
}

// divisors returns the positive divisors of |x|, for nonzero x, by trial
// division up to the square root.
func divisors(x *big.Int) []*big.Int {
	var (
		abs  = new(big.Int).Abs(x)
		divs []*big.Int
		sq   big.Int
		rem  big.Int
	)
	//
	for i := big.NewInt(1); ; i = new(big.Int).Add(i, big.NewInt(1)) {
		sq.Mul(i, i)
		//
		if sq.Cmp(abs) > 0 {
			break
		}
		//
		q := new(big.Int)
		q.QuoRem(abs, i, &rem)
		//
		if rem.Sign() == 0 {
			divs = append(divs, i)
			//
			if q.Cmp(i) != 0 {
				divs = append(divs, q)
			}
		}
	}
	//
	return divs
}

func sortRats(rats []*big.Rat) {
	sort.Slice(rats, func(i, j int) bool {
		return rats[i].Cmp(rats[j]) < 0
	})
}
