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

import "errors"

// smallPrimes are the moduli tried for the modular irreducibility
// certificates.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

// maxCertificates bounds how many usable primes contribute a factor degree
// pattern before falling through to the exact (but slow) Kronecker search.
const maxCertificates = 5

// IsIrreducible determines, exactly, whether this polynomial is irreducible
// over the rationals.  Linear polynomials are always irreducible; for the
// rest, cheap certificates are tried in order of increasing cost:
//
//  1. a zero constant term or a repeated factor (non-trivial gcd with the
//     derivative) or a rational root proves reducibility;
//  2. absence of rational roots settles degrees two and three;
//  3. irreducibility modulo any good prime proves irreducibility over the
//     rationals, and intersecting the factor degree patterns across several
//     primes often rules out every possible proper factor degree;
//  4. otherwise a Kronecker factor search gives an exact answer (exponential,
//     but only reached when every modular certificate is inconclusive, e.g.
//     x^4 + 1).
//
// An error is returned for constant polynomials, for which irreducibility is
// undefined.
func (p Polynomial) IsIrreducible() (bool, error) {
	n := p.Degree()
	//
	if n < 1 {
		return false, errors.New("irreducibility is undefined for constant polynomials")
	}
	//
	if n == 1 {
		return true, nil
	}
	//
	ints := p.integerCoefficients()
	// x divides
	if ints[0].Sign() == 0 {
		return false, nil
	}
	// repeated factor
	if g := p.Gcd(p.Derivative()); g.Degree() > 0 {
		return false, nil
	}
	// linear factor
	if len(p.RationalRoots()) > 0 {
		return false, nil
	}
	// A proper factorisation of a degree 2 or 3 polynomial must include a
	// linear factor.
	if n <= 3 {
		return true, nil
	}
	// Modular certificates.
	var patterns [][]uint
	//
	for _, q := range smallPrimes {
		if len(patterns) == maxCertificates {
			break
		}
		//
		z := newZmod(q)
		fq := z.fromInts(ints)
		// Skip primes dividing the leading coefficient, and primes modulo
		// which the reduction is not squarefree.
		if z.deg(fq) != n || z.deg(z.gcd(fq, z.derivative(fq))) > 0 {
			continue
		}
		//
		pattern := z.factorDegreePattern(fq)
		//
		if len(pattern) == 1 {
			// Irreducible modulo q, hence irreducible over the rationals.
			return true, nil
		}
		//
		patterns = append(patterns, pattern)
	}
	//
	if len(patterns) > 0 && !compatibleFactorDegree(patterns, uint(n)) {
		return true, nil
	}
	// Exact fallback.
	return !kroneckerReducible(ints), nil
}

// compatibleFactorDegree checks whether any proper factor degree 1..n-1 is
// achievable as a subset sum of every modular factor degree pattern.  A factor
// over the rationals reduces to a subset of the factors modulo each good
// prime, so an empty intersection proves irreducibility.
func compatibleFactorDegree(patterns [][]uint, n uint) bool {
	feasible := make([]bool, n+1)
	//
	for i := range feasible {
		feasible[i] = true
	}
	//
	for _, pattern := range patterns {
		sums := subsetSums(pattern, n)
		//
		for i := range feasible {
			feasible[i] = feasible[i] && sums[i]
		}
	}
	//
	for d := uint(1); d < n; d++ {
		if feasible[d] {
			return true
		}
	}
	//
	return false
}

// subsetSums computes which totals up to n are achievable by summing a subset
// of the given degrees.
func subsetSums(degrees []uint, n uint) []bool {
	sums := make([]bool, n+1)
	sums[0] = true
	//
	for _, d := range degrees {
		for i := n; i >= d; i-- {
			if sums[i-d] {
				sums[i] = true
			}
		}
	}
	//
	return sums
}
