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
	"errors"
	"math/big"
)

// XGcd computes the extended Euclidean decomposition of two polynomials,
// returning (g, s, t) such that g = s*p + t*q where g is the monic greatest
// common divisor.
func (p Polynomial) XGcd(q Polynomial) (Polynomial, Polynomial, Polynomial) {
	var (
		r0, r1 = p, q
		s0, s1 = One(), Zero()
		t0, t1 = Zero(), One()
	)
	//
	for !r1.IsZero() {
		quot, rem := r0.QuoRem(r1)
		//
		r0, r1 = r1, rem
		s0, s1 = s1, s0.Sub(quot.Mul(s1))
		t0, t1 = t1, t0.Sub(quot.Mul(t1))
	}
	// Normalise so the gcd is monic.
	if !r0.IsZero() {
		scale := new(big.Rat).Inv(r0.LeadingCoefficient())
		//
		r0 = r0.Scale(scale)
		s0 = s0.Scale(scale)
		t0 = t0.Scale(scale)
	}
	//
	return r0, s0, t0
}

// InverseMod computes the inverse of this polynomial in the quotient ring
// defined by a given modulus, via the extended Euclidean algorithm.  An error
// is returned when no inverse exists (i.e. this polynomial shares a factor
// with the modulus, or is zero).
func (p Polynomial) InverseMod(m Polynomial) (Polynomial, error) {
	if p.IsZero() {
		return Polynomial{}, errors.New("zero polynomial has no inverse")
	}
	//
	g, s, _ := p.XGcd(m)
	//
	if g.Degree() != 0 {
		return Polynomial{}, errors.New("polynomial is not invertible modulo the given modulus")
	}
	// g is monic, hence exactly one here.
	return s.Mod(m), nil
}
