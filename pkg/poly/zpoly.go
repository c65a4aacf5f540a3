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

// zpoly is a dense univariate polynomial over the prime field Z/p, constant
// term first, with coefficients in [0, p) and no trailing zeros.  Only small
// primes are used (well below 2^31), so coefficient products always fit in an
// int64.
type zpoly []int64

// zmod carries the prime modulus for arithmetic on zpoly values.
type zmod struct {
	p int64
}

func newZmod(p int64) zmod {
	return zmod{p}
}

// fromInts reduces an integer coefficient vector modulo p.
func (z zmod) fromInts(coeffs []*big.Int) zpoly {
	var (
		m      = big.NewInt(z.p)
		result = make(zpoly, len(coeffs))
	)
	//
	for i, c := range coeffs {
		result[i] = new(big.Int).Mod(c, m).Int64()
	}
	//
	return ztrim(result)
}

// xPoly returns the identity polynomial x.
func (z zmod) xPoly() zpoly {
	return zpoly{0, 1}
}

func (z zmod) deg(a zpoly) int {
	return len(a) - 1
}

func (z zmod) sub(a, b zpoly) zpoly {
	result := make(zpoly, max(len(a), len(b)))
	//
	for i := range result {
		var v int64
		//
		if i < len(a) {
			v = a[i]
		}
		//
		if i < len(b) {
			v -= b[i]
		}
		//
		result[i] = ((v % z.p) + z.p) % z.p
	}
	//
	return ztrim(result)
}

func (z zmod) mul(a, b zpoly) zpoly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	//
	result := make(zpoly, len(a)+len(b)-1)
	//
	for i, x := range a {
		for j, y := range b {
			result[i+j] = (result[i+j] + x*y) % z.p
		}
	}
	//
	return ztrim(result)
}

// quoRem divides a by b, returning quotient and remainder.
func (z zmod) quoRem(a, b zpoly) (zpoly, zpoly) {
	if len(b) == 0 {
		panic("division by zero polynomial")
	}
	//
	if len(a) < len(b) {
		return nil, a
	}
	//
	var (
		rem  = append(zpoly(nil), a...)
		quot = make(zpoly, len(a)-len(b)+1)
		linv = z.inv(b[len(b)-1])
	)
	//
	for len(rem) >= len(b) {
		var (
			shift = len(rem) - len(b)
			t     = (rem[len(rem)-1] * linv) % z.p
		)
		//
		quot[shift] = t
		//
		for j, c := range b {
			rem[shift+j] = ((rem[shift+j]-t*c)%z.p + z.p) % z.p
		}
		//
		rem = ztrim(rem[:len(rem)-1])
	}
	//
	return ztrim(quot), rem
}

func (z zmod) rem(a, b zpoly) zpoly {
	_, r := z.quoRem(a, b)
	return r
}

func (z zmod) monic(a zpoly) zpoly {
	if len(a) == 0 || a[len(a)-1] == 1 {
		return a
	}
	//
	var (
		linv   = z.inv(a[len(a)-1])
		result = make(zpoly, len(a))
	)
	//
	for i, c := range a {
		result[i] = (c * linv) % z.p
	}
	//
	return result
}

func (z zmod) gcd(a, b zpoly) zpoly {
	for len(b) != 0 {
		a, b = b, z.rem(a, b)
	}
	//
	return z.monic(a)
}

// powMod raises a to a (potentially very large) power modulo f, by square and
// multiply over the bits of the exponent.
func (z zmod) powMod(a zpoly, exp *big.Int, f zpoly) zpoly {
	var (
		result = zpoly{1}
		base   = z.rem(a, f)
	)
	//
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = z.rem(z.mul(result, result), f)
		//
		if exp.Bit(i) == 1 {
			result = z.rem(z.mul(result, base), f)
		}
	}
	//
	return result
}

func (z zmod) derivative(a zpoly) zpoly {
	if len(a) <= 1 {
		return nil
	}
	//
	result := make(zpoly, len(a)-1)
	//
	for i := 1; i < len(a); i++ {
		result[i-1] = (a[i] * (int64(i) % z.p)) % z.p
	}
	//
	return ztrim(result)
}

// inv computes the multiplicative inverse of a nonzero scalar via Fermat's
// little theorem.
func (z zmod) inv(a int64) int64 {
	var (
		result int64 = 1
		base         = a % z.p
		exp          = z.p - 2
	)
	//
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % z.p
		}
		//
		exp >>= 1
		base = (base * base) % z.p
	}
	//
	return result
}

// factorDegreePattern returns the multiset of degrees of the irreducible
// factors of f over Z/p, computed by distinct degree factorisation.  The input
// must be squarefree modulo p.
func (z zmod) factorDegreePattern(f zpoly) []uint {
	var (
		pattern []uint
		fs      = z.monic(f)
		h       = z.xPoly()
		pBig    = big.NewInt(z.p)
	)
	//
	for d := 1; 2*d <= z.deg(fs); d++ {
		// h becomes x^(p^d) mod fs
		h = z.powMod(h, pBig, fs)
		//
		g := z.gcd(z.sub(h, z.xPoly()), fs)
		// g is the product of all irreducible factors of degree d.
		if z.deg(g) > 0 {
			for i := 0; i < z.deg(g)/d; i++ {
				pattern = append(pattern, uint(d))
			}
			//
			fs, _ = z.quoRem(fs, g)
			fs = z.monic(fs)
			//
			if z.deg(fs) == 0 {
				break
			}
			//
			h = z.rem(h, fs)
		}
	}
	//
	if z.deg(fs) > 0 {
		pattern = append(pattern, uint(z.deg(fs)))
	}
	//
	return pattern
}

func ztrim(a zpoly) zpoly {
	i := len(a)
	//
	for i > 0 && a[i-1] == 0 {
		i--
	}
	//
	return a[:i]
}
