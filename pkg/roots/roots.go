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

// Package roots isolates the real roots of a rational polynomial and refines
// them to arbitrary decimal precision.  Roots are located exactly: rational
// roots are split off by the rational root theorem, and the remaining
// (irrational) roots are separated by Sturm sequence bisection, which never
// lands on a root at a rational bisection point.
package roots

import (
	"errors"
	"math/big"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-realalg/pkg/poly"
)

var (
	one  = big.NewInt(1)
	ten  = big.NewInt(10)
	half = big.NewRat(1, 2)
)

// Root represents a single real root of a polynomial, either exactly (a
// rational root) or as a shrinking rational enclosure (lo, hi) known to
// contain exactly one root.  Refinement mutates the enclosure in place;
// callers sharing a root must serialise access.
type Root struct {
	// polynomial is the squarefree, rational-root-free part of the original
	// polynomial; nil-degree for exact roots.
	polynomial poly.Polynomial
	// enclosure bounds, with polynomial(lo) and polynomial(hi) nonzero.
	lo *big.Rat
	hi *big.Rat
	// sign of polynomial at lo, fixed for the lifetime of the enclosure.
	signLo int
	// exact holds the value of a rational root, or nil.
	exact *big.Rat
}

// Isolate returns all real roots of the given polynomial in ascending order.
// An error is returned for constant polynomials.
func Isolate(f poly.Polynomial) ([]*Root, error) {
	if f.Degree() < 1 {
		return nil, errors.New("cannot isolate roots of a constant polynomial")
	}
	// Reduce to the squarefree part, which has the same roots without
	// multiplicity.
	g := f
	if gcd := f.Gcd(f.Derivative()); gcd.Degree() > 0 {
		g = f.Quo(gcd)
	}
	// Split off rational roots, so that bisection below can never hit a root
	// at a rational point.
	var (
		rational = g.RationalRoots()
		h        = g
	)
	//
	for _, r := range rational {
		h = h.Quo(poly.New(new(big.Rat).Neg(r), big.NewRat(1, 1)))
	}
	//
	var isolated []*Root
	//
	if h.Degree() >= 1 {
		var (
			chain = sturmChain(h)
			bound = cauchyBound(h)
			lo    = new(big.Rat).Neg(bound)
		)
		//
		isolated = bisect(h, chain, lo, bound, countRoots(chain, lo, bound), nil)
	}
	// Merge the rational and irrational roots into ascending order.
	result := merge(rational, isolated)
	//
	log.Debugf("isolated %d real roots of %s", len(result), f.String("x"))
	//
	return result, nil
}

// IsExact reports whether this root is known to be a rational number.
func (r *Root) IsExact() bool {
	return r.exact != nil
}

// Enclosure returns rational bounds lo <= root <= hi on this root at its
// current refinement.
func (r *Root) Enclosure() (*big.Rat, *big.Rat) {
	if r.exact != nil {
		return new(big.Rat).Set(r.exact), new(big.Rat).Set(r.exact)
	}
	//
	return new(big.Rat).Set(r.lo), new(big.Rat).Set(r.hi)
}

// Refine halves the width of this root's enclosure by one bisection step.
// Exact roots are already as narrow as they get.
func (r *Root) Refine() {
	if r.exact != nil {
		return
	}
	//
	mid := new(big.Rat).Add(r.lo, r.hi)
	mid.Mul(mid, half)
	//
	if r.polynomial.SignAt(mid) == r.signLo {
		r.lo = mid
	} else {
		r.hi = mid
	}
}

// Decimal returns a decimal approximation of this root with exactly the given
// number of fractional digits, accurate to within one unit in the last place.
// In particular, parsing the result as a one-ulp-wide interval at the same
// precision is guaranteed to enclose the true root.
func (r *Root) Decimal(digits uint) string {
	if digits == 0 {
		panic("invalid precision")
	}
	//
	if r.exact != nil {
		return renderRounded(r.exact, digits)
	}
	// Refine until the enclosure is well inside half a ulp.
	var (
		width  = new(big.Rat)
		target = new(big.Rat).SetFrac(one, pow10(digits+2))
	)
	//
	for width.Sub(r.hi, r.lo); width.Cmp(target) >= 0; width.Sub(r.hi, r.lo) {
		r.Refine()
	}
	//
	mid := new(big.Rat).Add(r.lo, r.hi)
	mid.Mul(mid, half)
	//
	return renderRounded(mid, digits)
}

func (r *Root) String() string {
	if r.exact != nil {
		return r.exact.RatString()
	}
	//
	return "(" + r.lo.RatString() + ".." + r.hi.RatString() + ")"
}

// cmpRat compares this root against a rational which is known not to be a
// root, refining the enclosure until the two separate.
func (r *Root) cmpRat(q *big.Rat) int {
	if r.exact != nil {
		return r.exact.Cmp(q)
	}
	//
	for r.lo.Cmp(q) < 0 && q.Cmp(r.hi) < 0 {
		r.Refine()
	}
	//
	if r.hi.Cmp(q) <= 0 {
		return -1
	}
	//
	return 1
}

// bisect recursively subdivides (lo, hi), known to contain count roots of h,
// until every root lives in its own enclosure.  Roots are appended in
// ascending order.
func bisect(h poly.Polynomial, chain []poly.Polynomial, lo, hi *big.Rat, count int, acc []*Root) []*Root {
	switch count {
	case 0:
		return acc
	case 1:
		return append(acc, &Root{h, new(big.Rat).Set(lo), new(big.Rat).Set(hi), h.SignAt(lo), nil})
	}
	//
	mid := new(big.Rat).Add(lo, hi)
	mid.Mul(mid, half)
	left := countRoots(chain, lo, mid)
	//
	acc = bisect(h, chain, lo, mid, left, acc)
	//
	return bisect(h, chain, mid, hi, count-left, acc)
}

// sturmChain computes the Sturm sequence of a squarefree polynomial: the
// polynomial, its derivative, and then the negated remainders of successive
// divisions until reaching a constant.
func sturmChain(h poly.Polynomial) []poly.Polynomial {
	chain := []poly.Polynomial{h, h.Derivative()}
	//
	for {
		last := chain[len(chain)-1]
		rem := chain[len(chain)-2].Mod(last)
		//
		if rem.IsZero() {
			return chain
		}
		//
		chain = append(chain, rem.Neg())
	}
}

// countRoots counts the roots of the chain's polynomial strictly between two
// non-root points, as the drop in Sturm sign variations.
func countRoots(chain []poly.Polynomial, lo, hi *big.Rat) int {
	return variations(chain, lo) - variations(chain, hi)
}

// variations counts the sign changes along the Sturm chain evaluated at a
// point, ignoring zeros.
func variations(chain []poly.Polynomial, x *big.Rat) int {
	var (
		count int
		prev  int
	)
	//
	for _, p := range chain {
		s := p.SignAt(x)
		//
		if s != 0 && prev != 0 && s != prev {
			count++
		}
		//
		if s != 0 {
			prev = s
		}
	}
	//
	return count
}

// cauchyBound returns an integer B such that every real root of h lies
// strictly within (-B, B), namely the Cauchy bound 1 + max |a_i / a_n| rounded
// up.
func cauchyBound(h poly.Polynomial) *big.Rat {
	var (
		coeffs = h.Coefficients()
		lead   = new(big.Rat).Abs(coeffs[len(coeffs)-1])
		maxAbs = new(big.Rat)
	)
	//
	for _, c := range coeffs[:len(coeffs)-1] {
		abs := new(big.Rat).Abs(c)
		//
		if abs.Cmp(maxAbs) > 0 {
			maxAbs = abs
		}
	}
	//
	bound := new(big.Rat).Quo(maxAbs, lead)
	bound.Add(bound, big.NewRat(1, 1))
	// Round up to an integer.
	ceil := new(big.Int).Add(bound.Num(), bound.Denom())
	ceil.Sub(ceil, one)
	ceil.Div(ceil, bound.Denom())
	//
	return new(big.Rat).SetInt(ceil)
}

// merge interleaves exact rational roots and isolated irrational roots into a
// single ascending sequence.
func merge(rational []*big.Rat, isolated []*Root) []*Root {
	var (
		result = make([]*Root, 0, len(rational)+len(isolated))
		i, j   = 0, 0
	)
	//
	for i < len(rational) && j < len(isolated) {
		if isolated[j].cmpRat(rational[i]) < 0 {
			result = append(result, isolated[j])
			j++
		} else {
			result = append(result, &Root{exact: new(big.Rat).Set(rational[i])})
			i++
		}
	}
	//
	for ; i < len(rational); i++ {
		result = append(result, &Root{exact: new(big.Rat).Set(rational[i])})
	}
	//
	result = append(result, isolated[j:]...)
	//
	return result
}

// renderRounded renders a rational rounded to the nearest value with exactly
// the given number of fractional digits.
func renderRounded(r *big.Rat, digits uint) string {
	scaled := new(big.Rat).Mul(r, new(big.Rat).SetInt(pow10(digits)))
	scaled.Add(scaled, half)
	// floor
	x := new(big.Int).Div(scaled.Num(), scaled.Denom())
	//
	return formatScaled(x, digits)
}

// formatScaled renders the decimal x / 10^digits.
func formatScaled(x *big.Int, digits uint) string {
	var (
		text = new(big.Int).Abs(x).Text(10)
		sign = ""
	)
	//
	if x.Sign() < 0 {
		sign = "-"
	}
	//
	if uint(len(text)) <= digits {
		text = strings.Repeat("0", int(digits)+1-len(text)) + text
	}
	//
	cut := len(text) - int(digits)
	//
	return sign + text[:cut] + "." + text[cut:]
}

func pow10(n uint) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
