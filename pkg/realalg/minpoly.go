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

	"github.com/consensys/go-realalg/pkg/poly"
)

// MinimalPolynomial returns the monic minimal polynomial of this element over
// the rationals: the lowest degree monic polynomial it satisfies.  The powers
// of the element are expanded in the field basis and the first linear
// dependency is found by rational Gaussian elimination.
func (a *RealAlgebraic) MinimalPolynomial() poly.Polynomial {
	var (
		degree = int(a.field.degree)
		powers = make([][]*big.Rat, 0, degree+1)
		cur    = poly.One()
	)
	// Expand 1, a, a^2, ..., a^degree in the field basis.
	for k := 0; k <= degree; k++ {
		powers = append(powers, basisVector(cur, degree))
		//
		if k < degree {
			cur = cur.MulMod(a.rep, a.field.polynomial)
		}
	}
	// The first power expressible in terms of the earlier ones fixes the
	// minimal polynomial's degree.
	for k := 1; k <= degree; k++ {
		if combo, ok := solveLinear(powers[:k], powers[k]); ok {
			coeffs := make([]*big.Rat, k+1)
			//
			for j := 0; j < k; j++ {
				coeffs[j] = new(big.Rat).Neg(combo[j])
			}
			//
			coeffs[k] = big.NewRat(1, 1)
			//
			return poly.New(coeffs...)
		}
	}
	// unreachable: degree+1 vectors in a degree dimensional space are always
	// dependent
	panic("no linear dependency among element powers")
}

// AlgebraicDegree returns the degree of this element's minimal polynomial.
func (a *RealAlgebraic) AlgebraicDegree() uint {
	return uint(a.MinimalPolynomial().Degree())
}

// basisVector pads the coefficients of a reduced polynomial out to the field
// degree.
func basisVector(p poly.Polynomial, degree int) []*big.Rat {
	vec := make([]*big.Rat, degree)
	//
	for i := 0; i < degree; i++ {
		vec[i] = p.Coefficient(uint(i))
	}
	//
	return vec
}

// solveLinear finds rational coefficients c with sum_j c_j * vs[j] = w, if any
// exist, by Gauss-Jordan elimination on the augmented system.  Free variables
// are set to zero.
func solveLinear(vs [][]*big.Rat, w []*big.Rat) ([]*big.Rat, bool) {
	var (
		rows = len(w)
		cols = len(vs)
	)
	// Build the augmented matrix, one row per basis coordinate.
	matrix := make([][]*big.Rat, rows)
	//
	for i := 0; i < rows; i++ {
		matrix[i] = make([]*big.Rat, cols+1)
		//
		for j := 0; j < cols; j++ {
			matrix[i][j] = new(big.Rat).Set(vs[j][i])
		}
		//
		matrix[i][cols] = new(big.Rat).Set(w[i])
	}
	// Forward elimination with partial pivoting (any nonzero pivot works over
	// the rationals).
	var (
		pivotCol = make([]int, 0, rows)
		row      = 0
	)
	//
	for col := 0; col < cols && row < rows; col++ {
		pivot := -1
		//
		for i := row; i < rows; i++ {
			if matrix[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		//
		if pivot < 0 {
			continue
		}
		//
		matrix[row], matrix[pivot] = matrix[pivot], matrix[row]
		// Normalise the pivot row.
		scale := new(big.Rat).Inv(matrix[row][col])
		for j := col; j <= cols; j++ {
			matrix[row][j].Mul(matrix[row][j], scale)
		}
		// Eliminate below and above.
		for i := 0; i < rows; i++ {
			if i == row || matrix[i][col].Sign() == 0 {
				continue
			}
			//
			factor := new(big.Rat).Set(matrix[i][col])
			//
			for j := col; j <= cols; j++ {
				var tmp big.Rat
				//
				tmp.Mul(factor, matrix[row][j])
				matrix[i][j].Sub(matrix[i][j], &tmp)
			}
		}
		//
		pivotCol = append(pivotCol, col)
		row++
	}
	// Inconsistent system means no dependency at this degree.
	for i := row; i < rows; i++ {
		if matrix[i][cols].Sign() != 0 {
			return nil, false
		}
	}
	// Read the solution off the pivots; free variables stay zero.
	solution := make([]*big.Rat, cols)
	for j := range solution {
		solution[j] = new(big.Rat)
	}
	//
	for i, col := range pivotCol {
		solution[col].Set(matrix[i][cols])
	}
	//
	return solution, true
}
