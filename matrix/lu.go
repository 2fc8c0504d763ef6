package matrix

import "fmt"

// LU factors a square matrix m as L*U using Doolittle's method without
// pivoting: L has unit diagonal, U is upper triangular.
//
// Stage 1 (Validate): m must be square.
// Stage 2 (Execute): classic O(n^3) elimination, accumulating L and U.
//
// Complexity: O(n^3) time, O(n^2) memory.
func LU(m *Dense) (L, U *Dense, err error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, fmt.Errorf("LU: %w", ErrNonSquare)
	}

	L, err = NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err = NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	for i := 0; i < n; i++ {
		// Upper triangular row i.
		for k := i; k < n; k++ {
			sum := 0.0
			for j := 0; j < i; j++ {
				sum += L.At(i, j) * U.At(j, k)
			}
			_ = U.Set(i, k, m.At(i, k)-sum)
		}

		// Lower triangular column i.
		for k := i; k < n; k++ {
			if k == i {
				_ = L.Set(i, i, 1.0)
				continue
			}
			sum := 0.0
			for j := 0; j < i; j++ {
				sum += L.At(k, j) * U.At(j, i)
			}
			pivot := U.At(i, i)
			if pivot == 0 {
				return nil, nil, fmt.Errorf("LU: %w", ErrSingular)
			}
			_ = L.Set(k, i, (m.At(k, i)-sum)/pivot)
		}
	}

	return L, U, nil
}

// Inverse returns the inverse of the square matrix m via LU decomposition
// followed by forward/backward substitution against each identity column.
//
// Stage 1 (Decompose): m = L*U.
// Stage 2 (Execute): for each unit vector e_i, solve L*y=e_i then U*x=y.
// Stage 3 (Finalize): assemble the solved columns into the inverse.
//
// Complexity: O(n^3) time, O(n^2) memory.
func Inverse(m *Dense) (*Dense, error) {
	n := m.Rows()
	L, U, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	y := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		// Forward substitution: L*y = e_col.
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < i; j++ {
				sum += L.At(i, j) * y[j]
			}
			e := 0.0
			if i == col {
				e = 1.0
			}
			y[i] = e - sum
		}
		// Backward substitution: U*x = y.
		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			for j := i + 1; j < n; j++ {
				sum += U.At(i, j) * x[j]
			}
			pivot := U.At(i, i)
			if pivot == 0 {
				return nil, fmt.Errorf("Inverse: %w", ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for row := 0; row < n; row++ {
			_ = inv.Set(row, col, x[row])
		}
	}

	return inv, nil
}
