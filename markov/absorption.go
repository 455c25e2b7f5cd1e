package markov

import "github.com/kst-dev/kst/kerrors"

// ExpectedStepsToMastery returns, for each state in States(), the expected
// number of steps to reach full mastery (spec §4.5). Rather than forming
// the fundamental matrix N=(I-T)^-1 explicitly, it solves (I-T)x=1 for the
// transient submatrix, which is the numerically stable formulation the
// spec calls for. Q itself maps to 0.
func (m *Model) ExpectedStepsToMastery() ([]float64, error) {
	n := len(m.order)
	absorbing := m.absorbingIndex()
	T := m.TransitionMatrix()

	// transient indices: every state except the absorbing one, in order
	transient := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != absorbing {
			transient = append(transient, i)
		}
	}
	d := len(transient)

	// build (I-T) restricted to transient rows/cols, and the all-ones RHS
	A := make([][]float64, d)
	b := make([]float64, d)
	for r, i := range transient {
		row := make([]float64, d)
		for c, j := range transient {
			v := -T[i][j]
			if i == j {
				v += 1
			}
			row[c] = v
		}
		A[r] = row
		b[r] = 1
	}

	x, err := solveLinearSystem(A, b)
	if err != nil {
		return nil, kerrors.New(kerrors.KindSingularFundamentalMatrix, "fundamental matrix is singular", err.Error())
	}

	steps := make([]float64, n)
	for r, i := range transient {
		steps[i] = x[r]
	}
	steps[absorbing] = 0
	return steps, nil
}

// solveLinearSystem solves Ax=b by Gaussian elimination with partial
// pivoting. There is no linear-algebra package among this codebase's
// dependencies, so this is a direct, self-contained implementation sized
// for the small transient systems the fundamental matrix produces.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	// augmented matrix, mutated in place
	aug := make([][]float64, n)
	for i := range a {
		aug[i] = append(append([]float64{}, a[i]...), b[i])
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if abs(aug[r][col]) > abs(aug[pivot][col]) {
				pivot = r
			}
		}
		if abs(aug[pivot][col]) < 1e-12 {
			return nil, errSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for c := col; c <= n; c++ {
			aug[col][c] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = aug[i][n]
	}
	return x, nil
}

var errSingular = simpleError("singular matrix")

type simpleError string

func (e simpleError) Error() string { return string(e) }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
