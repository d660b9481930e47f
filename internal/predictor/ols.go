package predictor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// RankTolerance is the relative singular-value cutoff below which a direction
// of the design matrix is treated as collinear.
const RankTolerance = 1e-10

// LinearModel is an ordinary least squares fit with intercept.
type LinearModel struct {
	Coefficients []float64
	Intercept    float64
}

// Predict evaluates the model for one feature vector.
func (m LinearModel) Predict(x []float64) float64 {
	y := m.Intercept
	for i, c := range m.Coefficients {
		y += c * x[i]
	}
	return y
}

// FitOLS fits y ≈ X·β + b without regularization or scaling. Features are
// centered and the minimum-norm least squares solution is taken from a thin SVD,
// so collinear columns share weight instead of failing the solve.
func FitOLS(x [][]float64, y []float64) (LinearModel, error) {
	rows := len(x)
	if rows == 0 || rows != len(y) {
		return LinearModel{}, fmt.Errorf("ols: %d feature rows for %d targets", rows, len(y))
	}
	cols := len(x[0])
	if cols == 0 {
		return LinearModel{}, errors.New("ols: no features")
	}
	for i := range x {
		if len(x[i]) != cols {
			return LinearModel{}, fmt.Errorf("ols: row %d has %d features, want %d", i, len(x[i]), cols)
		}
	}

	means := make([]float64, cols)
	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := range x {
			column[i] = x[i][j]
		}
		means[j] = stat.Mean(column, nil)
	}
	yMean := stat.Mean(y, nil)

	a := mat.NewDense(rows, cols, nil)
	b := mat.NewDense(rows, 1, nil)
	for i := range x {
		for j := 0; j < cols; j++ {
			a.Set(i, j, x[i][j]-means[j])
		}
		b.Set(i, 0, y[i]-yMean)
	}

	coef := make([]float64, cols)
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return LinearModel{}, errors.New("ols: svd factorization failed")
	}
	if rank := svd.Rank(RankTolerance); rank > 0 {
		var sol mat.Dense
		svd.SolveTo(&sol, b, rank)
		for j := range coef {
			coef[j] = sol.At(j, 0)
		}
	}

	intercept := yMean
	for j, c := range coef {
		intercept -= c * means[j]
	}
	return LinearModel{Coefficients: coef, Intercept: intercept}, nil
}
