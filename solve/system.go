package solve

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/poly"
	"github.com/client9/symkernel/simplify"
)

// SystemResult mirrors SolverResult for a simultaneous system: either
// an assignment (one expression per variable, in the order given), or
// NoSolution/Infinite.
type SystemResult struct {
	Kind       ResultKind
	Assignment []core.Expr // parallel to the vars argument of SolveSystem
	Diagnostic string
}

// SolveSystem implements linear systems via Gaussian elimination on
// rationals (spec §4.8); nonlinear systems fall back to an
// independent per-equation solve of the first equation whose residual
// is a polynomial in exactly one of the requested variables, since a
// general nonlinear system solver is out of scope here.
func SolveSystem(eqs []core.EquationExpr, vars []core.SymbolExpr) SystemResult {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	rows := make([][]core.BigRat, 0, len(eqs))
	allLinear := true
	for _, eq := range eqs {
		f := simplify.Residual(eq)
		p, err := poly.AsPolynomial(f, names)
		if err != nil || p.Degree() > 1 {
			allLinear = false
			break
		}
		row := make([]core.BigRat, len(names)+1)
		for key, exps := range p.Terms {
			idx := -1
			for i, e := range exps {
				if e == 1 {
					idx = i
					break
				}
			}
			if idx == -1 {
				row[len(names)] = p.Coefs[key]
			} else {
				row[idx] = p.Coefs[key]
			}
		}
		rows = append(rows, row)
	}
	if !allLinear {
		return solveSystemFallback(eqs, vars)
	}
	return solveLinearSystem(rows, names)
}

// solveLinearSystem Gaussian-eliminates an augmented matrix of
// rational coefficients, the last column being the constant term (the
// row represents sum(coef_i * var_i) + constant = 0).
func solveLinearSystem(rows [][]core.BigRat, names []string) SystemResult {
	n := len(names)
	m := len(rows)
	aug := make([][]core.BigRat, m)
	for i := range rows {
		aug[i] = append([]core.BigRat{}, rows[i]...)
	}
	pivotRow := 0
	pivotCols := make([]int, 0, n)
	for col := 0; col < n && pivotRow < m; col++ {
		sel := -1
		for r := pivotRow; r < m; r++ {
			if !aug[r][col].IsZero() {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		aug[pivotRow], aug[sel] = aug[sel], aug[pivotRow]
		inv, err := core.RatOne().Div(aug[pivotRow][col])
		if err != nil {
			continue
		}
		for k := range aug[pivotRow] {
			aug[pivotRow][k] = aug[pivotRow][k].Mul(inv)
		}
		for r := 0; r < m; r++ {
			if r == pivotRow || aug[r][col].IsZero() {
				continue
			}
			factor := aug[r][col]
			for k := range aug[r] {
				aug[r][k] = aug[r][k].Sub(factor.Mul(aug[pivotRow][k]))
			}
		}
		pivotCols = append(pivotCols, col)
		pivotRow++
	}
	// Check remaining rows for 0 = nonzero (no solution).
	for r := pivotRow; r < m; r++ {
		allZeroCoef := true
		for c := 0; c < n; c++ {
			if !aug[r][c].IsZero() {
				allZeroCoef = false
				break
			}
		}
		if allZeroCoef && !aug[r][n].IsZero() {
			return SystemResult{Kind: KindNoSolution, Diagnostic: "inconsistent linear system"}
		}
	}
	if len(pivotCols) < n {
		return SystemResult{Kind: KindInfinite}
	}
	assignment := make([]core.Expr, n)
	for i, col := range pivotCols {
		assignment[col] = ratExpr(aug[i][n].Neg())
	}
	return SystemResult{Kind: KindSingle, Assignment: assignment}
}

// solveSystemFallback handles a nonlinear system by independently
// solving the first equation that reduces to a single-variable
// polynomial, for each requested variable; equations that mix
// variables nonlinearly are reported as NoSolution.
func solveSystemFallback(eqs []core.EquationExpr, vars []core.SymbolExpr) SystemResult {
	assignment := make([]core.Expr, len(vars))
	for i, v := range vars {
		found := false
		for _, eq := range eqs {
			f := simplify.Residual(eq)
			if !dependsOnlyOn(f, v) {
				continue
			}
			result := Solve(eq, v)
			if result.Kind == KindSingle {
				assignment[i] = result.Solutions[0]
				found = true
				break
			}
		}
		if !found {
			return SystemResult{Kind: KindNoSolution, Diagnostic: "unsupported shape"}
		}
	}
	return SystemResult{Kind: KindSingle, Assignment: assignment}
}

func dependsOnlyOn(e core.Expr, v core.SymbolExpr) bool {
	ok := true
	core.Walk(e, func(n core.Expr) {
		if s, isSym := n.(core.SymbolExpr); isSym && s.Name != v.Name {
			ok = false
		}
	})
	return ok
}
