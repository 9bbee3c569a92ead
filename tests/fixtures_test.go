// Package tests holds end-to-end scenario fixtures, carried from the
// teacher's tests/integration/ suite: whole pipelines (parse, solve,
// differentiate, render) snapshotted per named fixture rather than
// unit-tested package by package.
package tests

import (
	"testing"

	"github.com/client9/symkernel"
	"github.com/gkampitakis/go-snaps/snaps"
)

type fixture struct {
	name string
	run  func(t *testing.T) string
}

func fixtures() []fixture {
	return []fixture{
		{
			name: "simplify_collects_like_terms",
			run: func(t *testing.T) string {
				h, err := symkernel.ParseSimple("2*x + 3*x - x + 5")
				if err != nil {
					t.Fatal(err)
				}
				return symkernel.Simplify(h).String()
			},
		},
		{
			name: "expand_binomial_cube",
			run: func(t *testing.T) string {
				h, err := symkernel.ParseSimple("(x + 1)^3")
				if err != nil {
					t.Fatal(err)
				}
				return symkernel.Expand(h).String()
			},
		},
		{
			name: "derivative_product_rule",
			run: func(t *testing.T) string {
				h, err := symkernel.ParseSimple("x * sin(x)")
				if err != nil {
					t.Fatal(err)
				}
				return symkernel.Derivative(h, "x").String()
			},
		},
		{
			name: "solve_quadratic_real_roots",
			run: func(t *testing.T) string {
				h, err := symkernel.ParseSimple("x^2 - 5*x + 6 = 0")
				if err != nil {
					t.Fatal(err)
				}
				result, err := symkernel.Solve(h, "x")
				if err != nil {
					t.Fatal(err)
				}
				out := ""
				for i, s := range result.Solutions {
					if i > 0 {
						out += ", "
					}
					out += s.String()
				}
				return out
			},
		},
		{
			name: "factor_difference_of_squares",
			run: func(t *testing.T) string {
				h, err := symkernel.ParseSimple("x^2 - 1")
				if err != nil {
					t.Fatal(err)
				}
				factors, err := symkernel.Factor(h)
				if err != nil {
					t.Fatal(err)
				}
				out := ""
				for i, f := range factors {
					if i > 0 {
						out += " * "
					}
					out += "(" + f.String() + ")"
				}
				return out
			},
		},
		{
			name: "format_latex_fraction",
			run: func(t *testing.T) string {
				h, err := symkernel.ParseSimple("x/2 + y/3")
				if err != nil {
					t.Fatal(err)
				}
				return symkernel.FormatLaTeX(symkernel.Simplify(h))
			},
		},
	}
}

func TestEndToEndFixtures(t *testing.T) {
	for _, f := range fixtures() {
		t.Run(f.name, func(t *testing.T) {
			snaps.MatchSnapshot(t, f.run(t))
		})
	}
}
