// Package poly implements the polynomial-algebra layer of spec §4.6.
// This is new code relative to the teacher, which has no
// polynomial-specific layer (its domain is open-ended term rewriting,
// not polynomial arithmetic) — written in the teacher's idiom: plain
// structs over sparse maps, small constructor functions, methods
// returning (value, error) pairs the way core/bigint.go and
// core/rational.go do. Grounded secondarily on
// other_examples/1d04decd_bfix-gospel__math-factorizer-sac-relation.go.go
// for the subresultant/factorization numeric idiom.
package poly

import (
	"sort"
	"strconv"
	"strings"

	"github.com/client9/symkernel/core"
)

// Polynomial is a sparse multivariate polynomial over the rationals in
// a fixed, ordered variable list (spec §4.6's "fixed lex order on the
// variable list"). Terms are keyed by a canonical string of the
// exponent vector so equal monomials always collide in the map.
type Polynomial struct {
	Vars  []string
	Terms map[string][]int // exponent vector, keyed by its own encoding
	Coefs map[string]core.BigRat
}

func New(vars []string) *Polynomial {
	return &Polynomial{
		Vars:  append([]string{}, vars...),
		Terms: map[string][]int{},
		Coefs: map[string]core.BigRat{},
	}
}

func expKey(exps []int) string {
	parts := make([]string, len(exps))
	for i, e := range exps {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ",")
}

// AddTerm adds coef*prod(Vars[i]^exps[i]) into p, combining with any
// existing term of the same exponent vector.
func (p *Polynomial) AddTerm(coef core.BigRat, exps []int) {
	key := expKey(exps)
	if c, ok := p.Coefs[key]; ok {
		sum := c.Add(coef)
		if sum.IsZero() {
			delete(p.Coefs, key)
			delete(p.Terms, key)
			return
		}
		p.Coefs[key] = sum
		return
	}
	if coef.IsZero() {
		return
	}
	p.Terms[key] = append([]int{}, exps...)
	p.Coefs[key] = coef
}

// IsZero reports whether p has no nonzero terms.
func (p *Polynomial) IsZero() bool { return len(p.Terms) == 0 }

// Degree returns the total degree of p (max sum of exponents), or -1
// for the zero polynomial.
func (p *Polynomial) Degree() int {
	max := -1
	for _, exps := range p.Terms {
		d := 0
		for _, e := range exps {
			d += e
		}
		if d > max {
			max = d
		}
	}
	return max
}

// DegreeIn returns the degree of p in variable index i, -1 if zero.
func (p *Polynomial) DegreeIn(i int) int {
	max := -1
	for _, exps := range p.Terms {
		if exps[i] > max {
			max = exps[i]
		}
	}
	return max
}

// orderedKeys returns term keys sorted by exponent vector, lex
// descending in the main variable (index 0) first, matching spec
// §4.6's fixed lex order.
func (p *Polynomial) orderedKeys() []string {
	keys := make([]string, 0, len(p.Terms))
	for k := range p.Terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := p.Terms[keys[i]], p.Terms[keys[j]]
		for k := range a {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})
	return keys
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	out := New(p.Vars)
	for k, exps := range p.Terms {
		out.Terms[k] = append([]int{}, exps...)
		out.Coefs[k] = p.Coefs[k]
	}
	return out
}
