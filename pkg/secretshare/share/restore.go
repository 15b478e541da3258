package share

import (
	"math/big"

	"github.com/coinbase/go-secretshare/pkg/secretshare/formula"
	"github.com/coinbase/go-secretshare/pkg/secretshare/gf"
)

// Value is a share value, or the distinguished "unassigned" state used only
// during modification (see the top-level secretshare package's
// Configuration.Modify). A Value with Defined == false carries no number.
type Value struct {
	Defined bool
	N       *big.Int
}

// Defined returns a Value wrapping n.
func Defined(n *big.Int) Value { return Value{Defined: true, N: n} }

// Undefined returns the unassigned marker: the key is known to the formula
// but no concrete share value has been supplied for it yet.
func Undefined() Value { return Value{} }

// Assignment is a partial function from indexed formula keys to share
// values. It grows monotonically during a split call.
type Assignment map[formula.Key]Value

// Restorer evaluates an indexed formula against a partial Assignment,
// following spec's bottom-up recombination: additive for AND, first-defined
// for OR, Lagrange interpolation for THRESHOLD.
type Restorer struct {
	field gf.Field
	given Assignment
}

// NewRestorer builds a Restorer over the given field and assignment map.
// The map is read, never mutated.
func NewRestorer(field gf.Field, given Assignment) *Restorer {
	return &Restorer{field: field, given: given}
}

// Restore evaluates f and reports whether a value could be recovered.
func (r *Restorer) Restore(f *formula.Node) (*big.Int, bool) {
	switch f.Kind() {
	case formula.KindVar:
		v, ok := r.given[f.Key()]
		if !ok || !v.Defined {
			return nil, false
		}
		return v.N, true

	case formula.KindOr:
		for _, c := range f.Children() {
			if val, ok := r.Restore(c); ok {
				return val, true
			}
		}
		return nil, false

	case formula.KindAnd:
		sum := big.NewInt(0)
		for _, c := range f.Children() {
			val, ok := r.Restore(c)
			if !ok {
				return nil, false
			}
			sum = r.field.Add(sum, val)
		}
		return sum, true

	case formula.KindThreshold:
		return r.restoreThresholdAt(f, 0)

	default:
		return nil, false
	}
}

// restoreThresholdAt evaluates the Shamir polynomial implied by f's
// currently-restorable children at an arbitrary point x (not just x=0). The
// splitter uses this to detect and reuse a pre-existing polynomial implied
// by already-known children (see split.go).
func (r *Restorer) restoreThresholdAt(f *formula.Node, x int) (*big.Int, bool) {
	k := f.Threshold()
	children := f.Children()

	var xs []int64
	var ys []*big.Int
	for i, c := range children {
		val, ok := r.Restore(c)
		if !ok {
			continue
		}
		xs = append(xs, int64(i+1))
		ys = append(ys, val)
		if len(xs) == k {
			// Stop at the first k restorable children, in child order.
			break
		}
	}
	if len(xs) < k {
		return nil, false
	}

	return r.lagrangeAt(xs, ys, int64(x))
}

// lagrangeAt computes P(x0) from k distinct points (xs[i], ys[i]) via
// classical Lagrange interpolation:
//
//	P(x0) = sum_j ys[j] * prod_{i != j} (x0 - xs[i]) / (xs[j] - xs[i])  mod p
//
// It reports ok=false if a denominator is not invertible mod p — unreachable
// when p is prime and the xs are distinct nonzero residues, but possible for
// a caller-supplied non-prime modulus (see gf's package doc).
func (r *Restorer) lagrangeAt(xs []int64, ys []*big.Int, x0 int64) (*big.Int, bool) {
	secret := big.NewInt(0)
	x0big := big.NewInt(x0)
	for j := range xs {
		term := big.NewInt(1)
		xj := big.NewInt(xs[j])
		for i := range xs {
			if i == j {
				continue
			}
			xi := big.NewInt(xs[i])
			num := r.field.Sub(x0big, xi)
			den := r.field.Sub(xj, xi)
			frac, err := r.field.Div(num, den)
			if err != nil {
				return nil, false
			}
			term = r.field.Mul(term, frac)
		}
		secret = r.field.Add(secret, r.field.Mul(ys[j], term))
	}
	return secret, true
}
