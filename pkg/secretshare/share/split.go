package share

import (
	"math/big"

	"github.com/coinbase/go-secretshare/pkg/secretshare/formula"
	"github.com/coinbase/go-secretshare/pkg/secretshare/gf"
)

// Splitter lowers a secret into per-leaf share values over an indexed
// formula, honoring any pre-existing assignment (used by modification to
// preserve shares common to the old and new formula). A Splitter is single
// use: construct one per Split call.
type Splitter struct {
	field    gf.Field
	rng      RNG
	assigned Assignment
}

// NewSplitter builds a Splitter. seed may be nil, in which case an empty
// assignment map is used; otherwise the working map starts as a private
// copy of seed (the caller retains ownership of seed).
func NewSplitter(field gf.Field, rng RNG, seed Assignment) *Splitter {
	assigned := make(Assignment, len(seed))
	for k, v := range seed {
		assigned[k] = v
	}
	return &Splitter{field: field, rng: rng, assigned: assigned}
}

// Assigned returns the splitter's current assignment map. Safe to call
// after Split returns (whether it succeeded or failed partway through).
func (s *Splitter) Assigned() Assignment {
	return s.assigned
}

// Split assigns share values for secret over f, mutating the splitter's
// assignment map. On success every leaf of f has a defined value such that
// NewRestorer(field, s.Assigned()).Restore(f) == secret.
func (s *Splitter) Split(secret *big.Int, f *formula.Node) error {
	return s.split(s.field.Reduce(secret), f, false)
}

func (s *Splitter) split(secret *big.Int, f *formula.Node, isRandom bool) error {
	switch f.Kind() {
	case formula.KindVar:
		return s.assign(f.Key(), secret, isRandom)

	case formula.KindOr:
		return s.splitOr(secret, f, isRandom)

	case formula.KindAnd:
		return s.splitAnd(secret, f, isRandom)

	case formula.KindThreshold:
		return s.splitThreshold(secret, f, isRandom)

	default:
		return nil
	}
}

// assign records that key should hold secret. If key already holds a
// defined value equal to secret, nothing changes. If it holds a different
// value and secret was freshly drawn at random in this walk (isRandom), the
// conflict is reported as ErrInconsistent; otherwise the existing value (a
// caller pre-assignment or one implied earlier in the walk) is authoritative
// and is left untouched.
func (s *Splitter) assign(key formula.Key, secret *big.Int, isRandom bool) error {
	if existing, ok := s.assigned[key]; ok && existing.Defined {
		if existing.N.Cmp(secret) == 0 {
			return nil
		}
		if isRandom {
			return ErrInconsistent
		}
		// Caller-provided assignment wins; modification must not disturb it.
		return nil
	}
	s.assigned[key] = Defined(secret)
	return nil
}

func (s *Splitter) splitOr(secret *big.Int, f *formula.Node, isRandom bool) error {
	// Every OR branch encodes the same secret; any single restorable child
	// suffices at restore time, so every child is split independently.
	for _, c := range f.Children() {
		if err := s.split(secret, c, isRandom); err != nil {
			return err
		}
	}
	return nil
}

func (s *Splitter) splitAnd(secret *big.Int, f *formula.Node, isRandom bool) error {
	restorer := NewRestorer(s.field, s.assigned)

	var free []*formula.Node
	total := big.NewInt(0)
	for _, c := range f.Children() {
		val, ok := restorer.Restore(c)
		if !ok {
			free = append(free, c)
			continue
		}
		total = s.field.Add(total, val)
		if err := s.split(val, c, isRandom); err != nil {
			return err
		}
	}

	if len(free) == 0 {
		if total.Cmp(secret) != 0 {
			return ErrInconsistent
		}
		return nil
	}

	for _, c := range free[:len(free)-1] {
		r, err := s.rng.Uniform(s.field.Modulus())
		if err != nil {
			return err
		}
		total = s.field.Add(total, r)
		if err := s.split(r, c, true); err != nil {
			return err
		}
	}

	last := free[len(free)-1]
	closing := s.field.Sub(secret, total)
	// The closing subsecret is uniquely determined (not random) only when
	// it is the sole free child; otherwise it is as random as the others
	// from an outside observer's point of view.
	closingIsRandom := len(free) > 1
	return s.split(closing, last, closingIsRandom)
}

func (s *Splitter) splitThreshold(secret *big.Int, f *formula.Node, isRandom bool) error {
	k := f.Threshold()
	children := f.Children()

	restorer := NewRestorer(s.field, s.assigned)
	evaluated, recovered := tryRecoverPolynomial(restorer, f)
	if recovered {
		if evaluated[0].Cmp(secret) != 0 {
			return ErrInconsistent
		}
		for i, c := range children {
			// The polynomial was implied by earlier, already-assigned
			// points; these are not fresh random draws, so propagate the
			// caller's flag instead of forcing random=true.
			if err := s.split(evaluated[i+1], c, isRandom); err != nil {
				return err
			}
		}
		return nil
	}

	coeffs := make([]*big.Int, k)
	coeffs[0] = secret
	for i := 1; i < k; i++ {
		c, err := s.rng.Uniform(s.field.Modulus())
		if err != nil {
			return err
		}
		coeffs[i] = c
	}

	for i, c := range children {
		y := s.evalHorner(coeffs, int64(i+1))
		if err := s.split(y, c, true); err != nil {
			return err
		}
	}
	return nil
}

// evalHorner evaluates the polynomial with the given coefficients (lowest
// degree first) at x, reduced mod p throughout.
func (s *Splitter) evalHorner(coeffs []*big.Int, x int64) *big.Int {
	xBig := big.NewInt(x)
	result := big.NewInt(0)
	xPow := big.NewInt(1)
	for _, c := range coeffs {
		term := s.field.Mul(c, xPow)
		result = s.field.Add(result, term)
		xPow = s.field.Mul(xPow, xBig)
	}
	return result
}

// tryRecoverPolynomial evaluates the Shamir polynomial implied by f's
// currently-restorable children at x = 0..len(children). If every
// evaluation succeeds, a polynomial of degree < k is already implied by the
// assignment map and should be reused rather than redrawn.
func tryRecoverPolynomial(restorer *Restorer, f *formula.Node) ([]*big.Int, bool) {
	n := len(f.Children())
	evaluated := make([]*big.Int, n+1)
	for x := 0; x <= n; x++ {
		val, ok := restorer.restoreThresholdAt(f, x)
		if !ok {
			return nil, false
		}
		evaluated[x] = val
	}
	return evaluated, true
}
