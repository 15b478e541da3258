package share

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
)

// RNG draws a value uniform over [0, p). Implementations must be safe to
// call repeatedly from a single split call; they are not required to be
// safe for concurrent use by multiple goroutines.
type RNG interface {
	Uniform(p *big.Int) (*big.Int, error)
}

// NewSeededRNG returns a deterministic RNG for reproducible tests. The same
// seed always produces the same sequence of draws for a given sequence of
// moduli. It must never be used in production: an attacker who recovers the
// seed recovers every random subsecret the splitter drew.
func NewSeededRNG(seed int64) RNG {
	return &seededRNG{r: mrand.New(mrand.NewSource(seed))}
}

type seededRNG struct {
	r *mrand.Rand
}

func (s *seededRNG) Uniform(p *big.Int) (*big.Int, error) {
	return rand.Int(s.r, p)
}

// NewCSPRNG returns an RNG backed by crypto/rand, suitable for production
// splits. This is the default a caller should reach for outside of tests.
func NewCSPRNG() RNG {
	return csprng{}
}

type csprng struct{}

func (csprng) Uniform(p *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, p)
}
