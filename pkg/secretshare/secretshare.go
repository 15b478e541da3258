package secretshare

import (
	"context"
	"math/big"

	"github.com/coinbase/go-secretshare/pkg/secretshare/formula"
	"github.com/coinbase/go-secretshare/pkg/secretshare/gf"
	"github.com/coinbase/go-secretshare/pkg/secretshare/logging"
	"github.com/coinbase/go-secretshare/pkg/secretshare/share"
)

// noopLogger discards everything; it is the default so Configuration never
// needs a nil check before logging.
type noopLogger struct{}

func (noopLogger) Debug(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, string, ...any) {}
func (l noopLogger) With(...any) logging.Logger          { return l }

// Configuration binds a prime modulus to a parsed, indexed access formula.
// A Configuration is immutable once built and safe for concurrent use by
// multiple goroutines, since every operation it exposes constructs its own
// Splitter/Restorer rather than sharing mutable state.
type Configuration struct {
	modulus *big.Int
	text    string
	field   gf.Field
	indexed *formula.Node
	names   []string
}

// New parses formulaText and binds it to modulus, which must be a positive
// integer (the package does not verify primality; see the gf package doc for
// the consequences of a composite modulus).
func New(modulus *big.Int, formulaText string) (*Configuration, error) {
	field, err := gf.New(modulus)
	if err != nil {
		return nil, remapError("New", err)
	}
	raw, err := formula.Parse(formulaText)
	if err != nil {
		return nil, remapError("New", err)
	}
	indexed, names := formula.Index(raw)
	return &Configuration{
		modulus: field.Modulus(),
		text:    formulaText,
		field:   field,
		indexed: indexed,
		names:   names,
	}, nil
}

// Modulus returns a copy of the configuration's prime modulus.
func (c *Configuration) Modulus() *big.Int {
	return new(big.Int).Set(c.modulus)
}

// Formula returns the formula text the configuration was built from.
func (c *Configuration) Formula() string {
	return c.text
}

// Names returns the distinct participant names referenced by the
// configuration's formula, in first-occurrence left-to-right order.
func (c *Configuration) Names() []string {
	cp := make([]string, len(c.names))
	copy(cp, c.names)
	return cp
}

// NamesSet returns the same participants as Names, as a set, for callers
// that only need membership tests.
func (c *Configuration) NamesSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.names))
	for _, n := range c.names {
		set[n] = struct{}{}
	}
	return set
}

// IsModifiable reports whether the configuration's top-level gate is a
// THRESHOLD whose children are all plain variables — the shape Modify can
// reshape by adding or removing participants without the information-leak
// caveats that apply to modifying nested AND/OR/THRESHOLD gates. Changing k
// is not covered: Modify then fails with ErrCannotModify unless the retained
// shares already determine a polynomial of degree below the new k whose
// value at 0 is the secret.
func (c *Configuration) IsModifiable() bool {
	if c.indexed.Kind() != formula.KindThreshold {
		return false
	}
	for _, child := range c.indexed.Children() {
		if child.Kind() != formula.KindVar {
			return false
		}
	}
	return true
}

// options holds the optional knobs Split and Modify accept.
type options struct {
	rng    share.RNG
	logger logging.Logger
}

// Option configures a Split or Modify call.
type Option func(*options)

// WithRNG overrides the random source used for fresh subsecret draws.
// Without it, Split and Modify default to a cryptographically secure RNG;
// tests that need reproducible output should pass share.NewSeededRNG(seed).
func WithRNG(rng share.RNG) Option {
	return func(o *options) { o.rng = rng }
}

// WithLogger attaches a Logger to observe the call. No secret, share value,
// or RNG seed is ever passed to it; see logging.Redacted.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func resolveOptions(opts []Option) options {
	o := options{rng: share.NewCSPRNG(), logger: noopLogger{}}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Split lowers secret into one Part per participant name such that any
// subset of parts satisfying the configuration's formula reconstructs it via
// Restore, and any subset that does not learns nothing about it.
func (c *Configuration) Split(secret *big.Int, opts ...Option) ([]share.Part, error) {
	o := resolveOptions(opts)
	ctx := context.Background()
	o.logger.Info(ctx, "split starting", "formula", c.text, logging.Redacted("secret"))

	splitter := share.NewSplitter(c.field, o.rng, nil)
	if err := splitter.Split(secret, c.indexed); err != nil {
		o.logger.Error(ctx, "split failed", "err", err)
		return nil, remapError("Split", err)
	}
	parts, err := share.Group(splitter.Assigned())
	if err != nil {
		o.logger.Error(ctx, "split failed", "err", err)
		return nil, remapError("Split", err)
	}
	o.logger.Info(ctx, "split complete", "parts", len(parts))
	return parts, nil
}

// Restore attempts to recombine parts into the secret they encode. The
// second return value is false when parts do not satisfy the configuration's
// formula; callers that need the error form can use RestoreStrict.
func (c *Configuration) Restore(parts []share.Part) (*big.Int, bool) {
	assigned := share.Ungroup(parts)
	restorer := share.NewRestorer(c.field, assigned)
	return restorer.Restore(c.indexed)
}

// RestoreStrict is Restore with an error instead of a bool, for callers that
// want to propagate ErrCannotRestore through an error-returning call chain.
func (c *Configuration) RestoreStrict(parts []share.Part) (*big.Int, error) {
	secret, ok := c.Restore(parts)
	if !ok {
		return nil, remapError("Restore", ErrCannotRestore)
	}
	return secret, nil
}

// Modify reshapes parts, produced under c, into a new set of parts valid
// under next, without changing the secret they encode. Shares for
// participant occurrences common to both formulas are preserved verbatim
// wherever the new formula's shape permits it; everything else is freshly
// randomized. It fails with ErrCannotRestore if parts do not satisfy c, and
// with ErrCannotModify if next's shape is incompatible with the secret
// already committed to by the retained shares (for example, shrinking an AND
// gate below the sum its surviving children already fix).
//
// Removing a participant or an OR branch does not revoke anything: the
// returned parts still carry the unchanged shares of participants that next
// no longer names, and any set of old shares that satisfied c still
// restores the secret under c.
func (c *Configuration) Modify(next *Configuration, parts []share.Part, opts ...Option) ([]share.Part, error) {
	o := resolveOptions(opts)
	ctx := context.Background()
	o.logger.Info(ctx, "modify starting", "from", c.text, "to", next.text)

	secret, err := c.RestoreStrict(parts)
	if err != nil {
		o.logger.Error(ctx, "modify failed: source parts did not restore", "err", err)
		return nil, err
	}

	seed := share.Ungroup(parts)
	// Keys of next that no part supplies start out as unassigned markers.
	for name, count := range formula.OccurrenceCounts(next.indexed) {
		for j := 1; j <= count; j++ {
			key := formula.Key{Name: name, Occurrence: j}
			if _, ok := seed[key]; !ok {
				seed[key] = share.Undefined()
			}
		}
	}
	splitter := share.NewSplitter(next.field, o.rng, seed)
	if err := splitter.Split(secret, next.indexed); err != nil {
		o.logger.Error(ctx, "modify failed", "err", err)
		return nil, remapError("Modify", err)
	}
	out, err := share.Group(splitter.Assigned())
	if err != nil {
		o.logger.Error(ctx, "modify failed", "err", err)
		return nil, remapError("Modify", err)
	}
	o.logger.Info(ctx, "modify complete", "parts", len(out))
	return out, nil
}
