// Package secretshare implements secret sharing over general monotone
// access structures: given a secret and an access formula built from named
// variables combined with AND, OR, and k-of-n THRESHOLD operators, it
// produces shares such that any subset satisfying the formula reconstructs
// the secret, and any subset that does not learns nothing about it.
//
// # Building a Configuration
//
// A Configuration binds a prime modulus and formula text:
//
//	cfg, err := secretshare.New(big.NewInt(101), "T2(alice, bob, carol)")
//	parts, err := cfg.Split(big.NewInt(42), secretshare.WithRNG(share.NewCSPRNG()))
//	secret, ok := cfg.Restore(parts)
//
// # Modification
//
// Modify produces a new share set for a new formula that still encodes the
// same secret and leaves shares for common participants untouched wherever
// the new formula's shape allows it:
//
//	bigger, err := secretshare.New(big.NewInt(101), "T2(alice, bob, carol, dave)")
//	parts2, err := cfg.Modify(bigger, parts)
//
// # Scope
//
// This package has no CLI, no file I/O, no key management, and no
// transport integration — see the wire.go helpers for the one external
// encoding it does own (URL-safe base64 of a small JSON envelope).
package secretshare
