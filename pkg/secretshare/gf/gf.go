package gf

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotInvertible indicates that Inv was called on a value sharing a
// non-trivial factor with the modulus.
var ErrNotInvertible = errors.New("gf: value is not invertible mod p")

// Field is a modulus p together with the arithmetic operations of Z/pZ.
// A zero-value Field is invalid; use New.
type Field struct {
	p *big.Int
}

// New returns a Field for the given modulus. p must be positive.
func New(p *big.Int) (Field, error) {
	if p == nil || p.Sign() <= 0 {
		return Field{}, fmt.Errorf("gf: modulus must be positive, got %v", p)
	}
	return Field{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of the field's modulus.
func (f Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Reduce returns x reduced into [0, p).
func (f Field) Reduce(x *big.Int) *big.Int {
	r := new(big.Int).Mod(x, f.p)
	return r
}

// Add returns (a + b) mod p.
func (f Field) Add(a, b *big.Int) *big.Int {
	return f.Reduce(new(big.Int).Add(a, b))
}

// Sub returns (a - b) mod p.
func (f Field) Sub(a, b *big.Int) *big.Int {
	return f.Reduce(new(big.Int).Sub(a, b))
}

// Mul returns (a * b) mod p.
func (f Field) Mul(a, b *big.Int) *big.Int {
	return f.Reduce(new(big.Int).Mul(a, b))
}

// Neg returns (-a) mod p.
func (f Field) Neg(a *big.Int) *big.Int {
	return f.Reduce(new(big.Int).Neg(a))
}

// Inv returns the modular inverse of x via the extended Euclidean algorithm.
// It returns ErrNotInvertible when gcd(x, p) != 1; on a prime p that arises
// only when x ≡ 0 (mod p).
func (f Field) Inv(x *big.Int) (*big.Int, error) {
	x = f.Reduce(x)
	g := new(big.Int)
	inv := new(big.Int)
	g.GCD(inv, nil, x, f.p)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNotInvertible
	}
	return f.Reduce(inv), nil
}

// Div returns (a * inv(b)) mod p.
func (f Field) Div(a, b *big.Int) (*big.Int, error) {
	bInv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, bInv), nil
}
