// Package gf implements arithmetic in Z/pZ for an arbitrary-precision
// modulus p.
//
// Values are held as *big.Int, always reduced into [0, p). The package does
// not assume p is prime: Add, Sub, Mul, and Neg are defined for any modulus,
// but Inv (modular inverse via the extended Euclidean algorithm) fails with
// ErrNotInvertible whenever gcd(x, p) != 1. Splitting and restoring secrets
// is only guaranteed correct when p is prime; see the share package.
package gf
