package modmath

import "math/big"

var two = big.NewInt(2)

// Pow computes base^exp mod modulus by square-and-multiply.
// The base is reduced into [0, modulus) before the loop, so negative
// inputs are handled. modulus must be > 0; exp must be >= 0.
func Pow(base, exp, modulus *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)

	// Walk exp from the least significant bit up. big.Int keeps every
	// intermediate product exact, so the squaring step cannot overflow.
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}
	return result
}

// Inv returns a^(-1) mod p via Fermat's little theorem:
// a^(-1) = a^(p-2) mod p, valid only for prime p and a not ≡ 0 (mod p).
//
// Calling Inv with a zero residue is a programming error, not a
// recoverable condition: every caller in this module excludes the
// degenerate cases (vertical line, vertical tangent, s == 0) before
// dividing. It panics rather than returning a wrong value.
func Inv(a, p *big.Int) *big.Int {
	r := new(big.Int).Mod(a, p)
	if r.Sign() == 0 {
		panic("modmath: inverse of zero residue")
	}
	exp := new(big.Int).Sub(p, two)
	return Pow(r, exp, p)
}

// Norm reduces a into the canonical range [0, p).
func Norm(a, p *big.Int) *big.Int {
	return new(big.Int).Mod(a, p)
}
