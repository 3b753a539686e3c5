// Package ecdsa implements ECDSA signing and verification over a short
// Weierstrass curve with a designated base point.
package ecdsa

import (
	"errors"
	"io"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/modmath"
	"github.com/smallyu/go-ecc/internal/crypto/weierstrass"
)

// Signature is an ECDSA signature pair.
type Signature struct {
	R *big.Int
	S *big.Int
}

// GenerateKey draws a signing key in [1, N) and returns it with the
// matching public point sk*G.
func GenerateKey(random io.Reader, curve *weierstrass.CurveParams) (*big.Int, weierstrass.Point, error) {
	sk, err := curve.RandomScalar(random)
	if err != nil {
		return nil, weierstrass.Point{}, err
	}
	return sk, curve.ScalarBaseMul(sk), nil
}

// Sign produces a signature over the message hash z with the secret key
// sk. The nonce is drawn fresh from the given source (crypto/rand if
// nil); the rare draws leading to r = 0 or s = 0 are retried.
func Sign(random io.Reader, sk, z *big.Int, curve *weierstrass.CurveParams) (*Signature, error) {
	if sk == nil || z == nil {
		return nil, errors.New("ecdsa: secret key and hash cannot be nil")
	}

	n := curve.N
	e := new(big.Int).Mod(z, n)

	for {
		k, err := curve.RandomScalar(random)
		if err != nil {
			return nil, err
		}

		// r = (k*G).x mod n
		r := curve.ScalarBaseMul(k).X()
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}

		// s = k^(-1) * (z + r*sk) mod n
		s := new(big.Int).Mul(r, sk)
		s.Add(s, e)
		s.Mul(s, modmath.Inv(k, n))
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify checks the signature against the message hash z and the public
// key pk, using the curve's base point and order.
//
// Malformed signatures (r or s outside [1, n)) and failed verification
// are both reported as false; the caller cannot distinguish them, on
// purpose.
func (sig *Signature) Verify(z *big.Int, pk weierstrass.Point, curve *weierstrass.CurveParams) bool {
	if sig == nil || sig.R == nil || sig.S == nil || z == nil {
		return false
	}

	n := curve.N
	r, s := sig.R, sig.S
	if r.Sign() <= 0 || s.Sign() <= 0 || r.Cmp(n) >= 0 || s.Cmp(n) >= 0 {
		return false
	}

	// w = s^(-1); u1 = z*w; u2 = r*w
	w := modmath.Inv(s, n)
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)

	// R = u1*G + u2*pk
	R := curve.Add(curve.ScalarBaseMul(u1), curve.ScalarMul(u2, pk))
	if R.IsInfinity() {
		// No r in [1, n) can be derived from the identity.
		return false
	}

	rx := R.X()
	rx.Mod(rx, n)
	return rx.Cmp(r) == 0
}

// HashToInt converts a hash digest to an integer the way ECDSA
// prescribes: take the leftmost bits of the digest, up to the bit length
// of the group order.
func HashToInt(hash []byte, curve *weierstrass.CurveParams) *big.Int {
	orderBits := curve.N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}

	ret := new(big.Int).SetBytes(hash)
	if excess := len(hash)*8 - orderBits; excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
