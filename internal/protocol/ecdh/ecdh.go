// Package ecdh implements elliptic-curve Diffie-Hellman key agreement
// over a short Weierstrass curve.
package ecdh

import (
	"errors"
	"io"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/weierstrass"
)

// ErrIdentitySecret is returned when the agreed point is the point at
// infinity, which carries no x-coordinate to derive key material from.
// This only happens for degenerate inputs (identity public key, or a
// secret that is a multiple of the peer key's order).
var ErrIdentitySecret = errors.New("ecdh: shared secret is the point at infinity")

// KeyPair holds a party's secret scalar and the matching public point
// sk*G.
type KeyPair struct {
	Private *big.Int
	Public  weierstrass.Point
}

// GenerateKeyPair draws a secret scalar in [1, N) from the given source
// (crypto/rand if nil) and derives the public point.
func GenerateKeyPair(random io.Reader, curve *weierstrass.CurveParams) (*KeyPair, error) {
	sk, err := curve.RandomScalar(random)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		Private: sk,
		Public:  curve.ScalarBaseMul(sk),
	}, nil
}

// SharedSecret returns sk * peer. Both parties arrive at the same point
// because scalar multiplication commutes: a*(b*G) = b*(a*G).
func SharedSecret(sk *big.Int, peer weierstrass.Point, curve *weierstrass.CurveParams) weierstrass.Point {
	return curve.ScalarMul(sk, peer)
}

// SharedSecretBytes runs the agreement and returns the x-coordinate of
// the shared point, left-padded to the curve's byte length (the RFC 5903
// convention). Callers should hash the result before using it as a key.
func SharedSecretBytes(sk *big.Int, peer weierstrass.Point, curve *weierstrass.CurveParams) ([]byte, error) {
	s := SharedSecret(sk, peer, curve)
	if s.IsInfinity() {
		return nil, ErrIdentitySecret
	}
	byteLen := (curve.BitSize + 7) / 8
	return s.X().FillBytes(make([]byte, byteLen)), nil
}
