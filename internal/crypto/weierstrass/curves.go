package weierstrass

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Secp256k1 returns the parameters of the secp256k1 curve
// (y² = x³ + 7). The returned value is fresh on every call, so callers
// may hold it without worrying about shared mutation.
func Secp256k1() *CurveParams {
	c := &CurveParams{
		Name:    "secp256k1",
		BitSize: 256,
		A:       big.NewInt(0),
		B:       big.NewInt(7),
	}
	c.P, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	c.N, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	c.Gx, _ = new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	c.Gy, _ = new(big.Int).SetString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)
	return c
}

// RandomScalar draws a uniform scalar in [1, N) from the given source,
// retrying on the (astronomically unlikely) zero draw.
func (c *CurveParams) RandomScalar(random io.Reader) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}
	for {
		k, err := rand.Int(random, c.N)
		if err != nil {
			return nil, err
		}
		if k.Sign() != 0 {
			return k, nil
		}
	}
}
