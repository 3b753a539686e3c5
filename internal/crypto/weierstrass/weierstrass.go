// Package weierstrass implements the group law on short Weierstrass
// curves y² = x³ + ax + b over a prime field GF(p), in affine
// coordinates.
//
// The implementation is generic over the curve parameters and makes no
// attempt at constant-time execution; it is meant for protocol work over
// arbitrary curves, not for handling long-lived secrets on a shared
// machine.
package weierstrass

import (
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/modmath"
)

// CurveParams describes a curve y² = x³ + ax + b (mod p). P is assumed
// prime; no primality or base-point validation is performed.
//
// Gx, Gy and N describe a base point and its order for curves used in
// protocols; the group law itself only reads A, B and P. A CurveParams
// value is never mutated after construction, so it is safe to share
// across goroutines.
type CurveParams struct {
	P       *big.Int // order of the underlying field
	A       *big.Int // linear coefficient of the curve equation
	B       *big.Int // constant of the curve equation
	Gx, Gy  *big.Int // (x, y) of the base point, if the curve carries one
	N       *big.Int // order of the base point
	BitSize int      // size of the underlying field in bits
	Name    string   // canonical name of the curve
}

// Generator returns the curve's base point G.
func (c *CurveParams) Generator() Point {
	return NewPoint(c.Gx, c.Gy)
}

// Polynomial evaluates x³ + ax + b mod p.
func (c *CurveParams) Polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, c.A) // x² + a
	x3.Mul(x3, x)   // x³ + ax
	x3.Add(x3, c.B) // x³ + ax + b
	return x3.Mod(x3, c.P)
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is the group identity and counts as on the curve.
func (c *CurveParams) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	x := modmath.Norm(p.x, c.P)
	y := modmath.Norm(p.y, c.P)

	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, c.P)
	return c.Polynomial(x).Cmp(y2) == 0
}

// Normalize returns p with both coordinates reduced into [0, p).
func (c *CurveParams) Normalize(p Point) Point {
	if p.inf {
		return Infinity()
	}
	return Point{
		x: modmath.Norm(p.x, c.P),
		y: modmath.Norm(p.y, c.P),
	}
}

// Neg returns -p, the reflection of p across the x-axis.
func (c *CurveParams) Neg(p Point) Point {
	if p.inf {
		return Infinity()
	}
	ny := new(big.Int).Neg(p.y)
	return Point{
		x: modmath.Norm(p.x, c.P),
		y: ny.Mod(ny, c.P),
	}
}

// Add returns p1 + p2 under the curve group law.
//
// Case order matters: the chord formula at the bottom divides by
// (x2 - x1), which is only safe once the identity, equal-point and
// vertical-line cases have been excluded.
func (c *CurveParams) Add(p1, p2 Point) Point {
	if p1.inf {
		return c.Normalize(p2)
	}
	if p2.inf {
		return c.Normalize(p1)
	}

	x1 := modmath.Norm(p1.x, c.P)
	y1 := modmath.Norm(p1.y, c.P)
	x2 := modmath.Norm(p2.x, c.P)
	y2 := modmath.Norm(p2.y, c.P)

	if x1.Cmp(x2) == 0 {
		if y1.Cmp(y2) == 0 {
			return c.Double(p1)
		}
		ySum := new(big.Int).Add(y1, y2)
		ySum.Mod(ySum, c.P)
		if ySum.Sign() == 0 {
			// Vertical line: p2 = -p1.
			return Infinity()
		}
		// Equal x with unrelated y values cannot happen for two points
		// satisfying the curve equation; the inversion below faults.
	}

	// λ = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(y2, y1)
	den := new(big.Int).Sub(x2, x1)
	lam := num.Mul(num, modmath.Inv(den, c.P))
	lam.Mod(lam, c.P)

	// x3 = λ² - x1 - x2
	x3 := new(big.Int).Mul(lam, lam)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, c.P)

	// y3 = λ(x1 - x3) - y1
	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lam)
	y3.Sub(y3, y1)
	y3.Mod(y3, c.P)

	return Point{x: x3, y: y3}
}

// Double returns 2p under the curve group law. A point with y ≡ 0 is its
// own inverse (the tangent there is vertical), so its double is the
// identity.
func (c *CurveParams) Double(p Point) Point {
	if p.inf {
		return Infinity()
	}

	x := modmath.Norm(p.x, c.P)
	y := modmath.Norm(p.y, c.P)
	if y.Sign() == 0 {
		return Infinity()
	}

	// λ = (3x² + a) / (2y)
	num := new(big.Int).Mul(x, x)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.A)
	den := new(big.Int).Lsh(y, 1)
	lam := num.Mul(num, modmath.Inv(den, c.P))
	lam.Mod(lam, c.P)

	// x3 = λ² - 2x
	x3 := new(big.Int).Mul(lam, lam)
	x3.Sub(x3, x)
	x3.Sub(x3, x)
	x3.Mod(x3, c.P)

	// y3 = λ(x - x3) - y
	y3 := new(big.Int).Sub(x, x3)
	y3.Mul(y3, lam)
	y3.Sub(y3, y)
	y3.Mod(y3, c.P)

	return Point{x: x3, y: y3}
}

// ScalarMul returns k*p computed by double-and-add, walking the bits of
// k from least to most significant. k = 0 yields the identity; a
// negative k is taken as |k| * (-p).
func (c *CurveParams) ScalarMul(k *big.Int, p Point) Point {
	if k.Sign() < 0 {
		return c.ScalarMul(new(big.Int).Neg(k), c.Neg(p))
	}

	acc := Infinity()
	run := c.Normalize(p)
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc = c.Add(acc, run)
		}
		run = c.Double(run)
	}
	return acc
}

// ScalarBaseMul returns k*G for the curve's base point.
func (c *CurveParams) ScalarBaseMul(k *big.Int) Point {
	return c.ScalarMul(k, c.Generator())
}
