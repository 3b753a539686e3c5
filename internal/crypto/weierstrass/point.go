package weierstrass

import (
	"fmt"
	"math/big"
)

// Point is a point on a short Weierstrass curve: either the point at
// infinity (the group identity) or an affine (x, y) coordinate pair.
// The zero value is not valid; use Infinity or NewPoint.
//
// Points are immutable values. Every point returned by the arithmetic in
// this package carries coordinates reduced into [0, p), so Equal is plain
// integer comparison. Caller-supplied points may carry unreduced
// coordinates; the arithmetic normalizes them on entry.
type Point struct {
	x, y *big.Int
	inf  bool
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// NewPoint returns the affine point (x, y). The coordinates are copied,
// not aliased. The point is not checked against any curve equation.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// NewPointInt64 returns the affine point (x, y) from int64 coordinates.
// Convenient for small test curves.
func NewPointInt64(x, y int64) Point {
	return Point{x: big.NewInt(x), y: big.NewInt(y)}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Coords returns copies of the affine coordinates. It panics if p is the
// point at infinity, which has none.
func (p Point) Coords() (x, y *big.Int) {
	if p.inf {
		panic("weierstrass: point at infinity has no coordinates")
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y)
}

// X returns a copy of the x-coordinate. It panics for the point at
// infinity.
func (p Point) X() *big.Int {
	if p.inf {
		panic("weierstrass: point at infinity has no coordinates")
	}
	return new(big.Int).Set(p.x)
}

// Equal reports whether two points are the same group element. Both sides
// are expected in canonical form, which holds for every point this
// package returns.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.inf {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
