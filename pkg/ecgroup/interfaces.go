package ecgroup

import "math/big"

// Element is an opaque element of a group of curve points.
type Element interface {
	// IsIdentity reports whether the element is the group identity
	// (the point at infinity).
	IsIdentity() bool

	// Equal reports whether two elements are the same group element.
	Equal(Element) bool

	// Coords returns the affine coordinates of the element. It panics
	// for the identity, which has none.
	Coords() (x, y *big.Int)
}

// Group is an abelian group of points on an elliptic curve. Downstream
// exercises treat it as an opaque operations interface satisfying the
// usual group axioms: Add is commutative and associative, Identity is
// the two-sided neutral element, and Scale(k, p) is k-fold addition.
//
// Implementations are stateless over immutable parameters, so a Group
// is safe for concurrent use.
type Group interface {
	// Name returns the name of the underlying curve.
	Name() string

	// Identity returns the group identity.
	Identity() Element

	// Generator returns the designated base point G.
	Generator() Element

	// Order returns the order of the base point.
	Order() *big.Int

	// Element returns the group element with the given affine
	// coordinates. The coordinates are not checked against the curve
	// equation.
	Element(x, y *big.Int) Element

	// Add returns p + q.
	Add(p, q Element) Element

	// Scale returns k*p.
	Scale(k *big.Int, p Element) Element

	// NewScalar draws a uniform random scalar in [1, Order).
	NewScalar() (*big.Int, error)
}
