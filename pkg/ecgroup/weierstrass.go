package ecgroup

import (
	"math/big"
	"strings"

	"github.com/smallyu/go-ecc/internal/crypto/weierstrass"
)

// curveGroup adapts the affine Weierstrass engine to the Group
// interface.
type curveGroup struct {
	params *weierstrass.CurveParams
}

// element wraps an engine point.
type element struct {
	p weierstrass.Point
}

// New returns the group of points on the named curve. "secp256k1" is
// the only name registered today.
func New(name string) (Group, error) {
	switch strings.ToLower(name) {
	case "secp256k1":
		return &curveGroup{params: weierstrass.Secp256k1()}, nil
	default:
		return nil, ErrUnknownCurve
	}
}

// NewFromParams returns the group of points on y² = x³ + ax + b over
// GF(p) with base point (gx, gy) of order n. No parameter validation is
// performed beyond presence; p is trusted to be prime and the base
// point to lie on the curve.
func NewFromParams(name string, a, b, p, gx, gy, n *big.Int) (Group, error) {
	for _, v := range []*big.Int{a, b, p, gx, gy, n} {
		if v == nil {
			return nil, ErrMissingParams
		}
	}
	return &curveGroup{params: &weierstrass.CurveParams{
		Name:    name,
		BitSize: p.BitLen(),
		A:       new(big.Int).Set(a),
		B:       new(big.Int).Set(b),
		P:       new(big.Int).Set(p),
		Gx:      new(big.Int).Set(gx),
		Gy:      new(big.Int).Set(gy),
		N:       new(big.Int).Set(n),
	}}, nil
}

func (g *curveGroup) Name() string {
	return g.params.Name
}

func (g *curveGroup) Identity() Element {
	return &element{p: weierstrass.Infinity()}
}

func (g *curveGroup) Generator() Element {
	return &element{p: g.params.Generator()}
}

func (g *curveGroup) Order() *big.Int {
	return new(big.Int).Set(g.params.N)
}

func (g *curveGroup) Element(x, y *big.Int) Element {
	return &element{p: g.params.Normalize(weierstrass.NewPoint(x, y))}
}

func (g *curveGroup) Add(p, q Element) Element {
	return &element{p: g.params.Add(unwrap(p), unwrap(q))}
}

func (g *curveGroup) Scale(k *big.Int, p Element) Element {
	return &element{p: g.params.ScalarMul(k, unwrap(p))}
}

func (g *curveGroup) NewScalar() (*big.Int, error) {
	return g.params.RandomScalar(nil)
}

func (e *element) IsIdentity() bool {
	return e.p.IsInfinity()
}

func (e *element) Equal(other Element) bool {
	return e.p.Equal(unwrap(other))
}

func (e *element) Coords() (x, y *big.Int) {
	return e.p.Coords()
}

func unwrap(e Element) weierstrass.Point {
	w, ok := e.(*element)
	if !ok {
		panic("ecgroup: element from a different group implementation")
	}
	return w.p
}
