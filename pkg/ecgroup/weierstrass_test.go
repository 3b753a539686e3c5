package ecgroup

import (
	"math/big"
	"testing"
)

func TestNewKnownCurve(t *testing.T) {
	g, err := New("secp256k1")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Name() != "secp256k1" {
		t.Errorf("expected secp256k1, got %s", g.Name())
	}

	// Case-insensitive lookup
	if _, err := New("SECP256K1"); err != nil {
		t.Errorf("uppercase lookup failed: %v", err)
	}
}

func TestNewUnknownCurve(t *testing.T) {
	if _, err := New("curve25519"); err != ErrUnknownCurve {
		t.Errorf("expected ErrUnknownCurve, got %v", err)
	}
}

func TestNewFromParamsMissing(t *testing.T) {
	one := big.NewInt(1)
	if _, err := NewFromParams("bad", one, one, nil, one, one, one); err != ErrMissingParams {
		t.Errorf("expected ErrMissingParams, got %v", err)
	}
}

// toyGroup is y² = x³ + 7 over GF(97); (1, 28) generates the whole
// group of order 79.
func toyGroup(t *testing.T) Group {
	t.Helper()
	g, err := NewFromParams("toy-97",
		big.NewInt(0), big.NewInt(7), big.NewInt(97),
		big.NewInt(1), big.NewInt(28), big.NewInt(79))
	if err != nil {
		t.Fatalf("NewFromParams failed: %v", err)
	}
	return g
}

func TestGroupAxioms(t *testing.T) {
	g := toyGroup(t)
	gen := g.Generator()

	// Identity is two-sided neutral
	if !g.Add(g.Identity(), gen).Equal(gen) {
		t.Error("identity + G != G")
	}
	if !g.Add(gen, g.Identity()).Equal(gen) {
		t.Error("G + identity != G")
	}

	// Commutativity
	p := g.Scale(big.NewInt(2), gen)
	q := g.Scale(big.NewInt(3), gen)
	if !g.Add(p, q).Equal(g.Add(q, p)) {
		t.Error("addition is not commutative")
	}

	// Associativity
	r := g.Scale(big.NewInt(5), gen)
	if !g.Add(g.Add(p, q), r).Equal(g.Add(p, g.Add(q, r))) {
		t.Error("addition is not associative")
	}

	// Scale is iterated addition
	if !g.Add(g.Add(gen, gen), gen).Equal(g.Scale(big.NewInt(3), gen)) {
		t.Error("3G != G+G+G")
	}

	// The generator has the advertised order
	if !g.Scale(g.Order(), gen).IsIdentity() {
		t.Error("Order()*G is not the identity")
	}
}

func TestElementCoords(t *testing.T) {
	g := toyGroup(t)

	e := g.Element(big.NewInt(1), big.NewInt(28))
	if !e.Equal(g.Generator()) {
		t.Error("Element(1, 28) != Generator()")
	}

	// Unreduced coordinates are normalized
	e2 := g.Element(big.NewInt(1+97), big.NewInt(28-97))
	if !e2.Equal(e) {
		t.Error("unreduced coordinates not normalized")
	}

	x, y := e2.Coords()
	if x.Cmp(big.NewInt(1)) != 0 || y.Cmp(big.NewInt(28)) != 0 {
		t.Errorf("unexpected coords (%s, %s)", x, y)
	}
}

func TestNewScalar(t *testing.T) {
	g := toyGroup(t)

	for i := 0; i < 16; i++ {
		k, err := g.NewScalar()
		if err != nil {
			t.Fatalf("NewScalar failed: %v", err)
		}
		if k.Sign() <= 0 || k.Cmp(g.Order()) >= 0 {
			t.Errorf("scalar %s out of range [1, %s)", k, g.Order())
		}
	}
}
