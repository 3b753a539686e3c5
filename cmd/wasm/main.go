//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecc/internal/crypto/weierstrass"
	"github.com/smallyu/go-ecc/internal/protocol/ecdh"
	"github.com/smallyu/go-ecc/internal/protocol/ecdsa"
)

// All exposed functions operate over secp256k1 and exchange scalars,
// coordinates and hashes as hex strings.
var curve = weierstrass.Secp256k1()

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"GenerateKeyPair": js.FuncOf(GenerateKeyPair),
		"SharedSecret":    js.FuncOf(SharedSecret),
		"Sign":            js.FuncOf(Sign),
		"Verify":          js.FuncOf(Verify),
	})

	<-c
}

// GenerateKeyPair draws a fresh ECDH/ECDSA key pair.
// Returns: {sk, x, y} (hex strings) or throws.
func GenerateKeyPair(this js.Value, args []js.Value) interface{} {
	kp, err := ecdh.GenerateKeyPair(rand.Reader, curve)
	if err != nil {
		return jsError(err)
	}
	x, y := kp.Public.Coords()
	return map[string]interface{}{
		"sk": kp.Private.Text(16),
		"x":  x.Text(16),
		"y":  y.Text(16),
	}
}

// SharedSecret computes the ECDH secret.
// Arguments: sk, peerX, peerY (hex strings).
// Returns: hex string of the shared x-coordinate, or throws.
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return jsError(fmt.Errorf("expected 3 arguments, got %d", len(args)))
	}
	sk, err := parseHex(args[0].String())
	if err != nil {
		return jsError(err)
	}
	peer, err := parsePoint(args[1].String(), args[2].String())
	if err != nil {
		return jsError(err)
	}

	secret, err := ecdh.SharedSecretBytes(sk, peer, curve)
	if err != nil {
		return jsError(err)
	}
	return hex.EncodeToString(secret)
}

// Sign signs a message hash.
// Arguments: sk, z (hex strings).
// Returns: {r, s} (hex strings) or throws.
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return jsError(fmt.Errorf("expected 2 arguments, got %d", len(args)))
	}
	sk, err := parseHex(args[0].String())
	if err != nil {
		return jsError(err)
	}
	z, err := parseHex(args[1].String())
	if err != nil {
		return jsError(err)
	}

	sig, err := ecdsa.Sign(rand.Reader, sk, z, curve)
	if err != nil {
		return jsError(err)
	}
	return map[string]interface{}{
		"r": sig.R.Text(16),
		"s": sig.S.Text(16),
	}
}

// Verify checks a signature.
// Arguments: z, r, s, pkX, pkY (hex strings).
// Returns: bool.
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 5 {
		return jsError(fmt.Errorf("expected 5 arguments, got %d", len(args)))
	}
	z, err := parseHex(args[0].String())
	if err != nil {
		return jsError(err)
	}
	r, err := parseHex(args[1].String())
	if err != nil {
		return jsError(err)
	}
	s, err := parseHex(args[2].String())
	if err != nil {
		return jsError(err)
	}
	pk, err := parsePoint(args[3].String(), args[4].String())
	if err != nil {
		return jsError(err)
	}

	sig := &ecdsa.Signature{R: r, S: s}
	return sig.Verify(z, pk, curve)
}

func parseHex(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return v, nil
}

func parsePoint(xs, ys string) (weierstrass.Point, error) {
	x, err := parseHex(xs)
	if err != nil {
		return weierstrass.Point{}, err
	}
	y, err := parseHex(ys)
	if err != nil {
		return weierstrass.Point{}, err
	}
	return weierstrass.NewPoint(x, y), nil
}

func jsError(err error) interface{} {
	return js.Global().Get("Error").New(err.Error())
}
