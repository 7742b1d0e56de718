// Copyright 2025 The datacore Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pubkey verifies RSA signatures against a public key given as
// hex exponent and modulus strings.
//
// The package is a thin binding over crypto/rsa and is deliberately
// decoupled from the array container: it consumes plain byte slices.
package pubkey

import (
	"crypto"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"
)

// Verification errors.
var (
	// ErrInvalidKey is returned when the exponent or modulus is not a
	// positive hex integer, or the exponent does not fit an int.
	ErrInvalidKey = errors.New("pubkey: invalid key material")
)

// PublicKey wraps an RSA public key built from hex exponent and
// modulus strings and verifies PKCS#1 v1.5 signatures over SHA-1
// digests.
type PublicKey struct {
	key *rsa.PublicKey
}

// New constructs a PublicKey from the hex-encoded public exponent and
// modulus.
func New(exponentHex, modulusHex string) (*PublicKey, error) {
	e, err := parseHex("exponent", exponentHex)
	if err != nil {
		return nil, err
	}
	n, err := parseHex("modulus", modulusHex)
	if err != nil {
		return nil, err
	}
	if !e.IsInt64() || e.Int64() > int64(maxInt) {
		return nil, fmt.Errorf("%w: exponent %s too large", ErrInvalidKey, exponentHex)
	}

	return &PublicKey{key: &rsa.PublicKey{N: n, E: int(e.Int64())}}, nil
}

// VerifyDigest reports whether signature is a valid PKCS#1 v1.5 RSA
// signature over the given SHA-1 message digest.
func (pk *PublicKey) VerifyDigest(digest, signature []byte) bool {
	return rsa.VerifyPKCS1v15(pk.key, crypto.SHA1, digest, signature) == nil
}

const maxInt = int(^uint(0) >> 1)

// parseHex parses a positive hex integer.
func parseHex(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q is not a hex integer", ErrInvalidKey, field, s)
	}
	if v.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive", ErrInvalidKey, field)
	}
	return v, nil
}
