// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package viewingkey - bearer credentials for authenticated queries
//
// a viewing key is handed to a caller once in cleartext; only its
// SHA-256 hash is kept, keyed by the caller's canonical address.
// checking is constant time, and an address without a stored hash
// burns the same time as one with a wrong key.
package viewingkey

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"github.com/gumball-inc/gumballd/random"
)

// Size - width in bytes of a stored key hash
const Size = sha256.Size

// keys are recognisable at a glance in wallet exports
const prefix = "api_key_"

// Key - cleartext viewing key
type Key string

// New - derive a fresh key from a seeded random source
//
// the source must already be keyed with the stored seed and the
// caller's entropy so two calls can never coincide
func New(source *random.Source) Key {
	digest := sha256.Sum256(source.RandBytes())
	return Key(prefix + base64.StdEncoding.EncodeToString(digest[:]))
}

// Hash - fixed width storage form of a key
func (key Key) Hash() []byte {
	digest := sha256.Sum256([]byte(key))
	return digest[:]
}

// Check - constant time comparison against a stored hash
//
// a nil or truncated stored hash is replaced by zero bytes so the
// comparison costs the same whether or not the address ever set a key
func (key Key) Check(storedHash []byte) bool {
	expected := make([]byte, Size)
	if Size == len(storedHash) {
		copy(expected, storedHash)
	}
	digest := sha256.Sum256([]byte(key))
	return 1 == subtle.ConstantTimeCompare(digest[:], expected)
}
