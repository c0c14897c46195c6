// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - deterministic stream used to pick winning tokens
//
// every draw is keyed by the stored seed together with entropy from
// the incoming message, so a replayed message against the same stored
// state selects the same winner on every node
package random

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Source - a keyed ChaCha20 stream
//
// values are consumed from the key stream in order: eight bytes for
// each draw, thirty two bytes for the replacement seed
type Source struct {
	cipher *chacha20.Cipher
}

// NewSource - key a stream from the stored seed and extended entropy
func NewSource(seed []byte, entropy []byte) (*Source, error) {
	h := sha256.New()
	h.Write(seed)
	h.Write(entropy)
	key := h.Sum(nil)

	cipher, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if nil != err {
		return nil, err
	}
	return &Source{cipher: cipher}, nil
}

// NextUint64 - little endian value of the next eight key stream bytes
func (s *Source) NextUint64() uint64 {
	buffer := make([]byte, 8)
	s.cipher.XORKeyStream(buffer, buffer)
	return binary.LittleEndian.Uint64(buffer)
}

// RandBytes - the next thirty two key stream bytes
//
// used as the stored seed for the following message
func (s *Source) RandBytes() []byte {
	buffer := make([]byte, 32)
	s.cipher.XORKeyStream(buffer, buffer)
	return buffer
}

// ExtendEntropy - mix block height, block time, the transaction index
// when the ledger provides one and the canonical sender into the
// caller supplied entropy
func ExtendEntropy(height uint64, blockTime uint64, txIndex *uint32, sender []byte, entropy []byte) []byte {
	extended := make([]byte, 0, 20+len(sender)+len(entropy))

	eight := make([]byte, 8)
	binary.BigEndian.PutUint64(eight, height)
	extended = append(extended, eight...)

	binary.BigEndian.PutUint64(eight, blockTime)
	extended = append(extended, eight...)

	if nil != txIndex {
		four := make([]byte, 4)
		binary.BigEndian.PutUint32(four, *txIndex)
		extended = append(extended, four...)
	}

	extended = append(extended, sender...)
	extended = append(extended, entropy...)
	return extended
}

// NewSeed - derive the initial stored seed from submitted entropy
//
// the hash covers the base64 text of the entropy, not the raw bytes
func NewSeed(entropy []byte) []byte {
	sum := sha256.Sum256([]byte(base64.StdEncoding.EncodeToString(entropy)))
	return sum[:]
}
