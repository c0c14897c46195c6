// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package permit - offline signed query authorizations
//
// a permit is a one-shot credential: the account holder signs the
// permit parameters once, off-chain, and any query carrying the permit
// proves the signer's identity without a stored viewing key.  permits
// are valid until the signer revokes the permit name on-chain.
package permit

import (
	"encoding/json"

	"golang.org/x/crypto/ed25519"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/storage"
)

// Permission - a query scope a permit may grant
type Permission string

// scopes a signer can grant; gumball queries require Owner
const (
	Allowance Permission = "allowance"
	Balance   Permission = "balance"
	History   Permission = "history"
	Owner     Permission = "owner"
)

// Params - the signed body of a permit
//
// audiences lists the display addresses of every contract the permit
// applies to
type Params struct {
	Name        string       `json:"permit_name"`
	Audiences   []string     `json:"allowed_contracts"`
	Permissions []Permission `json:"permissions"`
}

// Authorization - the signer's public key and the signature over the
// canonical JSON encoding of Params
type Authorization struct {
	PublicKey *account.Account  `json:"public_key"` // base58
	Signature account.Signature `json:"signature"`  // hex
}

// Permit - a complete signed permit as supplied with a query
type Permit struct {
	Params    Params        `json:"params"`
	Signature Authorization `json:"signature"`
}

// registry rows only record presence
var present = []byte{0x01}

// SignedBytes - the exact bytes a signer commits to
func (permit Permit) SignedBytes() ([]byte, error) {
	return json.Marshal(permit.Params)
}

// HasPermission - check whether the permit grants a scope
func (permit Permit) HasPermission(required Permission) bool {
	for _, permission := range permit.Params.Permissions {
		if required == permission {
			return true
		}
	}
	return false
}

// revocations are stored per signer so one holder cannot void another
// holder's permit of the same name
func revocationKey(signer []byte, name string) []byte {
	key := make([]byte, 0, len(signer)+1+len(name))
	key = append(key, signer...)
	key = append(key, 0x00)
	key = append(key, name...)
	return key
}

// Validate - verify a permit against committed state
//
// checks that the permit names this contract as an audience, that the
// signature matches the canonical parameter encoding, and that the
// signer has not revoked the permit name.  returns the verified signer
// account.
func Validate(permits storage.Handle, permit *Permit, selfAddress string) (*account.Account, error) {
	found := false
	for _, audience := range permit.Params.Audiences {
		if selfAddress == audience {
			found = true
			break
		}
	}
	if !found {
		return nil, fault.PermitNotForThisContract
	}

	signer := permit.Signature.PublicKey
	if nil == signer || signer.IsZero() {
		return nil, fault.AddressIsNil
	}

	message, err := permit.SignedBytes()
	if nil != err {
		return nil, err
	}
	err = signer.CheckSignature(message, permit.Signature.Signature)
	if nil != err {
		return nil, err
	}

	if permits.Has(revocationKey(signer.Bytes(), permit.Params.Name)) {
		return nil, fault.PermitRevoked
	}

	return signer, nil
}

// Revoke - void every outstanding permit carrying this name and signed
// by this account; revoking an unknown name is a no-op that still
// succeeds
func Revoke(trx storage.Transaction, permits *storage.PoolHandle, signer []byte, name string) {
	trx.Put(permits, revocationKey(signer, name), present)
}

// IsRevoked - revocation test inside a transaction
func IsRevoked(trx storage.Transaction, permits *storage.PoolHandle, signer []byte, name string) bool {
	return trx.Has(permits, revocationKey(signer, name))
}

// Sign - create the authorization block for a set of parameters
//
// only used by the command line client and tests; contracts never hold
// private keys
func Sign(params Params, key *account.PrivateKey) (*Permit, error) {
	if account.ED25519 != key.KeyType() {
		return nil, fault.InvalidKeyType
	}
	permit := &Permit{
		Params: params,
	}
	message, err := permit.SignedBytes()
	if nil != err {
		return nil, err
	}
	permit.Signature = Authorization{
		PublicKey: key.Account(),
		Signature: ed25519.Sign(key.PrivateKeyBytes(), message),
	}
	return permit, nil
}
