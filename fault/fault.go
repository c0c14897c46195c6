// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AddressIsNil                  = InvalidError("address is nil")
	AlreadyInitialised            = ExistsError("already initialised")
	CannotDecodeAccount           = RecordError("cannot decode account")
	CannotDecodePrivateKey        = RecordError("cannot decode private key")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = ProcessError("checksum mismatch")
	CorruptState                  = ProcessError("contract state is corrupt")
	ExpectedFactoryAbsent         = InvalidError("RegisterListing can only be called by the expected factory contract")
	ExpectedFactoryMismatch       = InvalidError("Message sender does not match the expected factory address")
	IncompatibleStorageVersion    = ProcessError("incompatible storage version")
	InvalidChain                  = InvalidError("invalid chain")
	InvalidCount                  = InvalidError("invalid count")
	InvalidIpAddress              = InvalidError("invalid ip Address")
	InvalidItem                   = InvalidError("invalid item")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidLoggerChannel          = InvalidError("invalid logger channel")
	InvalidSignature              = InvalidError("invalid signature")
	InvalidStructure              = InvalidError("invalid structure")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MessageIsEmpty                = InvalidError("message is empty")
	MissingParameters             = LengthError("missing parameters")
	NoOperationVariant            = InvalidError("no operation variant was supplied")
	NotAvailableDuringSynchronise = InvalidError("not available during synchronise")
	NotInitialised                = NotFoundError("not initialised")
	NotPrimaryCollection          = InvalidError("This may not be called on the gumball contract's collection")
	NotPrivateKey                 = RecordError("not a private key")
	NotPublicKey                  = RecordError("not a public key")
	PermitNotForThisContract      = InvalidError("permit does not apply to this contract")
	PermitRevoked                 = InvalidError("permit has been revoked")
	PoolCorrupt                   = ProcessError("Token ID pool is corrupt")
	PoolFull                      = ProcessError("Gumball contract has reached its maximum number of NFTs")
	RateLimiting                  = ProcessError("rate limiting")
	SpoofedSender                 = InvalidError("Only the collection contract specified on instantiation may call (Batch)ReceiveNft")
	TooManyOperationVariants      = InvalidError("more than one operation variant was supplied")
	TransactionAlreadyInProgress  = ProcessError("transaction already in progress")
	TransactionIsNotInProgress    = ProcessError("transaction is not in progress")
	Unauthorized                  = InvalidError("unauthorized")
	WhitelistBatchSizeInvalid     = InvalidError("Whitelisted addresses must mint exactly 1 token")
	WrongNetworkForPublicKey      = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
