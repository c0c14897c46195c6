// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database with a table prefix byte to
// partition it into pools:
//
//	Config   'C'  singleton contract state records
//	Tokens   'T'  densely indexed token ids awaiting distribution
//	Listings 'L'  confirmed listing registrations
//	Whitelist 'W' addresses permitted a single free mint
//	Keys     'V'  hashed viewing keys
//	Permits  'R'  revoked query permit markers
//
// every write performed while handling a message is buffered in a
// transaction and only reaches the database if the whole message
// succeeds; a failed handler aborts the transaction leaving the
// store untouched
package storage
