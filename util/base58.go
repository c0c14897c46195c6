// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode a byte slice to its Base58 string form
func ToBase58(buffer []byte) string {
	return base58.Encode(buffer)
}

// FromBase58 - decode a Base58 string
//
// returns an empty slice if the string is not valid Base58
func FromBase58(text string) []byte {
	buffer, err := base58.Decode(text)
	if nil != err {
		return []byte{}
	}
	return buffer
}
