// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/storage"
)

// load the admin list and check the sender against it
func requireAdmin(trx storage.Transaction, env Env) ([][]byte, []byte, error) {
	senderRaw, err := globalData.dir.Canonical(env.Sender)
	if nil != err {
		return nil, nil, err
	}
	admins, err := loadAdmins(trx)
	if nil != err {
		return nil, nil, err
	}
	if !isAdmin(admins, senderRaw) {
		return nil, nil, fault.Unauthorized
	}
	return admins, senderRaw, nil
}

// append the new entries, skipping addresses that are already admins
// so the list never holds duplicates; an unchanged list is not
// rewritten
func tryAddAdmins(trx storage.Transaction, env Env, accounts []*account.Account) (*Result, error) {
	admins, _, err := requireAdmin(trx, env)
	if nil != err {
		return nil, err
	}

	changed := false
	for _, acc := range accounts {
		raw, err := globalData.dir.Canonical(acc)
		if nil != err {
			return nil, err
		}
		if !isAdmin(admins, raw) {
			admins = append(admins, raw)
			changed = true
		}
	}
	if changed {
		err = storeAdmins(trx, admins)
		if nil != err {
			return nil, err
		}
	}

	return adminsListResult(admins)
}

// drop the named entries, ignoring addresses that are not admins; an
// unchanged list is not rewritten
func tryRemoveAdmins(trx storage.Transaction, env Env, accounts []*account.Account) (*Result, error) {
	admins, _, err := requireAdmin(trx, env)
	if nil != err {
		return nil, err
	}

	changed := false
	for _, acc := range accounts {
		raw, err := globalData.dir.Canonical(acc)
		if nil != err {
			return nil, err
		}
		for i, admin := range admins {
			if bytes.Equal(admin, raw) {
				admins = append(admins[:i], admins[i+1:]...)
				changed = true
				break
			}
		}
	}
	if changed {
		err = storeAdmins(trx, admins)
		if nil != err {
			return nil, err
		}
	}

	return adminsListResult(admins)
}

func adminsListResult(admins [][]byte) (*Result, error) {
	display, err := displayAdmins(admins)
	if nil != err {
		return nil, err
	}
	data, err := padAnswer(adminsListShell{
		AdminsList: adminsListAnswer{Admins: display},
	})
	if nil != err {
		return nil, err
	}
	return &Result{Data: data}, nil
}

func displayAdmins(admins [][]byte) ([]*account.Account, error) {
	display := make([]*account.Account, len(admins))
	for i, raw := range admins {
		acc, err := globalData.dir.Display(raw)
		if nil != err {
			return nil, err
		}
		display[i] = acc
	}
	return display, nil
}

// add or remove whitelist rows; an address on the whitelist may mint
// exactly one token, once
func tryUpdateWhitelist(trx storage.Transaction, env Env, accounts []*account.Account, add bool) (*Result, error) {
	_, _, err := requireAdmin(trx, env)
	if nil != err {
		return nil, err
	}

	for _, acc := range accounts {
		raw, err := globalData.dir.Canonical(acc)
		if nil != err {
			return nil, err
		}
		if add {
			trx.Put(storage.Pool.Whitelist, raw, present)
		} else {
			trx.Delete(storage.Pool.Whitelist, raw)
		}
	}

	var data []byte
	if add {
		data, err = padAnswer(addToWhitelistShell{
			AddToWhitelist: statusAnswer{Status: success},
		})
	} else {
		data, err = padAnswer(removeFromWhitelistShell{
			RemoveFromWhitelist: statusAnswer{Status: success},
		})
	}
	if nil != err {
		return nil, err
	}
	return &Result{Data: data}, nil
}
