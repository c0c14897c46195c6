// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gumball-inc/gumballd/account"
	"github.com/gumball-inc/gumballd/contract"
	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/fixtures"
	"github.com/gumball-inc/gumballd/nft"
	"github.com/gumball-inc/gumballd/permit"
)

type adminsQueryReply struct {
	Admins struct {
		Admins []*account.Account `json:"admins"`
	} `json:"admins"`
}

type nftContractReply struct {
	NftContract nft.ContractInfo `json:"nft_contract"`
}

func adminPrivateKey() *account.PrivateKey {
	return &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			Test:       true,
			PrivateKey: fixtures.AdminKey,
		},
	}
}

func buyerPrivateKey() *account.PrivateKey {
	return &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			Test:       true,
			PrivateKey: fixtures.BuyerKey,
		},
	}
}

func ownerPermit(t *testing.T, key *account.PrivateKey, name string) *permit.Permit {
	p, err := permit.Sign(permit.Params{
		Name:        name,
		Audiences:   []string{machineAccount.String()},
		Permissions: []permit.Permission{permit.Owner},
	}, key)
	if nil != err {
		t.Fatalf("permit sign error: %s", err)
	}
	return p
}

func TestQueryNftContract(t *testing.T) {
	setup(t, nil)
	defer teardown(t)
	provision(t)

	reply := nftContractReply{}
	err := query(t, contract.QueryMsg{NftContract: &contract.NftContractQuery{}}, &reply)
	assert.Nil(t, err, "wrong query error")
	assert.Equal(t, collectionCodeHash, reply.NftContract.CodeHash, "wrong code hash")
	assert.True(t, reply.NftContract.Address.SameAs(fixtures.CollectionAccount), "wrong address")
}

func TestQueryRejectsMalformedUnions(t *testing.T) {
	setup(t, nil)
	defer teardown(t)
	provision(t)

	_, err := contract.Query(nil)
	assert.Equal(t, fault.MessageIsEmpty, err, "wrong empty body error")

	_, err = contract.Query([]byte("{}"))
	assert.Equal(t, fault.NoOperationVariant, err, "wrong empty union error")

	_, err = contract.Query([]byte(`{"counts":{},"nft_contract":{}}`))
	assert.Equal(t, fault.TooManyOperationVariants, err, "wrong double union error")
}

func TestViewingKeyQuery(t *testing.T) {
	setup(t, nil)
	defer teardown(t)
	provision(t)

	// no credentials at all
	err := query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{}}, &adminsQueryReply{})
	assert.Equal(t, fault.Unauthorized, err, "wrong bare query error")

	result, err := execute(t, envAt(400, 8000, fixtures.AdminAccount), contract.HandleMsg{
		CreateViewingKey: &contract.CreateViewingKey{Entropy: "key entropy"},
	})
	assert.Nil(t, err, "wrong create key error")

	keyReply := viewingKeyReply{}
	err = json.Unmarshal(unpad(t, result.Data), &keyReply)
	assert.Nil(t, err, "wrong key decode error")
	key := keyReply.ViewingKey.Key
	assert.True(t, strings.HasPrefix(key, "api_key_"), "wrong key prefix")

	reply := adminsQueryReply{}
	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Viewer: &contract.ViewerInfo{
			Address:    fixtures.AdminAccount,
			ViewingKey: key,
		},
	}}, &reply)
	assert.Nil(t, err, "wrong authenticated query error")
	assert.Equal(t, 1, len(reply.Admins.Admins), "wrong admin count")
	assert.True(t, reply.Admins.Admins[0].SameAs(fixtures.AdminAccount), "wrong admin")

	// a wrong key proves nothing
	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Viewer: &contract.ViewerInfo{
			Address:    fixtures.AdminAccount,
			ViewingKey: "api_key_AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=",
		},
	}}, &adminsQueryReply{})
	assert.Equal(t, fault.Unauthorized, err, "wrong forged key error")

	// a valid key of a non-admin does not reach the admin list
	result, err = execute(t, envAt(401, 8010, fixtures.BuyerAccount), contract.HandleMsg{
		SetViewingKey: &contract.SetViewingKey{Key: "buyer chosen key"},
	})
	assert.Nil(t, err, "wrong set key error")
	keyReply = viewingKeyReply{}
	err = json.Unmarshal(unpad(t, result.Data), &keyReply)
	assert.Nil(t, err, "wrong key decode error")
	assert.Equal(t, "buyer chosen key", keyReply.ViewingKey.Key, "wrong echoed key")

	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Viewer: &contract.ViewerInfo{
			Address:    fixtures.BuyerAccount,
			ViewingKey: "buyer chosen key",
		},
	}}, &adminsQueryReply{})
	assert.Equal(t, fault.Unauthorized, err, "wrong non-admin query error")
}

func TestSetViewingKeyReplacesCreated(t *testing.T) {
	setup(t, nil)
	defer teardown(t)
	provision(t)

	result, err := execute(t, envAt(400, 8000, fixtures.AdminAccount), contract.HandleMsg{
		CreateViewingKey: &contract.CreateViewingKey{Entropy: "key entropy"},
	})
	assert.Nil(t, err, "wrong create key error")
	keyReply := viewingKeyReply{}
	_ = json.Unmarshal(unpad(t, result.Data), &keyReply)
	created := keyReply.ViewingKey.Key

	_, err = execute(t, envAt(401, 8010, fixtures.AdminAccount), contract.HandleMsg{
		SetViewingKey: &contract.SetViewingKey{Key: "replacement key"},
	})
	assert.Nil(t, err, "wrong set key error")

	// the old key is dead, the new one works
	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Viewer: &contract.ViewerInfo{
			Address:    fixtures.AdminAccount,
			ViewingKey: created,
		},
	}}, &adminsQueryReply{})
	assert.Equal(t, fault.Unauthorized, err, "wrong replaced key error")

	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Viewer: &contract.ViewerInfo{
			Address:    fixtures.AdminAccount,
			ViewingKey: "replacement key",
		},
	}}, &adminsQueryReply{})
	assert.Nil(t, err, "wrong replacement key error")
}

func TestPermitQuery(t *testing.T) {
	setup(t, nil)
	defer teardown(t)
	provision(t)

	reply := adminsQueryReply{}
	err := query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Permit: ownerPermit(t, adminPrivateKey(), "admin permit"),
	}}, &reply)
	assert.Nil(t, err, "wrong permit query error")
	assert.Equal(t, 1, len(reply.Admins.Admins), "wrong admin count")
	assert.True(t, reply.Admins.Admins[0].SameAs(fixtures.AdminAccount), "wrong admin")

	// owner scope is mandatory
	weak, err := permit.Sign(permit.Params{
		Name:        "weak permit",
		Audiences:   []string{machineAccount.String()},
		Permissions: []permit.Permission{permit.Balance, permit.History},
	}, adminPrivateKey())
	assert.Nil(t, err, "wrong sign error")

	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{Permit: weak}}, &adminsQueryReply{})
	assert.NotNil(t, err, "weak permit must not pass")
	assert.Contains(
		t,
		err.Error(),
		"Owner permission is required for gumball queries",
		"wrong permission error",
	)

	// a permit for some other contract is worthless here
	foreign, err := permit.Sign(permit.Params{
		Name:        "foreign permit",
		Audiences:   []string{fixtures.FactoryAccount.String()},
		Permissions: []permit.Permission{permit.Owner},
	}, adminPrivateKey())
	assert.Nil(t, err, "wrong sign error")

	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{Permit: foreign}}, &adminsQueryReply{})
	assert.Equal(t, fault.PermitNotForThisContract, err, "wrong audience error")

	// a valid permit proving a non-admin is still unauthorized
	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Permit: ownerPermit(t, buyerPrivateKey(), "buyer permit"),
	}}, &adminsQueryReply{})
	assert.Equal(t, fault.Unauthorized, err, "wrong non-admin permit error")
}

func TestRevokePermit(t *testing.T) {
	setup(t, nil)
	defer teardown(t)
	provision(t)

	p := ownerPermit(t, adminPrivateKey(), "throwaway")

	err := query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{Permit: p}}, &adminsQueryReply{})
	assert.Nil(t, err, "wrong fresh permit error")

	result, err := execute(t, envAt(400, 8000, fixtures.AdminAccount), contract.HandleMsg{
		RevokePermit: &contract.RevokePermit{PermitName: "throwaway"},
	})
	assert.Nil(t, err, "wrong revoke error")

	status := struct {
		RevokePermit struct {
			Status string `json:"status"`
		} `json:"revoke_permit"`
	}{}
	err = json.Unmarshal(unpad(t, result.Data), &status)
	assert.Nil(t, err, "wrong revoke decode error")
	assert.Equal(t, "success", status.RevokePermit.Status, "wrong revoke status")

	// the signed permit is now void
	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{Permit: p}}, &adminsQueryReply{})
	assert.Equal(t, fault.PermitRevoked, err, "wrong revoked permit error")

	// revocation binds the name, not one signature: a fresh permit
	// with the same name is void too
	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Permit: ownerPermit(t, adminPrivateKey(), "throwaway"),
	}}, &adminsQueryReply{})
	assert.Equal(t, fault.PermitRevoked, err, "wrong re-signed permit error")

	// other names survive
	err = query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Permit: ownerPermit(t, adminPrivateKey(), "evergreen"),
	}}, &adminsQueryReply{})
	assert.Nil(t, err, "wrong other permit error")
}

func TestPermitOutranksViewer(t *testing.T) {
	setup(t, nil)
	defer teardown(t)
	provision(t)

	// a bogus viewer block is ignored when a valid permit is present
	reply := adminsQueryReply{}
	err := query(t, contract.QueryMsg{Admins: &contract.AdminsQuery{
		Viewer: &contract.ViewerInfo{
			Address:    fixtures.BuyerAccount,
			ViewingKey: "nonsense",
		},
		Permit: ownerPermit(t, adminPrivateKey(), "combined"),
	}}, &reply)
	assert.Nil(t, err, "wrong combined query error")
	assert.Equal(t, 1, len(reply.Admins.Admins), "wrong admin count")
}

func TestEveryAnswerIsPadded(t *testing.T) {
	setup(t, nil)
	defer teardown(t)

	result := provision(t)
	for _, message := range result.Messages {
		assert.Equal(t, 0, len(message.Body)%nft.BlockSize, "init message body not padded")
	}

	deposit(t, "token.1", "token.2")

	answers := [][]byte{}
	record := func(result *contract.Result, err error) {
		assert.Nil(t, err, "wrong handle error")
		if nil != result.Data {
			answers = append(answers, result.Data)
		}
		for _, message := range result.Messages {
			answers = append(answers, message.Body)
		}
	}

	record(execute(t, envAt(700, 11000, fixtures.AdminAccount), contract.HandleMsg{
		CreateViewingKey: &contract.CreateViewingKey{Entropy: "pad entropy"},
	}))
	record(execute(t, envAt(701, 11010, fixtures.AdminAccount), contract.HandleMsg{
		AddAdmins: &contract.AdminsUpdate{Admins: []*account.Account{buyer2Account}},
	}))
	record(execute(t, envAt(702, 11020, fixtures.AdminAccount), contract.HandleMsg{
		AddToWhitelist: &contract.WhitelistUpdate{Addresses: []*account.Account{fixtures.BuyerAccount}},
	}))
	record(execute(t, envAt(703, 11030, fixtures.AdminAccount), contract.HandleMsg{
		Mint: &contract.Mint{
			Buyers:  []*account.Account{fixtures.BuyerAccount},
			Entropy: "pad mint",
		},
	}))
	record(execute(t, envAt(704, 11040, fixtures.AdminAccount), contract.HandleMsg{
		RevokePermit: &contract.RevokePermit{PermitName: "pad permit"},
	}))

	for i, answer := range answers {
		assert.Equal(t, 0, len(answer)%nft.BlockSize, "answer %d not a block multiple", i)
		assert.NotZero(t, len(answer), "answer %d empty", i)
	}

	// queries pad the same way
	for _, msg := range []contract.QueryMsg{
		{Counts: &contract.CountsQuery{}},
		{NftContract: &contract.NftContractQuery{}},
		{NftListingDisplay: &contract.NftListingDisplayQuery{}},
	} {
		body, err := json.Marshal(msg)
		assert.Nil(t, err, "wrong marshal error")
		answer, err := contract.Query(body)
		assert.Nil(t, err, "wrong query error")
		assert.Equal(t, 0, len(answer)%nft.BlockSize, "query answer not a block multiple")
	}
}
