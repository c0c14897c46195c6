// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/gumball-inc/gumballd/fault"
	"github.com/gumball-inc/gumballd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)

	trx := newTransaction([]Access{mock})
	return trx, mock, ctl
}

func TestTransactionBegin(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)

	err := tx.Begin()
	assert.Equal(t, nil, err, "first time Begin should not return any error")

	err = tx.Begin()
	assert.Equal(t, fault.TransactionAlreadyInProgress, err, "second time Begin should return error")
}

func TestTransactionCommitResets(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	_ = tx.Begin()
	assert.True(t, tx.InUse(), "wrong InUse while transaction open")

	err := tx.Commit()
	assert.Nil(t, err, "wrong commit error")
	assert.False(t, tx.InUse(), "wrong InUse after commit")
}

func TestTransactionCommitWithoutBegin(t *testing.T) {
	tx, _, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	err := tx.Commit()
	assert.Equal(t, fault.TransactionIsNotInProgress, err, "wrong error for commit without begin")
}

func TestTransactionAbort(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	_ = tx.Begin()
	tx.Abort()
	assert.False(t, tx.InUse(), "wrong InUse after abort")
}
