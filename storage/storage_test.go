// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/family"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "storage.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialisation failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	dirPath, _ := filepath.Abs(testingDirName)
	_ = os.RemoveAll(dirPath)
}

func TestMemoryStoreGetSet(t *testing.T) {
	store := NewMemoryStore()

	a := family.Address("aa0011")
	b := family.Address("bb0122")

	// never written addresses are absent
	values, err := store.Get([]family.Address{a, b})
	assert.Nil(t, err, "get error")
	assert.Empty(t, values, "unexpected values for never-written addresses")

	err = store.Set(WriteSet{
		a: []byte("record a"),
		b: []byte("record b"),
	})
	assert.Nil(t, err, "set error")

	values, err = store.Get([]family.Address{a, b})
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("record a"), values[a], "wrong value at first address")
	assert.Equal(t, []byte("record b"), values[b], "wrong value at second address")
}

func TestMemoryStoreTombstone(t *testing.T) {
	store := NewMemoryStore()

	a := family.Address("cc0033")

	err := store.Set(WriteSet{a: []byte("record")})
	assert.Nil(t, err, "set error")

	// tombstone the record
	err = store.Set(WriteSet{a: []byte{}})
	assert.Nil(t, err, "set error")

	values, err := store.Get([]family.Address{a})
	assert.Nil(t, err, "get error")
	assert.Equal(t, 0, len(values[a]), "tombstoned value is not empty")
}

func TestMemoryStoreGetReturnsCopies(t *testing.T) {
	store := NewMemoryStore()

	a := family.Address("dd0044")
	err := store.Set(WriteSet{a: []byte("record")})
	assert.Nil(t, err, "set error")

	values, _ := store.Get([]family.Address{a})
	values[a][0] = 'X'

	again, _ := store.Get([]family.Address{a})
	assert.Equal(t, []byte("record"), again[a], "stored value was aliased by a reader")
}

func TestPoolStore(t *testing.T) {
	databaseFile := filepath.Join(testingDirName, "pool-test.leveldb")

	pool, err := OpenPool(databaseFile)
	assert.Nil(t, err, "open error")
	defer func() {
		_ = pool.Close()
	}()

	f := family.New("vehicle")
	a := f.VehicleAddress("ABC 123")
	x := f.TransferAddress("ABC 123")

	// absent before any write
	values, err := pool.Get([]family.Address{a, x})
	assert.Nil(t, err, "get error")
	assert.Empty(t, values, "unexpected values in fresh database")

	// one batch: write a record and a tombstone
	err = pool.Set(WriteSet{
		a: []byte("vehicle record"),
		x: []byte{},
	})
	assert.Nil(t, err, "set error")

	values, err = pool.Get([]family.Address{a, x})
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("vehicle record"), values[a], "wrong vehicle value")
	assert.Equal(t, 0, len(values[x]), "tombstone is not empty")
}
