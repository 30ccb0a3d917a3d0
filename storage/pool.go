// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/family"
)

// single byte prefix to spread the keys in LevelDB and keep several
// pools apart inside one database file
const poolPrefix = byte('V')

// PoolStore - a LevelDB backed Store
type PoolStore struct {
	log      *logger.L
	prefix   byte
	database *leveldb.DB
}

// OpenPool - open up the database connection
//
// this must be called before the pool is accessed; the caller owns
// the pool and must Close it
func OpenPool(databaseFile string) (*PoolStore, error) {
	log := logger.New("storage")
	log.Infof("opening database: %s", databaseFile)

	db, err := leveldb.OpenFile(databaseFile, nil)
	if nil != err {
		log.Criticalf("cannot open database: %s  error: %s", databaseFile, err)
		return nil, err
	}

	return &PoolStore{
		log:      log,
		prefix:   poolPrefix,
		database: db,
	}, nil
}

// Close - close the database connection
func (pool *PoolStore) Close() error {
	pool.log.Info("closing database")
	return pool.database.Close()
}

// prepend the prefix onto the address
func (pool *PoolStore) prefixKey(address family.Address) []byte {
	prefixedKey := make([]byte, 1, len(address)+1)
	prefixedKey[0] = pool.prefix
	return append(prefixedKey, address...)
}

// Get - read values for the given addresses
//
// a never-written address is omitted from the result
func (pool *PoolStore) Get(addresses []family.Address) (map[family.Address][]byte, error) {
	result := make(map[family.Address][]byte, len(addresses))

	for _, address := range addresses {
		value, err := pool.database.Get(pool.prefixKey(address), nil)
		if leveldb.ErrNotFound == err {
			continue
		}
		if nil != err {
			pool.log.Errorf("get: %s  error: %s", address, err)
			return nil, err
		}
		result[address] = value
	}
	return result, nil
}

// Set - commit a write set as one LevelDB batch
//
// the batch write is what provides the all-or-nothing guarantee
func (pool *PoolStore) Set(writes WriteSet) error {
	batch := new(leveldb.Batch)
	for address, value := range writes {
		batch.Put(pool.prefixKey(address), value)
	}

	err := pool.database.Write(batch, nil)
	if nil != err {
		pool.log.Errorf("batch write error: %s", err)
	}
	return err
}
