// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/vehicled/family"
)

// MemoryStore - a map backed Store
//
// used by the unit tests and usable wherever no host database is
// wanted; safe for concurrent use
type MemoryStore struct {
	sync.RWMutex
	data map[family.Address][]byte
}

// NewMemoryStore - create an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[family.Address][]byte),
	}
}

// Get - read current values, omitting never-written addresses
//
// returned values are copies so a later Set cannot alias them
func (store *MemoryStore) Get(addresses []family.Address) (map[family.Address][]byte, error) {
	store.RLock()
	defer store.RUnlock()

	result := make(map[family.Address][]byte, len(addresses))
	for _, address := range addresses {
		value, ok := store.data[address]
		if !ok {
			continue
		}
		buffer := make([]byte, len(value))
		copy(buffer, value)
		result[address] = buffer
	}
	return result, nil
}

// Set - apply all writes under one lock
func (store *MemoryStore) Set(writes WriteSet) error {
	store.Lock()
	defer store.Unlock()

	for address, value := range writes {
		buffer := make([]byte, len(value))
		copy(buffer, value)
		store.data[address] = buffer
	}
	return nil
}
