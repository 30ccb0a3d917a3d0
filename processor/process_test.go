// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	cache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/dispatch"
	"github.com/bitmark-inc/vehicled/engine"
	"github.com/bitmark-inc/vehicled/family"
	"github.com/bitmark-inc/vehicled/storage"
	"github.com/bitmark-inc/vehicled/vehiclerecord"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "processor.log",
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

type fixture struct {
	log     *logger.L
	limiter *rate.Limiter
	replies *cache.Cache
	engine  *engine.Engine
	store   *storage.MemoryStore
}

func setup() *fixture {
	return &fixture{
		log:     logger.New("processor-test"),
		limiter: rate.NewLimiter(rate.Limit(DefaultMaximumRate), DefaultMaximumRate),
		replies: cache.New(replyCacheExpiry, replyCachePurge),
		engine:  engine.New(family.New("vehicle")),
		store:   storage.NewMemoryStore(),
	}
}

func (f *fixture) process(t *testing.T, data []byte) reply {
	result := process(f.log, f.limiter, f.replies, f.engine, f.store, data)

	var r reply
	err := json.Unmarshal(result, &r)
	assert.Nil(t, err, "reply is not valid JSON: %q", result)
	return r
}

func marshal(t *testing.T, e envelope) []byte {
	data, err := json.Marshal(e)
	assert.Nil(t, err, "marshal error")
	return data
}

func TestProcessCreate(t *testing.T) {
	f := setup()

	r := f.process(t, marshal(t, envelope{
		Request: dispatch.Request{Action: "create", Asset: "REG1,Honda,CB500,red"},
		Signer:  "signer-a",
	}))
	assert.True(t, r.OK, "create was rejected: %s", r.Error)

	// the write set was committed
	a := f.engine.Family().VehicleAddress("REG1")
	values, err := f.store.Get([]family.Address{a})
	assert.Nil(t, err, "get error")
	record, err := vehiclerecord.UnpackVehicle(values[a])
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, vehiclerecord.Identity("signer-a"), record.Owner, "wrong owner")
}

func TestProcessRejection(t *testing.T) {
	f := setup()

	r := f.process(t, marshal(t, envelope{
		Request: dispatch.Request{Action: "accept", Asset: "REG1,Honda,CB500,red"},
		Signer:  "signer-b",
	}))
	assert.False(t, r.OK, "accept without a pending transfer succeeded")
	assert.Equal(t, "no pending transfer", r.Error, "wrong rejection")
}

func TestProcessUnknownAction(t *testing.T) {
	f := setup()

	r := f.process(t, marshal(t, envelope{
		Request: dispatch.Request{Action: "delete", Asset: "REG1,Honda,CB500,red"},
		Signer:  "signer-a",
	}))
	assert.False(t, r.OK, "unknown action succeeded")
	assert.Equal(t, "action is not recognised", r.Error, "wrong rejection")
}

func TestProcessInvalidEnvelope(t *testing.T) {
	f := setup()

	r := f.process(t, []byte("this is not an envelope"))
	assert.False(t, r.OK, "invalid envelope succeeded")
	assert.Equal(t, "request envelope is invalid", r.Error, "wrong rejection")
}

// a retransmitted envelope must receive the original reply, not a
// duplicate-vehicle rejection from re-running the transition
func TestProcessDuplicateNonce(t *testing.T) {
	f := setup()

	data := marshal(t, envelope{
		Request: dispatch.Request{Action: "create", Asset: "REG1,Honda,CB500,red"},
		Signer:  "signer-a",
		Nonce:   "nonce-1",
	})

	first := f.process(t, data)
	assert.True(t, first.OK, "create was rejected: %s", first.Error)

	second := f.process(t, data)
	assert.True(t, second.OK, "retransmission was not given the cached reply")

	// same envelope without a nonce is a fresh submission and fails
	third := f.process(t, marshal(t, envelope{
		Request: dispatch.Request{Action: "create", Asset: "REG1,Honda,CB500,red"},
		Signer:  "signer-a",
	}))
	assert.False(t, third.OK, "re-creation succeeded")
	assert.Equal(t, "vehicle already registered", third.Error, "wrong rejection")
}
