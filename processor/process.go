// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"encoding/json"
	"time"

	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/dispatch"
	"github.com/bitmark-inc/vehicled/engine"
	"github.com/bitmark-inc/vehicled/fault"
	"github.com/bitmark-inc/vehicled/storage"
	"github.com/bitmark-inc/vehicled/vehiclerecord"
)

// envelope - one request from the host runtime
//
// the signer was extracted by the host after it verified the
// transaction signature; the optional nonce identifies a
// retransmission of the same submission
type envelope struct {
	Request dispatch.Request `json:"request"`
	Signer  string           `json:"signer"`
	Nonce   string           `json:"nonce,omitempty"`
}

// reply - outcome of one request
type reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// process - handle one envelope and produce the reply bytes
//
// separated from the socket loop so it can be exercised directly in
// tests with a memory store
func process(
	log *logger.L,
	limiter *rate.Limiter,
	replies *cache.Cache,
	e *engine.Engine,
	store storage.Store,
	data []byte,
) []byte {

	// limiting for a single request
	r := limiter.Reserve()
	if !r.OK() {
		return failure(fault.RateLimiting)
	}
	time.Sleep(r.Delay())

	var request envelope
	if err := json.Unmarshal(data, &request); nil != err {
		log.Errorf("invalid envelope: %q", data)
		return failure(fault.InvalidRequestEnvelope)
	}

	// a retransmission receives the reply already computed for it
	if "" != request.Nonce {
		if cached, ok := replies.Get(request.Nonce); ok {
			log.Debugf("duplicate request: %q", request.Nonce)
			return cached.([]byte)
		}
	}

	writes, err := dispatch.Dispatch(request.Request, vehiclerecord.Identity(request.Signer), e, store)
	if nil == err {
		err = store.Set(writes)
	}

	var result []byte
	if nil == err {
		result = success()
	} else {
		log.Debugf("request rejected: %s", err)
		result = failure(err)
	}

	if "" != request.Nonce {
		replies.Set(request.Nonce, result, cache.DefaultExpiration)
	}
	return result
}

func success() []byte {
	result, _ := json.Marshal(reply{OK: true})
	return result
}

func failure(err error) []byte {
	result, _ := json.Marshal(reply{OK: false, Error: err.Error()})
	return result
}
