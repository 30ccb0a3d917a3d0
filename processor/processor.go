// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	zmq "github.com/pebbe/zmq4"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/vehicled/engine"
	"github.com/bitmark-inc/vehicled/fault"
	"github.com/bitmark-inc/vehicled/storage"
)

// Configuration - processor settings from the configuration file
type Configuration struct {
	Bind        string  `gluamapper:"bind" json:"bind"`
	MaximumRate float64 `gluamapper:"maximum_rate" json:"maximum_rate"`
}

// server limits and timing
const (
	DefaultBind        = "tcp://127.0.0.1:2136"
	DefaultMaximumRate = 100 // requests per second

	replyCacheExpiry = 2 * time.Minute
	replyCachePurge  = 10 * time.Minute

	signalAddress = "inproc://vehicled-processor-signal"
	stopSignal    = "stop"

	pollTimeout = 500 * time.Millisecond
)

// globals for background process
type processorData struct {
	sync.RWMutex

	log     *logger.L
	socket  *zmq.Socket
	push    *zmq.Socket
	pull    *zmq.Socket
	limiter *rate.Limiter
	replies *cache.Cache
	engine  *engine.Engine
	store   storage.Store
	done    chan struct{}

	initialised bool
}

// global data
var globalData processorData

// Initialise - bind the socket and start the request loop
func Initialise(configuration *Configuration, e *engine.Engine, store storage.Store) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("processor")
	globalData.log.Info("initialising…")

	bind := configuration.Bind
	if "" == bind {
		bind = DefaultBind
	}
	maximumRate := configuration.MaximumRate
	if maximumRate <= 0 {
		maximumRate = DefaultMaximumRate
	}

	socket, err := zmq.NewSocket(zmq.REP)
	if nil != err {
		return err
	}
	socket.SetLinger(0)
	err = socket.Bind(bind)
	if nil != err {
		socket.Close()
		globalData.log.Errorf("cannot bind: %q  error: %s", bind, err)
		return err
	}
	globalData.log.Infof("bind: %q", bind)

	push, pull, err := newSignalPair(signalAddress)
	if nil != err {
		socket.Close()
		return err
	}

	globalData.socket = socket
	globalData.push = push
	globalData.pull = pull
	globalData.limiter = rate.NewLimiter(rate.Limit(maximumRate), int(maximumRate))
	globalData.replies = cache.New(replyCacheExpiry, replyCachePurge)
	globalData.engine = e
	globalData.store = store
	globalData.done = make(chan struct{})

	globalData.initialised = true

	go run()

	return nil
}

// Finalise - stop the request loop and close the sockets
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	_, err := globalData.push.SendMessage(stopSignal)
	if nil != err {
		globalData.log.Errorf("stop signal error: %s", err)
	}
	<-globalData.done

	globalData.push.Close()
	globalData.initialised = false

	globalData.log.Info("finished")
	return nil
}

// request loop: poll the REP socket and the shutdown signal
func run() {
	log := globalData.log
	log.Info("starting…")

	poller := zmq.NewPoller()
	poller.Add(globalData.pull, zmq.POLLIN)
	poller.Add(globalData.socket, zmq.POLLIN)

loop:
	for {
		polled, _ := poller.Poll(pollTimeout)

		for _, p := range polled {
			switch s := p.Socket; s {
			case globalData.pull:
				_, _ = s.RecvMessageBytes(0)
				break loop
			default:
				data, err := s.RecvBytes(0)
				if nil != err {
					log.Errorf("receive error: %s", err)
					continue
				}
				result := process(log, globalData.limiter, globalData.replies, globalData.engine, globalData.store, data)
				_, err = s.SendBytes(result, 0)
				if nil != err {
					log.Errorf("send error: %s", err)
				}
			}
		}
	}

	globalData.pull.Close()
	globalData.socket.Close()
	close(globalData.done)
}

// a pair of connected push/pull sockets for shutdown signalling
func newSignalPair(signal string) (*zmq.Socket, *zmq.Socket, error) {

	// send half of signalling channel
	push, err := zmq.NewSocket(zmq.PUSH)
	if nil != err {
		return nil, nil, err
	}
	push.SetLinger(0)
	err = push.Bind(signal)
	if nil != err {
		push.Close()
		return nil, nil, err
	}

	// receive half of signalling channel
	pull, err := zmq.NewSocket(zmq.PULL)
	if nil != err {
		push.Close()
		return nil, nil, err
	}
	pull.SetLinger(0)
	err = pull.Connect(signal)
	if nil != err {
		push.Close()
		pull.Close()
		return nil, nil, err
	}

	return push, pull, nil
}
