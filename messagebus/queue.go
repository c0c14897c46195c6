// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Message - a tagged item on a queue
type Message struct {
	Command    string   // the operation or event kind
	Parameters [][]byte // already encoded frames
}

// Bus - all available message queues
//
// the size tag is the buffer depth of the underlying channel
var Bus struct {
	// events fanned out to every subscriber connection
	Broadcast *broadcaster `size:"1000"`

	// committed outbound contract calls awaiting the publisher
	Outbound *queuer `size:"100"`

	// for testing use
	TestQueue *queuer `size:"50"`
}

// event kinds whose repeats carry no information; a duplicate inside
// the cache window is silently dropped
var cacheableCommands = map[string]struct{}{
	"message":     {},
	"distributed": {},
	"counts":      {},
	"deposit":     {},
	"listing":     {},
}

// suppression window for repeated broadcasts
const (
	cacheExpiry = 60 * time.Minute
	cacheFlush  = 10 * time.Minute
)

var cache = gocache.New(cacheExpiry, cacheFlush)

// a 1:1 queue
type queuer struct {
	c chan Message
}

// Send - add a message to the queue
func (queue *queuer) Send(command string, parameters ...[]byte) {
	queue.c <- Message{Command: command, Parameters: parameters}
}

// Chan - the read side of the queue
func (queue *queuer) Chan() <-chan Message {
	return queue.c
}

// a 1:many queue
//
// messages are fanned out to every registered listener; a listener
// that cannot keep up misses messages rather than blocking the bus,
// and with no listeners at all messages are simply discarded
type broadcaster struct {
	sync.Mutex
	in          chan Message
	out         []chan Message
	defaultSize int
}

// Send - broadcast a message to all listeners
func (bus *broadcaster) Send(command string, parameters ...[]byte) {
	bus.in <- Message{Command: command, Parameters: parameters}
}

// Chan - register a new listener
//
// size is the listener's buffer depth; zero or negative selects the
// bus default
func (bus *broadcaster) Chan(size int) <-chan Message {
	if size <= 0 {
		size = bus.defaultSize
	}
	c := make(chan Message, size)

	bus.Lock()
	bus.out = append(bus.out, c)
	bus.Unlock()

	return c
}

// fan out loop, one goroutine per broadcaster
func (bus *broadcaster) process() {
	for message := range bus.in {
		if _, cacheable := cacheableCommands[message.Command]; cacheable {
			key := cacheKey(message)
			if _, hit := cache.Get(key); hit {
				continue
			}
			cache.Set(key, struct{}{}, gocache.DefaultExpiration)
		}

		bus.Lock()
		for _, out := range bus.out {
			select {
			case out <- message:
			default:
			}
		}
		bus.Unlock()
	}
}

// DropCache - forget one suppressed message so it can broadcast again
func DropCache(message Message) {
	cache.Delete(cacheKey(message))
}

func cacheKey(message Message) string {
	return message.Command + string(bytes.Join(message.Parameters, []byte{0x00}))
}

// create all queues from their size tags
func init() {
	busValue := reflect.ValueOf(&Bus).Elem()
	busType := busValue.Type()

	for i := 0; i < busType.NumField(); i += 1 {
		field := busType.Field(i)

		size, err := strconv.Atoi(field.Tag.Get("size"))
		if nil != err || size < 1 {
			panic(fmt.Sprintf("queue: %q has invalid size: %q", field.Name, field.Tag.Get("size")))
		}

		switch field.Type {
		case reflect.TypeOf((*queuer)(nil)):
			queue := &queuer{
				c: make(chan Message, size),
			}
			busValue.Field(i).Set(reflect.ValueOf(queue))

		case reflect.TypeOf((*broadcaster)(nil)):
			bus := &broadcaster{
				in:          make(chan Message, size),
				out:         make([]chan Message, 0, 10),
				defaultSize: size,
			}
			busValue.Field(i).Set(reflect.ValueOf(bus))
			go bus.process()

		default:
			panic(fmt.Sprintf("queue: %q has invalid type: %q", field.Name, field.Type.Name()))
		}
	}
}
