// Package eventbus bridges events to concurrent consumers.
//
// The event package is strictly single-threaded, so subscribers that live
// on other goroutines cannot attach to an event directly. The bus carries
// fires as messages on named streams: a relay republishes each fire of an
// event onto a topic, and any number of goroutines drain that topic over
// channels through a pluggable stream handler.
package eventbus

import (
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/atomic"
)

// Topic represents a named stream of event fires on the bus.
type Topic interface {
	String() string
	Value() uint
}

// StreamID identifies a registered stream.
type StreamID uint

var (
	topicNames = xsync.NewMapOf[uint, string]()
	topicCount atomic.Uint32
)

// NewTopic registers a named stream and returns its ID.
// Names are informational only; IDs are what address a stream.
func NewTopic(name string) StreamID {
	id := uint(topicCount.Inc())
	topicNames.Store(id, name)

	return StreamID(id)
}

// String returns the name the stream was registered with.
func (s StreamID) String() string {
	name, _ := topicNames.Load(uint(s))
	return name
}

// Value returns the stream ID.
func (s StreamID) Value() uint {
	return uint(s)
}
