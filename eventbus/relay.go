package eventbus

import "github.com/pd-org/go-event/event"

// Relay0 attaches an anonymous subscription to an event that republishes
// every fire onto the given topic. The returned identity removes the
// relay via the event's Unsubscribe.
//
// The relay runs inside Fire on the publisher's goroutine; only the bus
// side is safe for concurrent consumption.
func Relay0(e *event.Event0, topic Topic) event.Identity {
	return e.Subscribe(func() {
		Publish(topic, nil)
	})
}

// Relay1 attaches an anonymous subscription to an event that republishes
// the fire argument onto the given topic.
func Relay1[A1 any](e *event.Event1[A1], topic Topic) event.Identity {
	return e.Subscribe(func(a1 A1) {
		Publish(topic, a1)
	})
}

// Relay2 attaches an anonymous subscription to an event that republishes
// both fire arguments onto the given topic as a RelayedPair.
func Relay2[A1, A2 any](e *event.Event2[A1, A2], topic Topic) event.Identity {
	return e.Subscribe(func(a1 A1, a2 A2) {
		Publish(topic, RelayedPair[A1, A2]{First: a1, Second: a2})
	})
}

// RelayedPair carries the arguments of a two-argument fire across the bus.
type RelayedPair[A1, A2 any] struct {
	First  A1
	Second A2
}
