package cmd

import (
	"time"

	"github.com/pd-org/go-event/demo"
	"github.com/pd-org/go-event/eventbus"
)

// drainTimeout bounds the wait for relayed messages, since the default
// stream handler drops messages for subscribers that fall behind.
const drainTimeout = 500 * time.Millisecond

// relayReversed republishes every StringReversed fire onto a bus topic
// and returns a subscription to it.
func relayReversed(widget *demo.Widget) eventbus.SubscriberID {
	topic := eventbus.NewTopic("string_reversed")
	eventbus.Relay1(&widget.StringReversed, topic)

	return eventbus.Subscribe(topic)
}

// drainReversed reads up to expected relayed fires from the subscription.
func drainReversed(sub eventbus.SubscriberID, expected int) []string {
	var lines []string

	for len(lines) < expected {
		select {
		case data := <-sub.C:
			reversed, ok := data.(demo.ReversedData)
			if !ok {
				continue
			}

			lines = append(lines, "relayed: "+reversed.Reversed)

		case <-time.After(drainTimeout):
			return lines
		}
	}

	return lines
}
