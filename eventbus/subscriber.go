package eventbus

import "github.com/rs/xid"

// UnsubFunc describes a function to be called when unsubscribing from a stream.
type UnsubFunc func()

// SubscriberID represents a stream subscription.
type SubscriberID struct {
	// C delivers every message published to the subscribed stream.
	C chan any

	tag    xid.ID
	active bool
	unsub  UnsubFunc
}

// Tag returns a unique printable tag for this subscription.
func (s SubscriberID) Tag() string {
	return s.tag.String()
}

// Unsubscribe detaches the subscription from its stream.
func (s SubscriberID) Unsubscribe() {
	if s.unsub != nil {
		s.unsub()
	}
}

// IsActive returns whether the subscriber can actually receive messages.
func (s SubscriberID) IsActive() bool {
	return s.active
}
