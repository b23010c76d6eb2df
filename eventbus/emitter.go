package eventbus

import (
	"sync"

	"github.com/cskr/pubsub/v2"
	"github.com/rs/xid"
	"go.uber.org/atomic"
)

// NilStreamHandler represents a disabled stream handler.
type NilStreamHandler struct{}

// DefaultStreamHandler represents the built-in stream handler.
type DefaultStreamHandler struct {
	*pubsub.PubSub[uint, any]

	subscribers atomic.Uint32
}

// StreamPublisher represents an interface that publishes to a stream.
type StreamPublisher interface {
	// Publish publishes a message to the stream.
	Publish(id uint, data any)
}

// StreamSubscriber represents an interface that subscribes to a stream.
type StreamSubscriber interface {
	// Subscribe subscribes to messages from the stream.
	Subscribe(id uint) SubscriberID
}

// StreamHandler represents an interface that provides a stream publisher
// and subscriber.
type StreamHandler interface {
	StreamPublisher
	StreamSubscriber
}

// streamEmitter represents the process-global stream handler.
type streamEmitter struct {
	p StreamPublisher
	s StreamSubscriber

	mu sync.RWMutex
}

var emitter streamEmitter

func init() {
	RegisterHandler(DefaultHandler())
}

// RegisterHandler registers the stream handler interface.
func RegisterHandler[H StreamHandler](sh H) {
	emitter.mu.Lock()
	defer emitter.mu.Unlock()

	emitter.p = sh
	emitter.s = sh
}

// RegisterHandlers registers the stream publisher and subscriber interfaces
// separately. To disable a StreamPublisher or StreamSubscriber, pass the
// corresponding nil handler as the parameter.
func RegisterHandlers[P StreamPublisher, S StreamSubscriber](p P, s S) {
	emitter.mu.Lock()
	defer emitter.mu.Unlock()

	emitter.p = p
	emitter.s = s
}

// DisableStream unregisters the stream handler.
func DisableStream() {
	RegisterHandler(&NilStreamHandler{})
}

// Publish publishes a message to a topic via the registered publisher handler.
func Publish(topic Topic, data any) {
	if topic == nil {
		return
	}

	emitter.mu.RLock()
	p := emitter.p
	emitter.mu.RUnlock()

	p.Publish(topic.Value(), data)
}

// Subscribe subscribes to a topic via the registered subscriber handler.
func Subscribe(topic Topic) SubscriberID {
	if topic == nil {
		return (&NilStreamHandler{}).Subscribe(0)
	}

	emitter.mu.RLock()
	s := emitter.s
	emitter.mu.RUnlock()

	return s.Subscribe(topic.Value())
}

// DefaultHandler returns the built-in stream handler.
func DefaultHandler() *DefaultStreamHandler {
	return &DefaultStreamHandler{PubSub: pubsub.New[uint, any](10)}
}

// NilHandler returns a disabled stream handler.
func NilHandler() *NilStreamHandler {
	return &NilStreamHandler{}
}

// Publish publishes a message to the stream.
// Subscribers that cannot keep up miss the message rather than block the publisher.
func (d *DefaultStreamHandler) Publish(id uint, data any) {
	d.TryPub(data, id)
}

// Subscribe subscribes to messages from the stream.
func (d *DefaultStreamHandler) Subscribe(id uint) SubscriberID {
	ch := d.Sub(id)
	d.subscribers.Inc()

	return SubscriberID{
		C:      ch,
		tag:    xid.New(),
		active: true,
		unsub: func() {
			d.subscribers.Dec()
			go d.Unsub(ch, id)
		},
	}
}

// ActiveSubscribers returns the number of live stream subscriptions.
func (d *DefaultStreamHandler) ActiveSubscribers() uint32 {
	return d.subscribers.Load()
}

// Publish does not do anything.
func (n *NilStreamHandler) Publish(uint, any) {
}

// Subscribe does not do anything.
func (n *NilStreamHandler) Subscribe(uint) SubscriberID {
	ch := make(chan any)
	close(ch)

	return SubscriberID{C: ch, tag: xid.New()}
}
