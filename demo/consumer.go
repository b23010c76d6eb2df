package demo

import (
	"fmt"

	"github.com/pd-org/go-event/event"
)

// Consumer subscribes to a widget's StringReversed event with two bound
// member handlers. Every handled fire is appended to Lines.
type Consumer struct {
	// Lines collects the output of every handled fire, in handling order.
	Lines []string

	widget *Widget
}

// NewConsumer returns a consumer attached to the widget.
//
// Both member handlers are bound; the secondary handler is then re-bound
// with OnlyUnique to demonstrate that a duplicate registration is ignored.
func NewConsumer(w *Widget) *Consumer {
	c := &Consumer{widget: w}

	event.Bind1(&w.StringReversed, (*Consumer).onReversedPrimary, c)
	event.Bind1(&w.StringReversed, (*Consumer).onReversedSecondary, c)
	event.Bind1(&w.StringReversed, (*Consumer).onReversedSecondary, c, event.OnlyUnique)

	return c
}

// DetachSecondary unsubscribes the secondary handler.
func (c *Consumer) DetachSecondary() {
	event.Unbind1(&c.widget.StringReversed, (*Consumer).onReversedSecondary, c)
}

// Detach unsubscribes both handlers.
func (c *Consumer) Detach() {
	event.Unbind1(&c.widget.StringReversed, (*Consumer).onReversedPrimary, c)
	c.DetachSecondary()
}

// Handling returns whether the primary handler is currently subscribed.
func (c *Consumer) Handling() bool {
	return c.widget.StringReversed.HasSubscriber(
		event.Identify((*Consumer).onReversedPrimary, c),
	)
}

func (c *Consumer) onReversedPrimary(data ReversedData) {
	c.Lines = append(c.Lines, fmt.Sprintf("primary: %s", data.Reversed))
}

func (c *Consumer) onReversedSecondary(data ReversedData) {
	c.Lines = append(c.Lines, fmt.Sprintf("secondary: %s", data.Reversed))
}
