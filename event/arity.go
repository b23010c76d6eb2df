package event

// The Event0 through Event4 family covers every supported handler arity.
// Four positional arguments is the maximum; higher arities have no type
// in the family and therefore cannot be declared.
//
// The zero value of every event is ready to use, so publishers can hold
// one as a plain struct field:
//
//	type Widget struct {
//		Changed event.Event1[string]
//	}

// Event0 broadcasts to handlers taking no arguments.
type Event0 struct {
	base[func()]
}

// Event1 broadcasts to handlers taking one argument.
type Event1[A1 any] struct {
	base[func(A1)]
}

// Event2 broadcasts to handlers taking two arguments.
type Event2[A1, A2 any] struct {
	base[func(A1, A2)]
}

// Event3 broadcasts to handlers taking three arguments.
type Event3[A1, A2, A3 any] struct {
	base[func(A1, A2, A3)]
}

// Event4 broadcasts to handlers taking four arguments.
type Event4[A1, A2, A3, A4 any] struct {
	base[func(A1, A2, A3, A4)]
}

// New0 returns a new event with no handler arguments.
func New0() *Event0 {
	return &Event0{}
}

// New1 returns a new event with one handler argument.
func New1[A1 any]() *Event1[A1] {
	return &Event1[A1]{}
}

// New2 returns a new event with two handler arguments.
func New2[A1, A2 any]() *Event2[A1, A2] {
	return &Event2[A1, A2]{}
}

// New3 returns a new event with three handler arguments.
func New3[A1, A2, A3 any]() *Event3[A1, A2, A3] {
	return &Event3[A1, A2, A3]{}
}

// New4 returns a new event with four handler arguments.
func New4[A1, A2, A3, A4 any]() *Event4[A1, A2, A3, A4] {
	return &Event4[A1, A2, A3, A4]{}
}

// Fire calls every subscriber in registration order.
// An event with no subscribers fires as a no-op. A panicking subscriber
// propagates to the caller; the remaining subscribers are skipped.
func (e *Event0) Fire() {
	for _, r := range e.records {
		r.handler()
	}
}

// Fire calls every subscriber in registration order with the given argument.
func (e *Event1[A1]) Fire(a1 A1) {
	for _, r := range e.records {
		r.handler(a1)
	}
}

// Fire calls every subscriber in registration order with the given arguments.
func (e *Event2[A1, A2]) Fire(a1 A1, a2 A2) {
	for _, r := range e.records {
		r.handler(a1, a2)
	}
}

// Fire calls every subscriber in registration order with the given arguments.
func (e *Event3[A1, A2, A3]) Fire(a1 A1, a2 A2, a3 A3) {
	for _, r := range e.records {
		r.handler(a1, a2, a3)
	}
}

// Fire calls every subscriber in registration order with the given arguments.
func (e *Event4[A1, A2, A3, A4]) Fire(a1 A1, a2 A2, a3 A3, a4 A4) {
	for _, r := range e.records {
		r.handler(a1, a2, a3, a4)
	}
}

// Bind0 subscribes a method with no arguments to an event.
// The method is given as a method expression on the receiver's pointer
// type, for example:
//
//	event.Bind0(&w.Closed, (*Consumer).OnClosed, c)
//
// Binding a (method, receiver) pair whose identity is already subscribed
// is a silent no-op under both flags.
func Bind0[T any](e *Event0, method func(*T), receiver *T, flags ...Flag) {
	e.add(Identify(method, receiver), func() { method(receiver) }, flagOf(flags))
}

// Bind1 subscribes a method with one argument to an event.
func Bind1[T, A1 any](e *Event1[A1], method func(*T, A1), receiver *T, flags ...Flag) {
	e.add(Identify(method, receiver), func(a1 A1) { method(receiver, a1) }, flagOf(flags))
}

// Bind2 subscribes a method with two arguments to an event.
func Bind2[T, A1, A2 any](e *Event2[A1, A2], method func(*T, A1, A2), receiver *T, flags ...Flag) {
	e.add(Identify(method, receiver), func(a1 A1, a2 A2) { method(receiver, a1, a2) }, flagOf(flags))
}

// Bind3 subscribes a method with three arguments to an event.
func Bind3[T, A1, A2, A3 any](e *Event3[A1, A2, A3], method func(*T, A1, A2, A3), receiver *T, flags ...Flag) {
	e.add(Identify(method, receiver), func(a1 A1, a2 A2, a3 A3) { method(receiver, a1, a2, a3) }, flagOf(flags))
}

// Bind4 subscribes a method with four arguments to an event.
func Bind4[T, A1, A2, A3, A4 any](e *Event4[A1, A2, A3, A4], method func(*T, A1, A2, A3, A4), receiver *T, flags ...Flag) {
	e.add(Identify(method, receiver), func(a1 A1, a2 A2, a3 A3, a4 A4) { method(receiver, a1, a2, a3, a4) }, flagOf(flags))
}

// Unbind0 removes a previously bound (method, receiver) subscription.
// A pair that was never bound is a silent no-op.
func Unbind0[T any](e *Event0, method func(*T), receiver *T) {
	e.remove(Identify(method, receiver))
}

// Unbind1 removes a previously bound (method, receiver) subscription.
func Unbind1[T, A1 any](e *Event1[A1], method func(*T, A1), receiver *T) {
	e.remove(Identify(method, receiver))
}

// Unbind2 removes a previously bound (method, receiver) subscription.
func Unbind2[T, A1, A2 any](e *Event2[A1, A2], method func(*T, A1, A2), receiver *T) {
	e.remove(Identify(method, receiver))
}

// Unbind3 removes a previously bound (method, receiver) subscription.
func Unbind3[T, A1, A2, A3 any](e *Event3[A1, A2, A3], method func(*T, A1, A2, A3), receiver *T) {
	e.remove(Identify(method, receiver))
}

// Unbind4 removes a previously bound (method, receiver) subscription.
func Unbind4[T, A1, A2, A3, A4 any](e *Event4[A1, A2, A3, A4], method func(*T, A1, A2, A3, A4), receiver *T) {
	e.remove(Identify(method, receiver))
}

// flagOf resolves the optional trailing flag of a Bind call.
func flagOf(flags []Flag) Flag {
	if len(flags) == 0 {
		return Default
	}

	return flags[0]
}
