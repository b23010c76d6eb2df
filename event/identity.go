package event

import (
	"math/bits"
	"reflect"
)

// Identity uniquely addresses a subscription within an event's table for
// the lifetime of that subscription.
//
// Bound subscriptions derive their identity from the receiver pointer and
// the method's code pointer, so the same (receiver, method) pair always
// yields the same identity within one process run. Distinct pairs are
// expected, not guaranteed, to yield distinct identities; collisions are
// an accepted risk of this scheme. Anonymous subscriptions instead carry
// a fresh token issued at Subscribe time.
type Identity uint64

// tokenStride spreads anonymous tokens across the identity space.
// Odd, so consecutive counters always map to distinct identities.
const tokenStride = 0x9e3779b97f4a7c15

// token returns the identity for the nth anonymous subscription.
func token(n uint64) Identity {
	return Identity(n * tokenStride)
}

// Identify returns the identity for a (method, receiver) pair, as derived
// by the Bind family. The method must be a method expression on the
// receiver's pointer type, for example (*Consumer).OnChanged.
//
// Useful together with HasSubscriber to query membership of a bound
// handler without holding a token.
func Identify[T any, H any](method H, receiver *T) Identity {
	return identify(reflect.ValueOf(receiver).Pointer(), reflect.ValueOf(method).Pointer())
}

// identify mixes a receiver address and a method code address into a
// single identity. Rotating the receiver half keeps the two inputs from
// cancelling out when they share low bits.
func identify(receiver, method uintptr) Identity {
	return Identity(bits.RotateLeft64(uint64(receiver), 32) ^ uint64(method))
}
