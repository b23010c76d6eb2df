package event

import (
	"reflect"
	"strconv"
	"testing"
)

// recorder is a test receiver whose methods log their invocations.
type recorder struct {
	calls []string
}

func (r *recorder) onFirst(s string) {
	r.calls = append(r.calls, "first:"+s)
}

func (r *recorder) onSecond(s string) {
	r.calls = append(r.calls, "second:"+s)
}

func (r *recorder) onTick() {
	r.calls = append(r.calls, "tick")
}

func (r *recorder) onPair(k string, v int) {
	r.calls = append(r.calls, k+"#"+strconv.Itoa(v))
}

func TestBindFire(t *testing.T) {
	var e Event1[string]
	r := &recorder{}

	Bind1(&e, (*recorder).onFirst, r)
	e.Fire("hello")

	want := []string{"first:hello"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}

	e.Fire("again")
	if len(r.calls) != 2 {
		t.Errorf("calls after second fire = %d, want 2", len(r.calls))
	}
}

func TestBindDuplicate(t *testing.T) {
	type tc struct {
		first, second Flag
	}

	tests := map[string]tc{
		"default then default":         {Default, Default},
		"default then only-unique":     {Default, OnlyUnique},
		"only-unique then only-unique": {OnlyUnique, OnlyUnique},
		"only-unique then default":     {OnlyUnique, Default},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var e Event1[string]
			r := &recorder{}

			Bind1(&e, (*recorder).onFirst, r, tt.first)
			Bind1(&e, (*recorder).onFirst, r, tt.second)

			if e.Len() != 1 {
				t.Fatalf("Len() after double bind = %d, want 1", e.Len())
			}

			e.Fire("x")
			if len(r.calls) != 1 {
				t.Errorf("handler invoked %d times, want 1", len(r.calls))
			}

			// A single unbind fully removes the subscription.
			Unbind1(&e, (*recorder).onFirst, r)
			if e.Len() != 0 {
				t.Errorf("Len() after unbind = %d, want 0", e.Len())
			}
		})
	}
}

func TestUnbindAbsent(t *testing.T) {
	var e Event1[string]
	r, stranger := &recorder{}, &recorder{}

	Bind1(&e, (*recorder).onFirst, r)

	Unbind1(&e, (*recorder).onSecond, r)
	Unbind1(&e, (*recorder).onFirst, stranger)

	if e.Len() != 1 {
		t.Errorf("Len() after absent unbinds = %d, want 1", e.Len())
	}
}

func TestHasSubscriber(t *testing.T) {
	var e Event1[string]
	r := &recorder{}

	id := Identify((*recorder).onFirst, r)
	if e.HasSubscriber(id) {
		t.Error("HasSubscriber() = true before bind")
	}

	Bind1(&e, (*recorder).onFirst, r)
	if !e.HasSubscriber(id) {
		t.Error("HasSubscriber() = false after bind")
	}

	Unbind1(&e, (*recorder).onFirst, r)
	if e.HasSubscriber(id) {
		t.Error("HasSubscriber() = true after unbind")
	}
}

func TestFireEmpty(t *testing.T) {
	var e Event1[string]
	e.Fire("nobody home")

	var e0 Event0
	e0.Fire()
}

func TestDistinctReceivers(t *testing.T) {
	var e Event1[string]
	first, second := &recorder{}, &recorder{}

	Bind1(&e, (*recorder).onFirst, first)
	Bind1(&e, (*recorder).onFirst, second)

	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 independent subscriptions", e.Len())
	}

	idFirst := Identify((*recorder).onFirst, first)
	idSecond := Identify((*recorder).onFirst, second)
	if idFirst == idSecond {
		t.Fatal("identities for distinct receivers collide")
	}

	// Removing one leaves the other live.
	Unbind1(&e, (*recorder).onFirst, first)

	e.Fire("ping")
	if len(first.calls) != 0 {
		t.Errorf("unbound receiver invoked %d times, want 0", len(first.calls))
	}
	if len(second.calls) != 1 {
		t.Errorf("bound receiver invoked %d times, want 1", len(second.calls))
	}
}

func TestOnlyUniqueRebind(t *testing.T) {
	var e Event1[string]
	r := &recorder{}

	Bind1(&e, (*recorder).onFirst, r)
	before := e.Len()

	Bind1(&e, (*recorder).onFirst, r, OnlyUnique)
	if e.Len() != before {
		t.Errorf("Len() after OnlyUnique rebind = %d, want %d", e.Len(), before)
	}
}

func TestEndToEnd(t *testing.T) {
	var e Event1[string]
	r := &recorder{}
	var anon []string

	Bind1(&e, (*recorder).onFirst, r)
	Bind1(&e, (*recorder).onSecond, r)
	e.Subscribe(func(s string) {
		anon = append(anon, "anon:"+s)
	})

	e.Fire("x")

	want := []string{"first:x", "second:x"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("bound calls = %v, want %v", r.calls, want)
	}
	if !reflect.DeepEqual(anon, []string{"anon:x"}) {
		t.Errorf("anonymous calls = %v, want [anon:x]", anon)
	}

	Unbind1(&e, (*recorder).onSecond, r)
	r.calls, anon = nil, nil

	e.Fire("y")

	if !reflect.DeepEqual(r.calls, []string{"first:y"}) {
		t.Errorf("bound calls after unbind = %v, want [first:y]", r.calls)
	}
	if !reflect.DeepEqual(anon, []string{"anon:y"}) {
		t.Errorf("anonymous calls after unbind = %v, want [anon:y]", anon)
	}
}

func TestInsertionOrder(t *testing.T) {
	var e Event1[string]
	var order []int

	for i := 0; i < 8; i++ {
		e.Subscribe(func(string) {
			order = append(order, i)
		})
	}

	e.Fire("go")

	for i, got := range order {
		if got != i {
			t.Fatalf("dispatch order = %v, want strict insertion order", order)
		}
	}
	if len(order) != 8 {
		t.Errorf("invoked %d subscribers, want 8", len(order))
	}
}

func TestAnonymousTokens(t *testing.T) {
	var e Event0

	seen := make(map[Identity]bool)
	var ids []Identity
	for i := 0; i < 16; i++ {
		id := e.Subscribe(func() {})
		if seen[id] {
			t.Fatalf("duplicate anonymous token %#x", id)
		}
		seen[id] = true
		ids = append(ids, id)
	}

	// Tokens address their subscriptions for removal.
	for _, id := range ids {
		if !e.HasSubscriber(id) {
			t.Fatalf("HasSubscriber(%#x) = false for live token", id)
		}
		e.Unsubscribe(id)
		if e.HasSubscriber(id) {
			t.Fatalf("HasSubscriber(%#x) = true after Unsubscribe", id)
		}
	}

	if e.Len() != 0 {
		t.Errorf("Len() = %d after removing every token, want 0", e.Len())
	}
}

func TestUnsubscribeAbsentToken(t *testing.T) {
	var e Event0
	e.Subscribe(func() {})

	e.Unsubscribe(Identity(0xdeadbeef))

	if e.Len() != 1 {
		t.Errorf("Len() = %d after absent Unsubscribe, want 1", e.Len())
	}
}

func TestArityFamily(t *testing.T) {
	r := &recorder{}

	var e0 Event0
	Bind0(&e0, (*recorder).onTick, r)
	e0.Fire()

	var e2 Event2[string, int]
	Bind2(&e2, (*recorder).onPair, r)
	e2.Fire("pair", 2)

	var got3 [3]int
	e3 := New3[int, int, int]()
	e3.Subscribe(func(a, b, c int) {
		got3 = [3]int{a, b, c}
	})
	e3.Fire(1, 2, 3)

	var got4 string
	e4 := New4[string, string, string, string]()
	e4.Subscribe(func(a, b, c, d string) {
		got4 = a + b + c + d
	})
	e4.Fire("a", "b", "c", "d")

	want := []string{"tick", "pair#2"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("bound calls = %v, want %v", r.calls, want)
	}
	if got3 != [3]int{1, 2, 3} {
		t.Errorf("three-argument fire = %v, want [1 2 3]", got3)
	}
	if got4 != "abcd" {
		t.Errorf("four-argument fire = %q, want %q", got4, "abcd")
	}
}

func TestIdentifyStable(t *testing.T) {
	r := &recorder{}

	if Identify((*recorder).onFirst, r) != Identify((*recorder).onFirst, r) {
		t.Error("Identify() is not stable for the same (method, receiver) pair")
	}
	if Identify((*recorder).onFirst, r) == Identify((*recorder).onSecond, r) {
		t.Error("Identify() collides for distinct methods on one receiver")
	}
}
