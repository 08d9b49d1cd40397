package event

import (
	"reflect"
	"testing"
)

func TestEvent_TriggerOrder(t *testing.T) {
	var e Event[string]
	var got []string

	e.Subscribe(func(v string) { got = append(got, "a:"+v) })
	e.Subscribe(func(v string) { got = append(got, "b:"+v) })
	e.Trigger("x")

	want := []string{"a:x", "b:x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Trigger() calls = %v, want %v", got, want)
	}
}

func TestEvent_Unsubscribe(t *testing.T) {
	var e Event[int]
	calls := 0

	unsubscribe := e.Subscribe(func(int) { calls++ })
	e.Trigger(1)
	unsubscribe()
	unsubscribe()
	e.Trigger(2)

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d, want 0", e.Len())
	}
}

func TestEvent_UnsubscribeDuringDispatch(t *testing.T) {
	var e Event[int]
	calls := 0

	var unsubscribe func()
	unsubscribe = e.Subscribe(func(int) {
		calls++
		unsubscribe()
	})
	e.Subscribe(func(int) { calls++ })

	e.Trigger(1)
	e.Trigger(2)

	if calls != 3 {
		t.Errorf("listeners called %d times, want 3", calls)
	}
}

func TestEvent_NilListenerAndClear(t *testing.T) {
	var e Event[int]

	e.Subscribe(nil)()
	e.Subscribe(func(int) {})
	e.Subscribe(func(int) {})
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}

	e.Clear()
	e.Trigger(1)
	if e.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", e.Len())
	}
}
