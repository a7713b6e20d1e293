package bus

import (
	"testing"

	"fuelmate/internal/common/logger"
)

func TestSubscribeOncePublishOnce(t *testing.T) {
	b := New(logger.New("test"))
	calls := 0
	b.Subscribe(func() { calls++ })
	b.Publish()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestDuplicateSubscriptionInvokedTwice(t *testing.T) {
	b := New(logger.New("test"))
	calls := 0
	fn := func() { calls++ }
	b.Subscribe(fn)
	b.Subscribe(fn)
	b.Publish()
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New(logger.New("test"))
	calls := 0
	tok := b.Subscribe(func() { calls++ })
	b.Unsubscribe(tok)
	b.Publish()
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 after unsubscribe", calls)
	}
}

func TestUnsubscribeUnknownTokenIsNoop(t *testing.T) {
	b := New(logger.New("test"))
	calls := 0
	b.Subscribe(func() { calls++ })
	b.Unsubscribe(Token(999))
	b.Publish()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestPublishInRegistrationOrder(t *testing.T) {
	b := New(logger.New("test"))
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		b.Subscribe(func() { order = append(order, i) })
	}
	b.Publish()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("invocation order = %v, want [1 2 3]", order)
	}
}

func TestPanickingSubscriberDoesNotStopFanout(t *testing.T) {
	b := New(logger.New("test"))
	calls := 0
	b.Subscribe(func() { panic("boom") })
	b.Subscribe(func() { calls++ })
	b.Publish()
	if calls != 1 {
		t.Fatalf("subscriber after panic not invoked, calls = %d", calls)
	}
}
