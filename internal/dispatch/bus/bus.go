// Package bus is the in-process notification fan-out: every order store
// mutation triggers one synchronous broadcast to all subscribers.
package bus

import (
	"sync"

	"fuelmate/internal/common/logger"
)

// Token identifies one subscription. Subscribing the same function twice
// yields two tokens and two invocations per publish.
type Token int

type subscriber struct {
	token Token
	fn    func()
}

type Bus struct {
	lg   *logger.Logger
	mu   sync.Mutex
	next Token
	subs []subscriber
}

func New(lg *logger.Logger) *Bus { return &Bus{lg: lg} }

// Subscribe registers fn and returns the token to unsubscribe with.
func (b *Bus) Subscribe(fn func()) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	b.subs = append(b.subs, subscriber{token: b.next, fn: fn})
	return b.next
}

// Unsubscribe removes the subscription; unknown tokens are a no-op.
func (b *Bus) Unsubscribe(t Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.token == t {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every subscriber synchronously in registration order.
// A panicking subscriber is logged and does not stop the fan-out.
func (b *Bus) Publish() {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		b.invoke(s)
	}
}

func (b *Bus) invoke(s subscriber) {
	defer func() {
		if r := recover(); r != nil && b.lg != nil {
			b.lg.Error("subscriber_panic", nil, map[string]any{"token": int(s.token), "panic": r})
		}
	}()
	s.fn()
}
