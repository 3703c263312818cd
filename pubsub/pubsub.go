package pubsub

import (
	"fmt"
	"iter"
	"sync"

	"github.com/google/uuid"
	"github.com/npillmayer/foundation"
	"github.com/npillmayer/foundation/multimap"
)

// Subscription identifies a handler subscribed to a subject.
type Subscription[S comparable] struct {
	ID      uuid.UUID
	Subject S
}

func (s Subscription[S]) String() string {
	return fmt.Sprintf("subscription(%v, %s)", s.Subject, s.ID)
}

// Subscriptions is a container of handlers of type F, keyed by subjects of
// type S.
type Subscriptions[S comparable, F any] struct {
	mu       sync.RWMutex
	subjects *multimap.Map[S, uuid.UUID]
	handlers map[uuid.UUID]F
}

// New creates an empty subscription container.
func New[S comparable, F any]() *Subscriptions[S, F] {
	return &Subscriptions[S, F]{
		subjects: multimap.New[S, uuid.UUID](),
		handlers: make(map[uuid.UUID]F),
	}
}

// Subscribe adds handler for subject and returns the new subscription.
func (subs *Subscriptions[S, F]) Subscribe(subject S, handler F) Subscription[S] {
	s := Subscription[S]{ID: uuid.New(), Subject: subject}
	subs.mu.Lock()
	defer subs.mu.Unlock()
	subs.subjects.Add(subject, s.ID)
	subs.handlers[s.ID] = handler
	tracer().Debugf("pubsub: new %v", s)
	return s
}

// Unsubscribe removes the handler of s. It returns false if s is not
// subscribed (any more).
func (subs *Subscriptions[S, F]) Unsubscribe(s Subscription[S]) bool {
	subs.mu.Lock()
	defer subs.mu.Unlock()
	if !subs.subjects.Remove(s.Subject, s.ID) {
		return false
	}
	delete(subs.handlers, s.ID)
	tracer().Debugf("pubsub: removed %v", s)
	return true
}

// UnsubscribeAll removes every handler of subject and returns their number.
func (subs *Subscriptions[S, F]) UnsubscribeAll(subject S) int {
	subs.mu.Lock()
	defer subs.mu.Unlock()
	ids, ok := subs.subjects.TryGetValues(subject)
	if !ok {
		return 0
	}
	for _, id := range ids {
		delete(subs.handlers, id)
	}
	subs.subjects.RemoveKey(subject)
	return len(ids)
}

// Handlers iterates over the handlers of subject, in order of subscription.
// The iteration works on a snapshot taken when it starts.
func (subs *Subscriptions[S, F]) Handlers(subject S) iter.Seq[F] {
	return func(yield func(F) bool) {
		for _, h := range subs.snapshot(subject) {
			if !yield(h) {
				return
			}
		}
	}
}

// Publish calls call once for every handler of subject and returns the
// number of handlers called.
func (subs *Subscriptions[S, F]) Publish(subject S, call func(F)) int {
	if call == nil {
		panic(fmt.Errorf("%w: pubsub.Publish: call is nil", foundation.ErrInvalidArgument))
	}
	handlers := subs.snapshot(subject)
	for _, h := range handlers {
		call(h)
	}
	tracer().Debugf("pubsub: published %v to %d handlers", subject, len(handlers))
	return len(handlers)
}

// Subjects iterates over the subjects having at least one handler at the
// time Subjects is called.
func (subs *Subscriptions[S, F]) Subjects() iter.Seq[S] {
	subs.mu.RLock()
	keys := make([]S, 0, subs.subjects.Len())
	for k := range subs.subjects.Keys() {
		keys = append(keys, k)
	}
	subs.mu.RUnlock()
	return func(yield func(S) bool) {
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Len returns the total number of subscriptions.
func (subs *Subscriptions[S, F]) Len() int {
	subs.mu.RLock()
	defer subs.mu.RUnlock()
	return len(subs.handlers)
}

func (subs *Subscriptions[S, F]) snapshot(subject S) []F {
	subs.mu.RLock()
	defer subs.mu.RUnlock()
	ids, _ := subs.subjects.TryGetValues(subject)
	handlers := make([]F, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, subs.handlers[id])
	}
	return handlers
}
