package txlist

import (
	"context"

	"github.com/google/uuid"
)

// CommitEvent is broadcast to subscribers after a successful commit.
type CommitEvent struct {
	TransactionID uuid.UUID
	Changes       int // number of changes replayed
	Len           int // length of the list after the commit
}

// Subscribe registers for commit notifications. The returned channel is
// closed when ctx is done or the list is closed. capacity is the buffer size
// of the subscription. ok is false if the list has already been closed.
//
// Commits never wait for subscribers: events a subscriber is not ready to
// receive are dropped.
func (l *List[T]) Subscribe(ctx context.Context, capacity uint) (<-chan CommitEvent, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-l.cast.Done():
		return nil, false
	default:
	}
	sub, ok := l.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	events := make(chan CommitEvent, capacity)
	go forward(ctx, sub, events)
	return events, true
}

// forward converts caster messages into typed events until in is closed or
// ctx is done.
func forward(ctx context.Context, in <-chan interface{}, out chan<- CommitEvent) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			e, isEvent := msg.(CommitEvent)
			if !isEvent {
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Close ends all subscriptions. The list stays usable, but commits are no
// longer broadcast.
func (l *List[T]) Close() {
	l.cast.Close()
}

func (l *List[T]) notify(e CommitEvent) {
	if !l.cast.TryPub(e) {
		tracer().Debugf("txlist: commit %s not broadcast, list closed or subscribers busy", e.TransactionID)
	}
}
