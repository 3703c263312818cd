package txlist

import (
	"context"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/guiguan/caster"
)

// Action is the kind of a recorded change.
type Action int8

// Actions which may be recorded.
const (
	ActionAdd Action = iota
	ActionInsert
	ActionReplace
	ActionRemove
	ActionRemoveAt
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionInsert:
		return "insert"
	case ActionReplace:
		return "replace"
	case ActionRemove:
		return "remove"
	case ActionRemoveAt:
		return "remove-at"
	case ActionClear:
		return "clear"
	}
	return "<unknown>"
}

// change is a recorded write to the list.
type change[T any] struct {
	action Action
	index  int
	value  T
}

// List is a transactional decorator of a Backing list.
//
// A List is not safe for concurrent use. Commit notifications are the only
// part crossing goroutines.
type List[T comparable] struct {
	backing Backing[T]
	changes []change[T]
	current uuid.UUID // id of the transaction in progress, or uuid.Nil
	cast    *caster.Caster
}

// New creates a transactional list on top of backing. If backing is nil, an
// empty SliceList is used.
func New[T comparable](backing Backing[T]) *List[T] {
	if backing == nil {
		backing = NewSliceList[T]()
	}
	return &List[T]{
		backing: backing,
		cast:    caster.New(context.Background()),
	}
}

// --- Reading ---------------------------------------------------------------

// Len returns the length of the underlying list. Pending changes are not
// considered.
func (l *List[T]) Len() int {
	return l.backing.Len()
}

// At returns the committed item at position i.
func (l *List[T]) At(i int) (T, error) {
	return l.backing.At(i)
}

// All iterates over the committed items.
func (l *List[T]) All() iter.Seq2[int, T] {
	return l.backing.All()
}

// IndexOf returns the position of the first committed item equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i, x := range l.backing.All() {
		if x == v {
			return i
		}
	}
	return -1
}

// Contains reports whether a committed item equals v.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// --- Writing ---------------------------------------------------------------

// Add records appending v.
func (l *List[T]) Add(v T) {
	l.record(change[T]{action: ActionAdd, value: v})
}

// Insert records inserting v at position i.
func (l *List[T]) Insert(i int, v T) {
	l.record(change[T]{action: ActionInsert, index: i, value: v})
}

// Set records replacing the item at position i by v.
func (l *List[T]) Set(i int, v T) {
	l.record(change[T]{action: ActionReplace, index: i, value: v})
}

// Remove records removing the first item equal to v. Nothing is recorded if
// no committed item equals v, and Remove returns false.
func (l *List[T]) Remove(v T) bool {
	if !l.Contains(v) {
		return false
	}
	l.record(change[T]{action: ActionRemove, value: v})
	return true
}

// RemoveAt records removing the item at position i.
func (l *List[T]) RemoveAt(i int) {
	l.record(change[T]{action: ActionRemoveAt, index: i})
}

// Clear records removing all items.
func (l *List[T]) Clear() {
	l.record(change[T]{action: ActionClear})
}

func (l *List[T]) record(c change[T]) {
	l.changes = append(l.changes, c)
}

// HasChanges reports whether changes are pending.
func (l *List[T]) HasChanges() bool {
	return len(l.changes) > 0
}

// Changes iterates over the pending changes, in recording order.
func (l *List[T]) Changes() iter.Seq2[Action, T] {
	return func(yield func(Action, T) bool) {
		for _, c := range l.changes {
			if !yield(c.action, c.value) {
				return
			}
		}
	}
}

// --- Transactions ----------------------------------------------------------

// Transaction is a unit of changes to a List.
type Transaction[T comparable] struct {
	id   uuid.UUID
	list *List[T]
}

// BeginTransaction starts a new transaction, discarding all pending changes.
// A transaction started earlier becomes closed.
func (l *List[T]) BeginTransaction() *Transaction[T] {
	l.changes = l.changes[:0]
	l.current = uuid.New()
	tracer().Debugf("txlist: begin transaction %s", l.current)
	return &Transaction[T]{id: l.current, list: l}
}

// ID returns the unique id of the transaction.
func (tx *Transaction[T]) ID() uuid.UUID {
	return tx.id
}

// IsOpen reports whether tx may still be committed or rolled back.
func (tx *Transaction[T]) IsOpen() bool {
	return tx != nil && tx.list != nil && tx.id != uuid.Nil && tx.list.current == tx.id
}

// Commit replays the pending changes in order on the underlying list. If a
// change cannot be applied, the list is restored and the error returned;
// tx then stays open with its changes pending. After a successful commit, subscribers are notified.
func (tx *Transaction[T]) Commit() error {
	if tx == nil || tx.list == nil {
		return ErrNoTransaction
	}
	if !tx.IsOpen() {
		return fmt.Errorf("%w: cannot commit %s", ErrTransactionClosed, tx.id)
	}
	l := tx.list
	snapshot := l.snapshot()
	for k, c := range l.changes {
		if err := l.apply(c); err != nil {
			l.restore(snapshot)
			tracer().Errorf("txlist: commit of %s failed at change #%d: %v", tx.id, k, err)
			return fmt.Errorf("txlist: change #%d (%s): %w", k, c.action, err)
		}
	}
	n := len(l.changes)
	l.changes = l.changes[:0]
	l.current = uuid.Nil
	tracer().Debugf("txlist: committed %s with %d changes", tx.id, n)
	l.notify(CommitEvent{TransactionID: tx.id, Changes: n, Len: l.backing.Len()})
	return nil
}

// Rollback discards all pending changes and closes tx.
func (tx *Transaction[T]) Rollback() error {
	if tx == nil || tx.list == nil {
		return ErrNoTransaction
	}
	if !tx.IsOpen() {
		return fmt.Errorf("%w: cannot roll back %s", ErrTransactionClosed, tx.id)
	}
	tx.list.changes = tx.list.changes[:0]
	tx.list.current = uuid.Nil
	tracer().Debugf("txlist: rolled back %s", tx.id)
	return nil
}

func (l *List[T]) apply(c change[T]) error {
	switch c.action {
	case ActionAdd:
		l.backing.Append(c.value)
	case ActionInsert:
		return l.backing.Insert(c.index, c.value)
	case ActionReplace:
		return l.backing.Set(c.index, c.value)
	case ActionRemove:
		if i := l.IndexOf(c.value); i >= 0 {
			return l.backing.RemoveAt(i)
		}
	case ActionRemoveAt:
		return l.backing.RemoveAt(c.index)
	case ActionClear:
		l.backing.Clear()
	}
	return nil
}

func (l *List[T]) snapshot() []T {
	items := make([]T, 0, l.backing.Len())
	for _, v := range l.backing.All() {
		items = append(items, v)
	}
	return items
}

func (l *List[T]) restore(items []T) {
	l.backing.Clear()
	for _, v := range items {
		l.backing.Append(v)
	}
}
