/*
Package txlist decorates a list with transactions.

Reads go straight to the underlying list. Writes are recorded as change
events and replayed in order when the current transaction commits:

	l := txlist.New[string](nil)
	tx := l.BeginTransaction()
	l.Add("a")
	l.Insert(0, "b")
	err := tx.Commit()     // the list now holds [b a]

Commits are atomic: if a recorded change cannot be applied, the list is
restored to its state before the commit.

Clients may subscribe to commit notifications. Notifications are broadcast
asynchronously, every subscriber receives a CommitEvent per successful
commit.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package txlist

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'foundation.txlist'.
func tracer() tracing.Trace {
	return tracing.Select("foundation.txlist")
}
