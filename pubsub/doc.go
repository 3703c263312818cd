/*
Package pubsub keeps subscriptions of handlers to subjects.

Handlers are stored in a multimap.Map from subject to subscription ids,
keeping the order of subscription per subject. Publishing a subject calls
every handler subscribed to it, in that order:

	subs := pubsub.New[string, func(string)]()
	s := subs.Subscribe("greet", func(name string) { fmt.Println("hello", name) })
	subs.Publish("greet", func(h func(string)) { h("world") })
	subs.Unsubscribe(s)

Subscriptions are safe for concurrent use. Handlers are called without any
lock held and may therefore subscribe or unsubscribe.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pubsub

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'foundation.pubsub'.
func tracer() tracing.Trace {
	return tracing.Select("foundation.pubsub")
}
