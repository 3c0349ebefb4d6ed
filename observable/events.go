package observable

import "github.com/cespare/xxhash/v2"

// Handler subscribes to a named event. Handlers receive no payload; they read
// whatever they need back off the object with Get.
type Handler func()

const changedSuffix = ":changed"

// Changed returns the event key fired when the named property changes.
func Changed(name string) string {
	return name + changedSuffix
}

// Event names are interned to xxhash sums so the subscriber table never
// retains the concatenated key strings. Distinct names colliding on a sum
// would share a subscriber list; this is not guarded.
func intern(event string) uint64 {
	return xxhash.Sum64String(event)
}

// On subscribes fn to a named event. Every object owns its own subscriber
// table; there is no process-wide registry and no unsubscribe.
func (o *Object) On(event string, fn Handler) {
	key := intern(event)
	o.subs[key] = append(o.subs[key], fn)
}

// Fire synchronously invokes every current subscriber of the named event in
// registration order.
func (o *Object) Fire(event string) {
	for _, fn := range o.subs[intern(event)] {
		fn()
	}
}
