package strict

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrDependencyCycle is returned by Set when the change cascade re-enters a
// property it is already notifying. The lenient engine in package observable
// recurses without bound instead; here the cascade fails fast with the
// offending property path in the wrapped error.
var ErrDependencyCycle = errors.New("dependency cycle")

// OnErrorFunc receives errors raised inside event handlers, where there is
// no caller to return them to.
type OnErrorFunc func(err error)

// Object is the fail-fast sibling of observable.Object: Set reports
// dependency cycles as errors, and subscriptions can be removed. Still
// single-goroutine, still synchronous.
type Object struct {
	props      map[string]any
	dependents map[string][]string
	subs       map[string][]*subscription
	visiting   mapset.Set[string]
	onError    OnErrorFunc
}

type subscription struct {
	fn func()
}

// New builds an object from its flattened schema. onError may be nil, in
// which case handler-raised errors are dropped.
func New(schema Schema, onError OnErrorFunc) *Object {
	o := &Object{
		props:      make(map[string]any, len(schema)),
		dependents: map[string][]string{},
		subs:       map[string][]*subscription{},
		visiting:   mapset.NewThreadUnsafeSet[string](),
		onError:    onError,
	}
	for name, v := range schema {
		o.props[name] = v
		c, ok := v.(*Computed)
		if !ok {
			continue
		}
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, watched := range c.Watches {
			if seen.Add(watched) {
				o.dependents[watched] = append(o.dependents[watched], name)
			}
		}
	}
	return o
}

// Changed returns the event key fired when the named property changes.
func Changed(name string) string {
	return name + ":changed"
}

// On subscribes fn to a named event and returns a func that removes exactly
// this subscription.
func (o *Object) On(event string, fn func()) (off func()) {
	sub := &subscription{fn: fn}
	o.subs[event] = append(o.subs[event], sub)
	return func() {
		list := o.subs[event]
		for i, s := range list {
			if s == sub {
				o.subs[event] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Fire invokes every current subscriber of the named event in registration
// order.
func (o *Object) Fire(event string) {
	for _, sub := range o.subs[event] {
		sub.fn()
	}
}

// Get returns the current value of the named property, invoking the getter
// when it is computed. Unknown names yield nil.
func (o *Object) Get(name string) any {
	if c, ok := o.props[name].(*Computed); ok {
		return c.Get(o)
	}
	return o.props[name]
}

// Set writes the named property and cascades change notifications depth
// first through everything that transitively watches it. Writing a computed
// property with no setter stays a silent no-op and returns nil. A cycle in
// the watch graph aborts the cascade with ErrDependencyCycle; subscribers
// notified before the cycle was found have already run.
func (o *Object) Set(name string, value any) error {
	c, isComputed := o.props[name].(*Computed)
	switch {
	case isComputed && c.Set == nil:
		return nil
	case isComputed:
		c.Set(o, value)
	default:
		o.props[name] = value
	}
	return o.changed(name)
}

func (o *Object) changed(name string) error {
	if !o.visiting.Add(name) {
		return fmt.Errorf("notifying %q: %w", name, ErrDependencyCycle)
	}
	defer o.visiting.Remove(name)

	o.Fire(Changed(name))
	for _, dependent := range o.dependents[name] {
		if err := o.changed(dependent); err != nil {
			return fmt.Errorf("dependent of %q: %w", name, err)
		}
	}
	return nil
}

func (o *Object) reportError(err error) {
	if err != nil && o.onError != nil {
		o.onError(err)
	}
}
