package observable

// Object owns current property values, the dependency index and a local
// subscriber table. Every operation runs to completion on the calling
// goroutine before returning; objects are not meant for concurrent use and
// take no locks.
type Object struct {
	props      map[string]any
	dependents map[string][]string
	subs       map[uint64][]Handler
}

// New builds an object from its flattened schema. The set of computed
// properties and their watch lists are fixed from here on; only values
// change, through Set or a computed setter's side effects.
func New(schema Schema) *Object {
	o := &Object{
		props:      make(map[string]any, len(schema)),
		dependents: buildDependencyIndex(schema),
		subs:       map[uint64][]Handler{},
	}
	for name, v := range schema {
		o.props[name] = v
	}
	return o
}

// Get returns the current value of the named property, invoking the getter
// when the property is computed. Getters may Get other properties, computed
// ones included, to arbitrary depth. Get never mutates state; a name that
// was never set yields nil.
func (o *Object) Get(name string) any {
	if c, ok := o.props[name].(*Computed); ok {
		return c.Get(o)
	}
	return o.props[name]
}

// Set writes the named property and notifies it and, depth first, every
// property that transitively watches it. The write is unconditional; there
// is no equality short-circuit. A write to a computed property without a
// setter is dropped silently and fires nothing, so callers doing blind
// writes never need to branch on the property kind.
//
// There is no cycle guard: a watch cycle among computed properties recurses
// without bound and is a caller error.
func (o *Object) Set(name string, value any) {
	if c, ok := o.props[name].(*Computed); ok {
		if c.Set == nil {
			return
		}
		c.Set(o, value)
	} else {
		o.props[name] = value
	}
	o.changed(name)
}

func (o *Object) changed(name string) {
	o.Fire(Changed(name))
	for _, dependent := range o.dependents[name] {
		o.changed(dependent)
	}
}
