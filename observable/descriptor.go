package observable

// Schema declares an object's properties by name. A value that is a
// *Computed is a derived property; any other value is stored as-is.
type Schema map[string]any

// Computed describes a property whose value is derived from other properties
// on the same object. Watches lists the property names that invalidate it.
// Set is optional; a computed property without one is read-only.
type Computed struct {
	Watches []string
	Get     func(o *Object) any
	Set     func(o *Object, value any)
}

// Derive declares a read-only computed property. An empty watch list is
// valid: the getter then runs only on explicit Get, never from a cascade.
func Derive(get func(o *Object) any, watches ...string) *Computed {
	return &Computed{Watches: watches, Get: get}
}

// DeriveWritable is Derive with a setter. The setter is trusted to perform
// whatever underlying writes it needs; it does not have to write the
// property's own name.
func DeriveWritable(get func(o *Object) any, set func(o *Object, value any), watches ...string) *Computed {
	return &Computed{Watches: watches, Get: get, Set: set}
}

// Extend flattens a base schema and a set of overrides into a single table,
// overrides replacing same-named base entries. Neither input is modified.
func Extend(base, overrides Schema) Schema {
	merged := make(Schema, len(base)+len(overrides))
	for name, v := range base {
		merged[name] = v
	}
	for name, v := range overrides {
		merged[name] = v
	}
	return merged
}
