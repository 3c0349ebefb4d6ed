package strict

// Schema declares an object's properties by name, a *Computed value marking
// a derived property. Same declaration surface as package observable; the
// two engines differ in what happens after a write goes wrong.
type Schema map[string]any

// Computed describes a property derived from other properties on the same
// object. A nil Set makes it read-only.
type Computed struct {
	Watches []string
	Get     func(o *Object) any
	Set     func(o *Object, value any)
}

// Derive declares a read-only computed property.
func Derive(get func(o *Object) any, watches ...string) *Computed {
	return &Computed{Watches: watches, Get: get}
}

// DeriveWritable is Derive with a setter.
func DeriveWritable(get func(o *Object) any, set func(o *Object, value any), watches ...string) *Computed {
	return &Computed{Watches: watches, Get: get, Set: set}
}

// Extend flattens a base schema and overrides into one table, overrides
// replacing same-named base entries.
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
