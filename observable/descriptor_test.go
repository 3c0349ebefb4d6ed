package observable_test

import (
	"testing"

	"github.com/propparty/propparty/observable"
	"github.com/stretchr/testify/assert"
)

// overrides replace same-named base entries, everything else carries over
func TestExtendOverrides(t *testing.T) {
	base := observable.Schema{
		"kind":  "shape",
		"sides": 0,
	}
	overrides := observable.Schema{
		"kind":  "square",
		"sides": 4,
		"area":  16,
	}

	merged := observable.Extend(base, overrides)
	assert.Equal(t, "square", merged["kind"])
	assert.Equal(t, 4, merged["sides"])
	assert.Equal(t, 16, merged["area"])

	// inputs stay untouched
	assert.Equal(t, "shape", base["kind"])
	assert.Len(t, base, 2)
}

// computed properties declared on a base schema still land in the index
func TestInheritedComputedParticipates(t *testing.T) {
	base := observable.Schema{
		"price": 100,
		"priceWithTax": observable.Derive(func(o *observable.Object) any {
			return o.Get("price").(int) * 12 / 10
		}, "price"),
	}
	o := observable.New(observable.Extend(base, observable.Schema{
		"price": 200,
	}))

	fired := 0
	o.On(observable.Changed("priceWithTax"), func() { fired++ })

	assert.Equal(t, 240, o.Get("priceWithTax"))
	o.Set("price", 300)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 360, o.Get("priceWithTax"))
}

// an override can replace a stored base property with a computed one
func TestOverrideStoredWithComputed(t *testing.T) {
	base := observable.Schema{
		"greeting": "hello",
		"name":     "world",
	}
	o := observable.New(observable.Extend(base, observable.Schema{
		"greeting": observable.Derive(func(o *observable.Object) any {
			return "hello " + o.Get("name").(string)
		}, "name"),
	}))

	assert.Equal(t, "hello world", o.Get("greeting"))

	fired := 0
	o.On(observable.Changed("greeting"), func() { fired++ })
	o.Set("name", "gopher")
	assert.Equal(t, 1, fired)
	assert.Equal(t, "hello gopher", o.Get("greeting"))
}
