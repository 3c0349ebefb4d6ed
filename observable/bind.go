package observable

// BindProperties keeps a's nameA and b's nameB equal. b's current value wins
// at bind time; after that every change to either side is copied across
// unless the two values already compare equal. That guard stops the direct
// a/b ping-pong; it does not protect cycles reached indirectly through
// computed watch lists. Bound values must be comparable or the guard panics.
//
// There is no unbind; both subscriptions live as long as the objects do.
func BindProperties(a *Object, nameA string, b *Object, nameB string) {
	updateAFromB := func() {
		if v := b.Get(nameB); v != a.Get(nameA) {
			a.Set(nameA, v)
		}
	}
	updateBFromA := func() {
		if v := a.Get(nameA); v != b.Get(nameB) {
			b.Set(nameB, v)
		}
	}
	a.On(Changed(nameA), updateBFromA)
	b.On(Changed(nameB), updateAFromB)
	updateAFromB()
}
