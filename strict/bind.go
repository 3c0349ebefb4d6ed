package strict

// Bind keeps a's nameA equal to b's nameB, b winning at bind time. Same
// equality-guarded closures as observable.BindProperties, but errors from
// writes inside the handlers go to each object's OnErrorFunc, and the
// returned stop func removes both subscriptions. Stopping twice is fine.
func Bind(a *Object, nameA string, b *Object, nameB string) (stop func(), err error) {
	updateAFromB := func() error {
		if v := b.Get(nameB); v != a.Get(nameA) {
			return a.Set(nameA, v)
		}
		return nil
	}
	updateBFromA := func() error {
		if v := a.Get(nameA); v != b.Get(nameB) {
			return b.Set(nameB, v)
		}
		return nil
	}

	offA := a.On(Changed(nameA), func() {
		b.reportError(updateBFromA())
	})
	offB := b.On(Changed(nameB), func() {
		a.reportError(updateAFromB())
	})

	if err := updateAFromB(); err != nil {
		offA()
		offB()
		return nil, err
	}
	return func() {
		offA()
		offB()
	}, nil
}
