package rangers

type filterRanger[T any] struct {
	inner Ranger[T]
	pred  func(T) bool
}

// Filter returns a ranger over the elements of r for which pred holds.
// Rejected elements are never offered downstream. pred runs once per
// candidate element per pass and should be a pure function of the element.
func Filter[T any](pred func(T) bool, r Ranger[T]) Ranger[T] {
	return &filterRanger[T]{inner: r, pred: pred}
}

func (f *filterRanger[T]) Drive(dst Consumer[T]) bool {
	return f.inner.Drive(func(c Cursor[T]) bool {
		if !f.pred(c.Get()) {
			return true
		}
		return dst(c)
	})
}

func (f *filterRanger[T]) Clone() Ranger[T] {
	return &filterRanger[T]{inner: f.inner.Clone(), pred: f.pred}
}
