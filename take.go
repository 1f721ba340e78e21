package rangers

type takeRanger[T any] struct {
	n     int
	inner Ranger[T]
}

// Take returns a ranger over the first n elements of r. n must be
// non-negative; n == 0 yields a ranger that is already exhausted and never
// touches r. Once the n-th element has been offered the ranger reports
// exhaustion, even when the consumer declined on that same element.
func Take[T any](n int, r Ranger[T]) Ranger[T] {
	return &takeRanger[T]{n: n, inner: r}
}

func (t *takeRanger[T]) Drive(dst Consumer[T]) bool {
	if t.n == 0 {
		return true
	}
	done := t.inner.Drive(func(c Cursor[T]) bool {
		t.n--
		return dst(c) && t.n != 0
	})
	return done || t.n == 0
}

func (t *takeRanger[T]) Clone() Ranger[T] {
	return &takeRanger[T]{n: t.n, inner: t.inner.Clone()}
}
