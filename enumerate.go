package rangers

type enumCursor[T any] struct {
	i int
	p Cursor[T]
}

func (c enumCursor[T]) Get() Pair[int, T] {
	return Pair[int, T]{c.i, c.p.Get()}
}

type enumRanger[T any] struct {
	inner Ranger[T]
	index int
}

// Enumerate pairs each element of r with a zero-based index. The counter is
// part of the ranger's state: it advances once per offered element and
// persists across drives, so resuming after an early stop continues the
// numbering rather than restarting it.
func Enumerate[T any](r Ranger[T]) Ranger[Pair[int, T]] {
	return &enumRanger[T]{inner: r}
}

func (e *enumRanger[T]) Drive(dst Consumer[Pair[int, T]]) bool {
	return e.inner.Drive(func(p Cursor[T]) bool {
		c := enumCursor[T]{e.index, p}
		e.index++
		return dst(c)
	})
}

func (e *enumRanger[T]) Clone() Ranger[Pair[int, T]] {
	return &enumRanger[T]{inner: e.inner.Clone(), index: e.index}
}
