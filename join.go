package rangers

type joinRanger[E, T any] struct {
	outer Ranger[E]
	adapt func(E) Ranger[T]
	open  Ranger[T]
}

// JoinWith flattens r: each outer element is adapted into a sub-ranger and
// its elements are emitted before the next outer element is pulled. At most
// one sub-ranger is open at a time; a sub-ranger stopped early is resumed on
// the next drive before the outer traversal continues.
func JoinWith[E, T any](adapt func(E) Ranger[T], r Ranger[E]) Ranger[T] {
	return &joinRanger[E, T]{outer: r, adapt: adapt}
}

// Join flattens a ranger whose elements already are rangers.
func Join[T any](r Ranger[Ranger[T]]) Ranger[T] {
	return JoinWith(func(sub Ranger[T]) Ranger[T] { return sub }, r)
}

// JoinSlices flattens a ranger of slices, adapting each slice via All.
func JoinSlices[S ~[]E, E any](r Ranger[S]) Ranger[E] {
	return JoinWith(func(s S) Ranger[E] { return All([]E(s)) }, r)
}

func (j *joinRanger[E, T]) Drive(dst Consumer[T]) bool {
	if j.open != nil {
		if !j.open.Drive(dst) {
			return false
		}
		j.open = nil
	}
	return j.outer.Drive(func(p Cursor[E]) bool {
		sub := j.adapt(p.Get())
		if !sub.Drive(dst) {
			j.open = sub
			return false
		}
		return true
	})
}

func (j *joinRanger[E, T]) Clone() Ranger[T] {
	c := &joinRanger[E, T]{outer: j.outer.Clone(), adapt: j.adapt}
	if j.open != nil {
		c.open = j.open.Clone()
	}
	return c
}
