package rangers

type uniqueRanger[T comparable] struct {
	inner   Ranger[T]
	started bool
	prev    Cursor[T]
}

// Unique returns a ranger that collapses runs of adjacent equal elements of r
// into their first occurrence. Equality is on dereferenced values. The ranger
// keeps the cursor of the last element it saw across calls, so the storage
// behind r must stay dereferenceable between steps; with Transform upstream
// this means the transform function re-runs on the stored cursor at every
// comparison.
func Unique[T comparable](r Ranger[T]) Ranger[T] {
	return &uniqueRanger[T]{inner: r}
}

func (u *uniqueRanger[T]) Drive(dst Consumer[T]) bool {
	if !u.started {
		u.started = true
		// Single-step pull to prime the previous cursor.
		if u.inner.Drive(func(q Cursor[T]) bool {
			u.prev = q
			return false
		}) {
			return true
		}
		if !dst(u.prev) {
			return false
		}
	}
	prev := u.prev
	return u.inner.Drive(func(q Cursor[T]) bool {
		if prev.Get() == q.Get() || dst(q) {
			prev = q
			return true
		}
		u.prev = q
		return false
	})
}

func (u *uniqueRanger[T]) Clone() Ranger[T] {
	return &uniqueRanger[T]{inner: u.inner.Clone(), started: u.started, prev: u.prev}
}
