package rangers

// Pair is the element type of Zip2 and Enumerate.
type Pair[A, B any] struct {
	First  A
	Second B
}

type zip2Cursor[A, B any] struct {
	pa Cursor[A]
	pb Cursor[B]
}

func (c zip2Cursor[A, B]) Get() Pair[A, B] {
	return Pair[A, B]{c.pa.Get(), c.pb.Get()}
}

type zip2Ranger[A, B any] struct {
	a Ranger[A]
	b Ranger[B]
}

// Zip2 returns a ranger over pairs of elements drawn in lockstep from a and
// b: one pull per component per pair. It emits min(len(a), len(b)) pairs; the
// moment either component exhausts during the lockstep pull, the zip as a
// whole is exhausted.
func Zip2[A, B any](a Ranger[A], b Ranger[B]) Ranger[Pair[A, B]] {
	return &zip2Ranger[A, B]{a: a, b: b}
}

func (z *zip2Ranger[A, B]) Drive(dst Consumer[Pair[A, B]]) bool {
	finished := false
	return z.a.Drive(func(pa Cursor[A]) bool {
		var pb Cursor[B]
		if z.b.Drive(func(q Cursor[B]) bool {
			pb = q
			return false
		}) {
			finished = true
			return false
		}
		return dst(zip2Cursor[A, B]{pa, pb})
	}) || finished
}

func (z *zip2Ranger[A, B]) Clone() Ranger[Pair[A, B]] {
	return &zip2Ranger[A, B]{a: z.a.Clone(), b: z.b.Clone()}
}

type zipCursor[T any] struct {
	ps []Cursor[T]
}

func (c zipCursor[T]) Get() []T {
	vs := make([]T, len(c.ps))
	for i, p := range c.ps {
		vs[i] = p.Get()
	}
	return vs
}

type zipRanger[T any] struct {
	head Ranger[T]
	rest []Ranger[T]
}

// Zip is the N-ary variant of Zip2 for components of one element type. Each
// emitted cursor yields a slice with one element per component, in component
// order; output length is the minimum component length.
func Zip[T any](r Ranger[T], rs ...Ranger[T]) Ranger[[]T] {
	return &zipRanger[T]{head: r, rest: rs}
}

func (z *zipRanger[T]) Drive(dst Consumer[[]T]) bool {
	finished := false
	return z.head.Drive(func(p Cursor[T]) bool {
		ps := make([]Cursor[T], len(z.rest)+1)
		ps[0] = p
		for i, r := range z.rest {
			if r.Drive(func(q Cursor[T]) bool {
				ps[i+1] = q
				return false
			}) {
				finished = true
				return false
			}
		}
		return dst(zipCursor[T]{ps})
	}) || finished
}

func (z *zipRanger[T]) Clone() Ranger[[]T] {
	rest := make([]Ranger[T], len(z.rest))
	for i, r := range z.rest {
		rest[i] = r.Clone()
	}
	return &zipRanger[T]{head: z.head.Clone(), rest: rest}
}
