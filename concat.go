package rangers

type concatRanger[T any] struct {
	rs  []Ranger[T]
	cur int
}

// Concat returns a ranger over the elements of each rs[i] in turn: all of
// rs[0], then all of rs[1], and so on, never interleaved. A component that
// reported exhaustion is never driven again; an early stop inside a component
// leaves later components untouched until resumption.
func Concat[T any](rs ...Ranger[T]) Ranger[T] {
	return &concatRanger[T]{rs: rs}
}

func (c *concatRanger[T]) Drive(dst Consumer[T]) bool {
	for c.cur < len(c.rs) {
		if !c.rs[c.cur].Drive(dst) {
			return false
		}
		c.cur++
	}
	return true
}

func (c *concatRanger[T]) Clone() Ranger[T] {
	rs := make([]Ranger[T], len(c.rs))
	for i, r := range c.rs {
		rs[i] = r.Clone()
	}
	return &concatRanger[T]{rs: rs, cur: c.cur}
}
