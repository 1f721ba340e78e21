package rangers

import (
	"golang.org/x/exp/constraints"
)

// KV is the element type of AllMap.
type KV[K comparable, V any] struct {
	Key   K
	Value V
}

type sliceCursor[T any] struct {
	s []T
	i int
}

func (c sliceCursor[T]) Get() T  { return c.s[c.i] }
func (c sliceCursor[T]) Set(v T) { c.s[c.i] = v }

type sliceRanger[T any] struct {
	s   []T
	pos int
}

// All returns a ranger over the elements of s, in order. The ranger
// references s rather than copying it; s must outlive the ranger, and its
// cursors write through to s via Setter.
func All[T any](s []T) Ranger[T] {
	return &sliceRanger[T]{s: s}
}

// Of is the value-capture variant of All for element lists the caller does
// not otherwise hold onto: the variadic call copies the elements into storage
// owned by the ranger.
func Of[T any](vs ...T) Ranger[T] {
	return &sliceRanger[T]{s: vs}
}

func (r *sliceRanger[T]) Drive(dst Consumer[T]) bool {
	for r.pos < len(r.s) {
		i := r.pos
		r.pos++ // resume past the offered element
		if !dst(sliceCursor[T]{r.s, i}) {
			return false
		}
	}
	return true
}

func (r *sliceRanger[T]) Clone() Ranger[T] {
	c := *r
	return &c
}

type mapCursor[K comparable, V any] struct {
	m map[K]V
	k K
}

func (c mapCursor[K, V]) Get() KV[K, V]  { return KV[K, V]{c.k, c.m[c.k]} }
func (c mapCursor[K, V]) Set(e KV[K, V]) { c.m[e.Key] = e.Value }

type mapRanger[K comparable, V any] struct {
	m    map[K]V
	keys []K
	pos  int
}

// AllMap returns a ranger over the entries of m in unspecified order. The key
// set is snapshotted at construction so the traversal is resumable; entries
// added to m afterwards are not seen, and a cursor for a since-deleted key
// yields a zero Value. Setting through a cursor writes the entry back into m.
func AllMap[K comparable, V any](m map[K]V) Ranger[KV[K, V]] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return &mapRanger[K, V]{m: m, keys: keys}
}

func (r *mapRanger[K, V]) Drive(dst Consumer[KV[K, V]]) bool {
	for r.pos < len(r.keys) {
		k := r.keys[r.pos]
		r.pos++
		if !dst(mapCursor[K, V]{r.m, k}) {
			return false
		}
	}
	return true
}

func (r *mapRanger[K, V]) Clone() Ranger[KV[K, V]] {
	c := *r
	return &c
}

type intCursor[T constraints.Integer] struct {
	n T
}

func (c intCursor[T]) Get() T { return c.n }

type rangeRanger[T constraints.Integer] struct {
	next, end T
}

// Range returns a ranger over the half-open interval [start, end). Its
// cursors are computed, not settable.
func Range[T constraints.Integer](start, end T) Ranger[T] {
	return &rangeRanger[T]{next: start, end: end}
}

func (r *rangeRanger[T]) Drive(dst Consumer[T]) bool {
	for r.next < r.end {
		n := r.next
		r.next++
		if !dst(intCursor[T]{n}) {
			return false
		}
	}
	return true
}

func (r *rangeRanger[T]) Clone() Ranger[T] {
	c := *r
	return &c
}
