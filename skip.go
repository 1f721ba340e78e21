package rangers

import (
	"github.com/pkg/errors"
)

// SkipFirst returns a ranger over s without its first element. s must hold at
// least one element; this is not checked, and an empty s panics on the slice
// expression. Cursors address the original backing array, so writes through
// them are visible in s.
func SkipFirst[T any](s []T) Ranger[T] {
	return All(s[1:])
}

// SkipLast returns a ranger over s without its last element. s must hold at
// least one element; this is not checked.
func SkipLast[T any](s []T) Ranger[T] {
	return All(s[:len(s)-1])
}

// SkipBoth returns a ranger over s without its first and last elements. s
// must hold at least two elements; this is not checked.
func SkipBoth[T any](s []T) Ranger[T] {
	return All(s[1 : len(s)-1])
}

// SkipFirstChecked is SkipFirst with the length precondition validated.
func SkipFirstChecked[T any](s []T) (Ranger[T], error) {
	if len(s) < 1 {
		return nil, errors.Errorf("skip first: need at least 1 element, have %d", len(s))
	}
	return SkipFirst(s), nil
}

// SkipLastChecked is SkipLast with the length precondition validated.
func SkipLastChecked[T any](s []T) (Ranger[T], error) {
	if len(s) < 1 {
		return nil, errors.Errorf("skip last: need at least 1 element, have %d", len(s))
	}
	return SkipLast(s), nil
}

// SkipBothChecked is SkipBoth with the length precondition validated.
func SkipBothChecked[T any](s []T) (Ranger[T], error) {
	if len(s) < 2 {
		return nil, errors.Errorf("skip both: need at least 2 elements, have %d", len(s))
	}
	return SkipBoth(s), nil
}
