// Package sorted provides Array, a dynamic array kept in ascending order.
//
// Array manages its own capacity rather than relying on append: storage
// doubles when an insertion finds it full and halves once a deletion leaves it
// at most one-third used. Values read out of the array must not be held as
// slices into its storage across Insert, InsertAt or Delete, which may
// reallocate.
package sorted

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/kilianp07/dayplanner/core/errdefs"
)

const (
	// DefaultCapacity is the capacity of an Array built by New.
	DefaultCapacity = 2
	// MinCapacity is the smallest capacity an Array ever has.
	MinCapacity = 2
	// MaxCapacity is the largest capacity Grow will reach.
	MaxCapacity = math.MaxInt - 50
)

// Array is a generic sorted dynamic array. The order is defined by the
// comparator given at construction; equal elements keep insertion order.
type Array[T any] struct {
	cmp      func(a, b T) int
	data     []T
	size     int
	maxCap   int
	onResize func(from, to int)
}

// New returns an empty Array with DefaultCapacity.
func New[T any](cmp func(a, b T) int) *Array[T] {
	return &Array[T]{cmp: cmp, data: make([]T, DefaultCapacity), maxCap: MaxCapacity}
}

// NewWithCapacity returns an empty Array with the given initial capacity,
// which must be within [MinCapacity, MaxCapacity].
func NewWithCapacity[T any](cmp func(a, b T) int, capacity int) (*Array[T], error) {
	a := &Array[T]{cmp: cmp, maxCap: MaxCapacity}
	if capacity < MinCapacity {
		return nil, errdefs.InvalidArgumentf("capacity %d must be at least %d", capacity, MinCapacity)
	}
	if capacity > a.maxCap {
		return nil, errdefs.InvalidArgumentf("capacity %d must be at most %d", capacity, a.maxCap)
	}
	a.data = make([]T, capacity)
	return a, nil
}

// OnResize registers fn to be called after each reallocation with the old
// and new capacity.
func (a *Array[T]) OnResize(fn func(from, to int)) { a.onResize = fn }

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of elements that fit before the next growth.
func (a *Array[T]) Cap() int { return len(a.data) }

// Insert adds v after every element that does not compare greater than it.
func (a *Array[T]) Insert(v T) error {
	if isAbsent(v) {
		return errors.Wrap(errdefs.ErrInvalidArgument, "insert: nil value")
	}
	if err := a.ensureRoom(); err != nil {
		return errors.Wrap(err, "insert")
	}
	idx := a.size
	for i := 0; i < a.size; i++ {
		if a.cmp(v, a.data[i]) < 0 {
			idx = i
			break
		}
	}
	a.insertAt(idx, v)
	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, errdefs.IndexOutOfRangef("get: index %d not in [0, %d)", i, a.size)
	}
	return a.data[i], nil
}

// Replace overwrites the element at index i with v if v fits between its
// immediate neighbours. It reports false, leaving the array unchanged, when
// it does not. Only adjacent elements are checked.
func (a *Array[T]) Replace(i int, v T) (bool, error) {
	if i < 0 || i >= a.size {
		return false, errdefs.IndexOutOfRangef("replace: index %d not in [0, %d)", i, a.size)
	}
	if isAbsent(v) {
		return false, errors.Wrap(errdefs.ErrInvalidArgument, "replace: nil value")
	}
	if i > 0 && a.cmp(v, a.data[i-1]) < 0 {
		return false, nil
	}
	if i < a.size-1 && a.cmp(v, a.data[i+1]) > 0 {
		return false, nil
	}
	a.data[i] = v
	return true, nil
}

// InsertAt places v at index i, shifting later elements right, if v fits
// between the elements that would surround it. It reports false, leaving the
// array unchanged, when it does not. As with Replace, only adjacent elements
// are checked. Valid indexes are [0, Len()].
func (a *Array[T]) InsertAt(i int, v T) (bool, error) {
	if i < 0 || i > a.size {
		return false, errdefs.IndexOutOfRangef("insert at: index %d not in [0, %d]", i, a.size)
	}
	if isAbsent(v) {
		return false, errors.Wrap(errdefs.ErrInvalidArgument, "insert at: nil value")
	}
	if a.size == 0 {
		if err := a.Insert(v); err != nil {
			return false, err
		}
		return true, nil
	}
	if i > 0 && a.cmp(v, a.data[i-1]) < 0 {
		return false, nil
	}
	if i < a.size && a.cmp(v, a.data[i]) > 0 {
		return false, nil
	}
	if err := a.ensureRoom(); err != nil {
		return false, errors.Wrap(err, "insert at")
	}
	a.insertAt(i, v)
	return true, nil
}

// Delete removes and returns the element at index i. Storage is halved when
// the array drops to a third of its capacity or less.
func (a *Array[T]) Delete(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.size {
		return zero, errdefs.IndexOutOfRangef("delete: index %d not in [0, %d)", i, a.size)
	}
	v := a.data[i]
	copy(a.data[i:a.size-1], a.data[i+1:a.size])
	a.size--
	a.data[a.size] = zero
	if a.size <= len(a.data)/3 {
		a.Shrink()
	}
	return v, nil
}

// Grow doubles the capacity, clamped to MaxCapacity. It reports false only
// when the capacity is already at the maximum.
func (a *Array[T]) Grow() bool {
	c := len(a.data)
	if c >= a.maxCap {
		return false
	}
	next := a.maxCap
	if c <= a.maxCap/2 {
		next = c * 2
	}
	a.resize(next)
	return true
}

// Shrink halves the capacity, never going below MinCapacity. It reports false
// without reallocating if the halved capacity could not hold every element.
func (a *Array[T]) Shrink() bool {
	next := len(a.data) / 2
	if next < MinCapacity {
		next = MinCapacity
	}
	if next < a.size {
		return false
	}
	a.resize(next)
	return true
}

// Values returns a copy of the elements in order.
func (a *Array[T]) Values() []T {
	out := make([]T, a.size)
	copy(out, a.data[:a.size])
	return out
}

func (a *Array[T]) ensureRoom() error {
	if a.size < len(a.data) {
		return nil
	}
	if !a.Grow() {
		return errors.Wrapf(errdefs.ErrCapacityExhausted, "capacity %d reached", len(a.data))
	}
	return nil
}

// insertAt shifts [i, size) one slot right and stores v at i. The caller has
// made room.
func (a *Array[T]) insertAt(i int, v T) {
	copy(a.data[i+1:a.size+1], a.data[i:a.size])
	a.data[i] = v
	a.size++
}

func (a *Array[T]) resize(capacity int) {
	from := len(a.data)
	if capacity == from {
		return
	}
	data := make([]T, capacity)
	copy(data, a.data[:a.size])
	a.data = data
	if a.onResize != nil {
		a.onResize(from, capacity)
	}
}

// isAbsent reports whether v is a nil pointer, interface, map, slice, func or
// channel.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
