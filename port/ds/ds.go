// Package ds contains the role interfaces of the sequence containers,
// and the bounds failure they report.
package ds

import "iter"

// Container is the minimal capability set a sequence has to provide
// so it can back a Stack or a Queue.
//
// The element type is the type parameter itself.
type Container[T any] interface {
	// Append adds a value to the end of the container.
	Append(v T) error
	// Get returns a copy of the element at the given index.
	Get(index int) (T, error)
	// Ref returns a pointer to the element at the given index,
	// which can be used to mutate the element in place.
	Ref(index int) (*T, error)
	// RemoveAt removes the element at the given index and returns it.
	RemoveAt(index int) (T, error)
	Len
}

// Sequence is the full contract shared by the sequence containers of this module.
type Sequence[T any] interface {
	Container[T]
	// InsertAt places a value at the given index.
	// When the index is beyond the current length, the gap is filled with default values.
	InsertAt(index int, v T) error
	// Set replaces the element at the given index.
	Set(index int, v T) error
	// At is the unchecked form of Get, it panics on an invalid index.
	At(index int) T
	// Clear returns the container to its just-constructed state.
	Clear()
	Values[T]
}

type Len interface {
	Len() int
}

type Appendable[T any] interface {
	Append(v T) error
}

type Values[T any] interface {
	Values() iter.Seq[T]
}

type SliceConvertable[T any] interface {
	ToSlice() []T
}
