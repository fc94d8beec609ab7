package dynarray

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrIteratorInvalidated errorkit.Error = "dynarray: iterator used after its buffer was replaced"
	ErrIteratorEnd         errorkit.Error = "dynarray: iterator points outside of the live elements"
)

// Iterator is a random access position in a DynamicArray.
//
// It stays valid until the array's buffer is replaced
// (growth, InsertAt, RemoveAt, Clear, Swap, Assign).
// Dereferencing an invalidated iterator panics with ErrIteratorInvalidated.
type Iterator[T any] struct {
	arr *DynamicArray[T]
	pos int
	gen uint64
}

// Begin returns an iterator to the first element.
func (a *DynamicArray[T]) Begin() Iterator[T] {
	return Iterator[T]{arr: a, pos: 0, gen: a.gen}
}

// End returns an iterator to the position after the last element.
func (a *DynamicArray[T]) End() Iterator[T] {
	return Iterator[T]{arr: a, pos: a.size, gen: a.gen}
}

func (it Iterator[T]) Valid() bool {
	return it.arr != nil && it.arr.gen == it.gen
}

func (it Iterator[T]) Value() T {
	return *it.Ref()
}

func (it Iterator[T]) Ref() *T {
	if !it.Valid() {
		panic(ErrIteratorInvalidated)
	}
	if it.pos < 0 || it.arr.size <= it.pos {
		panic(ErrIteratorEnd)
	}
	return &it.arr.buf[it.pos]
}

// Next advances the iterator by one.
func (it *Iterator[T]) Next() {
	it.pos++
}

// PostNext advances the iterator by one, and returns its previous position.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Add returns an iterator n positions away, n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the signed distance from oth to it.
func (it Iterator[T]) Sub(oth Iterator[T]) int {
	return it.pos - oth.pos
}

// Equal reports whether both iterators refer to the same position of the same array.
func (it Iterator[T]) Equal(oth Iterator[T]) bool {
	return it.arr == oth.arr && it.pos == oth.pos
}

// Offset is the integer first form of Iterator.Add.
func Offset[T any](n int, it Iterator[T]) Iterator[T] {
	return it.Add(n)
}

// Distance returns the number of steps from first to last.
func Distance[T any](first, last Iterator[T]) int {
	return last.Sub(first)
}
