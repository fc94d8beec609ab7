// Package dynarray implements DynamicArray, a contiguous sequence container with capacity doubling.
//
// Every mutation that changes the capacity, or moves elements around, builds a complete
// replacement buffer first and only swaps it in once every element was copied successfully.
// A failing element policy therefore leaves the array exactly as it was.
// The only exception is Set, which assigns in place.
package dynarray

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/seqkit/internal/scoped"
	"go.llib.dev/seqkit/pkg/elemkit"
	"go.llib.dev/seqkit/port/ds"
)

// DynamicArray is a growable contiguous buffer.
// The zero value is an empty array ready to use.
//
// Elements in [0, Len()) are live, the rest of the buffer up to Cap() holds zero values.
type DynamicArray[T any] struct {
	buf     []T
	size    int
	policy  elemkit.Config[T]
	initCap int
	// gen is the buffer generation, iterators are valid only while it is unchanged.
	gen uint64
}

var _ ds.Sequence[any] = (*DynamicArray[any])(nil)

type Config[T any] struct {
	Elem elemkit.Config[T]
	// Capacity is the capacity allocated at construction.
	Capacity int
}

type Option[T any] option.Option[Config[T]]

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(t *Config[T]) {
	c.Elem.Configure(&t.Elem)
	t.Capacity = zerokit.Coalesce(c.Capacity, t.Capacity)
}

func WithCapacity[T any](n int) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Capacity = n })
}

func WithElem[T any](opts ...elemkit.Option[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		option.ToConfig(opts).Configure(&c.Elem)
	})
}

func New[T any](opts ...Option[T]) *DynamicArray[T] {
	c := option.ToConfig(opts)
	capacity := max(c.Capacity, 0)
	return &DynamicArray[T]{
		buf:     make([]T, capacity),
		policy:  c.Elem,
		initCap: capacity,
	}
}

// Of makes a DynamicArray from the given values using the default element policy.
func Of[T any](vs ...T) *DynamicArray[T] {
	a := New[T](WithCapacity[T](len(vs)))
	copy(a.buf, vs)
	a.size = len(vs)
	return a
}

// Filled makes a DynamicArray with n copies of v and a capacity of 2*n.
// Every element is copied through the element policy, a failing copy returns the error and no array.
func Filled[T any](n int, v T, opts ...Option[T]) (*DynamicArray[T], error) {
	if err := ds.CheckInsertIndex("Filled", n, 0); err != nil {
		return nil, err
	}
	a := New[T](opts...)
	buf := scoped.Make(0, 2*n, a.policy)
	defer buf.Discard()
	for range n {
		if err := buf.Push(v); err != nil {
			return nil, err
		}
	}
	a.commit(buf.Release())
	return a, nil
}

func (a *DynamicArray[T]) Len() int { return a.size }

func (a *DynamicArray[T]) Cap() int { return len(a.buf) }

func (a *DynamicArray[T]) IsEmpty() bool { return a.size == 0 }

// Append copies v to the end of the array.
//
// When the array is full, a new buffer with a capacity of 2*Len()+2 is built,
// and it replaces the current one only after every element was copied into it.
func (a *DynamicArray[T]) Append(v T) error {
	if a.size < len(a.buf) {
		var done bool
		defer func() {
			if !done {
				var zero T
				a.buf[a.size] = zero
			}
		}()
		if err := a.policy.CopyTo(&a.buf[a.size], v); err != nil {
			return err
		}
		done = true
		a.size++
		return nil
	}

	buf := scoped.Make(0, 2*a.size+2, a.policy)
	defer buf.Discard()
	if err := buf.CopyFrom(a.buf[:a.size]); err != nil {
		return err
	}
	if err := buf.Push(v); err != nil {
		return err
	}
	a.commit(buf.Release())
	return nil
}

// InsertAt places v at index, shifting the elements from index by one.
//
// When index is beyond Len(), the gap between them is filled with default values,
// and the array's length becomes index+1.
// The result is built in a new buffer with double the required length as capacity.
func (a *DynamicArray[T]) InsertAt(index int, v T) error {
	if err := ds.CheckInsertIndex("InsertAt", index, a.size); err != nil {
		return err
	}
	length := max(index, a.size) + 1
	head := min(index, a.size)

	buf := scoped.Make(0, 2*length, a.policy)
	defer buf.Discard()
	if err := buf.CopyFrom(a.buf[:head]); err != nil {
		return err
	}
	for i := a.size; i < index; i++ {
		if err := buf.PushDefault(); err != nil {
			return err
		}
	}
	if err := buf.Push(v); err != nil {
		return err
	}
	if err := buf.CopyFrom(a.buf[head:a.size]); err != nil {
		return err
	}
	a.commit(buf.Release())
	return nil
}

func (a *DynamicArray[T]) Get(index int) (T, error) {
	if err := ds.CheckIndex("Get", index, a.size); err != nil {
		var zero T
		return zero, err
	}
	return a.buf[index], nil
}

// Ref returns a pointer to the element at index.
// The pointer refers to the current buffer, and becomes stale after a reallocation.
func (a *DynamicArray[T]) Ref(index int) (*T, error) {
	if err := ds.CheckIndex("Ref", index, a.size); err != nil {
		return nil, err
	}
	return &a.buf[index], nil
}

// At is the unchecked accessor, an invalid index panics the same way as slice indexing.
func (a *DynamicArray[T]) At(index int) T {
	return a.buf[:a.size][index]
}

// RemoveAt removes the element at index and returns it.
// Removing the last element is O(1), anything else rebuilds the buffer with the same capacity.
// The capacity is never reduced.
func (a *DynamicArray[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := ds.CheckIndex("RemoveAt", index, a.size); err != nil {
		return zero, err
	}
	removed := a.buf[index]
	if index == a.size-1 {
		a.buf[index] = zero
		a.size--
		a.gen++
		return removed, nil
	}

	buf := scoped.Make(0, len(a.buf), a.policy)
	defer buf.Discard()
	if err := buf.CopyFrom(a.buf[:index]); err != nil {
		return zero, err
	}
	if err := buf.CopyFrom(a.buf[index+1 : a.size]); err != nil {
		return zero, err
	}
	a.commit(buf.Release())
	return removed, nil
}

// Set copies v into the element at index.
//
// Set only gives the weak guarantee, unlike the other mutators.
// The copy happens in place, so a copy policy that fails after partially writing
// the slot leaves that partial value behind. The length and all other elements stay intact.
func (a *DynamicArray[T]) Set(index int, v T) error {
	if err := ds.CheckIndex("Set", index, a.size); err != nil {
		return err
	}
	return a.policy.CopyTo(&a.buf[index], v)
}

// Clear returns the array to its just constructed state by swapping it with a fresh instance.
func (a *DynamicArray[T]) Clear() {
	a.Swap(a.fresh())
}

// Clone makes an independent deep copy of the live elements.
// The clone's capacity equals its length, excess capacity is not replicated.
func (a *DynamicArray[T]) Clone() (*DynamicArray[T], error) {
	buf := scoped.Make(0, a.size, a.policy)
	defer buf.Discard()
	if err := buf.CopyFrom(a.buf[:a.size]); err != nil {
		return nil, err
	}
	data, size := buf.Release()
	return &DynamicArray[T]{
		buf:     data,
		size:    size,
		policy:  a.policy,
		initCap: a.initCap,
	}, nil
}

// Assign replaces the contents of the array with a deep copy of src.
// It is safe to assign an array to itself.
func (a *DynamicArray[T]) Assign(src *DynamicArray[T]) error {
	clone, err := src.Clone()
	if err != nil {
		return err
	}
	a.Swap(clone)
	return nil
}

// Swap exchanges the contents of the two arrays in O(1).
// Iterators of both arrays are invalidated.
func (a *DynamicArray[T]) Swap(oth *DynamicArray[T]) {
	if a == oth {
		return
	}
	a.buf, oth.buf = oth.buf, a.buf
	a.size, oth.size = oth.size, a.size
	a.policy, oth.policy = oth.policy, a.policy
	a.initCap, oth.initCap = oth.initCap, a.initCap
	a.gen++
	oth.gen++
}

func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.buf[i]) {
				return
			}
		}
	}
}

func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

func (a *DynamicArray[T]) ToSlice() []T {
	return iterkit.Collect(a.Values())
}

// EqualFunc reports whether both arrays have the same length,
// and their elements are equal according to eq.
func (a *DynamicArray[T]) EqualFunc(oth *DynamicArray[T], eq func(T, T) bool) bool {
	if a.size != oth.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], oth.buf[i]) {
			return false
		}
	}
	return true
}

func Equal[T comparable](a, b *DynamicArray[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func (a *DynamicArray[T]) commit(data []T, size int) {
	a.buf = data
	a.size = size
	a.gen++
}

func (a *DynamicArray[T]) fresh() *DynamicArray[T] {
	return &DynamicArray[T]{
		buf:     make([]T, a.initCap),
		policy:  a.policy,
		initCap: a.initCap,
	}
}
