// Package scoped implements the ownership helper behind the build-then-swap mutations.
//
// A Buffer is owned by the operation that builds it.
// Until Release is called, a deferred Discard drops everything written into it,
// so a failing or panicking element policy never leaves a half built buffer behind,
// and the container that started the build is never touched.
//
//	buf := scoped.Make[T](n, capacity, policy)
//	defer buf.Discard()
//	if err := buf.CopyFrom(old[:i]); err != nil {
//		return err
//	}
//	data, size := buf.Release()
package scoped

import (
	"fmt"

	"go.llib.dev/seqkit/pkg/elemkit"
)

type Buffer[T any] struct {
	data     []T
	len      int
	policy   elemkit.Config[T]
	released bool
}

// Make allocates a buffer with the given capacity.
// The capacity is grown to hold at least size elements.
func Make[T any](size, capacity int, policy elemkit.Config[T]) *Buffer[T] {
	if capacity < size {
		capacity = size
	}
	return &Buffer[T]{
		data:   make([]T, capacity),
		policy: policy,
	}
}

// Len is the number of elements placed into the buffer so far.
func (b *Buffer[T]) Len() int { return b.len }

func (b *Buffer[T]) Cap() int { return len(b.data) }

// Push copies v into the next free slot.
func (b *Buffer[T]) Push(v T) error {
	b.ensureOwned()
	if len(b.data) <= b.len {
		return fmt.Errorf("scoped buffer is full [cap:%d]", len(b.data))
	}
	if err := b.policy.CopyTo(&b.data[b.len], v); err != nil {
		b.reset(b.len)
		return err
	}
	b.len++
	return nil
}

// PushDefault places a default value into the next free slot.
func (b *Buffer[T]) PushDefault() error {
	b.ensureOwned()
	if len(b.data) <= b.len {
		return fmt.Errorf("scoped buffer is full [cap:%d]", len(b.data))
	}
	if err := b.policy.DefaultTo(&b.data[b.len]); err != nil {
		b.reset(b.len)
		return err
	}
	b.len++
	return nil
}

// CopyFrom pushes every element of vs in order.
func (b *Buffer[T]) CopyFrom(vs []T) error {
	for _, v := range vs {
		if err := b.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// Release hands the buffer over to its final owner.
// After Release, Discard is a no-op and the buffer must not be used.
func (b *Buffer[T]) Release() (data []T, size int) {
	b.ensureOwned()
	b.released = true
	data, size = b.data, b.len
	b.data, b.len = nil, 0
	return data, size
}

// Discard drops the built elements unless the buffer was released.
// It is meant to be deferred right after Make.
func (b *Buffer[T]) Discard() {
	if b.released || b.data == nil {
		return
	}
	clear(b.data)
	b.data, b.len = nil, 0
}

func (b *Buffer[T]) reset(i int) {
	var zero T
	b.data[i] = zero
}

func (b *Buffer[T]) ensureOwned() {
	if b.released {
		panic("scoped buffer used after Release")
	}
}
