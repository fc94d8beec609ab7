// Package adt defines the classical Stack and Queue abstract data types.
//
// Both are a two state machine, empty or non-empty.
// Inspecting or removing from an empty instance reports ErrUnderflow.
package adt

import "go.llib.dev/frameless/pkg/errorkit"

// ErrUnderflow is reported when Top, Front, Pop or Dequeue is used on an empty instance.
// It is a domain level failure and distinct from ds.ErrOutOfRange.
const ErrUnderflow errorkit.Error = "underflow"

// Stack is a last-in-first-out collection.
type Stack[T any] interface {
	// Push places a value on the top of the stack.
	Push(v T) error
	// Pop removes the top value and returns it.
	Pop() (T, error)
	// Top returns the top value.
	Top() (T, error)
	// TopRef returns a pointer to the top value, so it can be modified in place.
	TopRef() (*T, error)
	IsEmpty() bool
	Len() int
}

// Queue is a first-in-first-out collection.
type Queue[T any] interface {
	// Enqueue places a value at the back of the queue.
	Enqueue(v T) error
	// Dequeue removes the front value and returns it.
	Dequeue() (T, error)
	// Front returns the value that would be dequeued next.
	Front() (T, error)
	// FrontRef returns a pointer to the front value, so it can be modified in place.
	FrontRef() (*T, error)
	IsEmpty() bool
	Len() int
}
