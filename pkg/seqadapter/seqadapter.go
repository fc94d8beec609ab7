// Package seqadapter lifts any ds.Container into the adt.Stack and adt.Queue interfaces.
//
// The adapter only uses the five container primitives (Append, Get, Ref, RemoveAt, Len)
// and does its own index arithmetic: the front is index 0, the top is index Len()-1.
package seqadapter

import (
	"errors"
	"fmt"

	"go.llib.dev/seqkit/pkg/dynarray"
	"go.llib.dev/seqkit/pkg/linkedseq"
	"go.llib.dev/seqkit/port/adt"
	"go.llib.dev/seqkit/port/ds"
)

// Adapter owns a container and exposes it as a Stack and as a Queue.
type Adapter[T any, C ds.Container[T]] struct {
	c C
}

var (
	_ adt.Stack[any] = (*Adapter[any, *dynarray.DynamicArray[any]])(nil)
	_ adt.Queue[any] = (*Adapter[any, *linkedseq.LinkedSequence[any]])(nil)
)

// New takes ownership of c, the caller should not use it directly afterwards.
func New[T any, C ds.Container[T]](c C) *Adapter[T, C] {
	return &Adapter[T, C]{c: c}
}

func NewArrayBacked[T any](opts ...dynarray.Option[T]) *Adapter[T, *dynarray.DynamicArray[T]] {
	return New[T](dynarray.New[T](opts...))
}

func NewListBacked[T any](opts ...linkedseq.Option[T]) *Adapter[T, *linkedseq.LinkedSequence[T]] {
	return New[T](linkedseq.New[T](opts...))
}

func (a *Adapter[T, C]) IsEmpty() bool { return a.c.Len() == 0 }

func (a *Adapter[T, C]) Len() int { return a.c.Len() }

func (a *Adapter[T, C]) Push(v T) error { return a.c.Append(v) }

func (a *Adapter[T, C]) Pop() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, underflow("Pop")
	}
	v, err := a.c.RemoveAt(a.c.Len() - 1)
	return v, translate("Pop", err)
}

func (a *Adapter[T, C]) Top() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, underflow("Top")
	}
	v, err := a.c.Get(a.c.Len() - 1)
	return v, translate("Top", err)
}

func (a *Adapter[T, C]) TopRef() (*T, error) {
	if a.IsEmpty() {
		return nil, underflow("TopRef")
	}
	ptr, err := a.c.Ref(a.c.Len() - 1)
	if err != nil {
		return nil, translate("TopRef", err)
	}
	return ptr, nil
}

func (a *Adapter[T, C]) Enqueue(v T) error { return a.c.Append(v) }

func (a *Adapter[T, C]) Dequeue() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, underflow("Dequeue")
	}
	v, err := a.c.RemoveAt(0)
	return v, translate("Dequeue", err)
}

func (a *Adapter[T, C]) Front() (T, error) {
	if a.IsEmpty() {
		var zero T
		return zero, underflow("Front")
	}
	v, err := a.c.Get(0)
	return v, translate("Front", err)
}

func (a *Adapter[T, C]) FrontRef() (*T, error) {
	if a.IsEmpty() {
		return nil, underflow("FrontRef")
	}
	ptr, err := a.c.Ref(0)
	if err != nil {
		return nil, translate("FrontRef", err)
	}
	return ptr, nil
}

func underflow(op string) error {
	return fmt.Errorf("%s: %w", op, adt.ErrUnderflow)
}

// translate turns a bounds failure of the container into an underflow,
// any other error is passed through.
// The bounds failure is kept only as text, callers match ErrUnderflow alone.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ds.ErrOutOfRange) {
		return fmt.Errorf("%s: %w (%s)", op, adt.ErrUnderflow, err.Error())
	}
	return err
}
