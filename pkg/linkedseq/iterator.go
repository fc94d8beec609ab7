package linkedseq

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrIteratorInvalidated errorkit.Error = "linkedseq: iterator used after its node was removed"
	ErrIteratorEnd         errorkit.Error = "linkedseq: iterator points to the end of the list"
)

// Iterator is a forward position in a LinkedSequence.
// It stays valid until the node it refers to is removed from the list.
type Iterator[T any] struct {
	node *Node[T]
	gen  uint64
}

func (l *LinkedSequence[T]) Begin() Iterator[T] {
	return iteratorOf(l.sentinel().next)
}

// End returns the iterator that refers to the sentinel.
func (l *LinkedSequence[T]) End() Iterator[T] {
	return iteratorOf(l.sentinel())
}

func iteratorOf[T any](n *Node[T]) Iterator[T] {
	return Iterator[T]{node: n, gen: n.gen}
}

func (it Iterator[T]) Valid() bool {
	return it.node != nil && it.node.root != nil && it.node.gen == it.gen
}

func (it Iterator[T]) Value() T {
	return *it.Ref()
}

func (it Iterator[T]) Ref() *T {
	if !it.Valid() {
		panic(ErrIteratorInvalidated)
	}
	if it.node == it.node.root {
		panic(ErrIteratorEnd)
	}
	return &it.node.value
}

// Next steps to the following node.
// Stepping from End wraps around to the first element.
func (it *Iterator[T]) Next() {
	if !it.Valid() {
		panic(ErrIteratorInvalidated)
	}
	*it = iteratorOf(it.node.next)
}

// PostNext steps to the following node, and returns the previous position.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.Next()
	return prev
}

func (it Iterator[T]) Equal(oth Iterator[T]) bool {
	return it.node == oth.node
}
