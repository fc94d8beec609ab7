// Package linkedseq implements LinkedSequence, a circular doubly linked list anchored by a sentinel node.
//
// The sentinel's next is the head and its prev is the tail, or itself when the list is empty,
// so linking and unlinking never special-case the ends.
// Node lifetime goes through an Allocator, the default one uses the heap.
package linkedseq

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/seqkit/pkg/elemkit"
	"go.llib.dev/seqkit/port/ds"
)

// LinkedSequence is a sequence container with stable element addresses.
// The zero value is an empty list that uses the heap allocator.
type LinkedSequence[T any] struct {
	root   *Node[T]
	size   int
	policy elemkit.Config[T]
	alloc  Allocator[T]
}

var _ ds.Sequence[any] = (*LinkedSequence[any])(nil)

type Config[T any] struct {
	Elem      elemkit.Config[T]
	Allocator Allocator[T]
}

type Option[T any] option.Option[Config[T]]

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(t *Config[T]) {
	c.Elem.Configure(&t.Elem)
	if c.Allocator != nil {
		t.Allocator = c.Allocator
	}
}

// WithAllocator makes the list take its nodes from a.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Allocator = a })
}

func WithElem[T any](opts ...elemkit.Option[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		option.ToConfig(opts).Configure(&c.Elem)
	})
}

func New[T any](opts ...Option[T]) *LinkedSequence[T] {
	c := option.ToConfig(opts)
	l := &LinkedSequence[T]{policy: c.Elem, alloc: c.Allocator}
	l.sentinel()
	return l
}

func Of[T any](vs ...T) *LinkedSequence[T] {
	l := New[T]()
	for _, v := range vs {
		// the default policy and the heap allocator cannot fail
		_ = l.Append(v)
	}
	return l
}

func (l *LinkedSequence[T]) Len() int { return l.size }

func (l *LinkedSequence[T]) IsEmpty() bool { return l.size == 0 }

// Append links a copy of v before the sentinel in O(1).
func (l *LinkedSequence[T]) Append(v T) error {
	n, err := l.newNode(v)
	if err != nil {
		return err
	}
	l.link(n, l.sentinel())
	l.size++
	return nil
}

// Prepend places the values at the beginning of the list, keeping their order.
// Either every value is added or none of them.
func (l *LinkedSequence[T]) Prepend(vs ...T) error {
	tmp := l.temp()
	defer tmp.Clear()
	for _, v := range vs {
		if err := tmp.Append(v); err != nil {
			return err
		}
	}
	l.splice(tmp, l.sentinel().next)
	return nil
}

// InsertAt links a copy of v at index.
//
// When index is not smaller than Len(), a temporary list is built from
// the default values that fill the gap, followed by v,
// and its ring is spliced before the sentinel once it is complete.
// The list's length becomes index+1 in that case.
func (l *LinkedSequence[T]) InsertAt(index int, v T) error {
	if err := ds.CheckInsertIndex("InsertAt", index, l.size); err != nil {
		return err
	}
	if index < l.size {
		n, err := l.newNode(v)
		if err != nil {
			return err
		}
		l.link(n, l.nodeAt(index))
		l.size++
		return nil
	}

	tmp := l.temp()
	defer tmp.Clear()
	for i := l.size; i < index; i++ {
		if err := tmp.appendDefault(); err != nil {
			return err
		}
	}
	if err := tmp.Append(v); err != nil {
		return err
	}
	l.splice(tmp, l.sentinel())
	return nil
}

func (l *LinkedSequence[T]) Get(index int) (T, error) {
	if err := ds.CheckIndex("Get", index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(index).value, nil
}

// Ref returns a pointer to the element at index.
// The pointer stays valid until the element is removed or replaced with Set.
func (l *LinkedSequence[T]) Ref(index int) (*T, error) {
	if err := ds.CheckIndex("Ref", index, l.size); err != nil {
		return nil, err
	}
	return &l.nodeAt(index).value, nil
}

// At returns the element at index, and panics with an ds.IndexError when the index is not valid.
func (l *LinkedSequence[T]) At(index int) T {
	if err := ds.CheckIndex("At", index, l.size); err != nil {
		panic(err)
	}
	return l.nodeAt(index).value
}

// RemoveAt unlinks the element at index and returns it.
// It takes O(1) at the head and at the tail.
func (l *LinkedSequence[T]) RemoveAt(index int) (T, error) {
	if err := ds.CheckIndex("RemoveAt", index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.remove(l.nodeAt(index)), nil
}

// Set replaces the element at index.
// A new node is built from v and linked in place of the old one,
// so a failing copy leaves the current element untouched.
// Iterators to the replaced element are invalidated.
func (l *LinkedSequence[T]) Set(index int, v T) error {
	if err := ds.CheckIndex("Set", index, l.size); err != nil {
		return err
	}
	old := l.nodeAt(index)
	n, err := l.newNode(v)
	if err != nil {
		return err
	}
	l.link(n, old)
	l.unlink(old)
	l.release(old)
	return nil
}

// Shift removes the first element.
func (l *LinkedSequence[T]) Shift() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.remove(l.root.next), true
}

// Pop removes the last element.
func (l *LinkedSequence[T]) Pop() (T, bool) {
	if l.size == 0 {
		var zero T
		return zero, false
	}
	return l.remove(l.root.prev), true
}

// Clear releases the nodes one by one from the head, the sentinel is kept.
func (l *LinkedSequence[T]) Clear() {
	for 0 < l.size {
		l.remove(l.root.next)
	}
}

// Clone makes an independent deep copy that shares the allocator.
func (l *LinkedSequence[T]) Clone() (*LinkedSequence[T], error) {
	out := l.temp()
	var ok bool
	defer func() {
		if !ok {
			out.Clear()
		}
	}()
	for v := range l.Values() {
		if err := out.Append(v); err != nil {
			return nil, err
		}
	}
	ok = true
	return out, nil
}

// Assign replaces the contents of the list with a deep copy of src.
// It is safe to assign a list to itself.
func (l *LinkedSequence[T]) Assign(src *LinkedSequence[T]) error {
	clone, err := src.Clone()
	if err != nil {
		return err
	}
	l.Swap(clone)
	clone.Clear()
	return nil
}

// Swap exchanges the contents of the two lists in O(1).
// Nodes keep their addresses, so iterators follow the elements into the other list.
func (l *LinkedSequence[T]) Swap(oth *LinkedSequence[T]) {
	l.sentinel()
	oth.sentinel()
	l.root, oth.root = oth.root, l.root
	l.size, oth.size = oth.size, l.size
	l.policy, oth.policy = oth.policy, l.policy
	l.alloc, oth.alloc = oth.alloc, l.alloc
}

func (l *LinkedSequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.root == nil {
			return
		}
		for n := l.root.next; n != l.root; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward iterates the elements from the tail to the head.
func (l *LinkedSequence[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.root == nil {
			return
		}
		for n := l.root.prev; n != l.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *LinkedSequence[T]) ToSlice() []T {
	return iterkit.Collect(l.Values())
}

func (l *LinkedSequence[T]) EqualFunc(oth *LinkedSequence[T], eq func(T, T) bool) bool {
	if l.size != oth.size {
		return false
	}
	if l.size == 0 {
		return true
	}
	for a, b := l.root.next, oth.root.next; a != l.root; a, b = a.next, b.next {
		if !eq(a.value, b.value) {
			return false
		}
	}
	return true
}

func Equal[T comparable](a, b *LinkedSequence[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func (l *LinkedSequence[T]) sentinel() *Node[T] {
	if l.root == nil {
		root := &Node[T]{}
		root.prev, root.next, root.root = root, root, root
		l.root = root
	}
	return l.root
}

func (l *LinkedSequence[T]) allocator() Allocator[T] {
	if l.alloc == nil {
		return HeapAllocator[T]{}
	}
	return l.alloc
}

// temp makes an empty list with the same element policy and allocator.
func (l *LinkedSequence[T]) temp() *LinkedSequence[T] {
	return New[T](Config[T]{Elem: l.policy, Allocator: l.alloc})
}

func (l *LinkedSequence[T]) newNode(v T) (*Node[T], error) {
	return l.build(func(n *Node[T]) error {
		return l.policy.CopyTo(&n.value, v)
	})
}

func (l *LinkedSequence[T]) appendDefault() error {
	n, err := l.build(func(n *Node[T]) error {
		return l.policy.DefaultTo(&n.value)
	})
	if err != nil {
		return err
	}
	l.link(n, l.sentinel())
	l.size++
	return nil
}

// build allocates a detached node and initialises its value with init.
// The node goes back to the allocator when init fails or panics.
func (l *LinkedSequence[T]) build(init func(n *Node[T]) error) (*Node[T], error) {
	n, err := l.allocator().Alloc()
	if err != nil {
		return nil, err
	}
	var ok bool
	defer func() {
		if !ok {
			l.release(n)
		}
	}()
	if err := init(n); err != nil {
		return nil, err
	}
	ok = true
	return n, nil
}

// nodeAt walks from the head, except for the tail which is reached through the sentinel.
func (l *LinkedSequence[T]) nodeAt(index int) *Node[T] {
	if index == l.size-1 {
		return l.root.prev
	}
	n := l.root.next
	for range index {
		n = n.next
	}
	return n
}

// link places the detached node n before at.
func (l *LinkedSequence[T]) link(n, at *Node[T]) {
	n.prev = at.prev
	n.next = at
	n.root = at.root
	at.prev.next = n
	at.prev = n
}

// unlink repairs the ring around n by joining its neighbours.
func (l *LinkedSequence[T]) unlink(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (l *LinkedSequence[T]) remove(n *Node[T]) T {
	v := n.value
	l.unlink(n)
	l.release(n)
	l.size--
	return v
}

// release resets the node and hands it back to the allocator.
func (l *LinkedSequence[T]) release(n *Node[T]) {
	*n = Node[T]{gen: n.gen + 1}
	l.allocator().Free(n)
}

// splice moves every node of src before at, and leaves src empty.
func (l *LinkedSequence[T]) splice(src *LinkedSequence[T], at *Node[T]) {
	if src.size == 0 {
		return
	}
	first, last := src.root.next, src.root.prev
	for n := first; n != src.root; n = n.next {
		n.root = at.root
	}
	first.prev = at.prev
	last.next = at
	at.prev.next = first
	at.prev = last
	l.size += src.size

	src.root.next, src.root.prev = src.root, src.root
	src.size = 0
}
