package linkedseq

import (
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

const ErrPoolExhausted errorkit.Error = "linkedseq: node pool exhausted"

// Node is one link of the ring.
// The sentinel is a Node as well, its root points to itself.
type Node[T any] struct {
	value T
	prev  *Node[T]
	next  *Node[T]
	// root is the sentinel of the ring the node is linked into, nil while detached.
	root *Node[T]
	// gen is bumped every time the node is released.
	gen uint64
}

// Allocator manages the lifetime of the list nodes.
//
// Alloc must return a detached node, and Free receives nodes
// that were already unlinked and reset by the list.
type Allocator[T any] interface {
	Alloc() (*Node[T], error)
	Free(n *Node[T])
}

// HeapAllocator allocates every node on the heap and leaves freeing to the garbage collector.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Alloc() (*Node[T], error) { return new(Node[T]), nil }

func (HeapAllocator[T]) Free(*Node[T]) {}

// Pool is a free-list allocator.
// It is not safe for concurrent use, and it should be shared only between lists owned by the same goroutine.
type Pool[T any] struct {
	// Limit caps the number of live nodes, zero means no limit.
	Limit int
	// MaxIdle caps the number of freed nodes kept for reuse, zero means no limit.
	MaxIdle int

	live int
	idle []*Node[T]
}

func (p *Pool[T]) Alloc() (*Node[T], error) {
	if 0 < p.Limit && p.Limit <= p.live {
		return nil, ErrPoolExhausted
	}
	p.live++
	if n, ok := slicekit.Pop(&p.idle); ok {
		return n, nil
	}
	return new(Node[T]), nil
}

func (p *Pool[T]) Free(n *Node[T]) {
	if n == nil {
		return
	}
	p.live--
	if p.MaxIdle <= 0 || len(p.idle) < p.MaxIdle {
		p.idle = append(p.idle, n)
	}
}

// Live is the number of nodes handed out and not yet freed.
func (p *Pool[T]) Live() int { return p.live }

// Idle is the number of freed nodes waiting for reuse.
func (p *Pool[T]) Idle() int { return len(p.idle) }
