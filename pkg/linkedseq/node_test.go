package linkedseq_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/pkg/linkedseq"
)

func TestPool(t *testing.T) {
	s := testcase.NewSpec(t)

	pool := let.Var(s, func(t *testcase.T) *linkedseq.Pool[string] {
		return &linkedseq.Pool[string]{}
	})

	s.Test("freed nodes are reused", func(t *testcase.T) {
		p := pool.Get(t)
		n1, err := p.Alloc()
		assert.NoError(t, err)
		assert.Equal(t, 1, p.Live())

		p.Free(n1)
		assert.Equal(t, 0, p.Live())
		assert.Equal(t, 1, p.Idle())

		n2, err := p.Alloc()
		assert.NoError(t, err)
		assert.True(t, n1 == n2)
		assert.Equal(t, 0, p.Idle())
	})

	s.When("Limit is set", func(s *testcase.Spec) {
		limit := let.IntB(s, 1, 7)
		pool.Let(s, func(t *testcase.T) *linkedseq.Pool[string] {
			return &linkedseq.Pool[string]{Limit: limit.Get(t)}
		})

		s.Then("allocating beyond it fails", func(t *testcase.T) {
			p := pool.Get(t)
			var nodes []*linkedseq.Node[string]
			for range limit.Get(t) {
				n, err := p.Alloc()
				assert.NoError(t, err)
				nodes = append(nodes, n)
			}
			_, err := p.Alloc()
			assert.ErrorIs(t, linkedseq.ErrPoolExhausted, err)

			p.Free(nodes[0])
			_, err = p.Alloc()
			assert.NoError(t, err)
		})

		s.Then("a list can not grow beyond it", func(t *testcase.T) {
			l := linkedseq.New[string](linkedseq.WithAllocator[string](pool.Get(t)))
			for range limit.Get(t) {
				assert.NoError(t, l.Append(t.Random.String()))
			}
			assert.ErrorIs(t, linkedseq.ErrPoolExhausted, l.Append(t.Random.String()))
			assert.Equal(t, limit.Get(t), l.Len())

			_, ok := l.Shift()
			assert.True(t, ok)
			assert.NoError(t, l.Append(t.Random.String()))
		})
	})

	s.When("MaxIdle is set", func(s *testcase.Spec) {
		pool.Let(s, func(t *testcase.T) *linkedseq.Pool[string] {
			return &linkedseq.Pool[string]{MaxIdle: 2}
		})

		s.Then("only that many freed nodes are kept", func(t *testcase.T) {
			l := linkedseq.New[string](linkedseq.WithAllocator[string](pool.Get(t)))
			for range 5 {
				assert.NoError(t, l.Append(t.Random.String()))
			}
			l.Clear()
			assert.Equal(t, 0, pool.Get(t).Live())
			assert.Equal(t, 2, pool.Get(t).Idle())
		})
	})

	s.Test("the list behaves the same with the heap allocator and with a pool", func(t *testcase.T) {
		heap := linkedseq.New[string]()
		pooled := linkedseq.New[string](linkedseq.WithAllocator[string](pool.Get(t)))
		for range t.Random.IntBetween(8, 32) {
			v := t.Random.String()
			assert.NoError(t, heap.Append(v))
			assert.NoError(t, pooled.Append(v))
			if t.Random.Bool() {
				_, _ = heap.Shift()
				_, _ = pooled.Shift()
			}
		}
		assert.True(t, linkedseq.Equal(heap, pooled))
		assert.Equal(t, pooled.Len(), pool.Get(t).Live())
	})
}
