package adtcontract

import (
	"fmt"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/port/adt"
)

// Queue verifies the first-in-first-out contract.
// The Make function must return an empty queue.
func Queue[T any](mk contract.Make[adt.Queue[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	queue := let.Var(s, func(t *testcase.T) adt.Queue[T] {
		return mk(t)
	})

	s.Test("a new queue is empty", func(t *testcase.T) {
		assert.True(t, queue.Get(t).IsEmpty())
		assert.Equal(t, 0, queue.Get(t).Len())
	})

	s.When("the queue is empty", func(s *testcase.Spec) {
		s.Then("Dequeue reports underflow", func(t *testcase.T) {
			_, err := queue.Get(t).Dequeue()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
		})

		s.Then("Front reports underflow", func(t *testcase.T) {
			_, err := queue.Get(t).Front()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
		})

		s.Then("FrontRef reports underflow", func(t *testcase.T) {
			ptr, err := queue.Get(t).FrontRef()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
			assert.Nil(t, ptr)
		})
	})

	s.Describe("#Enqueue", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act(func(t *testcase.T) error {
			return queue.Get(t).Enqueue(value.Get(t))
		})

		s.Then("on an empty queue the value becomes the front", func(t *testcase.T) {
			assert.NoError(t, act(t))
			got, err := queue.Get(t).Front()
			assert.NoError(t, err)
			assert.Equal(t, value.Get(t), got)
			assert.Equal(t, 1, queue.Get(t).Len())
		})

		s.Then("the front is kept when the queue already has values", func(t *testcase.T) {
			first := c.makeElem(t)
			assert.NoError(t, queue.Get(t).Enqueue(first))
			assert.NoError(t, act(t))
			got, err := queue.Get(t).Front()
			assert.NoError(t, err)
			assert.Equal(t, first, got)
			assert.Equal(t, 2, queue.Get(t).Len())
		})
	})

	s.When("the queue has values", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, t.Random.IntBetween(2, 7))
		})
		s.Before(func(t *testcase.T) {
			for _, v := range values.Get(t) {
				assert.NoError(t, queue.Get(t).Enqueue(v))
			}
		})

		s.Then("FrontRef allows to modify the front in place", func(t *testcase.T) {
			ptr, err := queue.Get(t).FrontRef()
			assert.NoError(t, err)
			v := c.makeElem(t)
			*ptr = v
			got, err := queue.Get(t).Dequeue()
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		})

		s.Then("Dequeue returns the values in their enqueue order", func(t *testcase.T) {
			for _, exp := range values.Get(t) {
				got, err := queue.Get(t).Dequeue()
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			}
			assert.True(t, queue.Get(t).IsEmpty())
			_, err := queue.Get(t).Dequeue()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
		})
	})

	s.Test("interleaved enqueue and dequeue keeps the first-in-first-out order", func(t *testcase.T) {
		var exp []T
		for range t.Random.IntBetween(16, 64) {
			if len(exp) == 0 || t.Random.Bool() {
				v := c.makeElem(t)
				assert.NoError(t, queue.Get(t).Enqueue(v))
				exp = append(exp, v)
				continue
			}
			got, err := queue.Get(t).Dequeue()
			assert.NoError(t, err)
			assert.Equal(t, exp[0], got)
			exp = exp[1:]
		}
		assert.Equal(t, len(exp), queue.Get(t).Len())
	})

	s.Test("bulk enqueue then dequeue keeps the first-in-first-out order", func(t *testcase.T) {
		n := c.scenarioCount()
		values := c.makeElems(t, n)
		for _, v := range values {
			assert.NoError(t, queue.Get(t).Enqueue(v))
		}
		assert.Equal(t, n, queue.Get(t).Len())

		for dequeued := 0; dequeued < n-1; dequeued++ {
			front, err := queue.Get(t).Front()
			assert.NoError(t, err)
			assert.Equal(t, values[dequeued], front)
			_, err = queue.Get(t).Dequeue()
			assert.NoError(t, err)
		}

		got, err := queue.Get(t).Dequeue()
		assert.NoError(t, err)
		assert.Equal(t, values[n-1], got)
		assert.True(t, queue.Get(t).IsEmpty())

		_, err = queue.Get(t).Dequeue()
		assert.ErrorIs(t, adt.ErrUnderflow, err)
	})

	return s.AsSuite(fmt.Sprintf("Queue[%s]", typeName[T]()))
}
