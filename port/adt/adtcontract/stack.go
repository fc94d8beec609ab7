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

// Stack verifies the last-in-first-out contract.
// The Make function must return an empty stack.
func Stack[T any](mk contract.Make[adt.Stack[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	stack := let.Var(s, func(t *testcase.T) adt.Stack[T] {
		return mk(t)
	})

	s.Test("a new stack is empty", func(t *testcase.T) {
		assert.True(t, stack.Get(t).IsEmpty())
		assert.Equal(t, 0, stack.Get(t).Len())
	})

	s.When("the stack is empty", func(s *testcase.Spec) {
		s.Then("Pop reports underflow", func(t *testcase.T) {
			_, err := stack.Get(t).Pop()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
		})

		s.Then("Top reports underflow", func(t *testcase.T) {
			_, err := stack.Get(t).Top()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
		})

		s.Then("TopRef reports underflow", func(t *testcase.T) {
			ptr, err := stack.Get(t).TopRef()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
			assert.Nil(t, ptr)
		})

		s.Then("after the underflow, the stack is still usable", func(t *testcase.T) {
			_, err := stack.Get(t).Pop()
			assert.Error(t, err)

			v := c.makeElem(t)
			assert.NoError(t, stack.Get(t).Push(v))
			got, err := stack.Get(t).Top()
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		})
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act(func(t *testcase.T) error {
			return stack.Get(t).Push(value.Get(t))
		})

		s.Then("the value becomes the top", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.False(t, stack.Get(t).IsEmpty())
			got, err := stack.Get(t).Top()
			assert.NoError(t, err)
			assert.Equal(t, value.Get(t), got)
		})

		s.Then("the length increases by one", func(t *testcase.T) {
			before := stack.Get(t).Len()
			assert.NoError(t, act(t))
			assert.Equal(t, before+1, stack.Get(t).Len())
		})
	})

	s.When("the stack has values", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, t.Random.IntBetween(2, 7))
		})
		s.Before(func(t *testcase.T) {
			for _, v := range values.Get(t) {
				assert.NoError(t, stack.Get(t).Push(v))
			}
		})
		last := func(t *testcase.T) T {
			vs := values.Get(t)
			return vs[len(vs)-1]
		}

		s.Then("Top returns the last pushed value without removing it", func(t *testcase.T) {
			got, err := stack.Get(t).Top()
			assert.NoError(t, err)
			assert.Equal(t, last(t), got)
			assert.Equal(t, len(values.Get(t)), stack.Get(t).Len())
		})

		s.Then("TopRef allows to modify the top in place", func(t *testcase.T) {
			ptr, err := stack.Get(t).TopRef()
			assert.NoError(t, err)
			v := c.makeElem(t)
			*ptr = v
			got, err := stack.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		})

		s.Then("Pop returns the values in reverse order", func(t *testcase.T) {
			vs := values.Get(t)
			for i := len(vs) - 1; 0 <= i; i-- {
				got, err := stack.Get(t).Pop()
				assert.NoError(t, err)
				assert.Equal(t, vs[i], got)
			}
			assert.True(t, stack.Get(t).IsEmpty())
			_, err := stack.Get(t).Pop()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
		})
	})

	s.When("the only value is popped", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			assert.NoError(t, stack.Get(t).Push(c.makeElem(t)))
			_, err := stack.Get(t).Pop()
			assert.NoError(t, err)
		})

		s.Then("the stack becomes empty", func(t *testcase.T) {
			assert.True(t, stack.Get(t).IsEmpty())
			assert.Equal(t, 0, stack.Get(t).Len())
		})

		s.Then("a further Pop reports underflow", func(t *testcase.T) {
			_, err := stack.Get(t).Pop()
			assert.ErrorIs(t, adt.ErrUnderflow, err)
		})
	})

	s.Test("bulk push then pop keeps the last-in-first-out order", func(t *testcase.T) {
		n := c.scenarioCount()
		values := c.makeElems(t, n)
		for _, v := range values {
			assert.NoError(t, stack.Get(t).Push(v))
		}
		assert.Equal(t, n, stack.Get(t).Len())

		for i := n - 1; 0 < i; i-- {
			top, err := stack.Get(t).Top()
			assert.NoError(t, err)
			assert.Equal(t, values[i], top)
			_, err = stack.Get(t).Pop()
			assert.NoError(t, err)
			assert.Equal(t, i, stack.Get(t).Len())
		}

		got, err := stack.Get(t).Pop()
		assert.NoError(t, err)
		assert.Equal(t, values[0], got)
		assert.True(t, stack.Get(t).IsEmpty())

		_, err = stack.Get(t).Pop()
		assert.ErrorIs(t, adt.ErrUnderflow, err)
	})

	return s.AsSuite(fmt.Sprintf("Stack[%s]", typeName[T]()))
}
