package dscontract

import (
	"errors"
	"fmt"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/port/ds"
)

// Container verifies the minimal capability set that the Stack and Queue adapter relies on.
// The Make function must return an empty container.
func Container[T any](mk contract.Make[ds.Container[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) ds.Container[T] {
		return mk(t)
	})

	s.Test("a new container is empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return c.makeElem(t)
		})
		act := let.Act(func(t *testcase.T) error {
			return subject.Get(t).Append(value.Get(t))
		})

		s.Then("the length increases by exactly one", func(t *testcase.T) {
			before := subject.Get(t).Len()
			assert.NoError(t, act(t))
			assert.Equal(t, before+1, subject.Get(t).Len())
		})

		s.Then("the appended value is the last element", func(t *testcase.T) {
			assert.NoError(t, act(t))
			got, err := subject.Get(t).Get(subject.Get(t).Len() - 1)
			assert.NoError(t, err)
			assert.Equal(t, value.Get(t), got)
		})

		s.When("the container already has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, 3, 7)
			})
			s.Before(func(t *testcase.T) {
				appendAll(t, subject.Get(t), values.Get(t))
			})

			s.Then("the earlier values keep their position", func(t *testcase.T) {
				assert.NoError(t, act(t))
				exp := append(append([]T{}, values.Get(t)...), value.Get(t))
				assert.Equal(t, exp, collect(t, subject.Get(t)))
			})
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return subject.Get(t).Get(index.Get(t))
		})

		s.When("container is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("out of range is reported with the offending index", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, ds.ErrOutOfRange, err)
				var ierr ds.IndexError
				assert.True(t, errors.As(err, &ierr))
				assert.Equal(t, index.Get(t), ierr.Index)
			})
		})

		s.When("container has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, 3, 7)
			})
			s.Before(func(t *testcase.T) {
				appendAll(t, subject.Get(t), values.Get(t))
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is beyond the last element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("out of range is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, ds.ErrOutOfRange, err)
				})

				s.Then("the container's length and contents are unchanged", func(t *testcase.T) {
					_, _ = act(t)
					assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
					assert.Equal(t, values.Get(t), collect(t, subject.Get(t)))
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("out of range is reported", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, ds.ErrOutOfRange, err)
				})
			})
		})
	})

	s.Describe("#Ref", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 3, 7)
		})
		s.Before(func(t *testcase.T) {
			appendAll(t, subject.Get(t), values.Get(t))
		})

		s.Then("the element can be modified in place", func(t *testcase.T) {
			index := t.Random.IntN(len(values.Get(t)))
			nv := c.makeElem(t)

			ptr, err := subject.Get(t).Ref(index)
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[index], *ptr)
			*ptr = nv

			got, err := subject.Get(t).Get(index)
			assert.NoError(t, err)
			assert.Equal(t, nv, got)
		})

		s.Then("out of range index is reported", func(t *testcase.T) {
			_, err := subject.Get(t).Ref(len(values.Get(t)))
			assert.ErrorIs(t, ds.ErrOutOfRange, err)
		})
	})

	s.Describe("#RemoveAt", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return subject.Get(t).RemoveAt(index.Get(t))
		})

		s.When("container is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("out of range is reported", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, ds.ErrOutOfRange, err)
				assert.Equal(t, 0, subject.Get(t).Len())
			})
		})

		s.When("container holds a single value", func(s *testcase.Spec) {
			value := let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
			s.Before(func(t *testcase.T) {
				assert.NoError(t, subject.Get(t).Append(value.Get(t)))
			})
			index.LetValue(s, 0)

			s.Then("removing it makes the container empty", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), got)
				assert.Equal(t, 0, subject.Get(t).Len())
			})
		})

		s.When("container has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, 3, 7)
			})
			s.Before(func(t *testcase.T) {
				appendAll(t, subject.Get(t), values.Get(t))
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the removed value is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("the length shrinks by one and the rest keeps its order", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)

					exp := append([]T{}, values.Get(t)[:index.Get(t)]...)
					exp = append(exp, values.Get(t)[index.Get(t)+1:]...)
					assert.Equal(t, len(exp), subject.Get(t).Len())
					assert.Equal(t, exp, collect(t, subject.Get(t)))
				})
			})

			s.And("the first element is removed", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the second element becomes the first", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)
					got, err := subject.Get(t).Get(0)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[1], got)
				})
			})

			s.And("the last element is removed", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) - 1
				})

				s.Then("the element before it becomes the last", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)
					got, err := subject.Get(t).Get(subject.Get(t).Len() - 1)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[len(values.Get(t))-2], got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("failure is reported and nothing is removed", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, ds.ErrOutOfRange, err)
					assert.Equal(t, values.Get(t), collect(t, subject.Get(t)))
				})
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("Container[%s]", typeName[T]()))
}

func appendAll[T any](t *testcase.T, c ds.Appendable[T], vs []T) {
	t.Helper()
	for _, v := range vs {
		assert.Must(t).NoError(c.Append(v))
	}
}

// collect reads the container's contents through its indexed accessor only.
func collect[T any](t *testcase.T, c ds.Container[T]) []T {
	t.Helper()
	var out []T
	for i := 0; i < c.Len(); i++ {
		v, err := c.Get(i)
		assert.Must(t).NoError(err)
		out = append(out, v)
	}
	return out
}
