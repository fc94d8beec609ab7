package dscontract

import (
	"fmt"
	"iter"
	"math"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/iterkit/iterkitcontract"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/port/ds"
)

// Sequence verifies the full sequence container contract.
// The Make function must return an empty sequence that uses the zero value as its default element.
func Sequence[T any](mk contract.Make[ds.Sequence[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	seq := let.Var(s, func(t *testcase.T) ds.Sequence[T] {
		return mk(t)
	})

	s.Context("implements Container", Container(func(tb testing.TB) ds.Container[T] {
		return mk(tb)
	}, c).Spec)

	s.Describe("#Values", iterkitcontract.IterSeq(func(tb testing.TB) iter.Seq[T] {
		t := testcase.ToT(&tb)
		seq := mk(t)
		appendAll(t, seq, c.makeElems(t, 3, 7))
		return seq.Values()
	}).Spec)

	s.Test("values are iterated in their sequential order", func(t *testcase.T) {
		values := c.makeElems(t, 3, 7)
		appendAll(t, seq.Get(t), values)
		assert.Equal(t, values, iterkit.Collect(seq.Get(t).Values()))
		if sc, ok := seq.Get(t).(ds.SliceConvertable[T]); ok {
			assert.Equal(t, values, sc.ToSlice())
		}
	})

	s.Describe("#InsertAt", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).InsertAt(index.Get(t), value.Get(t))
		})

		s.When("index is negative", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return -1 * t.Random.IntBetween(1, 42)
			})

			s.Then("out of range is reported", func(t *testcase.T) {
				assert.ErrorIs(t, ds.ErrOutOfRange, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		s.When("index is at or beyond the insertion ceiling", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.Pick([]int{ds.MaxLen, ds.MaxLen + t.Random.IntBetween(1, 42), math.MaxInt}).(int)
			})

			s.Then("out of range is reported without padding", func(t *testcase.T) {
				assert.ErrorIs(t, ds.ErrOutOfRange, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the value becomes the only element", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, []T{value.Get(t)}, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is beyond the end", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 7)
				})

				s.Then("the gap is filled with default values and the value is placed at the index", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, index.Get(t)+1, seq.Get(t).Len())

					var zero T
					for i := 0; i < index.Get(t); i++ {
						assert.Equal(t, zero, seq.Get(t).At(i))
					}
					assert.Equal(t, value.Get(t), seq.Get(t).At(index.Get(t)))
				})
			})
		})

		s.When("sequence has values", func(s *testcase.Spec) {
			// A B C <- insert X at 1
			// -> A X B C
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, 3, 7)
			})
			s.Before(func(t *testcase.T) {
				appendAll(t, seq.Get(t), values.Get(t))
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is inserted before the value that was at the index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					vs := values.Get(t)
					exp := append([]T{}, vs[:index.Get(t)]...)
					exp = append(exp, value.Get(t))
					exp = append(exp, vs[index.Get(t):]...)
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it behaves like Append", func(t *testcase.T) {
					assert.NoError(t, act(t))
					exp := append(append([]T{}, values.Get(t)...), value.Get(t))
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				gap := let.IntB(s, 1, 5)
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + gap.Get(t)
				})

				s.Then("the earlier values are kept, the gap is padded, and the value is the last", func(t *testcase.T) {
					assert.NoError(t, act(t))

					var zero T
					exp := append([]T{}, values.Get(t)...)
					for range gap.Get(t) {
						exp = append(exp, zero)
					}
					exp = append(exp, value.Get(t))
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("out of range is reported", func(t *testcase.T) {
				assert.ErrorIs(t, ds.ErrOutOfRange, act(t))
			})
		})

		s.When("sequence has values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, 3, 7)
			})
			s.Before(func(t *testcase.T) {
				appendAll(t, seq.Get(t), values.Get(t))
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("Get returns the new value and the length is unchanged", func(t *testcase.T) {
					assert.NoError(t, act(t))
					got, err := seq.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
					assert.Equal(t, len(values.Get(t)), seq.Get(t).Len())
				})

				s.Then("apart from the changed value, everything else remains the original one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					exp := append([]T{}, values.Get(t)...)
					exp[index.Get(t)] = value.Get(t)
					assert.Equal(t, exp, iterkit.Collect(seq.Get(t).Values()))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("failure is reported and the contents are unchanged", func(t *testcase.T) {
					assert.ErrorIs(t, ds.ErrOutOfRange, act(t))
					assert.Equal(t, values.Get(t), iterkit.Collect(seq.Get(t).Values()))
				})
			})
		})
	})

	s.Describe("#At", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return c.makeElems(t, 3, 7)
		})
		s.Before(func(t *testcase.T) {
			appendAll(t, seq.Get(t), values.Get(t))
		})

		s.Then("it returns the element at a valid index", func(t *testcase.T) {
			i := t.Random.IntN(len(values.Get(t)))
			assert.Equal(t, values.Get(t)[i], seq.Get(t).At(i))
		})

		s.Then("an invalid index panics", func(t *testcase.T) {
			assert.Panic(t, func() { seq.Get(t).At(len(values.Get(t))) })
			assert.Panic(t, func() { seq.Get(t).At(-1) })
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Clear()
		})

		s.Then("clearing an empty sequence keeps it empty", func(t *testcase.T) {
			assert.NotPanic(t, func() { act(t) })
			assert.NotPanic(t, func() { act(t) })
			assert.Equal(t, 0, seq.Get(t).Len())
		})

		s.When("sequence has values", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				appendAll(t, seq.Get(t), c.makeElems(t, 3, 7))
			})

			s.Then("it becomes empty", func(t *testcase.T) {
				act(t)
				assert.Equal(t, 0, seq.Get(t).Len())
				assert.Empty(t, iterkit.Collect(seq.Get(t).Values()))
			})

			s.Then("it remains usable", func(t *testcase.T) {
				act(t)
				v := c.makeElem(t)
				assert.NoError(t, seq.Get(t).Append(v))
				assert.Equal(t, []T{v}, iterkit.Collect(seq.Get(t).Values()))
			})
		})
	})

	s.Test("a bounds failure in the middle of a workflow leaves the sequence intact", func(t *testcase.T) {
		values := c.makeElems(t, 3, 7)
		appendAll(t, seq.Get(t), values)

		_, err := seq.Get(t).Get(len(values) + t.Random.IntBetween(0, 7))
		assert.ErrorIs(t, ds.ErrOutOfRange, err)
		assert.ErrorIs(t, ds.ErrOutOfRange, seq.Get(t).Set(len(values), c.makeElem(t)))
		_, err = seq.Get(t).RemoveAt(len(values))
		assert.ErrorIs(t, ds.ErrOutOfRange, err)

		assert.Equal(t, len(values), seq.Get(t).Len())
		assert.Equal(t, values, iterkit.Collect(seq.Get(t).Values()))

		v := c.makeElem(t)
		assert.NoError(t, seq.Get(t).Append(v))
		assert.Equal(t, append(append([]T{}, values...), v), iterkit.Collect(seq.Get(t).Values()))
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", typeName[T]()))
}
