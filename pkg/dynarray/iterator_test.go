package dynarray_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/pkg/dynarray"
)

func TestIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	arr := let.Var(s, func(t *testcase.T) *dynarray.DynamicArray[int] {
		return dynarray.Of(1, 2, 3, 4, 5)
	})

	s.Test("forward traversal from Begin to End visits every element", func(t *testcase.T) {
		var got []int
		for it := arr.Get(t).Begin(); !it.Equal(arr.Get(t).End()); it.Next() {
			got = append(got, it.Value())
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	s.Test("Begin equals End on an empty array", func(t *testcase.T) {
		a := dynarray.New[int]()
		assert.True(t, a.Begin().Equal(a.End()))
	})

	s.Test("iterators of different arrays are not equal", func(t *testcase.T) {
		assert.False(t, arr.Get(t).Begin().Equal(dynarray.Of(1).Begin()))
	})

	s.Test("PostNext returns the previous position", func(t *testcase.T) {
		it := arr.Get(t).Begin()
		prev := it.PostNext()
		assert.Equal(t, 1, prev.Value())
		assert.Equal(t, 2, it.Value())
	})

	s.Test("random access arithmetic", func(t *testcase.T) {
		a := arr.Get(t)
		n := t.Random.IntBetween(0, a.Len()-1)

		it := a.Begin().Add(n)
		assert.Equal(t, a.At(n), it.Value())
		assert.True(t, it.Equal(dynarray.Offset(n, a.Begin())))
		assert.Equal(t, n, dynarray.Distance(a.Begin(), it))
		assert.Equal(t, -n, a.Begin().Sub(it))
		assert.Equal(t, a.Len(), a.End().Sub(a.Begin()))
		assert.True(t, a.End().Add(-a.Len()).Equal(a.Begin()))
	})

	s.Test("Ref gives mutable access to the element", func(t *testcase.T) {
		it := arr.Get(t).Begin().Add(2)
		*it.Ref() = 42
		assert.Equal(t, []int{1, 2, 42, 4, 5}, arr.Get(t).ToSlice())
	})

	s.Test("dereferencing End panics", func(t *testcase.T) {
		got := assert.Panic(t, func() { arr.Get(t).End().Value() })
		assert.Equal(t, any(dynarray.ErrIteratorEnd), got)
	})

	s.Test("the zero iterator is not valid", func(t *testcase.T) {
		var it dynarray.Iterator[int]
		assert.False(t, it.Valid())
	})

	s.Describe("invalidation", func(s *testcase.Spec) {
		it := let.Var(s, func(t *testcase.T) dynarray.Iterator[int] {
			return arr.Get(t).Begin()
		})
		s.Before(func(t *testcase.T) {
			assert.True(t, it.Get(t).Valid())
		})

		thenInvalid := func(s *testcase.Spec) {
			s.Then("the iterator becomes invalid", func(t *testcase.T) {
				assert.False(t, it.Get(t).Valid())
				got := assert.Panic(t, func() { it.Get(t).Value() })
				assert.Equal(t, any(dynarray.ErrIteratorInvalidated), got)
			})
		}

		s.When("the array grows", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.NoError(t, arr.Get(t).Append(6))
			})

			thenInvalid(s)
		})

		s.When("a value is inserted", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.NoError(t, arr.Get(t).InsertAt(0, 0))
			})

			thenInvalid(s)
		})

		s.When("a value is removed", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				_, err := arr.Get(t).RemoveAt(arr.Get(t).Len() - 1)
				assert.NoError(t, err)
			})

			thenInvalid(s)
		})

		s.When("the array is cleared", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				arr.Get(t).Clear()
			})

			thenInvalid(s)
		})

		s.When("the array is swapped back and forth", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				oth := dynarray.New[int]()
				arr.Get(t).Swap(oth)
				arr.Get(t).Swap(oth)
			})

			thenInvalid(s)
		})

		s.When("a value is set in place", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.NoError(t, arr.Get(t).Set(0, 42))
			})

			s.Then("the iterator remains valid and sees the new value", func(t *testcase.T) {
				assert.True(t, it.Get(t).Valid())
				assert.Equal(t, 42, it.Get(t).Value())
			})
		})

		s.When("a value is appended within the capacity", func(s *testcase.Spec) {
			arr.Let(s, func(t *testcase.T) *dynarray.DynamicArray[int] {
				return dynarray.New[int](dynarray.WithCapacity[int](8))
			})
			s.Before(func(t *testcase.T) {
				assert.NoError(t, arr.Get(t).Append(1))
				it.Set(t, arr.Get(t).Begin())
				assert.NoError(t, arr.Get(t).Append(2))
			})

			s.Then("the iterator remains valid", func(t *testcase.T) {
				assert.True(t, it.Get(t).Valid())
				assert.Equal(t, 1, it.Get(t).Value())
			})
		})
	})
}
