package scoped_test

import (
	"errors"
	"testing"

	"go.llib.dev/seqkit/internal/scoped"
	"go.llib.dev/seqkit/pkg/elemkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestBuffer(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		capacity = let.IntB(s, 3, 7)
		policy   = let.Var(s, func(t *testcase.T) elemkit.Config[int] {
			return elemkit.Config[int]{}
		})
		buf = let.Var(s, func(t *testcase.T) *scoped.Buffer[int] {
			return scoped.Make(0, capacity.Get(t), policy.Get(t))
		})
	)

	s.Test("smoke", func(t *testcase.T) {
		vs := random.Slice(capacity.Get(t)-1, t.Random.Int)
		assert.NoError(t, buf.Get(t).CopyFrom(vs))
		assert.NoError(t, buf.Get(t).PushDefault())
		assert.Equal(t, capacity.Get(t), buf.Get(t).Len())

		data, size := buf.Get(t).Release()
		assert.Equal(t, capacity.Get(t), size)
		assert.Equal(t, append(vs, 0), data)

		assert.NotPanic(t, buf.Get(t).Discard)
		assert.Equal(t, append(vs, 0), data, "discard after release keeps the released data intact")
	})

	s.Test("push beyond capacity is reported", func(t *testcase.T) {
		t.Random.Repeat(capacity.Get(t), capacity.Get(t), func() {
			assert.NoError(t, buf.Get(t).Push(t.Random.Int()))
		})
		assert.Error(t, buf.Get(t).Push(t.Random.Int()))
		assert.Equal(t, capacity.Get(t), buf.Get(t).Len())
	})

	s.Test("use after release panics", func(t *testcase.T) {
		buf.Get(t).Release()
		assert.Panic(t, func() { _ = buf.Get(t).Push(1) })
	})

	s.When("the copy policy fails", func(s *testcase.Spec) {
		errBoom := errors.New("boom")

		policy.Let(s, func(t *testcase.T) elemkit.Config[int] {
			return elemkit.Config[int]{Copy: func(dst *int, src int) error {
				if src < 0 {
					*dst = src
					return errBoom
				}
				*dst = src
				return nil
			}}
		})

		s.Then("the failure is returned and the partially written slot is reset", func(t *testcase.T) {
			assert.NoError(t, buf.Get(t).Push(1))
			assert.ErrorIs(t, errBoom, buf.Get(t).Push(-1))
			assert.Equal(t, 1, buf.Get(t).Len())

			data, size := buf.Get(t).Release()
			assert.Equal(t, 1, size)
			assert.Equal(t, 0, data[1])
		})
	})
}
