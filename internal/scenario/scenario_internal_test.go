package scenario

import (
	"context"
	"testing"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/pkg/seqadapter"
)

// silentAdapter hides the underflow of Pop and Dequeue on an empty instance.
type silentAdapter struct {
	adapter
}

func (a silentAdapter) Pop() (int, error) {
	if a.IsEmpty() {
		return 0, nil
	}
	return a.adapter.Pop()
}

func (a silentAdapter) Dequeue() (int, error) {
	if a.IsEmpty() {
		return 0, nil
	}
	return a.adapter.Dequeue()
}

func TestUnderflowObservation(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		n       = let.IntB(s, 1, 32)
		subject = let.Var(s, func(t *testcase.T) adapter {
			return seqadapter.NewListBacked[int]()
		})
		log = let.Var(s, func(t *testcase.T) *logging.Logger {
			l, _ := logging.Stub(t)
			return l
		})
	)

	s.When("the emptied instance signals underflow", func(s *testcase.Spec) {
		s.Then("both scenarios report the observation", func(t *testcase.T) {
			got, err := runStack(context.Background(), subject.Get(t), n.Get(t), log.Get(t))
			assert.NoError(t, err)
			assert.True(t, got)

			got, err = runQueue(context.Background(), subject.Get(t), n.Get(t), log.Get(t))
			assert.NoError(t, err)
			assert.True(t, got)
		})
	})

	s.When("the emptied instance does not signal underflow", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) adapter {
			return silentAdapter{adapter: seqadapter.NewArrayBacked[int]()}
		})

		s.Then("the stack scenario fails and reports no underflow", func(t *testcase.T) {
			got, err := runStack(context.Background(), subject.Get(t), n.Get(t), log.Get(t))
			assert.ErrorIs(t, ErrFailed, err)
			assert.False(t, got)
		})

		s.Then("the queue scenario fails and reports no underflow", func(t *testcase.T) {
			got, err := runQueue(context.Background(), subject.Get(t), n.Get(t), log.Get(t))
			assert.ErrorIs(t, ErrFailed, err)
			assert.False(t, got)
		})
	})
}
