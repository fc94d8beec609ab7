package scenario_test

import (
	"context"
	"testing"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/seqkit/internal/scenario"
)

func TestRun(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		config = let.Var(s, func(t *testcase.T) scenario.Config {
			return scenario.Config{
				Backing: scenario.BackingArray,
				Count:   998,
			}
		})
		out = let.Var[logging.StubOutput](s, nil)
		log = let.Var(s, func(t *testcase.T) *logging.Logger {
			l, o := logging.Stub(t)
			out.Set(t, o)
			return l
		})
		ctx = let.Var(s, func(t *testcase.T) context.Context {
			return context.Background()
		})
	)
	act := let.Act2(func(t *testcase.T) (scenario.Report, error) {
		return scenario.Run(ctx.Get(t), config.Get(t), log.Get(t))
	})

	thenItSucceeds := func(s *testcase.Spec) {
		s.Then("both scenarios pass and observe the underflow", func(t *testcase.T) {
			r, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, config.Get(t).Backing, r.Backing)
			assert.Equal(t, config.Get(t).Count, r.Stack.Count)
			assert.Equal(t, config.Get(t).Count, r.Queue.Count)
			assert.True(t, r.Stack.Underflow)
			assert.True(t, r.Queue.Underflow)
			assert.Equal(t, 0, r.Stack.LiveNodes)
			assert.Equal(t, 0, r.Queue.LiveNodes)
		})

		s.Then("the progress is logged", func(t *testcase.T) {
			_, err := act(t)
			assert.NoError(t, err)
			logs := out.Get(t).String()
			assert.Contains(t, logs, "scenario started")
			assert.Contains(t, logs, "scenario finished")
			assert.Contains(t, logs, "underflow observed")
			assert.Contains(t, logs, config.Get(t).Backing)
		})
	}

	s.When("the backing is an array", func(s *testcase.Spec) {
		thenItSucceeds(s)
	})

	s.When("the backing is a list", func(s *testcase.Spec) {
		config.Let(s, func(t *testcase.T) scenario.Config {
			c := config.Super(t)
			c.Backing = scenario.BackingList
			return c
		})

		thenItSucceeds(s)

		s.And("a node pool is configured", func(s *testcase.Spec) {
			config.Let(s, func(t *testcase.T) scenario.Config {
				c := config.Super(t)
				c.PoolLimit = c.Count
				c.PoolIdle = t.Random.IntBetween(1, 64)
				return c
			})

			thenItSucceeds(s)
		})
	})

	s.When("the count is small", func(s *testcase.Spec) {
		config.Let(s, func(t *testcase.T) scenario.Config {
			c := config.Super(t)
			c.Count = t.Random.IntBetween(1, 3)
			return c
		})

		thenItSucceeds(s)
	})

	s.When("the config is invalid", func(s *testcase.Spec) {
		config.Let(s, func(t *testcase.T) scenario.Config {
			c := config.Super(t)
			switch t.Random.IntN(4) {
			case 0:
				c.Backing = "tree"
			case 1:
				c.Count = 0
			case 2:
				c.PoolLimit = c.Count - 1
				c.Backing = scenario.BackingList
			case 3:
				c.PoolIdle = 1
			}
			return c
		})

		s.Then("it fails before running anything", func(t *testcase.T) {
			_, err := act(t)
			assert.Error(t, err)
			assert.NotContains(t, out.Get(t).String(), "scenario started")
		})
	})

	s.When("the context is cancelled", func(s *testcase.Spec) {
		ctx.Let(s, func(t *testcase.T) context.Context {
			c, cancel := context.WithCancel(context.Background())
			cancel()
			return c
		})

		s.Then("the cancellation is reported", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, context.Canceled, err)
		})
	})
}
