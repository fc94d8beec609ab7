package main

import (
	"context"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestMain_config(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the scenarios run with the configured backing", func(t *testcase.T) {
		testcase.SetEnv(t, "SEQKIT_BACKING", t.Random.Pick([]string{"array", "list"}).(string))
		testcase.SetEnv(t, "SEQKIT_COUNT", "16")
		testcase.SetEnv(t, "SEQKIT_LOG_LEVEL", "error")
		assert.NoError(t, Main(context.Background()))
	})

	s.Test("the pool is used with the list backing", func(t *testcase.T) {
		testcase.SetEnv(t, "SEQKIT_BACKING", "list")
		testcase.SetEnv(t, "SEQKIT_COUNT", "16")
		testcase.SetEnv(t, "SEQKIT_POOL_LIMIT", "16")
		testcase.SetEnv(t, "SEQKIT_POOL_IDLE", "4")
		testcase.SetEnv(t, "SEQKIT_LOG_LEVEL", "error")
		assert.NoError(t, Main(context.Background()))
	})

	s.Test("an unknown backing is rejected", func(t *testcase.T) {
		testcase.SetEnv(t, "SEQKIT_BACKING", "tree")
		assert.Error(t, Main(context.Background()))
	})
}
