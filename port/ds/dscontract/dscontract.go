// Package dscontract contains the behavioural contracts of the port/ds role interfaces.
// Any implementation can verify itself against them with Test or Spec.
package dscontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

type Option[T any] option.Option[Config[T]]

type Config[T any] struct {
	// MakeElem creates an element value for the tests.
	// By default a random value of T is made.
	MakeElem func(testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(t *Config[T]) {
	if c.MakeElem != nil {
		t.MakeElem = c.MakeElem
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}

func (c Config[T]) makeElems(t *testcase.T, min, max int) []T {
	return random.Slice(t.Random.IntBetween(min, max), func() T {
		return c.makeElem(t)
	})
}

func typeName[T any]() string {
	return reflectkit.TypeOf[T]().String()
}
