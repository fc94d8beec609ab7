// Package adtcontract contains the behavioural contracts of the Stack and Queue abstract data types.
package adtcontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Option[T any] option.Option[Config[T]]

type Config[T any] struct {
	// MakeElem creates an element value for the tests.
	MakeElem func(testing.TB) T
	// ScenarioCount is the number of elements the bulk scenario pushes through.
	// By default it is 998.
	ScenarioCount int
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(t *Config[T]) {
	if c.MakeElem != nil {
		t.MakeElem = c.MakeElem
	}
	if c.ScenarioCount != 0 {
		t.ScenarioCount = c.ScenarioCount
	}
}

const defaultScenarioCount = 998

func (c Config[T]) scenarioCount() int {
	if c.ScenarioCount <= 0 {
		return defaultScenarioCount
	}
	return c.ScenarioCount
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}

func (c Config[T]) makeElems(tb testing.TB, n int) []T {
	vs := make([]T, 0, n)
	for range n {
		vs = append(vs, c.makeElem(tb))
	}
	return vs
}

func typeName[T any]() string {
	return reflectkit.TypeOf[T]().String()
}
