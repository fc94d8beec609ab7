// Package doubles contains test doubles for the element policy,
// used to inject failures into container operations.
package doubles

import (
	"go.llib.dev/seqkit/pkg/elemkit"
)

// FaultyElem is an element policy that starts failing after a number of successful calls.
// When Panic is set, it panics with Err instead of returning it.
type FaultyElem[T any] struct {
	// CopyBudget is the number of Copy calls that succeed, a negative value means unlimited.
	CopyBudget int
	// DefaultBudget is the number of Default calls that succeed, a negative value means unlimited.
	DefaultBudget int
	// Partial makes a failing Copy write the source value into the destination before it fails.
	Partial bool
	Panic   bool
	Err     error

	Copies   int
	Defaults int
}

func (f *FaultyElem[T]) Copy(dst *T, src T) error {
	if 0 <= f.CopyBudget && f.CopyBudget <= f.Copies {
		if f.Partial {
			*dst = src
		}
		return f.fail()
	}
	f.Copies++
	*dst = src
	return nil
}

func (f *FaultyElem[T]) Default(dst *T) error {
	if 0 <= f.DefaultBudget && f.DefaultBudget <= f.Defaults {
		return f.fail()
	}
	f.Defaults++
	var zero T
	*dst = zero
	return nil
}

func (f *FaultyElem[T]) fail() error {
	if f.Panic {
		panic(f.Err)
	}
	return f.Err
}

// Config returns the policy wired to this double.
func (f *FaultyElem[T]) Config() elemkit.Config[T] {
	return elemkit.Config[T]{
		Copy:    f.Copy,
		Default: f.Default,
	}
}
