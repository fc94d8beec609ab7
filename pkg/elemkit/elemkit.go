// Package elemkit holds the element policy shared by the sequence containers.
//
// A container never copies an element with plain assignment directly,
// it always goes through the policy, so an element type with its own copy semantics
// (deep copy, resource handles, validation) can fail the copy,
// and the container can guarantee that such a failure leaves it unchanged.
package elemkit

import "go.llib.dev/frameless/port/option"

// CopyFunc copies src into the slot pointed by dst.
// It may fail, and it may leave dst partially written when it does.
type CopyFunc[T any] func(dst *T, src T) error

// DefaultFunc initialises the slot pointed by dst with a default value.
type DefaultFunc[T any] func(dst *T) error

// Config is the element policy.
// The zero Config copies with assignment and uses the zero value as default.
type Config[T any] struct {
	Copy    CopyFunc[T]
	Default DefaultFunc[T]
}

type Option[T any] option.Option[Config[T]]

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(t *Config[T]) {
	if c.Copy != nil {
		t.Copy = c.Copy
	}
	if c.Default != nil {
		t.Default = c.Default
	}
}

func WithCopy[T any](fn CopyFunc[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Copy = fn })
}

func WithDefault[T any](fn DefaultFunc[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) { c.Default = fn })
}

// CopyTo copies src into dst according to the policy.
func (c Config[T]) CopyTo(dst *T, src T) error {
	if c.Copy == nil {
		*dst = src
		return nil
	}
	return c.Copy(dst, src)
}

// DefaultTo initialises dst with the policy's default value.
func (c Config[T]) DefaultTo(dst *T) error {
	if c.Default == nil {
		var zero T
		*dst = zero
		return nil
	}
	return c.Default(dst)
}

// Clone makes a standalone copy of v according to the policy.
func (c Config[T]) Clone(v T) (T, error) {
	var out T
	if err := c.CopyTo(&out, v); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
