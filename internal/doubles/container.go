package doubles

import "go.llib.dev/seqkit/port/ds"

// MinimalContainer implements nothing but the five container primitives.
// It is backed by a plain slice and knows nothing about the sequence containers of this module.
type MinimalContainer[T any] struct {
	vs []T
	// FakeLen, when positive, is reported by Len instead of the real length.
	FakeLen int
	// Calls counts the element access calls (Get, Ref, RemoveAt).
	Calls int
}

var _ ds.Container[any] = (*MinimalContainer[any])(nil)

func (c *MinimalContainer[T]) Append(v T) error {
	c.vs = append(c.vs, v)
	return nil
}

func (c *MinimalContainer[T]) Get(index int) (T, error) {
	c.Calls++
	if err := ds.CheckIndex("Get", index, len(c.vs)); err != nil {
		var zero T
		return zero, err
	}
	return c.vs[index], nil
}

func (c *MinimalContainer[T]) Ref(index int) (*T, error) {
	c.Calls++
	if err := ds.CheckIndex("Ref", index, len(c.vs)); err != nil {
		return nil, err
	}
	return &c.vs[index], nil
}

func (c *MinimalContainer[T]) RemoveAt(index int) (T, error) {
	c.Calls++
	if err := ds.CheckIndex("RemoveAt", index, len(c.vs)); err != nil {
		var zero T
		return zero, err
	}
	v := c.vs[index]
	c.vs = append(c.vs[:index:index], c.vs[index+1:]...)
	return v, nil
}

func (c *MinimalContainer[T]) Len() int {
	if 0 < c.FakeLen {
		return c.FakeLen
	}
	return len(c.vs)
}
