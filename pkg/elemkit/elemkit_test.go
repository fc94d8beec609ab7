package elemkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/pkg/elemkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestConfig(t *testing.T) {
	s := testcase.NewSpec(t)

	opts := let.Var[[]elemkit.Option[string]](s, func(t *testcase.T) []elemkit.Option[string] {
		return nil
	})
	subject := let.Var(s, func(t *testcase.T) elemkit.Config[string] {
		return option.ToConfig(opts.Get(t))
	})

	s.Describe("#CopyTo", func(s *testcase.Spec) {
		src := let.Var(s, func(t *testcase.T) string {
			return t.Random.String()
		})

		s.When("no copy policy is given", func(s *testcase.Spec) {
			s.Then("plain assignment is used", func(t *testcase.T) {
				var dst string
				assert.NoError(t, subject.Get(t).CopyTo(&dst, src.Get(t)))
				assert.Equal(t, src.Get(t), dst)
			})
		})

		s.When("copy policy is supplied", func(s *testcase.Spec) {
			expErr := let.Error(s)

			opts.Let(s, func(t *testcase.T) []elemkit.Option[string] {
				return []elemkit.Option[string]{elemkit.WithCopy(func(dst *string, src string) error {
					*dst = "partial"
					return expErr.Get(t)
				})}
			})

			s.Then("the policy's failure is returned", func(t *testcase.T) {
				var dst string
				assert.ErrorIs(t, expErr.Get(t), subject.Get(t).CopyTo(&dst, src.Get(t)))
			})

			s.Then("Clone does not leak the partially written value", func(t *testcase.T) {
				got, err := subject.Get(t).Clone(src.Get(t))
				assert.ErrorIs(t, expErr.Get(t), err)
				assert.Empty(t, got)
			})
		})
	})

	s.Describe("#DefaultTo", func(s *testcase.Spec) {
		s.When("no default policy is given", func(s *testcase.Spec) {
			s.Then("the zero value is used", func(t *testcase.T) {
				dst := t.Random.String()
				assert.NoError(t, subject.Get(t).DefaultTo(&dst))
				assert.Equal(t, "", dst)
			})
		})

		s.When("a default policy is supplied", func(s *testcase.Spec) {
			val := let.String(s)

			opts.Let(s, func(t *testcase.T) []elemkit.Option[string] {
				return []elemkit.Option[string]{elemkit.WithDefault(func(dst *string) error {
					*dst = val.Get(t)
					return nil
				})}
			})

			s.Then("the policy's value is used", func(t *testcase.T) {
				var dst string
				assert.NoError(t, subject.Get(t).DefaultTo(&dst))
				assert.Equal(t, val.Get(t), dst)
			})
		})
	})
}

func TestConfig_Configure(t *testing.T) {
	errBoom := errors.New("boom")
	base := elemkit.Config[int]{
		Default: func(dst *int) error { *dst = 42; return nil },
	}
	c := option.ToConfig([]elemkit.Option[int]{
		base,
		elemkit.Config[int]{Copy: func(dst *int, src int) error { return errBoom }},
	})

	var v int
	assert.NoError(t, c.DefaultTo(&v))
	assert.Equal(t, 42, v, "earlier options are kept when later ones leave the field unset")
	assert.ErrorIs(t, errBoom, c.CopyTo(&v, 7))
}
