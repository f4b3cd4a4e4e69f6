package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel/framework/container"
)

type service struct{ n int }

func TestContainer_BindIsTransient(t *testing.T) {
	c := container.New()
	calls := 0
	c.Bind("svc", func(*container.Container) any {
		calls++
		return &service{n: calls}
	})

	a := container.Resolve[*service](c, "svc")
	b := container.Resolve[*service](c, "svc")

	require.NotSame(t, a, b)
	require.Equal(t, 2, calls)
	require.False(t, c.Resolved("svc"))
}

func TestContainer_SingletonIsCached(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(*container.Container) any { return &service{} })

	require.Same(t, c.Make("svc"), c.Make("svc"))
	require.True(t, c.Resolved("svc"))
}

func TestContainer_RebindDropsCachedSingleton(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(*container.Container) any { return &service{n: 1} })
	_ = c.Make("svc")

	c.Singleton("svc", func(*container.Container) any { return &service{n: 2} })

	require.Equal(t, 2, container.Resolve[*service](c, "svc").n)
}

func TestContainer_Instance(t *testing.T) {
	c := container.New()
	s := &service{n: 7}
	c.Instance("svc", s)

	require.Same(t, s, c.Make("svc"))
	require.True(t, c.Bound("svc"))
}

func TestContainer_BoundToItself(t *testing.T) {
	c := container.New()
	require.Same(t, c, container.Resolve[*container.Container](c, "container"))
}

func TestContainer_FactoryCanResolveOtherBindings(t *testing.T) {
	c := container.New()
	c.Instance("n", 3)
	c.Singleton("svc", func(c *container.Container) any {
		return &service{n: container.Resolve[int](c, "n")}
	})

	require.Equal(t, 3, container.Resolve[*service](c, "svc").n)
}

func TestContainer_MakeUnboundPanics(t *testing.T) {
	c := container.New()
	require.PanicsWithValue(t, "container: no binding registered for [missing]", func() {
		c.Make("missing")
	})
}

func TestResolve_WrongTypePanics(t *testing.T) {
	c := container.New()
	c.Instance("n", 3)
	require.Panics(t, func() { container.Resolve[string](c, "n") })
}

func TestMustResolve(t *testing.T) {
	c := container.New()
	c.Instance("n", 3)

	n, ok := container.MustResolve[int](c, "n")
	require.True(t, ok)
	require.Equal(t, 3, n)

	_, ok = container.MustResolve[string](c, "n")
	require.False(t, ok)

	_, ok = container.MustResolve[int](c, "missing")
	require.False(t, ok)
}

func TestContainer_BindingsSorted(t *testing.T) {
	c := container.New()
	c.Bind("b", func(*container.Container) any { return nil })
	c.Instance("a", 1)

	require.Equal(t, []string{"a", "b", "container"}, c.Bindings())
}
