package commandbus

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greet struct{ name string }

func (greet) CommandName() string { return "greet" }

type other struct{}

func (other) CommandName() string { return "other" }

func TestDispatch_StampsResult(t *testing.T) {
	bus := New(prometheus.NewRegistry())
	bus.Register("greet", "greeter", Typed(func(_ context.Context, cmd greet) (any, error) {
		return "hello " + cmd.name, nil
	}))

	env, err := bus.Dispatch(context.Background(), greet{name: "bro"})
	require.NoError(t, err)

	stamp, ok := env.Last()
	require.True(t, ok)
	assert.Equal(t, "greeter", stamp.HandlerName)
	assert.Equal(t, "hello bro", stamp.Result)
	assert.Equal(t, 1.0, testutil.ToFloat64(bus.dispatched.WithLabelValues("greet", "handled")))
}

func TestDispatch_Unhandled(t *testing.T) {
	bus := New(nil)

	env, err := bus.Dispatch(context.Background(), other{})
	require.NoError(t, err)

	_, ok := env.Last()
	assert.False(t, ok)
	assert.Empty(t, env.Stamps())
	assert.Equal(t, 1.0, testutil.ToFloat64(bus.dispatched.WithLabelValues("other", "unhandled")))
}

func TestDispatch_HandlersRunInOrderAndStopOnError(t *testing.T) {
	bus := New(nil)
	var calls []string
	boom := errors.New("boom")

	bus.Register("greet", "first", func(context.Context, Command) (any, error) {
		calls = append(calls, "first")
		return 1, nil
	})
	bus.Register("greet", "second", func(context.Context, Command) (any, error) {
		calls = append(calls, "second")
		return nil, boom
	})
	bus.Register("greet", "third", func(context.Context, Command) (any, error) {
		calls = append(calls, "third")
		return 3, nil
	})

	env, err := bus.Dispatch(context.Background(), greet{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Len(t, env.Stamps(), 1)
}

func TestTyped_RejectsWrongCommand(t *testing.T) {
	h := Typed(func(context.Context, greet) (any, error) { return nil, nil })

	_, err := h(context.Background(), other{})
	assert.Error(t, err)
}

func TestNew_ReusesRegisteredCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg)
	b := New(reg)

	a.Register("greet", "h", func(context.Context, Command) (any, error) { return nil, nil })
	_, _ = a.Dispatch(context.Background(), greet{})

	assert.Equal(t, 1.0, testutil.ToFloat64(b.dispatched.WithLabelValues("greet", "handled")))
}
