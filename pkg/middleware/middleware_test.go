package middleware_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/middleware"
)

type counter struct {
	Count int
}

func recorder(name string, calls *[]string) middleware.Middleware[counter, string] {
	return func(state middleware.StateFunc[counter]) func(middleware.Dispatch[string]) middleware.Dispatch[string] {
		return func(next middleware.Dispatch[string]) middleware.Dispatch[string] {
			return func(v string) string {
				*calls = append(*calls, name)
				return next(v)
			}
		}
	}
}

func stateFn(s counter) middleware.StateFunc[counter] {
	return func() counter { return s }
}

func TestChain_DeclarationOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	var delivered []string
	terminal := func(v string) string {
		calls = append(calls, "terminal")
		delivered = append(delivered, v)
		return v
	}

	d := middleware.Chain(stateFn(counter{}), terminal,
		recorder("first", &calls),
		recorder("second", &calls),
		recorder("third", &calls),
	)
	d("x")

	assert.Equal(t, []string{"first", "second", "third", "terminal"}, calls)
	assert.Equal(t, []string{"x"}, delivered)
}

func TestChain_Swallow(t *testing.T) {
	t.Parallel()

	var calls []string
	swallow := func(middleware.StateFunc[counter]) func(middleware.Dispatch[string]) middleware.Dispatch[string] {
		return func(next middleware.Dispatch[string]) middleware.Dispatch[string] {
			return func(v string) string {
				calls = append(calls, "swallow")
				return v
			}
		}
	}

	d := middleware.Chain(stateFn(counter{}), func(v string) string {
		calls = append(calls, "terminal")
		return v
	}, recorder("first", &calls), swallow, recorder("never", &calls))
	d("x")

	assert.Equal(t, []string{"first", "swallow"}, calls)
}

func TestChain_MultipleNext(t *testing.T) {
	t.Parallel()

	twice := func(middleware.StateFunc[counter]) func(middleware.Dispatch[string]) middleware.Dispatch[string] {
		return func(next middleware.Dispatch[string]) middleware.Dispatch[string] {
			return func(v string) string {
				next(v + "-1")
				return next(v + "-2")
			}
		}
	}

	var delivered []string
	d := middleware.Chain(stateFn(counter{}), func(v string) string {
		delivered = append(delivered, v)
		return v
	}, twice)

	assert.Equal(t, "x-2", d("x"))
	assert.Equal(t, []string{"x-1", "x-2"}, delivered)
}

func TestChain_StateAccessor(t *testing.T) {
	t.Parallel()

	current := counter{Count: 1}
	state := func() counter { return current }

	var seen []int
	d := middleware.Chain(state, nil, middleware.Tap(func(s counter, _ string) {
		seen = append(seen, s.Count)
	}))

	d("a")
	current = counter{Count: 2}
	d("b")

	assert.Equal(t, []int{1, 2}, seen)
}

func TestChain_NilEntriesSkipped(t *testing.T) {
	t.Parallel()

	var calls []string
	d := middleware.Chain(stateFn(counter{}), nil, nil, recorder("only", &calls), nil)
	assert.Equal(t, "v", d("v"))
	assert.Equal(t, []string{"only"}, calls)
}

func TestChainPostware(t *testing.T) {
	t.Parallel()

	clamp := middleware.Postware[counter](middleware.Map(func(_ counter, s counter) counter {
		if s.Count > 10 {
			s.Count = 10
		}
		return s
	}))

	var published []counter
	d := middleware.ChainPostware(stateFn(counter{}), func(s counter) counter {
		published = append(published, s)
		return s
	}, clamp, nil)

	d(counter{Count: 3})
	d(counter{Count: 42})

	assert.Equal(t, []counter{{Count: 3}, {Count: 10}}, published)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	var delivered []string
	d := middleware.Chain(stateFn(counter{Count: 2}), func(v string) string {
		delivered = append(delivered, v)
		return v
	}, middleware.Filter(func(s counter, v string) bool {
		return len(v) <= s.Count
	}))

	d("ok")
	d("too long")

	assert.Equal(t, []string{"ok"}, delivered)
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d := middleware.Chain(stateFn(counter{}), nil, middleware.Logging[counter, string](log, "action"))
	d("ping")

	out := buf.String()
	assert.Contains(t, out, "leg=action")
	assert.Contains(t, out, "value=ping")
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	d := middleware.Chain(stateFn(counter{}), func(v string) string {
		panic("boom")
	}, middleware.Recover[counter, string](log, "event"))

	var out string
	require.NotPanics(t, func() { out = d("x") })
	assert.Equal(t, "x", out)
	assert.Contains(t, buf.String(), "middleware panic recovered")
}
