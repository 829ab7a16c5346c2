package store_test

import (
	"context"
	"iter"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/reaction"
	"github.com/dmitrymomot/storekit/pkg/store"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

type action struct {
	Name string
	Arg  string
}

type mutation struct {
	Name string
	Arg  string
}

type state struct {
	Count  int
	Status string
	Said   string
}

var (
	bump   = action{Name: "bump"}
	wakeup = action{Name: "wakeup"}
)

func eat(food string) action { return action{Name: "eat", Arg: food} }
func shout(text string) action { return action{Name: "shout", Arg: text} }
func sleep(d time.Duration) action { return action{Name: "sleep", Arg: d.String()} }

var rx = reaction.For[action, mutation, string]()

type (
	reactionOf = reaction.Reaction[action, mutation, string]
	reactions  = iter.Seq[reactionOf]
	funcs      = store.Funcs[action, mutation, string, state]
	builder    = store.Builder[action, mutation, string, state]
	testStore  = store.Store[action, mutation, string, state]
)

// reduce is shared by every reactor in this package.
func reduce(m mutation, s state) state {
	switch m.Name {
	case "inc":
		s.Count++
	case "add":
		n, _ := strconv.Atoi(m.Arg)
		s.Count += n
	case "status":
		s.Status = m.Arg
	case "said":
		s.Said = m.Arg
	}
	return s
}

// demoReact covers the actions used across tests.
func demoReact(ctx context.Context, a action, _ state) (reactions, error) {
	switch a.Name {
	case "bump":
		return rx.Just(rx.Mutation(mutation{Name: "inc"})), nil
	case "eat":
		return rx.Just(rx.Mutation(mutation{Name: "status", Arg: "eating " + a.Arg})), nil
	case "shout":
		return rx.Just(rx.Mutation(mutation{Name: "said", Arg: a.Arg})), nil
	case "sleep":
		d, err := time.ParseDuration(a.Arg)
		if err != nil {
			return nil, err
		}
		return rx.Concat(
			rx.Just(rx.Mutation(mutation{Name: "status", Arg: "sleeping"})),
			rx.After(ctx, d, rx.Just(rx.Action(wakeup))),
		), nil
	case "wakeup":
		return rx.Just(
			rx.Mutation(mutation{Name: "status", Arg: "awake"}),
			rx.Event("woke up"),
		), nil
	}
	return rx.Empty(), nil
}

func demoReactor() funcs {
	return funcs{ReactFn: demoReact, ReduceFn: reduce}
}

func newBuilder(r store.Reactor[action, mutation, string, state]) *builder {
	return store.NewBuilder[action, mutation, string, state](state{}, r).
		WithOptions(store.WithLogger(logger.Discard()), store.WithDrainTimeout(time.Second))
}

// start builds the store and closes it when the test ends.
func start(t *testing.T, b *builder) *testStore {
	t.Helper()

	s, err := b.Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// recorder collects values delivered on pipeline goroutines.
type recorder[T any] struct {
	mu    sync.Mutex
	items []T
}

func (r *recorder[T]) add(v T) {
	r.mu.Lock()
	r.items = append(r.items, v)
	r.mu.Unlock()
}

func (r *recorder[T]) values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

func (r *recorder[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
