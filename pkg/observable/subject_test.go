package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storekit/pkg/observable"
)

func TestSubject_NoReplay(t *testing.T) {
	t.Parallel()

	s := observable.NewSubject[string]()
	s.Publish("before")

	var got []string
	sub := s.Subscribe(func(v string) { got = append(got, v) })
	defer sub.Unsubscribe()

	assert.Empty(t, got)

	s.Publish("after")
	assert.Equal(t, []string{"after"}, got)
}

func TestSubject_MultipleSubscribers(t *testing.T) {
	t.Parallel()

	s := observable.NewSubject[int]()
	var a, b []int
	subA := s.Subscribe(func(v int) { a = append(a, v) })
	s.Subscribe(func(v int) { b = append(b, v) })

	s.Publish(1)
	subA.Unsubscribe()
	s.Publish(2)

	assert.Equal(t, []int{1}, a)
	assert.Equal(t, []int{1, 2}, b)
	assert.Equal(t, 1, s.Len())
}

func TestSubject_DeliversDuplicates(t *testing.T) {
	t.Parallel()

	s := observable.NewSubject[int]()
	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })

	s.Publish(5)
	s.Publish(5)

	assert.Equal(t, []int{5, 5}, got)
}

func TestSubscriptionFunc(t *testing.T) {
	t.Parallel()

	called := 0
	var sub observable.Subscription = observable.SubscriptionFunc(func() { called++ })
	sub.Unsubscribe()
	assert.Equal(t, 1, called)

	var nilSub observable.SubscriptionFunc
	assert.NotPanics(t, nilSub.Unsubscribe)
}
