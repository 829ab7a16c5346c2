package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storekit/pkg/observable"
)

type profile struct {
	Name  string
	Visit int
}

func TestSelect(t *testing.T) {
	t.Parallel()

	src := observable.NewCell(profile{Name: "ann", Visit: 1})
	name := observable.Select(src.View(), func(p profile) string { return p.Name })
	defer name.Close()

	var got []string
	name.Subscribe(func(v string) { got = append(got, v) })

	src.Set(profile{Name: "ann", Visit: 2})
	src.Set(profile{Name: "bob", Visit: 3})
	src.Set(profile{Name: "bob", Visit: 4})

	assert.Equal(t, "bob", name.Get())
	assert.Equal(t, []string{"ann", "bob"}, got)
}

func TestSelect_Close(t *testing.T) {
	t.Parallel()

	src := observable.NewCell(1)
	doubled := observable.Select(src.View(), func(v int) int { return v * 2 })

	src.Set(2)
	doubled.Close()
	src.Set(3)

	assert.Equal(t, 4, doubled.Get())
	assert.Equal(t, 0, src.Len())
}
