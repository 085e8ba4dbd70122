package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
)

func TestRockets_SelectionCapsAtTwo(t *testing.T) {
	t.Parallel()

	v := NewRockets(testEnv(newFakeSource()))
	deliver(t, v, v.Init())
	require.Equal(t, fetch.Ready, v.Rockets().State())

	v.Update(key("space"))
	v.Update(key("down"))
	v.Update(key("space"))
	v.Update(key("down"))
	v.Update(key("space"))

	assert.Equal(t, []string{"Falcon 1", "Falcon 9"}, v.Selected(), "a third selection is ignored")

	v.Update(key("up"))
	v.Update(key("space"))
	assert.Equal(t, []string{"Falcon 1"}, v.Selected(), "selecting again removes")
}

func TestRockets_CompareGating(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	v := NewRockets(testEnv(src))
	deliver(t, v, v.Init())

	_, cmd := v.Update(key("c"))
	assert.Nil(t, cmd)

	v.Toggle("Falcon 1")
	_, cmd = v.Update(key("c"))
	assert.Nil(t, cmd)
	assert.Zero(t, src.count("compare"))

	v.Toggle("Starship")
	_, cmd = v.Update(key("c"))
	require.NotNil(t, cmd)
	assert.True(t, v.Busy())

	_, again := v.Update(key("c"))
	assert.Nil(t, again, "no second request while one is running")

	deliver(t, v, cmd)
	assert.Equal(t, 1, src.count("compare"))

	cmp, ok := v.Comparison().Data()
	require.True(t, ok)
	assert.Equal(t, "Falcon 1 versus Starship", cmp.Text)
	assert.Contains(t, v.View(), "Falcon 1 versus Starship")
}

func TestRockets_CompareFailure(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.compare = func(string, string) (*api.Comparison, error) { return nil, errBackend }
	v := NewRockets(testEnv(src))
	deliver(t, v, v.Init())

	v.Toggle("Falcon 1")
	v.Toggle("Falcon 9")
	deliver(t, v, v.StartCompare())

	assert.Equal(t, fetch.Failed, v.Comparison().State())
	assert.Contains(t, v.View(), CompareFailure)
}

func TestRockets_LoadFailure(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.rockets = func() ([]api.Rocket, error) { return nil, errBackend }
	v := NewRockets(testEnv(src))
	deliver(t, v, v.Init())

	assert.Contains(t, v.View(), RocketsFailure)
}

func TestRockets_TeardownDropsLateResults(t *testing.T) {
	t.Parallel()

	v := NewRockets(testEnv(newFakeSource()))
	cmd := v.Init()
	v.Teardown()

	deliver(t, v, cmd)
	assert.Equal(t, fetch.Idle, v.Rockets().State())
}
