package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
)

func TestAPOD_LoadsToday(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	v := NewAPOD(testEnv(src))
	assert.Contains(t, v.View(), "Loading picture of the day")

	deliver(t, v, v.Init())

	require.Equal(t, fetch.Ready, v.State().State())
	assert.Nil(t, v.Date())
	view := v.View()
	assert.Contains(t, view, "The Horsehead Nebula")
	assert.Contains(t, view, "https://apod.example/horsehead.jpg")
	assert.Contains(t, view, "A dark nebula in Orion.")
}

func TestAPOD_FailureShowsStaticMessage(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.apod = func(*time.Time) (*api.APOD, error) { return nil, errBackend }
	v := NewAPOD(testEnv(src))

	deliver(t, v, v.Init())

	assert.Equal(t, fetch.Failed, v.State().State())
	assert.Contains(t, v.View(), APODFailure)
	assert.NotContains(t, v.View(), "backend down")
}

func TestAPOD_VideoShowsEmbedLink(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.apod = func(*time.Time) (*api.APOD, error) {
		return &api.APOD{Title: "Launch", URL: "https://video.example/embed/1", MediaType: api.MediaVideo}, nil
	}
	v := NewAPOD(testEnv(src))
	deliver(t, v, v.Init())

	view := v.View()
	assert.Contains(t, view, "Video")
	assert.Contains(t, view, "https://video.example/embed/1")
	assert.Contains(t, view, "Open the video link in a browser")
}

func TestAPOD_DateNavigation(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	v := NewAPOD(testEnv(src))
	deliver(t, v, v.Init())

	_, cmd := v.Update(key("]"))
	assert.Nil(t, cmd, "cannot move past today")

	_, cmd = v.Update(key("["))
	require.NotNil(t, cmd)
	deliver(t, v, cmd)
	require.NotNil(t, v.Date())
	assert.Equal(t, "2024-03-09", v.Date().Format(api.DateLayout))

	_, cmd = v.Update(key("]"))
	require.NotNil(t, cmd)
	assert.Equal(t, "2024-03-10", v.Date().Format(api.DateLayout))

	_, cmd = v.Update(key("t"))
	require.NotNil(t, cmd)
	assert.Nil(t, v.Date())
}

func TestAPOD_TypedDate(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	v := NewAPOD(testEnv(src))
	deliver(t, v, v.Init())

	v.Update(key("d"))
	require.True(t, v.Capturing())

	typeText(v, "2030-01-01")
	_, cmd := v.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.True(t, v.Capturing())
	assert.Contains(t, v.View(), "Date cannot be in the future.")

	v.Update(key("esc"))
	assert.False(t, v.Capturing())

	v.Update(key("d"))
	typeText(v, "2020-05-04")
	_, cmd = v.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.False(t, v.Capturing())
	deliver(t, v, cmd)
	assert.Equal(t, "2020-05-04", v.Date().Format(api.DateLayout))
	assert.Equal(t, 2, src.count("apod"))
}

func TestAPOD_LastRequestWins(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.apod = func(date *time.Time) (*api.APOD, error) {
		if date == nil {
			return &api.APOD{Title: "today"}, nil
		}
		return &api.APOD{Title: date.Format(api.DateLayout)}, nil
	}
	v := NewAPOD(testEnv(src))

	first := v.Init()
	_, second := v.Update(key("["))

	// The newer request resolves before the older one.
	deliver(t, v, second)
	deliver(t, v, first)

	got, ok := v.State().Data()
	require.True(t, ok)
	assert.Equal(t, "2024-03-09", got.Title)
}
