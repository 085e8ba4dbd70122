package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

func TestLifecycle_StartsIdle(t *testing.T) {
	t.Parallel()

	l := New[string]("apod", "Failed to load.")
	assert.Equal(t, Idle, l.State())
	assert.Equal(t, Token(0), l.Token())
	_, ok := l.Data()
	assert.False(t, ok)
}

func TestLifecycle_SuccessAndFailure(t *testing.T) {
	t.Parallel()

	l := New[[]int]("list", "Failed to load list.")

	tok, _ := l.Begin(context.Background())
	assert.Equal(t, Loading, l.State())
	require.True(t, l.Resolve(Result[[]int]{Key: "list", Token: tok, Data: []int{1, 2}}))
	data, ok := l.Data()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, data)
	assert.Equal(t, "ready", l.State().String())

	tok, _ = l.Begin(context.Background())
	boom := errors.New("boom")
	require.True(t, l.Resolve(Result[[]int]{Key: "list", Token: tok, Err: boom}))
	assert.Equal(t, Failed, l.State())
	assert.Equal(t, "Failed to load list.", l.Message())
	assert.ErrorIs(t, l.Err(), boom)
	data, ok = l.Data()
	assert.False(t, ok)
	assert.Nil(t, data, "failure discards the previous snapshot")
}

func TestLifecycle_LastRequestWins(t *testing.T) {
	t.Parallel()

	orders := map[string][]string{
		"newer resolves first": {"B", "A"},
		"older resolves first": {"A", "B"},
	}

	for name, order := range orders {
		order := order
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l := New[string]("apod", "failed")
			tokA, ctxA := l.Begin(context.Background())
			tokB, _ := l.Begin(context.Background())
			require.Greater(t, tokB, tokA)
			assert.ErrorIs(t, ctxA.Err(), context.Canceled, "superseded request is cancelled")

			results := map[string]Result[string]{
				"A": {Key: "apod", Token: tokA, Data: "A"},
				"B": {Key: "apod", Token: tokB, Data: "B"},
			}
			for _, id := range order {
				l.Resolve(results[id])
			}

			data, ok := l.Data()
			require.True(t, ok)
			assert.Equal(t, "B", data)
		})
	}
}

func TestLifecycle_StaleFailureIgnored(t *testing.T) {
	t.Parallel()

	l := New[string]("epic", "failed")
	tokA, _ := l.Begin(context.Background())
	tokB, _ := l.Begin(context.Background())

	assert.True(t, l.Resolve(Result[string]{Key: "epic", Token: tokB, Data: "fresh"}))
	assert.False(t, l.Resolve(Result[string]{Key: "epic", Token: tokA, Err: errors.New("late")}))

	data, ok := l.Data()
	require.True(t, ok)
	assert.Equal(t, "fresh", data)
	assert.Empty(t, l.Message())
}

func TestLifecycle_RejectsForeignKey(t *testing.T) {
	t.Parallel()

	l := New[string]("a", "failed")
	tok, _ := l.Begin(context.Background())
	assert.False(t, l.Resolve(Result[string]{Key: "b", Token: tok, Data: "x"}))
	assert.Equal(t, Loading, l.State())
}

func TestLifecycle_DuplicateResolveIgnored(t *testing.T) {
	t.Parallel()

	l := New[int]("n", "failed")
	tok, _ := l.Begin(context.Background())
	require.True(t, l.Resolve(Result[int]{Key: "n", Token: tok, Data: 1}))
	assert.False(t, l.Resolve(Result[int]{Key: "n", Token: tok, Data: 2}))

	data, _ := l.Data()
	assert.Equal(t, 1, data)
}

func TestLifecycle_CancelMakesResultInert(t *testing.T) {
	t.Parallel()

	l := New[string]("rockets", "failed")
	tok, ctx := l.Begin(context.Background())
	l.Cancel()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, Idle, l.State())
	assert.False(t, l.Resolve(Result[string]{Key: "rockets", Token: tok, Data: "late"}))
}

func TestCommand_TagsResult(t *testing.T) {
	t.Parallel()

	l := New[string]("apod", "failed")
	cmd := l.Fetch(context.Background(), func(ctx context.Context) (string, error) {
		return "picture", nil
	})
	require.NotNil(t, cmd)

	msg := cmd()
	res, ok := msg.(Result[string])
	require.True(t, ok)
	assert.Equal(t, "apod", res.Key)
	assert.Equal(t, l.Token(), res.Token)
	assert.True(t, l.Resolve(res))
}

func TestCommand_SupersededContextReportsCancellation(t *testing.T) {
	t.Parallel()

	l := New[string]("apod", "failed")
	first := l.Fetch(context.Background(), func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", nil
	})
	_ = l.Fetch(context.Background(), func(ctx context.Context) (string, error) { return "second", nil })

	res := first().(Result[string])
	assert.True(t, apperrors.IsCancelled(res.Err))
	assert.False(t, l.Resolve(res))
}

func TestRun_Synchronous(t *testing.T) {
	t.Parallel()

	l := New[int]("n", "Failed.")
	assert.True(t, l.Run(context.Background(), func(context.Context) (int, error) { return 42, nil }))
	data, ok := l.Data()
	assert.True(t, ok)
	assert.Equal(t, 42, data)

	assert.True(t, l.Run(context.Background(), func(context.Context) (int, error) { return 0, errors.New("x") }))
	assert.Equal(t, Failed, l.State())
	assert.Equal(t, "Failed.", l.Message())
}
