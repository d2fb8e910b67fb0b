package pagination_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/mocks"
	"github.com/ryft-xyz/ryft-indexer/internal/pagination"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestWalk_SinglePage(t *testing.T) {
	clock := adapter.NewClock()

	items, err := pagination.Walk(context.Background(), clock, pagination.Options{},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			assert.Empty(t, cursor)
			return pagination.Page[int]{Items: []int{1, 2, 3}}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, items)
}

func TestWalk_MultiplePages(t *testing.T) {
	clock := adapter.NewClock()

	pages := map[string]pagination.Page[string]{
		"":   {Items: []string{"a", "b"}, NextCursor: "p2"},
		"p2": {Items: []string{"c", "d"}, NextCursor: "p3"},
		"p3": {Items: []string{"e"}},
	}

	var seen []string
	items, err := pagination.Walk(context.Background(), clock, pagination.Options{},
		func(ctx context.Context, cursor string) (pagination.Page[string], error) {
			seen = append(seen, cursor)
			return pages[cursor], nil
		})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	assert.Equal(t, []string{"", "p2", "p3"}, seen)
}

func TestWalk_ShortBatchIsLastPage(t *testing.T) {
	clock := adapter.NewClock()

	calls := 0
	items, err := pagination.Walk(context.Background(), clock, pagination.Options{PageSize: 3},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			calls++
			// Provider keeps returning a cursor even on the last page
			return pagination.Page[int]{Items: []int{1, 2}, NextCursor: "more"}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, items)
	assert.Equal(t, 1, calls)
}

func TestWalk_MaxItems(t *testing.T) {
	clock := adapter.NewClock()

	items, err := pagination.Walk(context.Background(), clock, pagination.Options{MaxItems: 5},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			return pagination.Page[int]{Items: []int{1, 2, 3}, NextCursor: cursor + "x"}, nil
		})

	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestWalk_MaxPages(t *testing.T) {
	clock := adapter.NewClock()

	calls := 0
	items, err := pagination.Walk(context.Background(), clock, pagination.Options{MaxPages: 3},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			calls++
			return pagination.Page[int]{Items: []int{calls}, NextCursor: fmt.Sprintf("p%d", calls)}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2, 3}, items)
}

func TestWalk_StuckCursor(t *testing.T) {
	clock := adapter.NewClock()

	calls := 0
	items, err := pagination.Walk(context.Background(), clock, pagination.Options{},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			calls++
			if calls == 1 {
				return pagination.Page[int]{Items: []int{1}, NextCursor: "stuck"}, nil
			}
			// Cursor never advances past "stuck"
			return pagination.Page[int]{Items: []int{2}, NextCursor: "stuck"}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{1, 2}, items)
}

func TestWalk_FetchError(t *testing.T) {
	clock := adapter.NewClock()
	fetchErr := errors.New("provider unavailable")

	calls := 0
	items, err := pagination.Walk(context.Background(), clock, pagination.Options{},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			calls++
			if calls == 1 {
				return pagination.Page[int]{Items: []int{1}, NextCursor: "p2"}, nil
			}
			return pagination.Page[int]{}, fetchErr
		})

	// Accumulated items are returned alongside the error
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, []int{1}, items)
}

func TestWalk_ContextCanceled(t *testing.T) {
	clock := adapter.NewClock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := pagination.Walk(ctx, clock, pagination.Options{},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			t.Fatal("fetch should not be called")
			return pagination.Page[int]{}, nil
		})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, items)
}

func TestWalk_PageDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().
		After(250 * time.Millisecond).
		DoAndReturn(func(d time.Duration) <-chan time.Time {
			ch := make(chan time.Time, 1)
			ch <- time.Now()
			return ch
		})

	pages := map[string]pagination.Page[int]{
		"":   {Items: []int{1}, NextCursor: "p2"},
		"p2": {Items: []int{2}},
	}

	items, err := pagination.Walk(context.Background(), clock, pagination.Options{PageDelay: 250 * time.Millisecond},
		func(ctx context.Context, cursor string) (pagination.Page[int], error) {
			return pages[cursor], nil
		})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, items)
}
