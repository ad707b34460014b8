package paginator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: DefaultPageSize},
		{name: "negative page", page: -3, limit: 10, wantPage: 1, wantLimit: 10},
		{name: "limit capped", page: 2, limit: 500, wantPage: 2, wantLimit: MaxPageSize},
		{name: "valid passthrough", page: 4, limit: 25, wantPage: 4, wantLimit: 25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.page, tt.limit)
			require.Equal(t, tt.wantPage, p.Page)
			require.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestNormalizeWithDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		limit     int
		fallback  int
		wantPage  int
		wantLimit int
	}{
		{name: "fallback fills missing limit", page: 0, limit: 0, fallback: 25, wantPage: 1, wantLimit: 25},
		{name: "explicit limit wins", page: 2, limit: 7, fallback: 25, wantPage: 2, wantLimit: 7},
		{name: "fallback still capped", page: 1, limit: 500, fallback: 25, wantPage: 1, wantLimit: MaxPageSize},
		{name: "broken fallback degrades to default", page: 0, limit: 0, fallback: 0, wantPage: 1, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizeWithDefault(tt.page, tt.limit, tt.fallback)
			require.Equal(t, tt.wantPage, p.Page)
			require.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Normalize(1, 10).Offset())
	require.Equal(t, 10, Normalize(2, 10).Offset())
	require.Equal(t, 120, Normalize(5, 30).Offset())
}

func TestBuildMeta_ThirteenPostsPageSizeTen(t *testing.T) {
	t.Parallel()

	page1 := BuildMeta(Normalize(1, 10), 13)
	require.Equal(t, 2, page1.TotalPages)
	require.True(t, page1.HasNext)
	require.False(t, page1.HasPrev)

	page2 := BuildMeta(Normalize(2, 10), 13)
	require.False(t, page2.HasNext)
	require.True(t, page2.HasPrev)
	require.Equal(t, 13, page2.Total)
}

func TestBuildMeta_PastTheEnd(t *testing.T) {
	t.Parallel()

	meta := BuildMeta(Normalize(99, 10), 13)
	require.Equal(t, 99, meta.Page)
	require.Equal(t, 2, meta.TotalPages)
	require.False(t, meta.HasNext)
	require.True(t, meta.HasPrev)
}

func TestBuildMeta_Empty(t *testing.T) {
	t.Parallel()

	meta := BuildMeta(Normalize(1, 10), 0)
	require.Equal(t, 0, meta.TotalPages)
	require.False(t, meta.HasNext)
	require.False(t, meta.HasPrev)
}
