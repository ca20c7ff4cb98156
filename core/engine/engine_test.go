package engine

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"catalog-sync/core/render"
	"catalog-sync/core/snapshot"
	"catalog-sync/core/store"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(items []render.Record) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i], _ = item["token"].(string)
	}
	return out
}

func TestPage_CitiesScenario(t *testing.T) {
	f := newFixture(t, nil)
	rows := make([]store.Row, 0, 120000)
	for id := 1; id <= 120000; id++ {
		rows = append(rows, cityRow(id, int64(id), int64(1+id%2)))
	}
	f.store.add("cities", rows...)
	ctx := context.Background()

	tests := []struct {
		offset     int
		items      int
		hasMore    bool
		nextOffset *int
	}{
		{0, 50000, true, intPtr(50000)},
		{50000, 50000, true, intPtr(100000)},
		{100000, 20000, false, nil},
	}

	seen := make(map[string]struct{}, 120000)
	for _, tt := range tests {
		p, err := f.engine.Page(ctx, "cities", tt.offset)
		require.NoError(t, err)
		assert.Len(t, p.Items, tt.items, "offset %d", tt.offset)
		assert.Equal(t, tt.hasMore, p.HasMore, "offset %d", tt.offset)
		assert.Equal(t, tt.nextOffset, p.NextOffset, "offset %d", tt.offset)
		assert.Equal(t, fixedNow.Unix(), p.Timestamp)

		for _, tok := range tokens(p.Items) {
			_, dup := seen[tok]
			require.False(t, dup, "token %s served twice", tok)
			seen[tok] = struct{}{}
		}
	}
	assert.Len(t, seen, 120000, "pages cover every live row")
}

func intPtr(v int) *int { return &v }

func TestPage_ExcludesDeletedAndCompletes(t *testing.T) {
	f := newFixture(t, nil, citiesDesc(3), countriesDesc())
	for id := 1; id <= 8; id++ {
		row := cityRow(id, 100, 1)
		if id%4 == 0 {
			row["deleted"] = int64(200)
		}
		f.store.add("cities", row)
	}
	ctx := context.Background()

	var all []string
	offset := 0
	for {
		p, err := f.engine.Page(ctx, "cities", offset)
		require.NoError(t, err)
		all = append(all, tokens(p.Items)...)
		if !p.HasMore {
			assert.Nil(t, p.NextOffset)
			break
		}
		offset = *p.NextOffset
	}
	assert.Equal(t, []string{"city-000001", "city-000002", "city-000003", "city-000005", "city-000006", "city-000007"}, all)
}

func TestPage_OffsetIdempotence(t *testing.T) {
	f := newFixture(t, snapshot.NoopStore{}, citiesDesc(10), countriesDesc())
	for id := 1; id <= 25; id++ {
		f.store.add("cities", cityRow(id, int64(id), 1))
	}
	ctx := context.Background()

	base, err := f.engine.Page(ctx, "cities", 10)
	require.NoError(t, err)
	for _, offset := range []int{11, 15, 19} {
		p, err := f.engine.Page(ctx, "cities", offset)
		require.NoError(t, err)
		if diff := cmp.Diff(base.Items, p.Items); diff != "" {
			t.Errorf("offset %d differs from its page (-want +got):\n%s", offset, diff)
		}
		assert.Equal(t, base.NextOffset, p.NextOffset)
	}

	neg, err := f.engine.Page(ctx, "cities", -3)
	require.NoError(t, err)
	assert.Equal(t, "city-000001", tokens(neg.Items)[0])
}

func TestPage_CacheEquivalence(t *testing.T) {
	ctx := context.Background()
	seed := func(f *fixture) {
		for id := 1; id <= 5; id++ {
			f.store.add("cities", cityRow(id, int64(id*10), int64(id%3)))
		}
	}

	cached := newFixture(t, snapshot.NewMemoryStore(), citiesDesc(2), countriesDesc())
	uncached := newFixture(t, snapshot.NoopStore{}, citiesDesc(2), countriesDesc())
	seed(cached)
	seed(uncached)

	for _, offset := range []int{0, 2, 4} {
		first, err := cached.engine.Page(ctx, "cities", offset)
		require.NoError(t, err)
		again, err := cached.engine.Page(ctx, "cities", offset)
		require.NoError(t, err)
		fresh, err := uncached.engine.Page(ctx, "cities", offset)
		require.NoError(t, err)

		assert.Equal(t, string(fresh.JSON()), string(first.JSON()), "offset %d", offset)
		assert.Equal(t, string(first.JSON()), string(again.JSON()), "offset %d", offset)
	}
	assert.Equal(t, int32(3), cached.store.scans.Load(), "second reads are cache hits")
	assert.Equal(t, int32(3), uncached.store.scans.Load())

	keys, err := cached.snapshots.List(ctx, "catalogs/cities/")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"catalogs/cities/v1-p2/0",
		"catalogs/cities/v1-p2/2",
		"catalogs/cities/v1-p2/4",
	}, keys)
}

func TestPage_CachedPageIsStaleUntilPurged(t *testing.T) {
	f := newFixture(t, nil, countriesDesc())
	f.store.add("countries", store.Row{"id": int64(1), "code": "US", "updated": int64(1)})
	ctx := context.Background()

	p, err := f.engine.Page(ctx, "countries", 0)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"code":"US"}]}`, string(p.JSON()))

	f.store.add("countries", store.Row{"id": int64(2), "code": "FR", "updated": int64(2)})
	p, err = f.engine.Page(ctx, "countries", 0)
	require.NoError(t, err)
	assert.Len(t, p.Items, 1)

	p, err = f.engine.Build(ctx, "countries", 0)
	require.NoError(t, err)
	assert.Len(t, p.Items, 2)

	p, err = f.engine.Page(ctx, "countries", 0)
	require.NoError(t, err)
	assert.Len(t, p.Items, 2, "Build refreshes the cached page")
}

func TestPage_CoalescesConcurrentMisses(t *testing.T) {
	f := newFixture(t, nil, citiesDesc(10), countriesDesc())
	f.store.add("cities", cityRow(1, 1, 1))
	f.store.gate = make(chan struct{})
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*Page, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := f.engine.Page(ctx, "cities", 0)
			assert.NoError(t, err)
			results[i] = p
		}()
	}

	// Wait for the first scan to start, then release it.
	require.Eventually(t, func() bool { return f.store.scans.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(f.store.gate)
	wg.Wait()

	assert.Equal(t, int32(1), f.store.scans.Load())
	for _, p := range results {
		require.NotNil(t, p)
		assert.Equal(t, string(results[0].JSON()), string(p.JSON()))
	}
}

func TestPage_EmptyCatalog(t *testing.T) {
	f := newFixture(t, nil)
	p, err := f.engine.Page(context.Background(), "schools", 0)
	require.NoError(t, err)
	assert.False(t, p.HasMore)
	assert.Nil(t, p.NextOffset)
	assert.JSONEq(t, `{"timestamp":1700000000,"next_offset":null,"has_more":false,"items":[]}`, string(p.JSON()))
}

func TestPage_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown catalog", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.engine.Page(ctx, "planets", 0)
		assert.ErrorIs(t, err, ErrUnknownCatalog)
		_, err = f.engine.Delta(ctx, "planets", store.Cursor{}, 0)
		assert.ErrorIs(t, err, ErrUnknownCatalog)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.scanErr = errBoom
		_, err := f.engine.Page(ctx, "cities", 0)
		assert.ErrorIs(t, err, ErrStorageUnavailable)

		keys, _ := f.snapshots.List(ctx, "")
		assert.Empty(t, keys, "failed builds are not cached")
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := newFixture(t, nil)
		f.store.add("cities", cityRow(1, 1, 1))
		f.store.failing["countries"] = errBoom
		_, err := f.engine.Page(ctx, "cities", 0)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("cache failure degrades", func(t *testing.T) {
		f := newFixture(t, brokenSnapshots{}, citiesDesc(10), countriesDesc())
		f.store.add("cities", cityRow(1, 1, 1))
		p, err := f.engine.Page(ctx, "cities", 0)
		require.NoError(t, err)
		assert.Len(t, p.Items, 1)
	})

	t.Run("corrupt cache entry is rebuilt", func(t *testing.T) {
		mem := snapshot.NewMemoryStore()
		require.NoError(t, mem.Put(ctx, "catalogs/cities/v1-p10/0", []byte("{not json")))
		f := newFixture(t, mem, citiesDesc(10), countriesDesc())
		f.store.add("cities", cityRow(1, 1, 1))
		p, err := f.engine.Page(ctx, "cities", 0)
		require.NoError(t, err)
		assert.Len(t, p.Items, 1)
	})

	t.Run("delta unsupported", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.engine.Delta(ctx, "countries", store.Cursor{Updated: 1}, 0)
		assert.ErrorIs(t, err, ErrDeltaUnsupported)
	})
}

type brokenSnapshots struct{}

func (brokenSnapshots) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, snapshot.ErrCacheUnavailable
}
func (brokenSnapshots) Put(ctx context.Context, key string, data []byte) error {
	return snapshot.ErrCacheUnavailable
}
func (brokenSnapshots) List(ctx context.Context, prefix string) ([]string, error) {
	return nil, snapshot.ErrCacheUnavailable
}
func (brokenSnapshots) Delete(ctx context.Context, keys []string) (int, error) {
	return 0, snapshot.ErrCacheUnavailable
}

func TestRender_TokensAndNulls(t *testing.T) {
	f := newFixture(t, nil)
	f.store.add("cities",
		cityRow(1, 10, 1),
		cityRow(2, 10, 2),
		cityRow(3, 10, 99),
	)

	p, err := f.engine.Page(context.Background(), "cities", 0)
	require.NoError(t, err)

	want := []render.Record{
		{"token": "city-000001", "country_code": "US", "updated": int64(10), "deleted": nil},
		{"token": "city-000002", "country_code": "FR", "updated": int64(10), "deleted": nil},
		{"token": "city-000003", "country_code": nil, "updated": int64(10), "deleted": nil},
	}
	if diff := cmp.Diff(want, p.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, string(p.JSON()), "_id")
	assert.NotContains(t, string(p.JSON()), `"id"`)
}

func TestRender_LookupsInvalidatedDuringBuild(t *testing.T) {
	f := newFixture(t, nil)
	f.store.add("cities", cityRow(1, 10, 1), cityRow(2, 10, 2))
	f.store.onTokens = func(string) { f.engine.lookups.InvalidateAll() }

	p, err := f.engine.Page(context.Background(), "cities", 0)
	require.NoError(t, err)
	require.Len(t, p.Items, 2)
	assert.Equal(t, "US", p.Items[0]["country_code"])
	assert.Equal(t, "FR", p.Items[1]["country_code"])
}

func TestRender_InlineParents(t *testing.T) {
	f := newFixture(t, nil)
	f.store.add("activity_types",
		store.Row{"id": int64(1), "token": "hiking", "category_id": int64(1), "updated": int64(5)},
		store.Row{"id": int64(2), "token": "chess", "category_id": int64(7), "updated": int64(5)},
	)
	f.store.tokens["activity_categories"] = []store.TokenRow{{Keys: []int64{1}, Token: "outdoor"}}

	p, err := f.engine.Build(context.Background(), "activity_types", 0)
	require.NoError(t, err)

	var body struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(p.JSON(), &body))
	assert.Equal(t, "outdoor", body.Items[0]["category_token"])
	assert.Nil(t, body.Items[1]["category_token"])

	f.store.failing["activity_categories"] = errors.New("gone")
	_, err = f.engine.Build(context.Background(), "activity_types", 0)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
