package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog-sync/core/catalog"
	"catalog-sync/core/lookup"
	"catalog-sync/core/snapshot"
	"catalog-sync/core/store"
	"catalog-sync/core/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory store.Store with the scan semantics of GormStore.
type memStore struct {
	mu      sync.Mutex
	tables  map[string][]store.Row
	tokens  map[string][]store.TokenRow
	failing map[string]error
	scanErr error
	gate    chan struct{}
	scans   atomic.Int32
	// onTokens runs after every Tokens read.
	onTokens func(table string)
}

func newMemStore() *memStore {
	return &memStore{
		tables:  make(map[string][]store.Row),
		tokens:  make(map[string][]store.TokenRow),
		failing: make(map[string]error),
	}
}

func (m *memStore) add(table string, rows ...store.Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = append(m.tables[table], rows...)
	sort.Slice(m.tables[table], func(i, j int) bool {
		return utils.ToInt64(m.tables[table][i]["id"]) < utils.ToInt64(m.tables[table][j]["id"])
	})
}

func (m *memStore) Scan(ctx context.Context, desc *catalog.Descriptor, q store.ScanQuery) ([]store.Row, error) {
	m.scans.Add(1)
	if m.gate != nil {
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scanErr != nil {
		return nil, m.scanErr
	}

	var out []store.Row
	for _, r := range m.tables[desc.Table] {
		if q.Cursor == nil {
			if desc.SoftDelete && r["deleted"] != nil {
				continue
			}
		} else {
			u := utils.ToInt64(r["updated"])
			tok := utils.ToString(r[desc.TokenColumn])
			after := u > q.Cursor.Updated ||
				(q.Cursor.After != "" && u == q.Cursor.Updated && tok > q.Cursor.After)
			if !after {
				continue
			}
		}
		out = append(out, r)
	}

	if q.Cursor != nil {
		sort.SliceStable(out, func(i, j int) bool {
			ui, uj := utils.ToInt64(out[i]["updated"]), utils.ToInt64(out[j]["updated"])
			if ui != uj {
				return ui < uj
			}
			return utils.ToString(out[i][desc.TokenColumn]) < utils.ToString(out[j][desc.TokenColumn])
		})
	}

	if q.Limit > 0 {
		if q.Offset >= len(out) {
			return nil, nil
		}
		out = out[q.Offset:]
		if len(out) > q.Limit {
			out = out[:q.Limit]
		}
	}
	return out, nil
}

func (m *memStore) MaxUpdated(ctx context.Context, table string) (*int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failing[table]; err != nil {
		return nil, err
	}
	var best *int64
	for _, r := range m.tables[table] {
		u := utils.ToInt64(r["updated"])
		if best == nil || u > *best {
			best = &u
		}
	}
	return best, nil
}

func (m *memStore) Tokens(ctx context.Context, table string, keyColumns []string, tokenColumn string) ([]store.TokenRow, error) {
	m.mu.Lock()
	rows, err := m.tokens[table], m.failing[table]
	m.mu.Unlock()

	if m.onTokens != nil {
		m.onTokens(table)
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

var errBoom = errors.New("boom")

func citiesDesc(pageSize int) *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "cities",
		Group:       "locations",
		Table:       "cities",
		Paginated:   true,
		Delta:       true,
		SoftDelete:  true,
		PageSize:    pageSize,
		TokenColumn: "token",
		Columns: []catalog.Column{
			{Expr: "cities.token", As: "token"},
			{Expr: "cities.country_id", As: "country_id"},
		},
		Fields: []catalog.Field{
			{Name: "token", Column: "token", Kind: catalog.KindString},
			{Name: "country_code", Kind: catalog.KindLookup, Ref: "countries", Keys: []string{"country_id"}},
			{Name: "updated", Column: "updated", Kind: catalog.KindInt},
			{Name: "deleted", Column: "deleted", Kind: catalog.KindNullableInt},
		},
	}
}

func countriesDesc() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:    "countries",
		Group:   "locations",
		Table:   "countries",
		Columns: []catalog.Column{{Expr: "countries.code", As: "code"}},
		Fields: []catalog.Field{
			{Name: "code", Column: "code", Kind: catalog.KindString},
		},
	}
}

func schoolsDesc() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "schools",
		Group:       "schools",
		Table:       "schools",
		Paginated:   true,
		Delta:       true,
		PageSize:    20000,
		TokenColumn: "token",
		Columns:     []catalog.Column{{Expr: "schools.token", As: "token"}},
		Fields:      []catalog.Field{{Name: "token", Column: "token", Kind: catalog.KindString}},
	}
}

func activityTypesDesc() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:            "activity_types",
		Group:           "activities",
		Table:           "activity_types",
		WatermarkTables: []string{"activity_categories"},
		Columns: []catalog.Column{
			{Expr: "activity_types.token", As: "token"},
			{Expr: "activity_types.category_id", As: "category_id"},
		},
		Inline: []catalog.InlineScan{{Name: "categories", Table: "activity_categories", TokenColumn: "token"}},
		Fields: []catalog.Field{
			{Name: "token", Column: "token", Kind: catalog.KindString},
			{Name: "category_token", Kind: catalog.KindInline, Ref: "categories", Keys: []string{"category_id"}},
		},
	}
}

func cityRow(id int, updated int64, countryID int64) store.Row {
	return store.Row{
		"id":         int64(id),
		"token":      fmt.Sprintf("city-%06d", id),
		"country_id": countryID,
		"updated":    updated,
		"deleted":    nil,
	}
}

type fixture struct {
	store     *memStore
	snapshots snapshot.Store
	engine    *Engine
}

var fixedNow = time.Unix(1700000000, 0)

func newFixture(t *testing.T, snapshots snapshot.Store, descs ...*catalog.Descriptor) *fixture {
	t.Helper()
	if len(descs) == 0 {
		descs = []*catalog.Descriptor{citiesDesc(50000), countriesDesc(), schoolsDesc(), activityTypesDesc()}
	}
	reg, err := catalog.NewRegistry(descs...)
	require.NoError(t, err)

	st := newMemStore()
	st.tokens["countries"] = []store.TokenRow{{Keys: []int64{1}, Token: "US"}, {Keys: []int64{2}, Token: "FR"}}

	lookups, err := lookup.NewCache(st, zap.NewNop(), lookup.Spec{
		Name: "countries", Table: "countries", KeyColumns: []string{"id"}, TokenColumn: "code",
	})
	require.NoError(t, err)

	if snapshots == nil {
		snapshots = snapshot.NewMemoryStore()
	}
	cache := snapshot.NewCache(snapshots, snapshot.Config{Prefix: "catalogs"}, 1, zap.NewNop())

	e := New(Config{SchemaVersion: 1, MaxConcurrentScans: 2, WatermarkConcurrency: 4},
		reg, st, lookups, cache, zap.NewNop(), WithClock(func() time.Time { return fixedNow }))
	return &fixture{store: st, snapshots: snapshots, engine: e}
}
