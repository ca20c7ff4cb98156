package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func citiesDescriptor() *Descriptor {
	return &Descriptor{
		Name:        "cities",
		Group:       "locations",
		Table:       "cities",
		Paginated:   true,
		Delta:       true,
		SoftDelete:  true,
		PageSize:    50000,
		TokenColumn: "token",
		Columns: []Column{
			{Expr: "cities.token", As: "token"},
			{Expr: "cities.name", As: "name"},
			{Expr: "cities.country_id", As: "country_id"},
		},
		Fields: []Field{
			{Name: "token", Column: "token", Kind: KindString},
			{Name: "name", Column: "name", Kind: KindString},
			{Name: "country_code", Kind: KindLookup, Ref: "countries", Keys: []string{"country_id"}},
			{Name: "updated", Column: "updated", Kind: KindInt},
		},
	}
}

func TestDescriptor_NormalizeOffset(t *testing.T) {
	d := citiesDescriptor()

	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{-5, 0},
		{1, 0},
		{49999, 0},
		{50000, 50000},
		{74999, 50000},
		{100001, 100000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.NormalizeOffset(tt.offset), "offset %d", tt.offset)
	}

	small := &Descriptor{Name: "countries", Group: "locations", Table: "countries"}
	assert.Equal(t, 0, small.NormalizeOffset(123))
	assert.Equal(t, 0, small.EffectivePageSize())
}

func TestDescriptor_SelectList(t *testing.T) {
	d := citiesDescriptor()
	assert.Equal(t, []string{
		"cities.id AS id",
		"cities.updated AS updated",
		"cities.deleted AS deleted",
		"cities.token AS token",
		"cities.name AS name",
		"cities.country_id AS country_id",
	}, d.SelectList())
}

func TestDescriptor_LookupRefs(t *testing.T) {
	d := citiesDescriptor()
	d.Fields = append(d.Fields, Field{Name: "country_name_code", Kind: KindLookup, Ref: "countries", Keys: []string{"country_id"}})
	assert.Equal(t, []string{"countries"}, d.LookupRefs())
}

func TestDescriptor_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, citiesDescriptor().Validate())
	})

	t.Run("Exposes Internal Id", func(t *testing.T) {
		d := citiesDescriptor()
		d.Fields = append(d.Fields, Field{Name: "country_id", Column: "country_id", Kind: KindInt})
		assert.ErrorContains(t, d.Validate(), "internal id")
	})

	t.Run("Missing Page Size", func(t *testing.T) {
		d := citiesDescriptor()
		d.PageSize = 0
		assert.ErrorContains(t, d.Validate(), "page size")
	})

	t.Run("Delta Without Pagination", func(t *testing.T) {
		d := citiesDescriptor()
		d.Paginated = false
		assert.ErrorContains(t, d.Validate(), "delta")
	})

	t.Run("Unselected Column", func(t *testing.T) {
		d := citiesDescriptor()
		d.Fields = append(d.Fields, Field{Name: "population", Column: "population", Kind: KindInt})
		assert.ErrorContains(t, d.Validate(), "not selected")
	})

	t.Run("Unknown Inline Scan", func(t *testing.T) {
		d := citiesDescriptor()
		d.Fields = append(d.Fields, Field{Name: "parent_token", Kind: KindInline, Ref: "parents", Keys: []string{"country_id"}})
		assert.ErrorContains(t, d.Validate(), "inline scan")
	})

	t.Run("Unselected Token Column", func(t *testing.T) {
		d := citiesDescriptor()
		d.TokenColumn = "slug"
		assert.ErrorContains(t, d.Validate(), "token column")
	})

	t.Run("Reserved Alias", func(t *testing.T) {
		d := citiesDescriptor()
		d.Columns = append(d.Columns, Column{Expr: "cities.updated", As: "updated"})
		assert.ErrorContains(t, d.Validate(), "reserved")
	})
}

func TestRegistry(t *testing.T) {
	countries := &Descriptor{
		Name:    "countries",
		Group:   "locations",
		Table:   "countries",
		Columns: []Column{{Expr: "countries.code", As: "code"}},
		Fields:  []Field{{Name: "code", Column: "code", Kind: KindString}},
	}

	r, err := NewRegistry(citiesDescriptor(), countries)
	require.NoError(t, err)

	d, ok := r.Get("cities")
	assert.True(t, ok)
	assert.Equal(t, "cities", d.Name)

	_, ok = r.Get("planets")
	assert.False(t, ok)

	assert.Len(t, r.All(), 2)

	selected, err := r.Select([]string{"countries"})
	require.NoError(t, err)
	assert.Len(t, selected, 1)

	all, err := r.Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = r.Select([]string{"countries", "planets"})
	assert.ErrorIs(t, err, ErrUnknownCatalog)

	_, err = NewRegistry(countries, countries)
	assert.ErrorContains(t, err, "registered twice")
}
