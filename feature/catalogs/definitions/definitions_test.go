package definitions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogsAreValid(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	assert.Len(t, reg.All(), 9)
}

func TestLookupRefsAreDeclared(t *testing.T) {
	declared := make(map[string]bool)
	for _, spec := range Lookups() {
		declared[spec.Name] = true
	}
	for _, desc := range Catalogs() {
		for _, ref := range desc.LookupRefs() {
			assert.True(t, declared[ref], "catalog %s references undeclared lookup %s", desc.Name, ref)
		}
	}
}

func TestNoInternalIdsExposed(t *testing.T) {
	for _, desc := range Catalogs() {
		for _, f := range desc.Fields {
			assert.False(t, f.Name == "id" || strings.HasSuffix(f.Name, "_id"), "%s.%s", desc.Name, f.Name)
		}
	}
}

func TestPaging(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	tests := map[string]int{
		"cities":         50000,
		"schools":        20000,
		"artists":        25000,
		"artists_genres": 50000,
		"countries":      0,
		"activity_types": 0,
	}
	for name, size := range tests {
		desc, ok := reg.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, size, desc.EffectivePageSize(), name)
	}

	activityTypes, _ := reg.Get("activity_types")
	assert.Equal(t, []string{"activity_types", "activity_categories"}, activityTypes.WatermarkSources())

	for _, desc := range reg.All() {
		if desc.Paginated {
			assert.True(t, desc.Delta, "%s is paginated but not delta-syncable", desc.Name)
		}
		if desc.Group == "" {
			t.Errorf("%s has no group", desc.Name)
		}
	}
}
