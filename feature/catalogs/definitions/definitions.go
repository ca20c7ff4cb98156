package definitions

import (
	"catalog-sync/core/catalog"
	"catalog-sync/core/lookup"
)

// Catalog groups as exposed by GET /updates.
const (
	GroupLocations  = "locations"
	GroupSchools    = "schools"
	GroupMusic      = "music"
	GroupActivities = "activities"
)

// Lookup table names.
const (
	LookupCountries = "countries"
	LookupStates    = "states"
	LookupCities    = "cities"
	LookupGenres    = "genres"
)

// Lookups returns the lookup tables the catalogs reference.
func Lookups() []lookup.Spec {
	return []lookup.Spec{
		{Name: LookupCountries, Table: "countries", KeyColumns: []string{"id"}, TokenColumn: "code"},
		{Name: LookupStates, Table: "states", KeyColumns: []string{"id"}, TokenColumn: "token"},
		// City ids are scoped by country.
		{Name: LookupCities, Table: "cities", KeyColumns: []string{"country_id", "id"}, TokenColumn: "token"},
		{Name: LookupGenres, Table: "music_genres", KeyColumns: []string{"id"}, TokenColumn: "token"},
	}
}

// Catalogs returns every syncable catalog in /updates order.
func Catalogs() []*catalog.Descriptor {
	return []*catalog.Descriptor{
		countries(),
		states(),
		cities(),
		schools(),
		genres(),
		artists(),
		artistsGenres(),
		activityCategories(),
		activityTypes(),
	}
}

// NewRegistry builds the registry of every catalog.
func NewRegistry() (*catalog.Registry, error) {
	return catalog.NewRegistry(Catalogs()...)
}

func col(table, column string) catalog.Column {
	return catalog.Column{Expr: table + "." + column, As: column}
}

func str(name string) catalog.Field {
	return catalog.Field{Name: name, Column: name, Kind: catalog.KindString}
}

var (
	updatedField = catalog.Field{Name: "updated", Column: "updated", Kind: catalog.KindInt}
	deletedField = catalog.Field{Name: "deleted", Column: "deleted", Kind: catalog.KindNullableInt}
)

func countries() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "countries",
		Group:       GroupLocations,
		Table:       "countries",
		TokenColumn: "code",
		Columns:     []catalog.Column{col("countries", "code"), col("countries", "name")},
		Fields:      []catalog.Field{str("code"), str("name"), updatedField},
	}
}

func states() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "states",
		Group:       GroupLocations,
		Table:       "states",
		TokenColumn: "token",
		Columns: []catalog.Column{
			col("states", "token"),
			col("states", "name"),
			col("states", "country_id"),
		},
		Fields: []catalog.Field{
			str("token"),
			str("name"),
			{Name: "country_code", Kind: catalog.KindLookup, Ref: LookupCountries, Keys: []string{"country_id"}},
			updatedField,
		},
	}
}

func cities() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "cities",
		Group:       GroupLocations,
		Table:       "cities",
		Paginated:   true,
		Delta:       true,
		SoftDelete:  true,
		PageSize:    50000,
		TokenColumn: "token",
		Columns: []catalog.Column{
			col("cities", "token"),
			col("cities", "name"),
			col("cities", "country_id"),
			col("cities", "state_id"),
			col("cities", "latitude"),
			col("cities", "longitude"),
			col("cities", "population"),
		},
		Fields: []catalog.Field{
			str("token"),
			str("name"),
			{Name: "country_code", Kind: catalog.KindLookup, Ref: LookupCountries, Keys: []string{"country_id"}},
			{Name: "state_token", Kind: catalog.KindLookup, Ref: LookupStates, Keys: []string{"state_id"}},
			{Name: "latitude", Column: "latitude", Kind: catalog.KindFloat},
			{Name: "longitude", Column: "longitude", Kind: catalog.KindFloat},
			{Name: "population", Column: "population", Kind: catalog.KindInt},
			updatedField,
			deletedField,
		},
	}
}

func schools() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "schools",
		Group:       GroupSchools,
		Table:       "schools",
		Paginated:   true,
		Delta:       true,
		SoftDelete:  true,
		PageSize:    20000,
		TokenColumn: "token",
		Columns: []catalog.Column{
			col("schools", "token"),
			col("schools", "name"),
			col("schools", "country_id"),
			col("schools", "city_id"),
			col("schools", "is_college"),
			col("schools", "is_high_school"),
		},
		Fields: []catalog.Field{
			str("token"),
			str("name"),
			{Name: "country_code", Kind: catalog.KindLookup, Ref: LookupCountries, Keys: []string{"country_id"}},
			{Name: "city_token", Kind: catalog.KindLookup, Ref: LookupCities, Keys: []string{"country_id", "city_id"}},
			{Name: "is_college", Column: "is_college", Kind: catalog.KindSparseBool},
			{Name: "is_high_school", Column: "is_high_school", Kind: catalog.KindSparseBool},
			updatedField,
			deletedField,
		},
	}
}

func genres() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "genres",
		Group:       GroupMusic,
		Table:       "music_genres",
		TokenColumn: "token",
		Columns: []catalog.Column{
			col("music_genres", "token"),
			col("music_genres", "name"),
			col("music_genres", "parent_id"),
		},
		Inline: []catalog.InlineScan{{Name: "genres", Table: "music_genres", TokenColumn: "token"}},
		Fields: []catalog.Field{
			str("token"),
			str("name"),
			{Name: "parent_token", Kind: catalog.KindInline, Ref: "genres", Keys: []string{"parent_id"}},
			updatedField,
		},
	}
}

func artists() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "artists",
		Group:       GroupMusic,
		Table:       "music_artists",
		Paginated:   true,
		Delta:       true,
		SoftDelete:  true,
		PageSize:    25000,
		TokenColumn: "token",
		Columns: []catalog.Column{
			col("music_artists", "token"),
			col("music_artists", "name"),
			col("music_artists", "is_verified"),
		},
		Fields: []catalog.Field{
			str("token"),
			str("name"),
			{Name: "is_verified", Column: "is_verified", Kind: catalog.KindSparseBool},
			updatedField,
			deletedField,
		},
	}
}

func artistsGenres() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "artists_genres",
		Group:       GroupMusic,
		Table:       "music_artists_genres",
		Joins:       []string{"LEFT JOIN music_artists ON music_artists.id = music_artists_genres.artist_id"},
		Paginated:   true,
		Delta:       true,
		SoftDelete:  true,
		PageSize:    50000,
		TokenColumn: "token",
		Columns: []catalog.Column{
			col("music_artists_genres", "token"),
			{Expr: "music_artists.token", As: "artist_token"},
			col("music_artists_genres", "genre_id"),
		},
		Fields: []catalog.Field{
			str("token"),
			str("artist_token"),
			{Name: "genre_token", Kind: catalog.KindLookup, Ref: LookupGenres, Keys: []string{"genre_id"}},
			updatedField,
			deletedField,
		},
	}
}

func activityCategories() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:        "activity_categories",
		Group:       GroupActivities,
		Table:       "activity_categories",
		TokenColumn: "token",
		Columns: []catalog.Column{
			col("activity_categories", "token"),
			col("activity_categories", "name"),
			col("activity_categories", "parent_id"),
		},
		Inline: []catalog.InlineScan{{Name: "categories", Table: "activity_categories", TokenColumn: "token"}},
		Fields: []catalog.Field{
			str("token"),
			str("name"),
			{Name: "parent_token", Kind: catalog.KindInline, Ref: "categories", Keys: []string{"parent_id"}},
			updatedField,
		},
	}
}

// activityTypes is rendered with its category token, so a category change
// must move its watermark too.
func activityTypes() *catalog.Descriptor {
	return &catalog.Descriptor{
		Name:            "activity_types",
		Group:           GroupActivities,
		Table:           "activity_types",
		WatermarkTables: []string{"activity_categories"},
		TokenColumn:     "token",
		Columns: []catalog.Column{
			col("activity_types", "token"),
			col("activity_types", "name"),
			col("activity_types", "category_id"),
			col("activity_types", "is_featured"),
		},
		Inline: []catalog.InlineScan{{Name: "categories", Table: "activity_categories", TokenColumn: "token"}},
		Fields: []catalog.Field{
			str("token"),
			str("name"),
			{Name: "category_token", Kind: catalog.KindInline, Ref: "categories", Keys: []string{"category_id"}},
			{Name: "is_featured", Column: "is_featured", Kind: catalog.KindSparseBool},
			updatedField,
		},
	}
}
