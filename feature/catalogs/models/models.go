package models

// Tabler is implemented by every catalog model.
type Tabler interface {
	TableName() string
}

// All returns one zero value of every catalog model, in migration order.
func All() []Tabler {
	return []Tabler{
		Country{},
		State{},
		City{},
		School{},
		MusicGenre{},
		MusicArtist{},
		MusicArtistGenre{},
		ActivityCategory{},
		ActivityType{},
	}
}

// Migratable returns pointers to every model for gorm's AutoMigrate.
func Migratable() []any {
	return []any{
		&Country{},
		&State{},
		&City{},
		&School{},
		&MusicGenre{},
		&MusicArtist{},
		&MusicArtistGenre{},
		&ActivityCategory{},
		&ActivityType{},
	}
}
