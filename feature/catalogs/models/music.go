package models

// MusicGenre represents the 'music_genres' table. Genres form a tree through parent_id.
type MusicGenre struct {
	ID       int64  `gorm:"primaryKey;column:id"`
	Token    string `gorm:"column:token;type:varchar(64);uniqueIndex"`
	Name     string `gorm:"column:name;type:varchar(100)"`
	ParentID *int64 `gorm:"column:parent_id;type:int"`
	Updated  int64  `gorm:"column:updated;type:bigint;not null;index"`
}

func (MusicGenre) TableName() string { return "music_genres" }

// MusicArtist represents the 'music_artists' table.
type MusicArtist struct {
	ID         int64  `gorm:"primaryKey;column:id"`
	Token      string `gorm:"column:token;type:varchar(64);uniqueIndex"`
	Name       string `gorm:"column:name;type:varchar(200)"`
	IsVerified bool   `gorm:"column:is_verified;type:tinyint(1);default:0"`
	Updated    int64  `gorm:"column:updated;type:bigint;not null;index"`
	Deleted    *int64 `gorm:"column:deleted;type:bigint"`
}

func (MusicArtist) TableName() string { return "music_artists" }

// MusicArtistGenre represents the 'music_artists_genres' link table.
type MusicArtistGenre struct {
	ID       int64  `gorm:"primaryKey;column:id"`
	Token    string `gorm:"column:token;type:varchar(64);uniqueIndex"`
	ArtistID int64  `gorm:"column:artist_id;type:int;index"`
	GenreID  int64  `gorm:"column:genre_id;type:int"`
	Updated  int64  `gorm:"column:updated;type:bigint;not null;index"`
	Deleted  *int64 `gorm:"column:deleted;type:bigint"`
}

func (MusicArtistGenre) TableName() string { return "music_artists_genres" }
