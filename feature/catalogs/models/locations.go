package models

// Country represents the 'countries' table.
type Country struct {
	ID      int64  `gorm:"primaryKey;column:id"`
	Code    string `gorm:"column:code;type:varchar(2);uniqueIndex"`
	Name    string `gorm:"column:name;type:varchar(100)"`
	Updated int64  `gorm:"column:updated;type:bigint;not null;index"`
}

func (Country) TableName() string { return "countries" }

// State represents the 'states' table.
type State struct {
	ID        int64  `gorm:"primaryKey;column:id"`
	Token     string `gorm:"column:token;type:varchar(64);uniqueIndex"`
	Name      string `gorm:"column:name;type:varchar(100)"`
	CountryID int64  `gorm:"column:country_id;type:int;index"`
	Updated   int64  `gorm:"column:updated;type:bigint;not null;index"`
}

func (State) TableName() string { return "states" }

// City represents the 'cities' table. City ids are unique within a country.
type City struct {
	ID         int64    `gorm:"primaryKey;column:id"`
	Token      string   `gorm:"column:token;type:varchar(64);uniqueIndex"`
	Name       string   `gorm:"column:name;type:varchar(150)"`
	CountryID  int64    `gorm:"column:country_id;type:int;index"`
	StateID    *int64   `gorm:"column:state_id;type:int"`
	Latitude   *float64 `gorm:"column:latitude;type:double"`
	Longitude  *float64 `gorm:"column:longitude;type:double"`
	Population *int64   `gorm:"column:population;type:int"`
	Updated    int64    `gorm:"column:updated;type:bigint;not null;index"`
	Deleted    *int64   `gorm:"column:deleted;type:bigint"`
}

func (City) TableName() string { return "cities" }
