package models

// School represents the 'schools' table.
type School struct {
	ID           int64  `gorm:"primaryKey;column:id"`
	Token        string `gorm:"column:token;type:varchar(64);uniqueIndex"`
	Name         string `gorm:"column:name;type:varchar(200)"`
	CountryID    int64  `gorm:"column:country_id;type:int"`
	CityID       *int64 `gorm:"column:city_id;type:int"`
	IsCollege    bool   `gorm:"column:is_college;type:tinyint(1);default:0"`
	IsHighSchool bool   `gorm:"column:is_high_school;type:tinyint(1);default:0"`
	Updated      int64  `gorm:"column:updated;type:bigint;not null;index"`
	Deleted      *int64 `gorm:"column:deleted;type:bigint"`
}

func (School) TableName() string { return "schools" }
