package models

// ActivityCategory represents the 'activity_categories' table.
type ActivityCategory struct {
	ID       int64  `gorm:"primaryKey;column:id"`
	Token    string `gorm:"column:token;type:varchar(64);uniqueIndex"`
	Name     string `gorm:"column:name;type:varchar(100)"`
	ParentID *int64 `gorm:"column:parent_id;type:int"`
	Updated  int64  `gorm:"column:updated;type:bigint;not null;index"`
}

func (ActivityCategory) TableName() string { return "activity_categories" }

// ActivityType represents the 'activity_types' table.
type ActivityType struct {
	ID         int64  `gorm:"primaryKey;column:id"`
	Token      string `gorm:"column:token;type:varchar(64);uniqueIndex"`
	Name       string `gorm:"column:name;type:varchar(100)"`
	CategoryID int64  `gorm:"column:category_id;type:int"`
	IsFeatured bool   `gorm:"column:is_featured;type:tinyint(1);default:0"`
	Updated    int64  `gorm:"column:updated;type:bigint;not null;index"`
}

func (ActivityType) TableName() string { return "activity_types" }
