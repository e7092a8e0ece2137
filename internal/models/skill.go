package models

// Skill is reference data: the catalog of technologies users can possess or
// want to learn. Rows are seeded at startup and identified by ID everywhere.
type Skill struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
