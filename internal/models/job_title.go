package models

// JobTitle is reference data: the current role of a mentor or the desired
// role of a student. Seeded at startup alongside skills.
type JobTitle struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
