package models

import "time"

type MentorshipStatus string

const (
	MentorshipStatusPending   MentorshipStatus = "PENDING"
	MentorshipStatusActive    MentorshipStatus = "ACTIVE"
	MentorshipStatusCompleted MentorshipStatus = "COMPLETED"
	MentorshipStatusCancelled MentorshipStatus = "CANCELLED"
)

type MentorshipDuration string

const (
	DurationOneMonth    MentorshipDuration = "ONE_MONTH"
	DurationTwoMonths   MentorshipDuration = "TWO_MONTHS"
	DurationThreeMonths MentorshipDuration = "THREE_MONTHS"
)

// Mentorship rows are hard-deleted on rejection, so the unique
// (mentor_id, student_id) index stays authoritative: at most one row per pair.
type Mentorship struct {
	ID        uint64             `gorm:"primarykey" json:"id"`
	MentorID  uint64             `gorm:"not null;uniqueIndex:idx_mentorships_mentor_student" json:"mentor_id"`
	StudentID uint64             `gorm:"not null;uniqueIndex:idx_mentorships_mentor_student" json:"student_id"`
	Status    MentorshipStatus   `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Duration  MentorshipDuration `gorm:"type:varchar(20);not null" json:"duration"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Message   string             `gorm:"type:text" json:"message"`
	CreatedAt time.Time          `json:"created_at"`

	// Relations
	Mentor  User `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Student User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
