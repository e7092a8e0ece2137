package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleMentor  UserRole = "mentor"
)

type User struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	Email           string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash    string         `gorm:"type:varchar(255);not null" json:"-"`
	FirstName       string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName        string         `gorm:"type:varchar(100);not null" json:"last_name"`
	Role            UserRole       `gorm:"type:varchar(20);not null" json:"role"`
	Bio             string         `gorm:"type:text" json:"bio"`
	ProfileImageURL string         `gorm:"type:varchar(500)" json:"profile_image_url"`
	JobTitleID      *uint64        `json:"job_title_id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	JobTitle             *JobTitle     `gorm:"foreignKey:JobTitleID" json:"job_title,omitempty"`
	Skills               []Skill       `gorm:"many2many:user_skills;" json:"skills,omitempty"`
	WillingToLearnSkills []Skill       `gorm:"many2many:user_willing_skills;" json:"willing_to_learn_skills,omitempty"`
	MentorMentorships    []Mentorship  `gorm:"foreignKey:MentorID" json:"-"`
	StudentMentorships   []Mentorship  `gorm:"foreignKey:StudentID" json:"-"`
	CreatedGroups        []Group       `gorm:"foreignKey:CreatorID" json:"-"`
	GroupMemberships     []GroupMember `gorm:"foreignKey:UserID" json:"-"`
}
