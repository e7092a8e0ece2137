package dto

import (
	"time"

	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/services"
)

// MentorshipDTO represents a mentorship in API responses
type MentorshipDTO struct {
	ID        uint64                    `json:"id"`
	Mentor    UserDTO                   `json:"mentor"`
	Student   UserDTO                   `json:"student"`
	Status    models.MentorshipStatus   `json:"status"`
	Duration  models.MentorshipDuration `json:"duration"`
	StartDate time.Time                 `json:"start_date"`
	EndDate   time.Time                 `json:"end_date"`
	Message   string                    `json:"message,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

// MentorRecommendationDTO represents one scored mentor candidate
type MentorRecommendationDTO struct {
	Mentor           UserDTO    `json:"mentor"`
	MatchScore       float64    `json:"match_score"`
	MatchingSkills   []SkillDTO `json:"matching_skills"`
	AdditionalSkills []SkillDTO `json:"additional_skills"`
	Explanation      string     `json:"explanation"`
}

// ToMentorshipDTO converts a Mentorship model to MentorshipDTO
func ToMentorshipDTO(mentorship models.Mentorship) MentorshipDTO {
	return MentorshipDTO{
		ID:        mentorship.ID,
		Mentor:    ToUserDTO(mentorship.Mentor),
		Student:   ToUserDTO(mentorship.Student),
		Status:    mentorship.Status,
		Duration:  mentorship.Duration,
		StartDate: mentorship.StartDate,
		EndDate:   mentorship.EndDate,
		Message:   mentorship.Message,
		CreatedAt: mentorship.CreatedAt,
	}
}

// ToMentorshipDTOs converts a slice of mentorships
func ToMentorshipDTOs(mentorships []models.Mentorship) []MentorshipDTO {
	dtos := make([]MentorshipDTO, len(mentorships))
	for i, mentorship := range mentorships {
		dtos[i] = ToMentorshipDTO(mentorship)
	}
	return dtos
}

// ToMentorRecommendationDTO converts a service recommendation to its DTO
func ToMentorRecommendationDTO(rec services.MentorRecommendation) MentorRecommendationDTO {
	return MentorRecommendationDTO{
		Mentor:           ToUserDTO(rec.Mentor),
		MatchScore:       rec.MatchScore,
		MatchingSkills:   ToSkillDTOs(rec.MatchingSkills),
		AdditionalSkills: ToSkillDTOs(rec.AdditionalSkills),
		Explanation:      rec.Explanation,
	}
}

// ToMentorRecommendationDTOs converts a slice of recommendations
func ToMentorRecommendationDTOs(recs []services.MentorRecommendation) []MentorRecommendationDTO {
	dtos := make([]MentorRecommendationDTO, len(recs))
	for i, rec := range recs {
		dtos[i] = ToMentorRecommendationDTO(rec)
	}
	return dtos
}
