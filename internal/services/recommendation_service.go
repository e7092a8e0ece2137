package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mentorlink/mentorship-api/internal/constants"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/repository"
	"gorm.io/gorm"
)

// FallbackExplanation replaces the generated text whenever the external call
// fails; recommendations themselves never fail because of it.
const FallbackExplanation = "Unable to generate recommendation at this time."

// MentorRecommendation is one scored mentor candidate for a student.
type MentorRecommendation struct {
	Mentor           models.User
	MatchScore       float64
	MatchingSkills   []models.Skill
	AdditionalSkills []models.Skill
	Explanation      string
}

// RecommendationService scores mentors against a student's learning goals.
type RecommendationService struct {
	userRepo  repository.UserRepository
	aiService *AIService
}

// NewRecommendationService creates a new RecommendationService. aiService may
// be nil, in which case every explanation is the fallback text.
func NewRecommendationService(userRepo repository.UserRepository, aiService *AIService) *RecommendationService {
	return &RecommendationService{
		userRepo:  userRepo,
		aiService: aiService,
	}
}

// GetMentorRecommendations ranks all mentors with at least one skill the
// student wants to learn. Matching compares skill IDs, never display names.
// Explanations are fetched concurrently with a per-call timeout.
func (s *RecommendationService) GetMentorRecommendations(ctx context.Context, studentID uint64) ([]MentorRecommendation, error) {
	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	mentors, err := s.userRepo.FindByRole(models.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}

	wanted := make(map[uint64]struct{}, len(student.WillingToLearnSkills))
	for _, skill := range student.WillingToLearnSkills {
		wanted[skill.ID] = struct{}{}
	}

	recommendations := make([]MentorRecommendation, 0, len(mentors))
	for _, mentor := range mentors {
		var matching, additional []models.Skill
		for _, skill := range mentor.Skills {
			if _, ok := wanted[skill.ID]; ok {
				matching = append(matching, skill)
			} else {
				additional = append(additional, skill)
			}
		}

		// Mentors with nothing the student wants are not recommended at all
		if len(matching) == 0 {
			continue
		}

		recommendations = append(recommendations, MentorRecommendation{
			Mentor:           mentor,
			MatchScore:       matchScore(len(matching), len(additional)),
			MatchingSkills:   matching,
			AdditionalSkills: additional,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	s.fillExplanations(ctx, student, recommendations)

	return recommendations, nil
}

// matchScore weighs direct overlap over breadth and clamps into [0,1].
func matchScore(matchingCount, additionalCount int) float64 {
	score := (0.7*float64(matchingCount) + 0.3*float64(additionalCount)) / 10
	if score > 1.0 {
		return 1.0
	}
	return score
}

// fillExplanations populates the explanation text for every candidate. Calls
// run in parallel so one slow mentor does not delay the rest, and every
// failure path degrades to the fallback string.
func (s *RecommendationService) fillExplanations(ctx context.Context, student *models.User, recommendations []MentorRecommendation) {
	if s.aiService == nil {
		for i := range recommendations {
			recommendations[i].Explanation = FallbackExplanation
		}
		return
	}

	var wg sync.WaitGroup
	for i := range recommendations {
		wg.Add(1)
		go func(rec *MentorRecommendation) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, constants.ExplanationTimeout)
			defer cancel()

			jobTitle := ""
			if rec.Mentor.JobTitle != nil {
				jobTitle = rec.Mentor.JobTitle.Name
			}

			text, err := s.aiService.GenerateExplanation(callCtx, ExplanationInput{
				StudentName:      student.FirstName + " " + student.LastName,
				MentorName:       rec.Mentor.FirstName + " " + rec.Mentor.LastName,
				MatchingSkills:   skillNames(rec.MatchingSkills),
				AdditionalSkills: skillNames(rec.AdditionalSkills),
				MentorJobTitle:   jobTitle,
			})
			if err != nil || text == "" {
				text = FallbackExplanation
			}
			rec.Explanation = text
		}(&recommendations[i])
	}
	wg.Wait()
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, len(skills))
	for i, skill := range skills {
		names[i] = skill.Name
	}
	return names
}
