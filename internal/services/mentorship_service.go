package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMentorNotFound           = errors.New("mentor not found")
	ErrStudentNotFound          = errors.New("student not found")
	ErrMentorshipNotFound       = errors.New("mentorship not found")
	ErrMentorUnavailable        = errors.New("mentor is currently in an active mentorship")
	ErrStudentUnavailable       = errors.New("student is currently in an active mentorship")
	ErrDuplicateRequest         = errors.New("a mentorship between this mentor and student already exists")
	ErrNotMentorshipParty       = errors.New("you can only act on mentorships you are part of")
	ErrMentorshipNotPending     = errors.New("mentorship is not in pending status")
	ErrMentorshipNotCancellable = errors.New("only pending or active mentorships can be cancelled")
	ErrMentorshipNotActive      = errors.New("only active mentorships can be completed")
	ErrInvalidDuration          = errors.New("invalid mentorship duration")
)

// MentorshipService owns the mentorship state machine.
type MentorshipService struct {
	mentorshipRepo repository.MentorshipRepository
	userRepo       repository.UserRepository
}

// NewMentorshipService creates a new MentorshipService.
func NewMentorshipService(mentorshipRepo repository.MentorshipRepository, userRepo repository.UserRepository) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
		userRepo:       userRepo,
	}
}

// RequestMentorshipInput represents a student's request to a mentor.
type RequestMentorshipInput struct {
	StudentID uint64
	MentorID  uint64
	Duration  models.MentorshipDuration
	Message   string
}

// RequestMentorship creates a pending mentorship request. Availability is
// checked on ACTIVE status only: a mentor may collect any number of pending
// suitors, and acceptance later collapses them. The availability re-check and
// the insert run inside one repository transaction.
func (s *MentorshipService) RequestMentorship(input RequestMentorshipInput) (*models.Mentorship, error) {
	mentor, err := s.findUserWithRole(input.MentorID, models.RoleMentor, ErrMentorNotFound)
	if err != nil {
		return nil, err
	}
	student, err := s.findUserWithRole(input.StudentID, models.RoleStudent, ErrStudentNotFound)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	endDate, err := calculateEndDate(now, input.Duration)
	if err != nil {
		return nil, err
	}

	mentorship := &models.Mentorship{
		MentorID:  mentor.ID,
		StudentID: student.ID,
		Status:    models.MentorshipStatusPending,
		Duration:  input.Duration,
		StartDate: now,
		EndDate:   endDate,
		Message:   input.Message,
	}

	if err := s.mentorshipRepo.CreateRequest(mentorship); err != nil {
		switch {
		case errors.Is(err, repository.ErrMentorBusy):
			return nil, ErrMentorUnavailable
		case errors.Is(err, repository.ErrStudentBusy):
			return nil, ErrStudentUnavailable
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrDuplicateRequest
		default:
			return nil, fmt.Errorf("failed to create mentorship request: %w", err)
		}
	}

	return s.mentorshipRepo.FindByID(mentorship.ID, "Mentor", "Student")
}

// RespondToRequest accepts or rejects a pending request addressed to the
// mentor. Accepting activates this mentorship and deletes every other pending
// request of the same student in the same transaction; rejecting removes the
// row entirely and returns nil.
func (s *MentorshipService) RespondToRequest(mentorID, mentorshipID uint64, accept bool) (*models.Mentorship, error) {
	mentorship, err := s.findMentorship(mentorshipID)
	if err != nil {
		return nil, err
	}
	if mentorship.MentorID != mentorID {
		return nil, ErrMentorshipNotFound
	}
	if mentorship.Status != models.MentorshipStatusPending {
		return nil, ErrMentorshipNotPending
	}

	if !accept {
		if err := s.mentorshipRepo.Delete(mentorship.ID); err != nil {
			return nil, fmt.Errorf("failed to delete mentorship request: %w", err)
		}
		return nil, nil
	}

	now := time.Now()
	endDate, err := calculateEndDate(now, mentorship.Duration)
	if err != nil {
		return nil, err
	}

	mentorship.Status = models.MentorshipStatusActive
	mentorship.StartDate = now
	mentorship.EndDate = endDate

	if err := s.mentorshipRepo.Accept(mentorship); err != nil {
		return nil, fmt.Errorf("failed to accept mentorship request: %w", err)
	}

	return s.mentorshipRepo.FindByID(mentorship.ID, "Mentor", "Student")
}

// Cancel moves a pending or active mentorship to cancelled. Either party may
// cancel.
func (s *MentorshipService) Cancel(actorID, mentorshipID uint64) (*models.Mentorship, error) {
	mentorship, err := s.findMentorship(mentorshipID)
	if err != nil {
		return nil, err
	}
	if mentorship.MentorID != actorID && mentorship.StudentID != actorID {
		return nil, ErrNotMentorshipParty
	}
	if mentorship.Status != models.MentorshipStatusPending && mentorship.Status != models.MentorshipStatusActive {
		return nil, ErrMentorshipNotCancellable
	}

	mentorship.Status = models.MentorshipStatusCancelled
	mentorship.EndDate = time.Now()

	if err := s.mentorshipRepo.Update(mentorship); err != nil {
		return nil, fmt.Errorf("failed to cancel mentorship: %w", err)
	}

	return s.mentorshipRepo.FindByID(mentorship.ID, "Mentor", "Student")
}

// Complete moves an active mentorship to completed. Either party may complete.
func (s *MentorshipService) Complete(actorID, mentorshipID uint64) (*models.Mentorship, error) {
	mentorship, err := s.findMentorship(mentorshipID)
	if err != nil {
		return nil, err
	}
	if mentorship.MentorID != actorID && mentorship.StudentID != actorID {
		return nil, ErrNotMentorshipParty
	}
	if mentorship.Status != models.MentorshipStatusActive {
		return nil, ErrMentorshipNotActive
	}

	mentorship.Status = models.MentorshipStatusCompleted
	mentorship.EndDate = time.Now()

	if err := s.mentorshipRepo.Update(mentorship); err != nil {
		return nil, fmt.Errorf("failed to complete mentorship: %w", err)
	}

	return s.mentorshipRepo.FindByID(mentorship.ID, "Mentor", "Student")
}

// GetAllMentors lists every registered mentor with skills and job title.
func (s *MentorshipService) GetAllMentors() ([]models.User, error) {
	mentors, err := s.userRepo.FindByRole(models.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}

// GetCurrentMentorships lists every mentorship the user is party to.
func (s *MentorshipService) GetCurrentMentorships(userID uint64) ([]models.Mentorship, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	mentorships, err := s.mentorshipRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentorships: %w", err)
	}
	return mentorships, nil
}

// GetPendingRequests lists pending requests addressed to a mentor.
func (s *MentorshipService) GetPendingRequests(mentorID uint64) ([]models.Mentorship, error) {
	requests, err := s.mentorshipRepo.ListByMentorAndStatus(mentorID, models.MentorshipStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return requests, nil
}

// GetStudentPendingRequests lists a student's own outstanding requests.
func (s *MentorshipService) GetStudentPendingRequests(studentID uint64) ([]models.Mentorship, error) {
	requests, err := s.mentorshipRepo.ListByStudentAndStatus(studentID, models.MentorshipStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return requests, nil
}

// CheckAndUpdateMentorshipStatus completes every active mentorship whose end
// date has passed. Run periodically; a second run with nothing expired is a
// no-op.
func (s *MentorshipService) CheckAndUpdateMentorshipStatus() (int64, error) {
	return s.mentorshipRepo.CompleteExpired(time.Now())
}

func (s *MentorshipService) findMentorship(id uint64) (*models.Mentorship, error) {
	mentorship, err := s.mentorshipRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorshipNotFound
		}
		return nil, fmt.Errorf("failed to find mentorship: %w", err)
	}
	return mentorship, nil
}

func (s *MentorshipService) findUserWithRole(id uint64, role models.UserRole, notFound error) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user.Role != role {
		return nil, notFound
	}
	return user, nil
}

// calculateEndDate maps a duration onto calendar months from the effective
// start instant. There is no default; unknown values are rejected.
func calculateEndDate(start time.Time, duration models.MentorshipDuration) (time.Time, error) {
	switch duration {
	case models.DurationOneMonth:
		return start.AddDate(0, 1, 0), nil
	case models.DurationTwoMonths:
		return start.AddDate(0, 2, 0), nil
	case models.DurationThreeMonths:
		return start.AddDate(0, 3, 0), nil
	default:
		return time.Time{}, ErrInvalidDuration
	}
}
