package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mentorlink/mentorship-api/internal/constants"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("the email or password you entered is incorrect")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidRole           = errors.New("role must be student or mentor")
	ErrStudentSkillsRequired = errors.New("students must specify skills they want to learn")
	ErrMentorSkillsRequired  = errors.New("mentors must specify skills they possess")
	ErrMentorLearnForbidden  = errors.New("mentors should not specify skills to learn")
	ErrJobTitleRequired      = errors.New("a job title is required")
	ErrJobTitleNotFound      = errors.New("job title not found")
	ErrUnknownSkill          = errors.New("one or more skills do not exist")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, catalogRepo repository.CatalogRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
	}
}

// RegisterInput represents the required information to create a new user.
// Skills and job titles are referenced by catalog ID, never by display text.
type RegisterInput struct {
	Email                  string
	Password               string
	FirstName              string
	LastName               string
	Role                   models.UserRole
	Bio                    string
	ProfileImageURL        string
	SkillIDs               []uint64
	WillingToLearnSkillIDs []uint64
	JobTitleID             uint64
}

// Register creates a new user after validating the role/skill-set contract:
// students must want to learn something, mentors must have something to teach
// and nothing to learn, and both need exactly one job title.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	switch input.Role {
	case models.RoleStudent:
		if len(input.WillingToLearnSkillIDs) == 0 {
			return nil, ErrStudentSkillsRequired
		}
	case models.RoleMentor:
		if len(input.SkillIDs) == 0 {
			return nil, ErrMentorSkillsRequired
		}
		if len(input.WillingToLearnSkillIDs) > 0 {
			return nil, ErrMentorLearnForbidden
		}
	default:
		return nil, ErrInvalidRole
	}

	if input.JobTitleID == 0 {
		return nil, ErrJobTitleRequired
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	jobTitle, err := s.catalogRepo.FindJobTitleByID(input.JobTitleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobTitleNotFound
		}
		return nil, fmt.Errorf("failed to find job title: %w", err)
	}

	skills, err := s.resolveSkills(input.SkillIDs)
	if err != nil {
		return nil, err
	}
	willingSkills, err := s.resolveSkills(input.WillingToLearnSkillIDs)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:                email,
		PasswordHash:         string(hashedPassword),
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		Role:                 input.Role,
		Bio:                  input.Bio,
		ProfileImageURL:      input.ProfileImageURL,
		JobTitleID:           &jobTitle.ID,
		Skills:               skills,
		WillingToLearnSkills: willingSkills,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.userRepo.FindByID(user.ID)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.userRepo.FindByID(user.ID)
}

// GetUser retrieves a user by ID with skills and job title loaded.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (s *AuthService) resolveSkills(ids []uint64) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	unique := make(map[uint64]struct{}, len(ids))
	deduped := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, seen := unique[id]; !seen {
			unique[id] = struct{}{}
			deduped = append(deduped, id)
		}
	}

	skills, err := s.catalogRepo.FindSkillsByIDs(deduped)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve skills: %w", err)
	}
	if len(skills) != len(deduped) {
		return nil, ErrUnknownSkill
	}

	return skills, nil
}
