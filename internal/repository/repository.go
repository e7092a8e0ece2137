package repository

import (
	"time"

	"github.com/mentorlink/mentorship-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user together with its skill associations
	Create(user *models.User) error

	// FindByID finds a user by ID with skills and job title loaded
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByRole lists all users with the given role, with skills and job title loaded
	FindByRole(role models.UserRole) ([]models.User, error)
}

// CatalogRepository defines the interface for skill and job-title reference data
type CatalogRepository interface {
	// ListSkills returns the full skill catalog ordered by name
	ListSkills() ([]models.Skill, error)

	// ListJobTitles returns the full job-title catalog ordered by name
	ListJobTitles() ([]models.JobTitle, error)

	// FindSkillsByIDs resolves skill IDs to rows; missing IDs are simply absent
	FindSkillsByIDs(ids []uint64) ([]models.Skill, error)

	// FindJobTitleByID finds a job title by ID
	FindJobTitleByID(id uint64) (*models.JobTitle, error)
}

// MentorshipRepository defines the interface for mentorship data access
type MentorshipRepository interface {
	// CreateRequest inserts a pending mentorship after re-checking, inside one
	// transaction, that neither party has an active mentorship. Returns
	// ErrMentorBusy or ErrStudentBusy when the check fails.
	CreateRequest(mentorship *models.Mentorship) error

	// FindByID finds a mentorship by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Mentorship, error)

	// Accept deletes every other pending request of the same student and
	// persists the updated (now active) mentorship, as one transaction.
	Accept(mentorship *models.Mentorship) error

	// Delete removes a mentorship row entirely
	Delete(id uint64) error

	// Update persists status and date changes
	Update(mentorship *models.Mentorship) error

	// ListByMentorAndStatus lists a mentor's mentorships in the given status
	ListByMentorAndStatus(mentorID uint64, status models.MentorshipStatus) ([]models.Mentorship, error)

	// ListByStudentAndStatus lists a student's mentorships in the given status
	ListByStudentAndStatus(studentID uint64, status models.MentorshipStatus) ([]models.Mentorship, error)

	// ListForUser lists every mentorship the user is party to, either side
	ListForUser(userID uint64) ([]models.Mentorship, error)

	// CompleteExpired moves active mentorships whose end date has passed to
	// completed and reports how many rows changed. Idempotent.
	CompleteExpired(now time.Time) (int64, error)
}

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	// CreateWithCreatorMembership creates a group and its creator's accepted
	// membership within a single transaction.
	CreateWithCreatorMembership(group *models.Group, member *models.GroupMember) error

	// FindByID finds a group by ID with creator and members loaded
	FindByID(id uint64) (*models.Group, error)

	// List returns groups newest first with pagination
	List(offset, limit int) ([]models.Group, int64, error)

	// ListForUser returns groups the user is an accepted member of
	ListForUser(userID uint64) ([]models.Group, error)

	// FindMember finds a specific group membership
	FindMember(groupID, userID uint64) (*models.GroupMember, error)

	// AddMember adds a membership row
	AddMember(member *models.GroupMember) error

	// UpdateMember persists a membership status change
	UpdateMember(member *models.GroupMember) error

	// RemoveMember removes a membership row
	RemoveMember(groupID, userID uint64) error

	// DeleteWithMembers removes all memberships then the group, as one transaction
	DeleteWithMembers(id uint64) error
}
