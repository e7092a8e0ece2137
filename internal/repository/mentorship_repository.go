package repository

import (
	"errors"
	"time"

	"github.com/mentorlink/mentorship-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrMentorBusy is returned when the mentor already has an active mentorship.
	ErrMentorBusy = errors.New("mentorship repository: mentor has an active mentorship")
	// ErrStudentBusy is returned when the student already has an active mentorship.
	ErrStudentBusy = errors.New("mentorship repository: student has an active mentorship")
)

// GormMentorshipRepository is a GORM implementation of MentorshipRepository
type GormMentorshipRepository struct {
	db *gorm.DB
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *gorm.DB) MentorshipRepository {
	return &GormMentorshipRepository{db: db}
}

// CreateRequest re-checks active-exclusivity for both parties and inserts the
// pending row in the same transaction, so a concurrent accept cannot slip in
// between the check and the write. The unique (mentor_id, student_id) index
// rejects duplicate pairs at the constraint level.
func (r *GormMentorshipRepository) CreateRequest(mentorship *models.Mentorship) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Mentorship{}).
			Where("mentor_id = ? AND status = ?", mentorship.MentorID, models.MentorshipStatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrMentorBusy
		}

		if err := tx.Model(&models.Mentorship{}).
			Where("student_id = ? AND status = ?", mentorship.StudentID, models.MentorshipStatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrStudentBusy
		}

		return tx.Create(mentorship).Error
	})
}

// FindByID finds a mentorship by ID with optional preloading
func (r *GormMentorshipRepository) FindByID(id uint64, preload ...string) (*models.Mentorship, error) {
	var mentorship models.Mentorship
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}
	if err := query.First(&mentorship, id).Error; err != nil {
		return nil, err
	}
	return &mentorship, nil
}

// Accept removes the student's competing pending requests and persists the
// activated mentorship as one transaction. The two steps together are what
// keep a student limited to a single non-terminal mentorship after acceptance.
func (r *GormMentorshipRepository) Accept(mentorship *models.Mentorship) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ? AND id <> ? AND status = ?",
			mentorship.StudentID, mentorship.ID, models.MentorshipStatusPending).
			Delete(&models.Mentorship{}).Error; err != nil {
			return err
		}

		return tx.Save(mentorship).Error
	})
}

// Delete removes a mentorship row entirely
func (r *GormMentorshipRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Mentorship{}, id).Error
}

// Update persists status and date changes
func (r *GormMentorshipRepository) Update(mentorship *models.Mentorship) error {
	return r.db.Save(mentorship).Error
}

// ListByMentorAndStatus lists a mentor's mentorships in the given status
func (r *GormMentorshipRepository) ListByMentorAndStatus(mentorID uint64, status models.MentorshipStatus) ([]models.Mentorship, error) {
	var mentorships []models.Mentorship
	if err := r.db.
		Preload("Mentor").
		Preload("Student").
		Where("mentor_id = ? AND status = ?", mentorID, status).
		Find(&mentorships).Error; err != nil {
		return nil, err
	}
	return mentorships, nil
}

// ListByStudentAndStatus lists a student's mentorships in the given status
func (r *GormMentorshipRepository) ListByStudentAndStatus(studentID uint64, status models.MentorshipStatus) ([]models.Mentorship, error) {
	var mentorships []models.Mentorship
	if err := r.db.
		Preload("Mentor").
		Preload("Student").
		Where("student_id = ? AND status = ?", studentID, status).
		Find(&mentorships).Error; err != nil {
		return nil, err
	}
	return mentorships, nil
}

// ListForUser lists every mentorship the user is party to
func (r *GormMentorshipRepository) ListForUser(userID uint64) ([]models.Mentorship, error) {
	var mentorships []models.Mentorship
	if err := r.db.
		Preload("Mentor").
		Preload("Student").
		Where("mentor_id = ? OR student_id = ?", userID, userID).
		Find(&mentorships).Error; err != nil {
		return nil, err
	}
	return mentorships, nil
}

// CompleteExpired moves expired active mentorships to completed in a single
// statement. Re-running with nothing expired matches zero rows.
func (r *GormMentorshipRepository) CompleteExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Mentorship{}).
		Where("status = ? AND end_date <= ?", models.MentorshipStatusActive, now).
		Update("status", models.MentorshipStatusCompleted)
	return result.RowsAffected, result.Error
}
