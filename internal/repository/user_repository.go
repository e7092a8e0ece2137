package repository

import (
	"github.com/mentorlink/mentorship-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user. Skill associations on the model must reference
// existing catalog rows; GORM only writes the join rows for them.
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID with skills and job title loaded
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.
		Preload("Skills").
		Preload("WillingToLearnSkills").
		Preload("JobTitle").
		First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByRole lists all users with the given role
func (r *GormUserRepository) FindByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Preload("Skills").
		Preload("WillingToLearnSkills").
		Preload("JobTitle").
		Where("role = ?", role).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
