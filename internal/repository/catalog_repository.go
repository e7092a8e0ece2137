package repository

import (
	"github.com/mentorlink/mentorship-api/internal/models"
	"gorm.io/gorm"
)

// GormCatalogRepository is a GORM implementation of CatalogRepository
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ListSkills returns the full skill catalog ordered by name
func (r *GormCatalogRepository) ListSkills() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order("name").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// ListJobTitles returns the full job-title catalog ordered by name
func (r *GormCatalogRepository) ListJobTitles() ([]models.JobTitle, error) {
	var titles []models.JobTitle
	if err := r.db.Order("name").Find(&titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}

// FindSkillsByIDs resolves skill IDs to rows
func (r *GormCatalogRepository) FindSkillsByIDs(ids []uint64) ([]models.Skill, error) {
	if len(ids) == 0 {
		return []models.Skill{}, nil
	}
	var skills []models.Skill
	if err := r.db.Where("id IN ?", ids).Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// FindJobTitleByID finds a job title by ID
func (r *GormCatalogRepository) FindJobTitleByID(id uint64) (*models.JobTitle, error) {
	var title models.JobTitle
	if err := r.db.First(&title, id).Error; err != nil {
		return nil, err
	}
	return &title, nil
}
