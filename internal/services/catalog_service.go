package services

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mentorlink/mentorship-api/internal/constants"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/repository"
)

const (
	cacheKeySkills    = "catalog:skills"
	cacheKeyJobTitles = "catalog:job_titles"
)

// CatalogService serves the skill and job-title reference data. The catalog
// only changes via seeding, so reads go through a short-lived in-process cache.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	cache       *gocache.Cache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		cache:       gocache.New(constants.CatalogCacheTTL, 2*constants.CatalogCacheTTL),
	}
}

// ListSkills returns the skill catalog ordered by name.
func (s *CatalogService) ListSkills() ([]models.Skill, error) {
	if cached, found := s.cache.Get(cacheKeySkills); found {
		return cached.([]models.Skill), nil
	}

	skills, err := s.catalogRepo.ListSkills()
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	s.cache.Set(cacheKeySkills, skills, gocache.DefaultExpiration)
	return skills, nil
}

// ListJobTitles returns the job-title catalog ordered by name.
func (s *CatalogService) ListJobTitles() ([]models.JobTitle, error) {
	if cached, found := s.cache.Get(cacheKeyJobTitles); found {
		return cached.([]models.JobTitle), nil
	}

	titles, err := s.catalogRepo.ListJobTitles()
	if err != nil {
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}

	s.cache.Set(cacheKeyJobTitles, titles, gocache.DefaultExpiration)
	return titles, nil
}
