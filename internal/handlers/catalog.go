package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink/mentorship-api/internal/dto"
	apierrors "github.com/mentorlink/mentorship-api/internal/errors"
	"github.com/mentorlink/mentorship-api/internal/services"
)

// CatalogHandler serves the skill and job-title reference lists.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetTechSkills lists every skill in the catalog.
func (h *CatalogHandler) GetTechSkills(c *gin.Context) {
	skills, err := h.catalogService.ListSkills()
	if err != nil {
		apierrors.InternalError(c, "Failed to list skills")
		return
	}
	c.JSON(http.StatusOK, dto.ToSkillDTOs(skills))
}

// GetJobTitles lists every job title in the catalog.
func (h *CatalogHandler) GetJobTitles(c *gin.Context) {
	titles, err := h.catalogService.ListJobTitles()
	if err != nil {
		apierrors.InternalError(c, "Failed to list job titles")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobTitleDTOs(titles))
}
