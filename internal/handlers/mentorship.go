package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink/mentorship-api/internal/dto"
	apierrors "github.com/mentorlink/mentorship-api/internal/errors"
	"github.com/mentorlink/mentorship-api/internal/middleware"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/services"
)

// MentorshipHandler exposes the mentorship lifecycle over HTTP.
type MentorshipHandler struct {
	mentorshipService     *services.MentorshipService
	recommendationService *services.RecommendationService
}

// NewMentorshipHandler creates a new MentorshipHandler.
func NewMentorshipHandler(mentorshipService *services.MentorshipService, recommendationService *services.RecommendationService) *MentorshipHandler {
	return &MentorshipHandler{
		mentorshipService:     mentorshipService,
		recommendationService: recommendationService,
	}
}

// GetAllMentors lists every registered mentor. Public.
func (h *MentorshipHandler) GetAllMentors(c *gin.Context) {
	mentors, err := h.mentorshipService.GetAllMentors()
	if err != nil {
		apierrors.InternalError(c, "Failed to list mentors")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTOs(mentors))
}

// GetRecommendations ranks mentors for the calling student by skill overlap.
func (h *MentorshipHandler) GetRecommendations(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	recommendations, err := h.recommendationService.GetMentorRecommendations(c.Request.Context(), userID)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMentorRecommendationDTOs(recommendations))
}

// RequestMentorship creates a pending mentorship request to a mentor.
func (h *MentorshipHandler) RequestMentorship(c *gin.Context) {
	type RequestMentorshipRequest struct {
		MentorID uint64                    `json:"mentor_id" binding:"required"`
		Duration models.MentorshipDuration `json:"duration" binding:"required"`
		Message  string                    `json:"message"`
	}

	var req RequestMentorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)

	mentorship, err := h.mentorshipService.RequestMentorship(services.RequestMentorshipInput{
		StudentID: userID,
		MentorID:  req.MentorID,
		Duration:  req.Duration,
		Message:   req.Message,
	})
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMentorshipDTO(*mentorship))
}

// RespondToRequest accepts or rejects a pending request addressed to the
// calling mentor.
func (h *MentorshipHandler) RespondToRequest(c *gin.Context) {
	type RespondRequest struct {
		Accept *bool `json:"accept" binding:"required"`
	}

	mentorshipID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid mentorship ID")
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)

	mentorship, err := h.mentorshipService.RespondToRequest(userID, mentorshipID, *req.Accept)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	if mentorship == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Mentorship request rejected"})
		return
	}
	c.JSON(http.StatusOK, dto.ToMentorshipDTO(*mentorship))
}

// Cancel cancels a pending or active mentorship the caller is party to.
func (h *MentorshipHandler) Cancel(c *gin.Context) {
	mentorshipID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid mentorship ID")
		return
	}

	userID, _ := middleware.GetUserID(c)

	mentorship, err := h.mentorshipService.Cancel(userID, mentorshipID)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMentorshipDTO(*mentorship))
}

// Complete completes an active mentorship the caller is party to.
func (h *MentorshipHandler) Complete(c *gin.Context) {
	mentorshipID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid mentorship ID")
		return
	}

	userID, _ := middleware.GetUserID(c)

	mentorship, err := h.mentorshipService.Complete(userID, mentorshipID)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMentorshipDTO(*mentorship))
}

// GetCurrentMentorships lists every mentorship the caller is party to.
func (h *MentorshipHandler) GetCurrentMentorships(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	mentorships, err := h.mentorshipService.GetCurrentMentorships(userID)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMentorshipDTOs(mentorships))
}

// GetPendingRequests lists pending requests from the caller's perspective:
// requests addressed to a mentor, or a student's own outstanding requests.
func (h *MentorshipHandler) GetPendingRequests(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	var (
		requests []models.Mentorship
		err      error
	)
	if role == models.RoleMentor {
		requests, err = h.mentorshipService.GetPendingRequests(userID)
	} else {
		requests, err = h.mentorshipService.GetStudentPendingRequests(userID)
	}
	if err != nil {
		respondMentorshipError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMentorshipDTOs(requests))
}

func parseIDParam(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func respondMentorshipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMentorNotFound),
		errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrMentorshipNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrMentorUnavailable),
		errors.Is(err, services.ErrStudentUnavailable),
		errors.Is(err, services.ErrDuplicateRequest),
		errors.Is(err, services.ErrMentorshipNotPending),
		errors.Is(err, services.ErrMentorshipNotCancellable),
		errors.Is(err, services.ErrMentorshipNotActive),
		errors.Is(err, services.ErrInvalidDuration):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotMentorshipParty):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
