package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorlink/mentorship-api/internal/constants"
	"github.com/mentorlink/mentorship-api/internal/dto"
	apierrors "github.com/mentorlink/mentorship-api/internal/errors"
	"github.com/mentorlink/mentorship-api/internal/middleware"
	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/services"
	"github.com/mentorlink/mentorship-api/internal/utils"
)

// AuthHandler coordinates registration and login HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	jwtSecret   string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   jwtSecret,
	}
}

// Register creates a new student or mentor account and returns a token.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email                  string          `json:"email" binding:"required,email"`
		Password               string          `json:"password" binding:"required"`
		FirstName              string          `json:"first_name" binding:"required"`
		LastName               string          `json:"last_name" binding:"required"`
		Role                   models.UserRole `json:"role" binding:"required"`
		Bio                    string          `json:"bio"`
		ProfileImageURL        string          `json:"profile_image_url"`
		SkillIDs               []uint64        `json:"skill_ids"`
		WillingToLearnSkillIDs []uint64        `json:"willing_to_learn_skill_ids"`
		JobTitleID             uint64          `json:"job_title_id"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Email:                  req.Email,
		Password:               req.Password,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Role:                   req.Role,
		Bio:                    req.Bio,
		ProfileImageURL:        req.ProfileImageURL,
		SkillIDs:               req.SkillIDs,
		WillingToLearnSkillIDs: req.WillingToLearnSkillIDs,
		JobTitleID:             req.JobTitleID,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := utils.GenerateToken(user, h.jwtSecret)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserDTO(*user),
	})
}

// Login authenticates a user and returns a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := utils.GenerateToken(user, h.jwtSecret)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserDTO(*user),
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrStudentSkillsRequired),
		errors.Is(err, services.ErrMentorSkillsRequired),
		errors.Is(err, services.ErrMentorLearnForbidden),
		errors.Is(err, services.ErrJobTitleRequired),
		errors.Is(err, services.ErrJobTitleNotFound),
		errors.Is(err, services.ErrUnknownSkill):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
