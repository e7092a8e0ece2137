package dto

import "github.com/mentorlink/mentorship-api/internal/models"

// SkillDTO represents a catalog skill in API responses
type SkillDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// JobTitleDTO represents a catalog job title in API responses
type JobTitleDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID                   uint64          `json:"id"`
	Email                string          `json:"email"`
	FirstName            string          `json:"first_name"`
	LastName             string          `json:"last_name"`
	Role                 models.UserRole `json:"role"`
	Bio                  string          `json:"bio,omitempty"`
	ProfileImageURL      string          `json:"profile_image_url,omitempty"`
	Skills               []SkillDTO      `json:"skills"`
	WillingToLearnSkills []SkillDTO      `json:"willing_to_learn_skills"`
	JobTitle             *JobTitleDTO    `json:"job_title,omitempty"`
}

// AuthResponse bundles the issued token with the authenticated user
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToSkillDTO converts a Skill model to SkillDTO
func ToSkillDTO(skill models.Skill) SkillDTO {
	return SkillDTO{
		ID:   skill.ID,
		Name: skill.Name,
	}
}

// ToSkillDTOs converts a slice of skills
func ToSkillDTOs(skills []models.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, skill := range skills {
		dtos[i] = ToSkillDTO(skill)
	}
	return dtos
}

// ToJobTitleDTO converts a JobTitle model to JobTitleDTO
func ToJobTitleDTO(title models.JobTitle) JobTitleDTO {
	return JobTitleDTO{
		ID:   title.ID,
		Name: title.Name,
	}
}

// ToJobTitleDTOs converts a slice of job titles
func ToJobTitleDTOs(titles []models.JobTitle) []JobTitleDTO {
	dtos := make([]JobTitleDTO, len(titles))
	for i, title := range titles {
		dtos[i] = ToJobTitleDTO(title)
	}
	return dtos
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:                   user.ID,
		Email:                user.Email,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		Role:                 user.Role,
		Bio:                  user.Bio,
		ProfileImageURL:      user.ProfileImageURL,
		Skills:               ToSkillDTOs(user.Skills),
		WillingToLearnSkills: ToSkillDTOs(user.WillingToLearnSkills),
	}

	// Include job title if preloaded
	if user.JobTitle != nil {
		title := ToJobTitleDTO(*user.JobTitle)
		dto.JobTitle = &title
	}

	return dto
}
