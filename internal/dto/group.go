package dto

import (
	"time"

	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/utils"
)

// GroupMemberDTO represents a member (or join request) in a group
type GroupMemberDTO struct {
	UserID uint64                  `json:"user_id"`
	User   UserDTO                 `json:"user"`
	Status models.MembershipStatus `json:"status"`
}

// GroupDTO represents a group in API responses
type GroupDTO struct {
	ID          uint64           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CreatorID   uint64           `json:"creator_id"`
	Creator     UserDTO          `json:"creator"`
	Members     []GroupMemberDTO `json:"members"`
	CreatedAt   time.Time        `json:"created_at"`
}

// GroupListResponse represents a paginated list of groups
type GroupListResponse struct {
	Groups     []GroupDTO               `json:"groups"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToGroupMemberDTO converts a GroupMember model to GroupMemberDTO
func ToGroupMemberDTO(member models.GroupMember) GroupMemberDTO {
	return GroupMemberDTO{
		UserID: member.UserID,
		User:   ToUserDTO(member.User),
		Status: member.Status,
	}
}

// ToGroupDTO converts a Group model to GroupDTO
func ToGroupDTO(group models.Group) GroupDTO {
	members := make([]GroupMemberDTO, len(group.Members))
	for i, member := range group.Members {
		members[i] = ToGroupMemberDTO(member)
	}

	return GroupDTO{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatorID:   group.CreatorID,
		Creator:     ToUserDTO(group.Creator),
		Members:     members,
		CreatedAt:   group.CreatedAt,
	}
}

// ToGroupDTOs converts a slice of groups
func ToGroupDTOs(groups []models.Group) []GroupDTO {
	dtos := make([]GroupDTO, len(groups))
	for i, group := range groups {
		dtos[i] = ToGroupDTO(group)
	}
	return dtos
}
