package services

import (
	"errors"
	"fmt"

	"github.com/mentorlink/mentorship-api/internal/models"
	"github.com/mentorlink/mentorship-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrGroupNotFound          = errors.New("group not found")
	ErrOnlyStudentsCreate     = errors.New("only students can create groups")
	ErrAlreadyRequestedToJoin = errors.New("you have already joined or requested to join this group")
	ErrJoinRequestNotFound    = errors.New("join request not found")
	ErrJoinRequestNotPending  = errors.New("this request is not pending")
	ErrMembershipNotFound     = errors.New("group membership not found")
	ErrCreatorCannotLeave     = errors.New("group creators cannot leave the group, delete the group instead")
)

// GroupService provides business logic for study-group operations.
type GroupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// CreateGroupInput represents parameters to create a new group.
type CreateGroupInput struct {
	CreatorID   uint64
	Name        string
	Description string
}

// CreateGroup creates a group and its creator's accepted membership in one
// transaction. Only students may create groups.
func (s *GroupService) CreateGroup(input CreateGroupInput) (*models.Group, error) {
	creator, err := s.userRepo.FindByID(input.CreatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOnlyStudentsCreate
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}
	if creator.Role != models.RoleStudent {
		return nil, ErrOnlyStudentsCreate
	}

	group := &models.Group{
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   creator.ID,
	}
	member := &models.GroupMember{
		UserID: creator.ID,
		Status: models.MembershipStatusAccepted,
	}

	if err := s.groupRepo.CreateWithCreatorMembership(group, member); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return s.groupRepo.FindByID(group.ID)
}

// GetGroup returns a group with creator and members.
func (s *GroupService) GetGroup(groupID uint64) (*models.Group, error) {
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return group, nil
}

// ListGroups returns all groups newest first with pagination.
func (s *GroupService) ListGroups(offset, limit int) ([]models.Group, int64, error) {
	groups, total, err := s.groupRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, total, nil
}

// GetUserGroups returns groups the user is an accepted member of.
func (s *GroupService) GetUserGroups(userID uint64) ([]models.Group, error) {
	groups, err := s.groupRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user groups: %w", err)
	}
	return groups, nil
}

// JoinGroup files a pending join request. Any existing membership row for the
// pair, whatever its status, blocks a new request; a rejected user cannot
// re-request through this operation.
func (s *GroupService) JoinGroup(userID, groupID uint64) (*models.GroupMember, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}

	if _, err := s.groupRepo.FindMember(groupID, userID); err == nil {
		return nil, ErrAlreadyRequestedToJoin
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
		Status:  models.MembershipStatusPending,
	}
	if err := s.groupRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}

	return s.groupRepo.FindMember(groupID, userID)
}

// RespondToJoinRequest accepts or rejects a pending join request. Creator
// authorization happens at the handler layer.
func (s *GroupService) RespondToJoinRequest(groupID, userID uint64, accept bool) (*models.GroupMember, error) {
	member, err := s.groupRepo.FindMember(groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to find join request: %w", err)
	}
	if member.Status != models.MembershipStatusPending {
		return nil, ErrJoinRequestNotPending
	}

	if accept {
		member.Status = models.MembershipStatusAccepted
	} else {
		member.Status = models.MembershipStatusRejected
	}

	if err := s.groupRepo.UpdateMember(member); err != nil {
		return nil, fmt.Errorf("failed to update join request: %w", err)
	}

	return member, nil
}

// LeaveGroup removes the user's accepted membership. The creator may never
// leave; the group must be deleted instead.
func (s *GroupService) LeaveGroup(userID, groupID uint64) error {
	member, err := s.groupRepo.FindMember(groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to find membership: %w", err)
	}
	if member.Status != models.MembershipStatusAccepted {
		return ErrMembershipNotFound
	}

	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		return fmt.Errorf("failed to find group: %w", err)
	}
	if group.CreatorID == userID {
		return ErrCreatorCannotLeave
	}

	if err := s.groupRepo.RemoveMember(groupID, userID); err != nil {
		return fmt.Errorf("failed to leave group: %w", err)
	}
	return nil
}

// DeleteGroup removes the group and all its memberships in one transaction.
// Creator authorization happens at the handler layer.
func (s *GroupService) DeleteGroup(groupID uint64) error {
	if _, err := s.groupRepo.FindByID(groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to find group: %w", err)
	}

	if err := s.groupRepo.DeleteWithMembers(groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}
