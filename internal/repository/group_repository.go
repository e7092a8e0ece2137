package repository

import (
	"github.com/mentorlink/mentorship-api/internal/models"
	"gorm.io/gorm"
)

// GormGroupRepository is a GORM implementation of GroupRepository
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

// CreateWithCreatorMembership creates the group and the creator's accepted
// membership atomically, so a group can never exist without its creator row.
func (r *GormGroupRepository) CreateWithCreatorMembership(group *models.Group, member *models.GroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		member.GroupID = group.ID

		return tx.Create(member).Error
	})
}

// FindByID finds a group by ID with creator and members loaded
func (r *GormGroupRepository) FindByID(id uint64) (*models.Group, error) {
	var group models.Group
	if err := r.db.
		Preload("Creator").
		Preload("Members").
		Preload("Members.User").
		First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns groups newest first with pagination
func (r *GormGroupRepository) List(offset, limit int) ([]models.Group, int64, error) {
	var total int64
	if err := r.db.Model(&models.Group{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []models.Group
	query := r.db.
		Preload("Creator").
		Preload("Members").
		Preload("Members.User").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	if err := query.Find(&groups).Error; err != nil {
		return nil, 0, err
	}

	return groups, total, nil
}

// ListForUser returns groups the user is an accepted member of
func (r *GormGroupRepository) ListForUser(userID uint64) ([]models.Group, error) {
	memberGroups := r.db.Model(&models.GroupMember{}).
		Select("group_id").
		Where("user_id = ? AND status = ?", userID, models.MembershipStatusAccepted)

	var groups []models.Group
	if err := r.db.
		Preload("Creator").
		Preload("Members").
		Preload("Members.User").
		Where("id IN (?)", memberGroups).
		Order("created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// FindMember finds a specific group membership
func (r *GormGroupRepository) FindMember(groupID, userID uint64) (*models.GroupMember, error) {
	var member models.GroupMember
	if err := r.db.
		Preload("User").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// AddMember adds a membership row
func (r *GormGroupRepository) AddMember(member *models.GroupMember) error {
	return r.db.Create(member).Error
}

// UpdateMember persists a membership status change
func (r *GormGroupRepository) UpdateMember(member *models.GroupMember) error {
	return r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", member.GroupID, member.UserID).
		Update("status", member.Status).Error
}

// RemoveMember removes a membership row
func (r *GormGroupRepository) RemoveMember(groupID, userID uint64) error {
	return r.db.Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{}).Error
}

// DeleteWithMembers removes all memberships then the group in one transaction
func (r *GormGroupRepository) DeleteWithMembers(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Group{}, id).Error
	})
}
