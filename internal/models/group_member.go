package models

type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "PENDING"
	MembershipStatusAccepted MembershipStatus = "ACCEPTED"
	MembershipStatusRejected MembershipStatus = "REJECTED"
)

// GroupMember is keyed by (group, user). A row exists for every join request,
// whatever its status, which is what blocks duplicate requests.
type GroupMember struct {
	GroupID uint64           `gorm:"primarykey" json:"group_id"`
	UserID  uint64           `gorm:"primarykey" json:"user_id"`
	Status  MembershipStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Relations
	Group Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
