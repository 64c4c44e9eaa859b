package entity

import "time"

// Role is a club member's role. The set is closed; transitions between
// roles go through the membership service only.
type Role string

const (
	RolePresident Role = "president"
	RoleStaff     Role = "staff"
	RoleMember    Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePresident, RoleStaff, RoleMember:
		return true
	}
	return false
}

// Priority orders roles for roster display (president first).
func (r Role) Priority() int {
	switch r {
	case RolePresident:
		return 0
	case RoleStaff:
		return 1
	default:
		return 2
	}
}

// MembershipRecord is the clubs/{clubId}/members/{userId} document: one
// roster entry per member, carrying a snapshot of the member's profile
// fields at join time. The snapshot is refreshed on profile edits, not
// kept in sync otherwise.
type MembershipRecord struct {
	ClubID     string    `bson:"club_id" json:"clubId"`
	UserID     string    `bson:"user_id" json:"userId"`
	Name       string    `bson:"name" json:"name"`
	StudentID  string    `bson:"student_id" json:"studentId"`
	Department string    `bson:"department" json:"department"`
	Phone      string    `bson:"phone" json:"phone"`
	Role       Role      `bson:"role" json:"role"`
	JoinedAt   time.Time `bson:"joined_at" json:"joinedAt"`
}
