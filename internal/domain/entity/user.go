package entity

import "time"

// ClubStatus tracks the user's single club affiliation.
type ClubStatus string

const (
	ClubStatusNone     ClubStatus = "none"
	ClubStatusPending  ClubStatus = "pending"
	ClubStatusApproved ClubStatus = "approved"
)

// UserProfile is the users/{userId} document. MyClubID is set iff
// MyClubStatus is not "none"; PresidentOf is set iff the user currently
// holds the president role of that club.
type UserProfile struct {
	ID           string     `bson:"_id" json:"id"`
	Email        string     `bson:"email" json:"email"`
	Name         string     `bson:"name" json:"name"`
	Phone        string     `bson:"phone" json:"phone"`
	StudentID    string     `bson:"student_id" json:"studentId"`
	Major        string     `bson:"major" json:"major"`
	Department   string     `bson:"department" json:"department"`
	MyClubStatus ClubStatus `bson:"my_club_status" json:"myClubStatus"`
	MyClubID     string     `bson:"my_club_id,omitempty" json:"myClubId,omitempty"`
	PresidentOf  string     `bson:"president_of,omitempty" json:"presidentOf,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
}

// HasRequiredFields reports whether the profile carries everything an
// application snapshot needs.
func (u *UserProfile) HasRequiredFields() bool {
	return u.Name != "" && u.Phone != "" && u.StudentID != ""
}
