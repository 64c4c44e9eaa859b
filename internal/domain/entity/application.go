package entity

import "time"

// ApplicationStatus is the lifecycle state of a join request. Approved
// and rejected are terminal.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ClubApplication is a clubApplications/{id} document: a join request
// cross-referencing a user and a club, with a profile snapshot taken at
// application time for the approval queue. Applications are never
// deleted, only settled.
type ClubApplication struct {
	ID         string            `bson:"_id" json:"id"`
	ClubID     string            `bson:"club_id" json:"clubId"`
	UserID     string            `bson:"user_id" json:"userId"`
	Status     ApplicationStatus `bson:"status" json:"status"`
	Name       string            `bson:"name" json:"name"`
	Department string            `bson:"department" json:"department"`
	StudentID  string            `bson:"student_id" json:"studentId"`
	Email      string            `bson:"email" json:"email"`
	Phone      string            `bson:"phone" json:"phone"`
	Intro      string            `bson:"intro" json:"intro"`
	CreatedAt  time.Time         `bson:"created_at" json:"createdAt"`
}
