package dto

// ProfileSnapshot is the subset of profile fields denormalized into
// roster records and applications for read-path convenience.
type ProfileSnapshot struct {
	Name       string `bson:"name"`
	StudentID  string `bson:"student_id"`
	Department string `bson:"department"`
	Phone      string `bson:"phone"`
}

// ProfileUpdate carries the user-editable profile fields.
type ProfileUpdate struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Major      string `json:"major"`
	Department string `json:"department"`
	StudentID  string `json:"studentId"`
}
