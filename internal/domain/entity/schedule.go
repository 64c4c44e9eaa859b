package entity

import "time"

// ScheduleEntry is a clubs/{clubId}/schedules/{id} document. Date is a
// calendar day in YYYY-MM-DD form; the calendar view groups entries by it.
type ScheduleEntry struct {
	ID        string    `bson:"_id" json:"id"`
	ClubID    string    `bson:"club_id" json:"clubId"`
	Date      string    `bson:"date" json:"date"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
