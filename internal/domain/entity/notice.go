package entity

import "time"

// Notice is a clubs/{clubId}/notices/{id} document. At most one notice
// per club is pinned at a time.
type Notice struct {
	ID        string    `bson:"_id" json:"id"`
	ClubID    string    `bson:"club_id" json:"clubId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	IsPinned  bool      `bson:"is_pinned" json:"isPinned"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
