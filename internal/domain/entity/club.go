package entity

import "time"

// Club is the clubs/{clubId} document. Description fields are editable
// by the club president only.
type Club struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	ShortDesc   string    `bson:"short_desc" json:"shortDesc"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Photos      []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	ApplyForm   string    `bson:"apply_form,omitempty" json:"applyForm,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
