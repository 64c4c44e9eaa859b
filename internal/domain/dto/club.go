package dto

// ClubUpdate carries the club fields a president may edit.
type ClubUpdate struct {
	Name        string   `json:"name"`
	ShortDesc   string   `json:"shortDesc"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Photos      []string `json:"photos"`
	ApplyForm   string   `json:"applyForm"`
}
