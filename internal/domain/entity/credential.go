package entity

import "time"

// Credential is an identity-provider record: the bcrypt hash for an
// email/password account. Stored apart from the profile document so
// profile reads never carry secrets.
type Credential struct {
	UserID       string    `bson:"_id" json:"-"`
	Email        string    `bson:"email" json:"-"`
	PasswordHash []byte    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"-"`
}
