package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultAvatar is assigned to accounts created without an avatar.
const DefaultAvatar = "https://picsum.photos/id/64/200/200"

// User models an account in the feed. The password hash is stored at signup
// but never checked on login: this service is a demo stand-in for a real
// identity provider, not a production authenticator.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Avatar       string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Role         string    `json:"role" bson:"role"`
	JoinedAt     time.Time `json:"joined_at" bson:"joined_at"`
}

// Snapshot returns the denormalized author copy embedded in posts. The
// password hash is stripped so it never ends up inside a post document.
func (u User) Snapshot() User {
	u.PasswordHash = ""
	return u
}
