package domain

import "time"

// Visibility is the access-scope tag on a post. It is stored and validated
// but not yet enforced at read time: enforcement needs a friend graph,
// which this service does not have.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is one of the known visibility values.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityFriends, VisibilityPrivate:
		return true
	}
	return false
}

// AttachmentKind classifies a post attachment.
type AttachmentKind string

const (
	AttachmentImage AttachmentKind = "image"
	AttachmentVideo AttachmentKind = "video"
	AttachmentPDF   AttachmentKind = "pdf"
)

// Attachment is an immutable content reference attached to a post. Its ID is
// unique only within the owning post.
type Attachment struct {
	ID       string         `json:"id" bson:"id"`
	Kind     AttachmentKind `json:"type" bson:"type"`
	URL      string         `json:"url" bson:"url"`
	Filename string         `json:"filename" bson:"filename"`
}

// Comment is an append-only reply on a post. Author name and avatar are
// denormalized at write time and intentionally not refreshed on profile
// updates. The ID is unique only within the owning post.
type Comment struct {
	ID         string    `json:"id" bson:"id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	UserName   string    `json:"user_name" bson:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty" bson:"user_avatar,omitempty"`
	Content    string    `json:"content" bson:"content"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Post is the core aggregate of the feed.
//
// User is a denormalized snapshot of the author, kept in sync by the
// profile-update cascade. LikedBy is the set of user IDs that currently like
// the post; Likes must always equal len(LikedBy) — both are mutated in a
// single atomic update.
type Post struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	UserID      string       `json:"user_id" bson:"user_id"`
	User        User         `json:"user" bson:"user"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description" bson:"description"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	EventDate   *time.Time   `json:"event_date,omitempty" bson:"event_date,omitempty"`
	Attachments []Attachment `json:"attachments" bson:"attachments"`
	Visibility  Visibility   `json:"visibility" bson:"visibility"`
	Likes       int          `json:"likes" bson:"likes"`
	LikedBy     []string     `json:"-" bson:"liked_by"`
	Comments    []Comment    `json:"comments" bson:"comments"`

	// IsLikedByCurrentUser is computed per viewer at read time and never
	// persisted.
	IsLikedByCurrentUser bool `json:"is_liked_by_current_user" bson:"-"`
}

// LikedByUser reports whether userID is in the post's like set.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
