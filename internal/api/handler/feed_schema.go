package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type attachmentRequest struct {
	Type     string `json:"type"     validate:"required,oneof=image video pdf"`
	URL      string `json:"url"      validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

type createPostRequest struct {
	Title       string              `json:"title"       validate:"required,max=200"`
	Description string              `json:"description" validate:"max=5000"`
	EventDate   *time.Time          `json:"event_date"`
	Attachments []attachmentRequest `json:"attachments" validate:"dive"`
	Visibility  string              `json:"visibility"  validate:"omitempty,oneof=public friends private"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

type userResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type attachmentResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type commentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type postResponse struct {
	ID                   string               `json:"id"`
	UserID               string               `json:"user_id"`
	User                 userResponse         `json:"user"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	CreatedAt            time.Time            `json:"created_at"`
	EventDate            *time.Time           `json:"event_date,omitempty"`
	Attachments          []attachmentResponse `json:"attachments"`
	Visibility           string               `json:"visibility"`
	Likes                int                  `json:"likes"`
	Comments             []commentResponse    `json:"comments"`
	IsLikedByCurrentUser bool                 `json:"is_liked_by_current_user"`
}

type listPostsResponse struct {
	Data  []postResponse `json:"data"`
	Count int            `json:"count"`
}

type activityEventResponse struct {
	Kind      string    `json:"kind"`
	PostID    string    `json:"post_id"`
	ActorID   string    `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

type listActivityResponse struct {
	Data []activityEventResponse `json:"data"`
}
