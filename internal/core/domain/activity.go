package domain

import "time"

// ActivityKind labels an entry in the feed's audit trail.
type ActivityKind string

const (
	ActivityPostCreated  ActivityKind = "post_created"
	ActivityPostDeleted  ActivityKind = "post_deleted"
	ActivityLikeAdded    ActivityKind = "like_added"
	ActivityLikeRemoved  ActivityKind = "like_removed"
	ActivityCommentAdded ActivityKind = "comment_added"
)

// ActivityEvent is an append-only record of an interaction with a post.
type ActivityEvent struct {
	Kind      ActivityKind `json:"kind" bson:"kind"`
	PostID    string       `json:"post_id" bson:"post_id"`
	ActorID   string       `json:"actor_id" bson:"actor_id"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
}
