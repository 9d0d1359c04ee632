package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialpulse/feed-system/internal/core/domain"
)

// Seed inserts demo users and posts when both collections are empty. It is
// only meant for development environments.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	users := db.Collection(collectionUsers)
	posts := db.Collection(collectionPosts)

	count, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	jane := domain.User{
		ID:           "u-SEED0001",
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Avatar:       "https://picsum.photos/id/1027/200/200",
		Bio:          "Digital nomad & coffee enthusiast.",
		Role:         domain.RoleUser,
		JoinedAt:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	john := domain.User{
		ID:           "u-SEED0002",
		Name:         "John Smith",
		Email:        "john@example.com",
		PasswordHash: string(hash),
		Avatar:       "https://picsum.photos/id/1012/200/200",
		Bio:          "Tech lead. Building the future.",
		Role:         domain.RoleUser,
		JoinedAt:     time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC),
	}

	if _, err := users.InsertMany(ctx, []any{jane, john}); err != nil {
		return fmt.Errorf("seed: insert users: %w", err)
	}

	now := time.Now().UTC()
	eventDate := now
	seedPosts := []any{
		domain.Post{
			ID:          "p-SEED0001",
			UserID:      jane.ID,
			User:        jane.Snapshot(),
			Title:       "Sunset at the Beach",
			Description: "Had an amazing time walking down the coast this evening. The colors were unreal!",
			CreatedAt:   now.Add(-2 * time.Hour),
			EventDate:   &eventDate,
			Attachments: []domain.Attachment{
				{ID: "a-SEED0001", Kind: domain.AttachmentImage, URL: "https://picsum.photos/id/10/800/600", Filename: "sunset.jpg"},
			},
			Visibility: domain.VisibilityPublic,
			Likes:      1,
			LikedBy:    []string{john.ID},
			Comments:   []domain.Comment{},
		},
		domain.Post{
			ID:          "p-SEED0002",
			UserID:      john.ID,
			User:        john.Snapshot(),
			Title:       "Project Update: Q4 Goals",
			Description: "Just wrapped up the quarterly planning session. Here are the key takeaways (see PDF).",
			CreatedAt:   now.Add(-24 * time.Hour),
			EventDate:   &eventDate,
			Attachments: []domain.Attachment{
				{ID: "a-SEED0002", Kind: domain.AttachmentPDF, URL: "#", Filename: "Q4_Roadmap.pdf"},
			},
			Visibility: domain.VisibilityFriends,
			Likes:      1,
			LikedBy:    []string{jane.ID},
			Comments: []domain.Comment{
				{
					ID:         "c-SEED0001",
					UserID:     jane.ID,
					UserName:   jane.Name,
					UserAvatar: jane.Avatar,
					Content:    "Great work team!",
					CreatedAt:  now.Add(-12 * time.Hour),
				},
			},
		},
	}

	if _, err := posts.InsertMany(ctx, seedPosts); err != nil {
		return fmt.Errorf("seed: insert posts: %w", err)
	}

	log.Info().Int("users", 2).Int("posts", 2).Msg("demo data seeded")
	return nil
}
