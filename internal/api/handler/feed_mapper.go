package handler

import (
	"github.com/socialpulse/feed-system/internal/core/domain"
	"github.com/socialpulse/feed-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreatePostInput(req createPostRequest) ports.CreatePostInput {
	attachments := make([]ports.AttachmentInput, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, ports.AttachmentInput{
			Kind:     a.Type,
			URL:      a.URL,
			Filename: a.Filename,
		})
	}
	return ports.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Attachments: attachments,
		Visibility:  req.Visibility,
	}
}

// --- Domain → Response ---

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
		Role:     u.Role,
		JoinedAt: u.JoinedAt,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	attachments := make([]attachmentResponse, 0, len(p.Attachments))
	for _, a := range p.Attachments {
		attachments = append(attachments, attachmentResponse{
			ID:       a.ID,
			Type:     string(a.Kind),
			URL:      a.URL,
			Filename: a.Filename,
		})
	}

	comments := make([]commentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, commentResponse{
			ID:         c.ID,
			UserID:     c.UserID,
			UserName:   c.UserName,
			UserAvatar: c.UserAvatar,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
		})
	}

	return postResponse{
		ID:                   p.ID,
		UserID:               p.UserID,
		User:                 toUserResponse(p.User),
		Title:                p.Title,
		Description:          p.Description,
		CreatedAt:            p.CreatedAt,
		EventDate:            p.EventDate,
		Attachments:          attachments,
		Visibility:           string(p.Visibility),
		Likes:                p.Likes,
		Comments:             comments,
		IsLikedByCurrentUser: p.IsLikedByCurrentUser,
	}
}

func toListPostsResponse(posts []*domain.Post) listPostsResponse {
	data := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		data = append(data, toPostResponse(p))
	}
	return listPostsResponse{Data: data, Count: len(data)}
}
