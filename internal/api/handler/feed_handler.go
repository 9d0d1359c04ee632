package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialpulse/feed-system/internal/api/metrics"
	"github.com/socialpulse/feed-system/internal/core/ports"
)

// FeedHandler handles HTTP requests for the post feed.
type FeedHandler struct {
	service ports.FeedService
}

func NewFeedHandler(service ports.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// List handles GET /v1/posts — the full feed, newest first.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Filter by title, description, or author name"
// @Param        mine    query     bool    false  "Only the caller's own posts"
// @Success      200     {object}  listPostsResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/posts [get]
func (h *FeedHandler) List(c echo.Context) error {
	viewerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListPosts(c.Request().Context(), ports.ListPostsInput{
		ViewerID: viewerID,
		Search:   c.QueryParam("search"),
		Mine:     c.QueryParam("mine") == "true",
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListPostsResponse(posts))
}

// Create handles POST /v1/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post draft"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/posts [post]
func (h *FeedHandler) Create(c echo.Context) error {
	authorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.service.CreatePost(c.Request().Context(), toCreatePostInput(req), authorID)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(string(post.Visibility)).Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Delete handles DELETE /v1/posts/:id. Deleting an unknown ID is a no-op
// and still returns 204.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/posts/{id} [delete]
func (h *FeedHandler) Delete(c echo.Context) error {
	actorID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), c.Param("id"), actorID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleLike handles POST /v1/posts/:id/like.
//
// @Summary      Toggle the caller's like on a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post ID"
// @Success      200  {object}  postResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/posts/{id}/like [post]
func (h *FeedHandler) ToggleLike(c echo.Context) error {
	viewerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.service.ToggleLike(c.Request().Context(), c.Param("id"), viewerID)
	if err != nil {
		return err
	}

	action := "unliked"
	if post.IsLikedByCurrentUser {
		action = "liked"
	}
	metrics.LikesToggledTotal.WithLabelValues(action).Inc()

	return c.JSON(http.StatusOK, toPostResponse(post))
}

// AddComment handles POST /v1/posts/:id/comments.
//
// @Summary      Add a comment to a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      addCommentRequest  true  "Comment"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/posts/{id}/comments [post]
func (h *FeedHandler) AddComment(c echo.Context) error {
	authorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.service.AddComment(c.Request().Context(), c.Param("id"), authorID, req.Content)
	if err != nil {
		return err
	}

	metrics.CommentsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}
