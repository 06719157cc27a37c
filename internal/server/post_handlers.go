package server

import (
	"time"

	"blogicum/internal/middleware"
	"blogicum/internal/models"
	"blogicum/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	ImageURL    string     `json:"image_url"`
	CategoryID  *uint      `json:"category_id"`
	LocationID  *uint      `json:"location_id"`
	PubDate     *time.Time `json:"pub_date"`
	IsPublished *bool      `json:"is_published"`
}

type postListResponse struct {
	Posts  []*models.Post `json:"posts"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// GetPosts returns the public feed, newest publication first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	limit, offset := s.parsePagination(c)

	posts, err := s.postService.ListPosts(c.UserContext(), limit, offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(postListResponse{Posts: posts, Limit: limit, Offset: offset})
}

// GetPost returns a single post. Authors see their own hidden posts; for
// everyone else a hidden post is indistinguishable from a missing one.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)

	post, err := s.postService.GetPost(c.UserContext(), id, viewerID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles post creation requests
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.CreatePostInput{
		AuthorID:    userID,
		Title:       req.Title,
		Text:        req.Text,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		IsPublished: req.IsPublished,
	}
	if req.PubDate != nil {
		in.PubDate = *req.PubDate
	}

	post, err := s.postService.CreatePost(c.UserContext(), in)
	if err != nil {
		return serviceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post created",
		"post_id", post.ID, "author_id", userID)

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles post edits. Only the author may edit; a failed check is
// a direct 403, never a redirect.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		ActorID:     userID,
		PostID:      id,
		Title:       req.Title,
		Text:        req.Text,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		PubDate:     req.PubDate,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles post deletion. Authors may delete their own posts and
// staff may delete any post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		ActorID: userID,
		PostID:  id,
	}); err != nil {
		return serviceError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post deleted",
		"post_id", id, "actor_id", userID)

	return c.JSON(fiber.Map{"message": "Post deleted"})
}
