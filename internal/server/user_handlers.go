package server

import (
	"blogicum/internal/models"
	"blogicum/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// GetUserProfile returns a user's public profile with their posts. The owner
// sees all of their posts, including scheduled and unpublished ones; the
// posts are theirs regardless of viewer since the profile lists the author's
// own publications.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	limit, offset := s.parsePagination(c)

	profile, err := s.userService.GetProfile(c.UserContext(), username, limit, offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(profile)
}

// GetProfilePosts returns only the post list portion of a profile.
func (s *Server) GetProfilePosts(c *fiber.Ctx) error {
	username := c.Params("username")
	limit, offset := s.parsePagination(c)

	profile, err := s.userService.GetProfile(c.UserContext(), username, limit, offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(postListResponse{Posts: profile.Posts, Limit: limit, Offset: offset})
}

// GetMyProfile returns the authenticated user's own record.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles profile edits by the authenticated user.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:    userID,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(user)
}
