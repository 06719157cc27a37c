package server

import (
	"strings"

	"blogicum/internal/models"
	"blogicum/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type categoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsPublished *bool  `json:"is_published"`
}

type locationRequest struct {
	Name        string `json:"name"`
	IsPublished *bool  `json:"is_published"`
}

// GetCategories lists the published categories, title order.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.ListPublished(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// GetCategoryPosts returns a published category together with its visible
// posts. Unknown and unpublished slugs both report 404.
func (s *Server) GetCategoryPosts(c *fiber.Ctx) error {
	slug := c.Params("slug")
	limit, offset := s.parsePagination(c)

	category, posts, err := s.postService.ListCategoryPosts(c.UserContext(), slug, limit, offset)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"category": category,
		"posts":    posts,
		"limit":    limit,
		"offset":   offset,
	})
}

// CreateCategory handles staff category creation.
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}
	if err := validation.ValidateCategorySlug(req.Slug); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	category := &models.Category{
		Title:       req.Title,
		Description: req.Description,
		Slug:        req.Slug,
		IsPublished: isPublished,
	}
	if err := s.categoryRepo.Create(c.UserContext(), category); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles staff category edits, including unpublishing.
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}

	if req.Title != "" {
		category.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.Slug != "" && req.Slug != category.Slug {
		if err := validation.ValidateCategorySlug(req.Slug); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		category.Slug = req.Slug
	}
	if req.IsPublished != nil {
		category.IsPublished = *req.IsPublished
	}

	if err := s.categoryRepo.Update(c.UserContext(), category); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(category)
}

// CreateLocation handles staff location creation.
func (s *Server) CreateLocation(c *fiber.Ctx) error {
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	location := &models.Location{Name: req.Name, IsPublished: isPublished}
	if err := s.locationRepo.Create(c.UserContext(), location); err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(location)
}

// UpdateLocation handles staff location edits.
func (s *Server) UpdateLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	location, err := s.locationRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}

	if req.Name != "" {
		location.Name = strings.TrimSpace(req.Name)
	}
	if req.IsPublished != nil {
		location.IsPublished = *req.IsPublished
	}

	if err := s.locationRepo.Update(c.UserContext(), location); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(location)
}
