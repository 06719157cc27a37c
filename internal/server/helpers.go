package server

import (
	"context"
	"errors"
	"strconv"

	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the helper already wrote the HTTP error
// response. Handlers must return nil when they see it.
var errResponseWritten = errors.New("response written")

// parseID extracts and validates a positive integer path parameter.
// On failure it writes the 400 response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+name))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePagination reads limit/offset query parameters. The limit defaults to
// the configured page size and is capped at 100.
func (s *Server) parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", s.config.PageSize)
	if limit <= 0 {
		limit = s.config.PageSize
	}
	if limit > 100 {
		limit = 100
	}

	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// serviceError maps a service-layer error to its HTTP response.
func serviceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.ErrorStatus(err), err)
}

// isStaffByUserID reports whether the given user has staff privileges.
// Injected into the post service for the delete override.
func (s *Server) isStaffByUserID(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsStaff, nil
}
