package server

import (
	"github.com/gofiber/fiber/v2"
)

// Static informational pages served as structured content.

// AboutPage describes the project.
func (s *Server) AboutPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About the project",
		"body": []string{
			"Blogicum is a community blog platform where authors publish posts " +
				"into thematic categories, optionally tagged with a location.",
			"Posts can be scheduled: a post with a future publication date stays " +
				"visible only to its author until the date arrives.",
			"Readers can discuss any published post in its comment section.",
		},
	})
}

// RulesPage lists the community rules.
func (s *Server) RulesPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Our rules",
		"rules": []string{
			"Be polite to other members of the community.",
			"Stay on topic of the category you post in.",
			"Do not publish content that violates the law.",
			"Authors are responsible for what they publish and for the comments they leave.",
		},
	})
}
