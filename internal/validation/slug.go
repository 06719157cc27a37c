// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var categorySlugRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

var reservedCategorySlugs = map[string]struct{}{
	"admin":      {},
	"api":        {},
	"auth":       {},
	"categories": {},
	"posts":      {},
	"comments":   {},
	"users":      {},
	"pages":      {},
	"profile":    {},
	"login":      {},
	"signup":     {},
	"metrics":    {},
	"health":     {},
}

// ValidateCategorySlug validates category slug format and reserved names.
// Latin letters, digits, hyphen, and underscore are allowed.
func ValidateCategorySlug(slug string) error {
	if !categorySlugRegex.MatchString(slug) {
		return fmt.Errorf("slug must be 1-64 characters and contain only letters, digits, hyphens, and underscores")
	}

	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("slug cannot start or end with a hyphen")
	}

	if _, exists := reservedCategorySlugs[strings.ToLower(slug)]; exists {
		return fmt.Errorf("slug is reserved")
	}

	return nil
}
