package server

import (
	"net/http"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories_OnlyPublished(t *testing.T) {
	_, app, db := newTestServer(t)
	createTestCategory(t, db, "travel", true)
	createTestCategory(t, db, "drafts", false)

	resp := doJSON(t, app, http.MethodGet, "/api/categories/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Categories []*models.Category `json:"categories"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Categories, 1)
	assert.Equal(t, "travel", body.Categories[0].Slug)
}

func TestGetCategoryPosts(t *testing.T) {
	_, app, db := newTestServer(t)
	author := createTestUser(t, db, "author", false)
	travel := createTestCategory(t, db, "travel", true)
	createTestCategory(t, db, "drafts", false)

	now := time.Now().UTC()
	createTestPost(t, db, author, travel, now.Add(-time.Hour), true)
	createTestPost(t, db, author, travel, now.Add(time.Hour), true) // scheduled

	resp := doJSON(t, app, http.MethodGet, "/api/categories/travel/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Category *models.Category `json:"category"`
		Posts    []*models.Post   `json:"posts"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "travel", body.Category.Slug)
	assert.Len(t, body.Posts, 1, "scheduled post excluded")

	// unpublished category slug is a 404
	resp = doJSON(t, app, http.MethodGet, "/api/categories/drafts/posts", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/categories/missing/posts", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCategory_StaffOnly(t *testing.T) {
	s, app, db := newTestServer(t)
	regular := createTestUser(t, db, "regular", false)
	staff := createTestUser(t, db, "admin", true)

	body := fiber.Map{"title": "Music", "slug": "music"}

	resp := doJSON(t, app, http.MethodPost, "/api/admin/categories/", tokenFor(t, s, regular.ID), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/admin/categories/", tokenFor(t, s, staff.ID), body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Category
	decodeBody(t, resp, &created)
	assert.Equal(t, "music", created.Slug)
	assert.True(t, created.IsPublished)
}

func TestCreateCategory_InvalidSlug(t *testing.T) {
	s, app, db := newTestServer(t)
	staff := createTestUser(t, db, "admin", true)

	for _, slug := range []string{"", "bad slug", "-leading", "admin"} {
		resp := doJSON(t, app, http.MethodPost, "/api/admin/categories/",
			tokenFor(t, s, staff.ID), fiber.Map{"title": "T", "slug": slug})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "slug %q", slug)
	}
}

func TestUpdateCategory_Unpublish(t *testing.T) {
	s, app, db := newTestServer(t)
	staff := createTestUser(t, db, "admin", true)
	author := createTestUser(t, db, "author", false)
	category := createTestCategory(t, db, "travel", true)
	createTestPost(t, db, author, category, time.Now().UTC().Add(-time.Hour), true)

	published := false
	resp := doJSON(t, app, http.MethodPut, "/api/admin/categories/1",
		tokenFor(t, s, staff.ID), fiber.Map{"is_published": published})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the category's posts disappear from the public feed
	resp = doJSON(t, app, http.MethodGet, "/api/posts/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed postListResponse
	decodeBody(t, resp, &feed)
	assert.Empty(t, feed.Posts)
}

func TestCreateLocation_StaffOnly(t *testing.T) {
	s, app, db := newTestServer(t)
	regular := createTestUser(t, db, "regular", false)
	staff := createTestUser(t, db, "admin", true)

	resp := doJSON(t, app, http.MethodPost, "/api/admin/locations/",
		tokenFor(t, s, regular.ID), fiber.Map{"name": "Lisbon"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/admin/locations/",
		tokenFor(t, s, staff.ID), fiber.Map{"name": "Lisbon"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var location models.Location
	decodeBody(t, resp, &location)
	assert.Equal(t, "Lisbon", location.Name)
}
