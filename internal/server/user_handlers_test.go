package server

import (
	"net/http"
	"testing"
	"time"

	"blogicum/internal/models"
	"blogicum/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserProfile(t *testing.T) {
	_, app, db := newTestServer(t)
	author := createTestUser(t, db, "alice", false)
	category := createTestCategory(t, db, "travel", true)

	now := time.Now().UTC()
	createTestPost(t, db, author, category, now.Add(-time.Hour), true)
	createTestPost(t, db, author, category, now.Add(time.Hour), true)   // scheduled
	createTestPost(t, db, author, category, now.Add(-time.Hour), false) // draft

	resp := doJSON(t, app, http.MethodGet, "/api/users/alice", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile service.Profile
	decodeBody(t, resp, &profile)
	assert.Equal(t, "alice", profile.User.Username)
	assert.Len(t, profile.Posts, 3, "profile lists drafts and scheduled posts")
}

func TestGetUserProfile_Unknown(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetMyProfile(t *testing.T) {
	s, app, db := newTestServer(t)
	user := createTestUser(t, db, "alice", false)

	resp := doJSON(t, app, http.MethodGet, "/api/users/me", tokenFor(t, s, user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me models.User
	decodeBody(t, resp, &me)
	assert.Equal(t, "alice", me.Username)

	// anonymous gets 401
	resp = doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateMyProfile(t *testing.T) {
	s, app, db := newTestServer(t)
	user := createTestUser(t, db, "alice", false)
	token := tokenFor(t, s, user.ID)

	resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, fiber.Map{
		"first_name": "Alice",
		"last_name":  "Liddell",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Liddell", updated.LastName)
	assert.Equal(t, "alice", updated.Username, "username unchanged when omitted")

	// invalid username rejected
	resp = doJSON(t, app, http.MethodPut, "/api/users/me", token, fiber.Map{
		"username": "_nope",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStaticPages(t *testing.T) {
	_, app, _ := newTestServer(t)

	for _, path := range []string{"/api/pages/about", "/api/pages/rules"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
