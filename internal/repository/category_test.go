package repository

import (
	"context"
	"testing"

	"blogicum/internal/cache"
	"blogicum/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withMiniredis attaches a miniredis-backed cache client. Call after
// setupTestDB, which clears the client.
func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
	return mr
}

func TestCategoryRepository_GetPublishedBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	createCategory(t, db, "travel", true)
	createCategory(t, db, "drafts", false)

	category, err := repo.GetPublishedBySlug(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, "travel", category.Slug)

	// unpublished and missing slugs are indistinguishable
	_, err = repo.GetPublishedBySlug(ctx, "drafts")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)

	_, err = repo.GetPublishedBySlug(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
}

func TestCategoryRepository_ListPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Category{Title: "Zoo", Slug: "zoo", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.Category{Title: "Art", Slug: "art", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.Category{Title: "Hidden", Slug: "hidden", IsPublished: false}).Error)

	categories, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Art", categories[0].Title, "title order")
	assert.Equal(t, "Zoo", categories[1].Title)
}

func TestCategoryRepository_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	createCategory(t, db, "travel", true)

	err := repo.Create(ctx, &models.Category{Title: "Another", Slug: "travel"})
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, err.(*models.AppError).Code)
}

func TestCategoryRepository_UnpublishHidesPosts(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "author")
	category := createCategory(t, db, "travel", true)
	createPost(t, db, "in travel", author, category, nowMinusHour(), true)

	posts, err := postRepo.ListPublic(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	category.IsPublished = false
	require.NoError(t, categoryRepo.Update(ctx, category))

	posts, err = postRepo.ListPublic(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts, "unpublishing a category hides all of its posts")
}

func TestCategoryRepository_UnpublishEvictsCachedPostDetails(t *testing.T) {
	db := setupTestDB(t)
	mr := withMiniredis(t)
	categoryRepo := NewCategoryRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	author := createUser(t, db, "author")
	category := createCategory(t, db, "travel", true)
	post := createPost(t, db, "cached", author, category, nowMinusHour(), true)

	// warm the detail cache; it embeds the still-published category
	warm, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, warm.Category)
	require.True(t, warm.Category.IsPublished)
	require.True(t, mr.Exists(cache.PostKey(post.ID)))

	category.IsPublished = false
	require.NoError(t, categoryRepo.Update(ctx, category))

	assert.False(t, mr.Exists(cache.PostKey(post.ID)),
		"cached detail of the category's posts must be evicted")

	// the next read sees the unpublished category, so the detail view and
	// the SQL-filtered listings agree
	fresh, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.Category)
	assert.False(t, fresh.Category.IsPublished)
}

func TestCategoryRepository_SlugChangeEvictsOldSlug(t *testing.T) {
	db := setupTestDB(t)
	mr := withMiniredis(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := createCategory(t, db, "travel", true)

	// warm the slug cache
	_, err := repo.GetPublishedBySlug(ctx, "travel")
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.CategoryKey("travel")))

	category.Slug = "journeys"
	require.NoError(t, repo.Update(ctx, category))

	assert.False(t, mr.Exists(cache.CategoryKey("travel")))

	// the old slug no longer resolves
	_, err = repo.GetPublishedBySlug(ctx, "travel")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)

	renamed, err := repo.GetPublishedBySlug(ctx, "journeys")
	require.NoError(t, err)
	assert.Equal(t, "journeys", renamed.Slug)
}
